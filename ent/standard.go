// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/internal/catalog"
)

// Standard is the model entity for the Standard schema.
type Standard struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Standard code, e.g. 3.NS.1 or A.EO.2
	Code string `json:"code,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Grade level (K, 1-8) or course name (Algebra1)
	Grade string `json:"grade,omitempty"`
	// Content domain, e.g. Number and Number Sense
	Strand string `json:"strand,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Ordered (code, description) pairs
	SubObjectives []catalog.SubObjective `json:"sub_objectives,omitempty"`
	// Prerequisites holds the value of the "prerequisites" field.
	Prerequisites []string `json:"prerequisites,omitempty"`
	// Connections holds the value of the "connections" field.
	Connections []string `json:"connections,omitempty"`
	// KeyTerms holds the value of the "key_terms" field.
	KeyTerms []string `json:"key_terms,omitempty"`
	// foundational, grade-level, or advanced
	Difficulty string `json:"difficulty,omitempty"`
	// recall, skill, strategic, or extended
	CognitiveComplexity string `json:"cognitive_complexity,omitempty"`
	// Label of the document this standard was ingested from
	SourceDocument string `json:"source_document,omitempty"`
	// Monotonic counter preserving catalog insertion order
	InsertionOrder int64 `json:"insertion_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StandardQuery when eager-loading is set.
	Edges        StandardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StandardEdges holds the relations/edges for other nodes in the graph.
type StandardEdges struct {
	// Items holds the value of the items edge.
	Items []*AssessmentItem `json:"items,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*AssessmentAttempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e StandardEdges) ItemsOrErr() ([]*AssessmentItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e StandardEdges) AttemptsOrErr() ([]*AssessmentAttempt, error) {
	if e.loadedTypes[1] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Standard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case standard.FieldSubObjectives, standard.FieldPrerequisites, standard.FieldConnections, standard.FieldKeyTerms:
			values[i] = new([]byte)
		case standard.FieldInsertionOrder:
			values[i] = new(sql.NullInt64)
		case standard.FieldID, standard.FieldCode, standard.FieldSubject, standard.FieldGrade, standard.FieldStrand, standard.FieldTitle, standard.FieldDescription, standard.FieldDifficulty, standard.FieldCognitiveComplexity, standard.FieldSourceDocument:
			values[i] = new(sql.NullString)
		case standard.FieldCreatedAt, standard.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Standard fields.
func (_m *Standard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case standard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case standard.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case standard.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case standard.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case standard.FieldStrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strand", values[i])
			} else if value.Valid {
				_m.Strand = value.String
			}
		case standard.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case standard.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case standard.FieldSubObjectives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sub_objectives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubObjectives); err != nil {
					return fmt.Errorf("unmarshal field sub_objectives: %w", err)
				}
			}
		case standard.FieldPrerequisites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisites", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prerequisites); err != nil {
					return fmt.Errorf("unmarshal field prerequisites: %w", err)
				}
			}
		case standard.FieldConnections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field connections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Connections); err != nil {
					return fmt.Errorf("unmarshal field connections: %w", err)
				}
			}
		case standard.FieldKeyTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyTerms); err != nil {
					return fmt.Errorf("unmarshal field key_terms: %w", err)
				}
			}
		case standard.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case standard.FieldCognitiveComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_complexity", values[i])
			} else if value.Valid {
				_m.CognitiveComplexity = value.String
			}
		case standard.FieldSourceDocument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_document", values[i])
			} else if value.Valid {
				_m.SourceDocument = value.String
			}
		case standard.FieldInsertionOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field insertion_order", values[i])
			} else if value.Valid {
				_m.InsertionOrder = value.Int64
			}
		case standard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case standard.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Standard.
// This includes values selected through modifiers, order, etc.
func (_m *Standard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Standard entity.
func (_m *Standard) QueryItems() *AssessmentItemQuery {
	return NewStandardClient(_m.config).QueryItems(_m)
}

// QueryAttempts queries the "attempts" edge of the Standard entity.
func (_m *Standard) QueryAttempts() *AssessmentAttemptQuery {
	return NewStandardClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this Standard.
// Note that you need to call Standard.Unwrap() before calling this method if this Standard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Standard) Update() *StandardUpdateOne {
	return NewStandardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Standard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Standard) Unwrap() *Standard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Standard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Standard) String() string {
	var builder strings.Builder
	builder.WriteString("Standard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("strand=")
	builder.WriteString(_m.Strand)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sub_objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubObjectives))
	builder.WriteString(", ")
	builder.WriteString("prerequisites=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prerequisites))
	builder.WriteString(", ")
	builder.WriteString("connections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Connections))
	builder.WriteString(", ")
	builder.WriteString("key_terms=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyTerms))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("cognitive_complexity=")
	builder.WriteString(_m.CognitiveComplexity)
	builder.WriteString(", ")
	builder.WriteString("source_document=")
	builder.WriteString(_m.SourceDocument)
	builder.WriteString(", ")
	builder.WriteString("insertion_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsertionOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Standards is a parsable slice of Standard.
type Standards []*Standard
