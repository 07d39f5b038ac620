// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/standard"
)

// AssessmentItem is the model entity for the AssessmentItem schema.
type AssessmentItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StandardID holds the value of the "standard_id" field.
	StandardID string `json:"standard_id,omitempty"`
	// MCQ, FIB, or CR; the payload shape is keyed by this
	ItemType string `json:"item_type,omitempty"`
	// easy, medium, or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Depth of Knowledge level
	Dok int `json:"dok,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// Type-specific payload: choices, answer key, or rubric
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentItemQuery when eager-loading is set.
	Edges        AssessmentItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentItemEdges holds the relations/edges for other nodes in the graph.
type AssessmentItemEdges struct {
	// Standard holds the value of the standard edge.
	Standard *Standard `json:"standard,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*AssessmentAttempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StandardOrErr returns the Standard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentItemEdges) StandardOrErr() (*Standard, error) {
	if e.Standard != nil {
		return e.Standard, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: standard.Label}
	}
	return nil, &NotLoadedError{edge: "standard"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentItemEdges) AttemptsOrErr() ([]*AssessmentAttempt, error) {
	if e.loadedTypes[1] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentitem.FieldPayload:
			values[i] = new([]byte)
		case assessmentitem.FieldDok:
			values[i] = new(sql.NullInt64)
		case assessmentitem.FieldID, assessmentitem.FieldStandardID, assessmentitem.FieldItemType, assessmentitem.FieldDifficulty, assessmentitem.FieldStem:
			values[i] = new(sql.NullString)
		case assessmentitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentItem fields.
func (_m *AssessmentItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assessmentitem.FieldStandardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field standard_id", values[i])
			} else if value.Valid {
				_m.StandardID = value.String
			}
		case assessmentitem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = value.String
			}
		case assessmentitem.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case assessmentitem.FieldDok:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dok", values[i])
			} else if value.Valid {
				_m.Dok = int(value.Int64)
			}
		case assessmentitem.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case assessmentitem.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case assessmentitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentItem.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStandard queries the "standard" edge of the AssessmentItem entity.
func (_m *AssessmentItem) QueryStandard() *StandardQuery {
	return NewAssessmentItemClient(_m.config).QueryStandard(_m)
}

// QueryAttempts queries the "attempts" edge of the AssessmentItem entity.
func (_m *AssessmentItem) QueryAttempts() *AssessmentAttemptQuery {
	return NewAssessmentItemClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this AssessmentItem.
// Note that you need to call AssessmentItem.Unwrap() before calling this method if this AssessmentItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentItem) Update() *AssessmentItemUpdateOne {
	return NewAssessmentItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentItem) Unwrap() *AssessmentItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentItem) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("standard_id=")
	builder.WriteString(_m.StandardID)
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(_m.ItemType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("dok=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dok))
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentItems is a parsable slice of AssessmentItem.
type AssessmentItems []*AssessmentItem
