// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
)

// AssessmentAttempt is the model entity for the AssessmentAttempt schema.
type AssessmentAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Denormalized from the item for mastery queries
	StandardID string `json:"standard_id,omitempty"`
	// Global monotonic counter; breaks timestamp ties
	Sequence int64 `json:"sequence,omitempty"`
	// Raw learner response as submitted
	Response string `json:"response,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// MaxScore holds the value of the "max_score" field.
	MaxScore float64 `json:"max_score,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// TimeSpentSeconds holds the value of the "time_spent_seconds" field.
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentAttemptQuery when eager-loading is set.
	Edges        AssessmentAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentAttemptEdges holds the relations/edges for other nodes in the graph.
type AssessmentAttemptEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Item holds the value of the item edge.
	Item *AssessmentItem `json:"item,omitempty"`
	// Standard holds the value of the standard edge.
	Standard *Standard `json:"standard,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentAttemptEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentAttemptEdges) ItemOrErr() (*AssessmentItem, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: assessmentitem.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// StandardOrErr returns the Standard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentAttemptEdges) StandardOrErr() (*Standard, error) {
	if e.Standard != nil {
		return e.Standard, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: standard.Label}
	}
	return nil, &NotLoadedError{edge: "standard"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentattempt.FieldCorrect:
			values[i] = new(sql.NullBool)
		case assessmentattempt.FieldScore, assessmentattempt.FieldMaxScore:
			values[i] = new(sql.NullFloat64)
		case assessmentattempt.FieldSequence, assessmentattempt.FieldTimeSpentSeconds:
			values[i] = new(sql.NullInt64)
		case assessmentattempt.FieldID, assessmentattempt.FieldUserID, assessmentattempt.FieldItemID, assessmentattempt.FieldStandardID, assessmentattempt.FieldResponse, assessmentattempt.FieldFeedback:
			values[i] = new(sql.NullString)
		case assessmentattempt.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentAttempt fields.
func (_m *AssessmentAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assessmentattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case assessmentattempt.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case assessmentattempt.FieldStandardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field standard_id", values[i])
			} else if value.Valid {
				_m.StandardID = value.String
			}
		case assessmentattempt.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentattempt.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case assessmentattempt.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case assessmentattempt.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case assessmentattempt.FieldMaxScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = value.Float64
			}
		case assessmentattempt.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case assessmentattempt.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		case assessmentattempt.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the AssessmentAttempt entity.
func (_m *AssessmentAttempt) QueryUser() *UserQuery {
	return NewAssessmentAttemptClient(_m.config).QueryUser(_m)
}

// QueryItem queries the "item" edge of the AssessmentAttempt entity.
func (_m *AssessmentAttempt) QueryItem() *AssessmentItemQuery {
	return NewAssessmentAttemptClient(_m.config).QueryItem(_m)
}

// QueryStandard queries the "standard" edge of the AssessmentAttempt entity.
func (_m *AssessmentAttempt) QueryStandard() *StandardQuery {
	return NewAssessmentAttemptClient(_m.config).QueryStandard(_m)
}

// Update returns a builder for updating this AssessmentAttempt.
// Note that you need to call AssessmentAttempt.Unwrap() before calling this method if this AssessmentAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentAttempt) Update() *AssessmentAttemptUpdateOne {
	return NewAssessmentAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentAttempt) Unwrap() *AssessmentAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("standard_id=")
	builder.WriteString(_m.StandardID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentAttempts is a parsable slice of AssessmentAttempt.
type AssessmentAttempts []*AssessmentAttempt
