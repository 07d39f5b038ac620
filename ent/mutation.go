// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/llmrequestevent"
	"github.com/soltrack/soltrack/ent/predicate"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
	"github.com/soltrack/soltrack/internal/catalog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentAttempt = "AssessmentAttempt"
	TypeAssessmentItem    = "AssessmentItem"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeStandard          = "Standard"
	TypeUser              = "User"
)

// AssessmentAttemptMutation represents an operation that mutates the AssessmentAttempt nodes in the graph.
type AssessmentAttemptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	sequence              *int64
	addsequence           *int64
	response              *string
	correct               *bool
	score                 *float64
	addscore              *float64
	max_score             *float64
	addmax_score          *float64
	feedback              *string
	time_spent_seconds    *int
	addtime_spent_seconds *int
	timestamp             *time.Time
	clearedFields         map[string]struct{}
	user                  *string
	cleareduser           bool
	item                  *string
	cleareditem           bool
	standard              *string
	clearedstandard       bool
	done                  bool
	oldValue              func(context.Context) (*AssessmentAttempt, error)
	predicates            []predicate.AssessmentAttempt
}

var _ ent.Mutation = (*AssessmentAttemptMutation)(nil)

// assessmentattemptOption allows management of the mutation configuration using functional options.
type assessmentattemptOption func(*AssessmentAttemptMutation)

// newAssessmentAttemptMutation creates new mutation for the AssessmentAttempt entity.
func newAssessmentAttemptMutation(c config, op Op, opts ...assessmentattemptOption) *AssessmentAttemptMutation {
	m := &AssessmentAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentAttemptID sets the ID field of the mutation.
func withAssessmentAttemptID(id string) assessmentattemptOption {
	return func(m *AssessmentAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentAttempt
		)
		m.oldValue = func(ctx context.Context) (*AssessmentAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentAttempt sets the old AssessmentAttempt of the mutation.
func withAssessmentAttempt(node *AssessmentAttempt) assessmentattemptOption {
	return func(m *AssessmentAttemptMutation) {
		m.oldValue = func(context.Context) (*AssessmentAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssessmentAttempt entities.
func (m *AssessmentAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AssessmentAttemptMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AssessmentAttemptMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AssessmentAttemptMutation) ResetUserID() {
	m.user = nil
}

// SetItemID sets the "item_id" field.
func (m *AssessmentAttemptMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AssessmentAttemptMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AssessmentAttemptMutation) ResetItemID() {
	m.item = nil
}

// SetStandardID sets the "standard_id" field.
func (m *AssessmentAttemptMutation) SetStandardID(s string) {
	m.standard = &s
}

// StandardID returns the value of the "standard_id" field in the mutation.
func (m *AssessmentAttemptMutation) StandardID() (r string, exists bool) {
	v := m.standard
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardID returns the old "standard_id" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldStandardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardID: %w", err)
	}
	return oldValue.StandardID, nil
}

// ResetStandardID resets all changes to the "standard_id" field.
func (m *AssessmentAttemptMutation) ResetStandardID() {
	m.standard = nil
}

// SetSequence sets the "sequence" field.
func (m *AssessmentAttemptMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentAttemptMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssessmentAttemptMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentAttemptMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentAttemptMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetResponse sets the "response" field.
func (m *AssessmentAttemptMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *AssessmentAttemptMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *AssessmentAttemptMutation) ResetResponse() {
	m.response = nil
}

// SetCorrect sets the "correct" field.
func (m *AssessmentAttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AssessmentAttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AssessmentAttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetScore sets the "score" field.
func (m *AssessmentAttemptMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AssessmentAttemptMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AssessmentAttemptMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AssessmentAttemptMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AssessmentAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetMaxScore sets the "max_score" field.
func (m *AssessmentAttemptMutation) SetMaxScore(f float64) {
	m.max_score = &f
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *AssessmentAttemptMutation) MaxScore() (r float64, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldMaxScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds f to the "max_score" field.
func (m *AssessmentAttemptMutation) AddMaxScore(f float64) {
	if m.addmax_score != nil {
		*m.addmax_score += f
	} else {
		m.addmax_score = &f
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *AssessmentAttemptMutation) AddedMaxScore() (r float64, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *AssessmentAttemptMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetFeedback sets the "feedback" field.
func (m *AssessmentAttemptMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *AssessmentAttemptMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *AssessmentAttemptMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[assessmentattempt.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *AssessmentAttemptMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[assessmentattempt.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *AssessmentAttemptMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, assessmentattempt.FieldFeedback)
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *AssessmentAttemptMutation) SetTimeSpentSeconds(i int) {
	m.time_spent_seconds = &i
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *AssessmentAttemptMutation) TimeSpentSeconds() (r int, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldTimeSpentSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds i to the "time_spent_seconds" field.
func (m *AssessmentAttemptMutation) AddTimeSpentSeconds(i int) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += i
	} else {
		m.addtime_spent_seconds = &i
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *AssessmentAttemptMutation) AddedTimeSpentSeconds() (r int, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *AssessmentAttemptMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentAttemptMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentAttemptMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentAttempt entity.
// If the AssessmentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentAttemptMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssessmentAttemptMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AssessmentAttemptMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[assessmentattempt.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AssessmentAttemptMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AssessmentAttemptMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AssessmentAttemptMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearItem clears the "item" edge to the AssessmentItem entity.
func (m *AssessmentAttemptMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[assessmentattempt.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the AssessmentItem entity was cleared.
func (m *AssessmentAttemptMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *AssessmentAttemptMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *AssessmentAttemptMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// ClearStandard clears the "standard" edge to the Standard entity.
func (m *AssessmentAttemptMutation) ClearStandard() {
	m.clearedstandard = true
	m.clearedFields[assessmentattempt.FieldStandardID] = struct{}{}
}

// StandardCleared reports if the "standard" edge to the Standard entity was cleared.
func (m *AssessmentAttemptMutation) StandardCleared() bool {
	return m.clearedstandard
}

// StandardIDs returns the "standard" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandardID instead. It exists only for internal usage by the builders.
func (m *AssessmentAttemptMutation) StandardIDs() (ids []string) {
	if id := m.standard; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStandard resets all changes to the "standard" edge.
func (m *AssessmentAttemptMutation) ResetStandard() {
	m.standard = nil
	m.clearedstandard = false
}

// Where appends a list predicates to the AssessmentAttemptMutation builder.
func (m *AssessmentAttemptMutation) Where(ps ...predicate.AssessmentAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentAttempt).
func (m *AssessmentAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentAttemptMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user != nil {
		fields = append(fields, assessmentattempt.FieldUserID)
	}
	if m.item != nil {
		fields = append(fields, assessmentattempt.FieldItemID)
	}
	if m.standard != nil {
		fields = append(fields, assessmentattempt.FieldStandardID)
	}
	if m.sequence != nil {
		fields = append(fields, assessmentattempt.FieldSequence)
	}
	if m.response != nil {
		fields = append(fields, assessmentattempt.FieldResponse)
	}
	if m.correct != nil {
		fields = append(fields, assessmentattempt.FieldCorrect)
	}
	if m.score != nil {
		fields = append(fields, assessmentattempt.FieldScore)
	}
	if m.max_score != nil {
		fields = append(fields, assessmentattempt.FieldMaxScore)
	}
	if m.feedback != nil {
		fields = append(fields, assessmentattempt.FieldFeedback)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, assessmentattempt.FieldTimeSpentSeconds)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentattempt.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentattempt.FieldUserID:
		return m.UserID()
	case assessmentattempt.FieldItemID:
		return m.ItemID()
	case assessmentattempt.FieldStandardID:
		return m.StandardID()
	case assessmentattempt.FieldSequence:
		return m.Sequence()
	case assessmentattempt.FieldResponse:
		return m.Response()
	case assessmentattempt.FieldCorrect:
		return m.Correct()
	case assessmentattempt.FieldScore:
		return m.Score()
	case assessmentattempt.FieldMaxScore:
		return m.MaxScore()
	case assessmentattempt.FieldFeedback:
		return m.Feedback()
	case assessmentattempt.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	case assessmentattempt.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentattempt.FieldUserID:
		return m.OldUserID(ctx)
	case assessmentattempt.FieldItemID:
		return m.OldItemID(ctx)
	case assessmentattempt.FieldStandardID:
		return m.OldStandardID(ctx)
	case assessmentattempt.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentattempt.FieldResponse:
		return m.OldResponse(ctx)
	case assessmentattempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case assessmentattempt.FieldScore:
		return m.OldScore(ctx)
	case assessmentattempt.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case assessmentattempt.FieldFeedback:
		return m.OldFeedback(ctx)
	case assessmentattempt.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	case assessmentattempt.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case assessmentattempt.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case assessmentattempt.FieldStandardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardID(v)
		return nil
	case assessmentattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentattempt.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case assessmentattempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case assessmentattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case assessmentattempt.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case assessmentattempt.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case assessmentattempt.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	case assessmentattempt.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentattempt.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, assessmentattempt.FieldScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, assessmentattempt.FieldMaxScore)
	}
	if m.addtime_spent_seconds != nil {
		fields = append(fields, assessmentattempt.FieldTimeSpentSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentattempt.FieldSequence:
		return m.AddedSequence()
	case assessmentattempt.FieldScore:
		return m.AddedScore()
	case assessmentattempt.FieldMaxScore:
		return m.AddedMaxScore()
	case assessmentattempt.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case assessmentattempt.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	case assessmentattempt.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentattempt.FieldFeedback) {
		fields = append(fields, assessmentattempt.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentAttemptMutation) ClearField(name string) error {
	switch name {
	case assessmentattempt.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentAttemptMutation) ResetField(name string) error {
	switch name {
	case assessmentattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case assessmentattempt.FieldItemID:
		m.ResetItemID()
		return nil
	case assessmentattempt.FieldStandardID:
		m.ResetStandardID()
		return nil
	case assessmentattempt.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentattempt.FieldResponse:
		m.ResetResponse()
		return nil
	case assessmentattempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case assessmentattempt.FieldScore:
		m.ResetScore()
		return nil
	case assessmentattempt.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case assessmentattempt.FieldFeedback:
		m.ResetFeedback()
		return nil
	case assessmentattempt.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	case assessmentattempt.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, assessmentattempt.EdgeUser)
	}
	if m.item != nil {
		edges = append(edges, assessmentattempt.EdgeItem)
	}
	if m.standard != nil {
		edges = append(edges, assessmentattempt.EdgeStandard)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessmentattempt.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case assessmentattempt.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	case assessmentattempt.EdgeStandard:
		if id := m.standard; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, assessmentattempt.EdgeUser)
	}
	if m.cleareditem {
		edges = append(edges, assessmentattempt.EdgeItem)
	}
	if m.clearedstandard {
		edges = append(edges, assessmentattempt.EdgeStandard)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case assessmentattempt.EdgeUser:
		return m.cleareduser
	case assessmentattempt.EdgeItem:
		return m.cleareditem
	case assessmentattempt.EdgeStandard:
		return m.clearedstandard
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentAttemptMutation) ClearEdge(name string) error {
	switch name {
	case assessmentattempt.EdgeUser:
		m.ClearUser()
		return nil
	case assessmentattempt.EdgeItem:
		m.ClearItem()
		return nil
	case assessmentattempt.EdgeStandard:
		m.ClearStandard()
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentAttemptMutation) ResetEdge(name string) error {
	switch name {
	case assessmentattempt.EdgeUser:
		m.ResetUser()
		return nil
	case assessmentattempt.EdgeItem:
		m.ResetItem()
		return nil
	case assessmentattempt.EdgeStandard:
		m.ResetStandard()
		return nil
	}
	return fmt.Errorf("unknown AssessmentAttempt edge %s", name)
}

// AssessmentItemMutation represents an operation that mutates the AssessmentItem nodes in the graph.
type AssessmentItemMutation struct {
	config
	op              Op
	typ             string
	id              *string
	item_type       *string
	difficulty      *string
	dok             *int
	adddok          *int
	stem            *string
	payload         *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	standard        *string
	clearedstandard bool
	attempts        map[string]struct{}
	removedattempts map[string]struct{}
	clearedattempts bool
	done            bool
	oldValue        func(context.Context) (*AssessmentItem, error)
	predicates      []predicate.AssessmentItem
}

var _ ent.Mutation = (*AssessmentItemMutation)(nil)

// assessmentitemOption allows management of the mutation configuration using functional options.
type assessmentitemOption func(*AssessmentItemMutation)

// newAssessmentItemMutation creates new mutation for the AssessmentItem entity.
func newAssessmentItemMutation(c config, op Op, opts ...assessmentitemOption) *AssessmentItemMutation {
	m := &AssessmentItemMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentItemID sets the ID field of the mutation.
func withAssessmentItemID(id string) assessmentitemOption {
	return func(m *AssessmentItemMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentItem
		)
		m.oldValue = func(ctx context.Context) (*AssessmentItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentItem sets the old AssessmentItem of the mutation.
func withAssessmentItem(node *AssessmentItem) assessmentitemOption {
	return func(m *AssessmentItemMutation) {
		m.oldValue = func(context.Context) (*AssessmentItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssessmentItem entities.
func (m *AssessmentItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStandardID sets the "standard_id" field.
func (m *AssessmentItemMutation) SetStandardID(s string) {
	m.standard = &s
}

// StandardID returns the value of the "standard_id" field in the mutation.
func (m *AssessmentItemMutation) StandardID() (r string, exists bool) {
	v := m.standard
	if v == nil {
		return
	}
	return *v, true
}

// OldStandardID returns the old "standard_id" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldStandardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStandardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStandardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStandardID: %w", err)
	}
	return oldValue.StandardID, nil
}

// ResetStandardID resets all changes to the "standard_id" field.
func (m *AssessmentItemMutation) ResetStandardID() {
	m.standard = nil
}

// SetItemType sets the "item_type" field.
func (m *AssessmentItemMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *AssessmentItemMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *AssessmentItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AssessmentItemMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AssessmentItemMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AssessmentItemMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetDok sets the "dok" field.
func (m *AssessmentItemMutation) SetDok(i int) {
	m.dok = &i
	m.adddok = nil
}

// Dok returns the value of the "dok" field in the mutation.
func (m *AssessmentItemMutation) Dok() (r int, exists bool) {
	v := m.dok
	if v == nil {
		return
	}
	return *v, true
}

// OldDok returns the old "dok" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldDok(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDok is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDok requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDok: %w", err)
	}
	return oldValue.Dok, nil
}

// AddDok adds i to the "dok" field.
func (m *AssessmentItemMutation) AddDok(i int) {
	if m.adddok != nil {
		*m.adddok += i
	} else {
		m.adddok = &i
	}
}

// AddedDok returns the value that was added to the "dok" field in this mutation.
func (m *AssessmentItemMutation) AddedDok() (r int, exists bool) {
	v := m.adddok
	if v == nil {
		return
	}
	return *v, true
}

// ResetDok resets all changes to the "dok" field.
func (m *AssessmentItemMutation) ResetDok() {
	m.dok = nil
	m.adddok = nil
}

// SetStem sets the "stem" field.
func (m *AssessmentItemMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *AssessmentItemMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *AssessmentItemMutation) ResetStem() {
	m.stem = nil
}

// SetPayload sets the "payload" field.
func (m *AssessmentItemMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AssessmentItemMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AssessmentItemMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentItem entity.
// If the AssessmentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStandard clears the "standard" edge to the Standard entity.
func (m *AssessmentItemMutation) ClearStandard() {
	m.clearedstandard = true
	m.clearedFields[assessmentitem.FieldStandardID] = struct{}{}
}

// StandardCleared reports if the "standard" edge to the Standard entity was cleared.
func (m *AssessmentItemMutation) StandardCleared() bool {
	return m.clearedstandard
}

// StandardIDs returns the "standard" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandardID instead. It exists only for internal usage by the builders.
func (m *AssessmentItemMutation) StandardIDs() (ids []string) {
	if id := m.standard; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStandard resets all changes to the "standard" edge.
func (m *AssessmentItemMutation) ResetStandard() {
	m.standard = nil
	m.clearedstandard = false
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by ids.
func (m *AssessmentItemMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the AssessmentAttempt entity.
func (m *AssessmentItemMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the AssessmentAttempt entity was cleared.
func (m *AssessmentItemMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the AssessmentAttempt entity by IDs.
func (m *AssessmentItemMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the AssessmentAttempt entity.
func (m *AssessmentItemMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *AssessmentItemMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *AssessmentItemMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the AssessmentItemMutation builder.
func (m *AssessmentItemMutation) Where(ps ...predicate.AssessmentItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentItem).
func (m *AssessmentItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.standard != nil {
		fields = append(fields, assessmentitem.FieldStandardID)
	}
	if m.item_type != nil {
		fields = append(fields, assessmentitem.FieldItemType)
	}
	if m.difficulty != nil {
		fields = append(fields, assessmentitem.FieldDifficulty)
	}
	if m.dok != nil {
		fields = append(fields, assessmentitem.FieldDok)
	}
	if m.stem != nil {
		fields = append(fields, assessmentitem.FieldStem)
	}
	if m.payload != nil {
		fields = append(fields, assessmentitem.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, assessmentitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentitem.FieldStandardID:
		return m.StandardID()
	case assessmentitem.FieldItemType:
		return m.ItemType()
	case assessmentitem.FieldDifficulty:
		return m.Difficulty()
	case assessmentitem.FieldDok:
		return m.Dok()
	case assessmentitem.FieldStem:
		return m.Stem()
	case assessmentitem.FieldPayload:
		return m.Payload()
	case assessmentitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentitem.FieldStandardID:
		return m.OldStandardID(ctx)
	case assessmentitem.FieldItemType:
		return m.OldItemType(ctx)
	case assessmentitem.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case assessmentitem.FieldDok:
		return m.OldDok(ctx)
	case assessmentitem.FieldStem:
		return m.OldStem(ctx)
	case assessmentitem.FieldPayload:
		return m.OldPayload(ctx)
	case assessmentitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentitem.FieldStandardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStandardID(v)
		return nil
	case assessmentitem.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case assessmentitem.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case assessmentitem.FieldDok:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDok(v)
		return nil
	case assessmentitem.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case assessmentitem.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case assessmentitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentItemMutation) AddedFields() []string {
	var fields []string
	if m.adddok != nil {
		fields = append(fields, assessmentitem.FieldDok)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentitem.FieldDok:
		return m.AddedDok()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentitem.FieldDok:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDok(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessmentItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentItemMutation) ResetField(name string) error {
	switch name {
	case assessmentitem.FieldStandardID:
		m.ResetStandardID()
		return nil
	case assessmentitem.FieldItemType:
		m.ResetItemType()
		return nil
	case assessmentitem.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case assessmentitem.FieldDok:
		m.ResetDok()
		return nil
	case assessmentitem.FieldStem:
		m.ResetStem()
		return nil
	case assessmentitem.FieldPayload:
		m.ResetPayload()
		return nil
	case assessmentitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.standard != nil {
		edges = append(edges, assessmentitem.EdgeStandard)
	}
	if m.attempts != nil {
		edges = append(edges, assessmentitem.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessmentitem.EdgeStandard:
		if id := m.standard; id != nil {
			return []ent.Value{*id}
		}
	case assessmentitem.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattempts != nil {
		edges = append(edges, assessmentitem.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assessmentitem.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstandard {
		edges = append(edges, assessmentitem.EdgeStandard)
	}
	if m.clearedattempts {
		edges = append(edges, assessmentitem.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentItemMutation) EdgeCleared(name string) bool {
	switch name {
	case assessmentitem.EdgeStandard:
		return m.clearedstandard
	case assessmentitem.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentItemMutation) ClearEdge(name string) error {
	switch name {
	case assessmentitem.EdgeStandard:
		m.ClearStandard()
		return nil
	}
	return fmt.Errorf("unknown AssessmentItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentItemMutation) ResetEdge(name string) error {
	switch name {
	case assessmentitem.EdgeStandard:
		m.ResetStandard()
		return nil
	case assessmentitem.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown AssessmentItem edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// StandardMutation represents an operation that mutates the Standard nodes in the graph.
type StandardMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	code                 *string
	subject              *string
	grade                *string
	strand               *string
	title                *string
	description          *string
	sub_objectives       *[]catalog.SubObjective
	appendsub_objectives []catalog.SubObjective
	prerequisites        *[]string
	appendprerequisites  []string
	connections          *[]string
	appendconnections    []string
	key_terms            *[]string
	appendkey_terms      []string
	difficulty           *string
	cognitive_complexity *string
	source_document      *string
	insertion_order      *int64
	addinsertion_order   *int64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	items                map[string]struct{}
	removeditems         map[string]struct{}
	cleareditems         bool
	attempts             map[string]struct{}
	removedattempts      map[string]struct{}
	clearedattempts      bool
	done                 bool
	oldValue             func(context.Context) (*Standard, error)
	predicates           []predicate.Standard
}

var _ ent.Mutation = (*StandardMutation)(nil)

// standardOption allows management of the mutation configuration using functional options.
type standardOption func(*StandardMutation)

// newStandardMutation creates new mutation for the Standard entity.
func newStandardMutation(c config, op Op, opts ...standardOption) *StandardMutation {
	m := &StandardMutation{
		config:        c,
		op:            op,
		typ:           TypeStandard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStandardID sets the ID field of the mutation.
func withStandardID(id string) standardOption {
	return func(m *StandardMutation) {
		var (
			err   error
			once  sync.Once
			value *Standard
		)
		m.oldValue = func(ctx context.Context) (*Standard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Standard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStandard sets the old Standard of the mutation.
func withStandard(node *Standard) standardOption {
	return func(m *StandardMutation) {
		m.oldValue = func(context.Context) (*Standard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StandardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StandardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Standard entities.
func (m *StandardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StandardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StandardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Standard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *StandardMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *StandardMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *StandardMutation) ResetCode() {
	m.code = nil
}

// SetSubject sets the "subject" field.
func (m *StandardMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StandardMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *StandardMutation) ResetSubject() {
	m.subject = nil
}

// SetGrade sets the "grade" field.
func (m *StandardMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *StandardMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *StandardMutation) ResetGrade() {
	m.grade = nil
}

// SetStrand sets the "strand" field.
func (m *StandardMutation) SetStrand(s string) {
	m.strand = &s
}

// Strand returns the value of the "strand" field in the mutation.
func (m *StandardMutation) Strand() (r string, exists bool) {
	v := m.strand
	if v == nil {
		return
	}
	return *v, true
}

// OldStrand returns the old "strand" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldStrand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrand: %w", err)
	}
	return oldValue.Strand, nil
}

// ResetStrand resets all changes to the "strand" field.
func (m *StandardMutation) ResetStrand() {
	m.strand = nil
}

// SetTitle sets the "title" field.
func (m *StandardMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StandardMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *StandardMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[standard.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *StandardMutation) TitleCleared() bool {
	_, ok := m.clearedFields[standard.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *StandardMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, standard.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *StandardMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StandardMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StandardMutation) ResetDescription() {
	m.description = nil
}

// SetSubObjectives sets the "sub_objectives" field.
func (m *StandardMutation) SetSubObjectives(co []catalog.SubObjective) {
	m.sub_objectives = &co
	m.appendsub_objectives = nil
}

// SubObjectives returns the value of the "sub_objectives" field in the mutation.
func (m *StandardMutation) SubObjectives() (r []catalog.SubObjective, exists bool) {
	v := m.sub_objectives
	if v == nil {
		return
	}
	return *v, true
}

// OldSubObjectives returns the old "sub_objectives" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldSubObjectives(ctx context.Context) (v []catalog.SubObjective, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubObjectives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubObjectives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubObjectives: %w", err)
	}
	return oldValue.SubObjectives, nil
}

// AppendSubObjectives adds co to the "sub_objectives" field.
func (m *StandardMutation) AppendSubObjectives(co []catalog.SubObjective) {
	m.appendsub_objectives = append(m.appendsub_objectives, co...)
}

// AppendedSubObjectives returns the list of values that were appended to the "sub_objectives" field in this mutation.
func (m *StandardMutation) AppendedSubObjectives() ([]catalog.SubObjective, bool) {
	if len(m.appendsub_objectives) == 0 {
		return nil, false
	}
	return m.appendsub_objectives, true
}

// ClearSubObjectives clears the value of the "sub_objectives" field.
func (m *StandardMutation) ClearSubObjectives() {
	m.sub_objectives = nil
	m.appendsub_objectives = nil
	m.clearedFields[standard.FieldSubObjectives] = struct{}{}
}

// SubObjectivesCleared returns if the "sub_objectives" field was cleared in this mutation.
func (m *StandardMutation) SubObjectivesCleared() bool {
	_, ok := m.clearedFields[standard.FieldSubObjectives]
	return ok
}

// ResetSubObjectives resets all changes to the "sub_objectives" field.
func (m *StandardMutation) ResetSubObjectives() {
	m.sub_objectives = nil
	m.appendsub_objectives = nil
	delete(m.clearedFields, standard.FieldSubObjectives)
}

// SetPrerequisites sets the "prerequisites" field.
func (m *StandardMutation) SetPrerequisites(s []string) {
	m.prerequisites = &s
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *StandardMutation) Prerequisites() (r []string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldPrerequisites(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds s to the "prerequisites" field.
func (m *StandardMutation) AppendPrerequisites(s []string) {
	m.appendprerequisites = append(m.appendprerequisites, s...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *StandardMutation) AppendedPrerequisites() ([]string, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *StandardMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	m.clearedFields[standard.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *StandardMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[standard.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *StandardMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	delete(m.clearedFields, standard.FieldPrerequisites)
}

// SetConnections sets the "connections" field.
func (m *StandardMutation) SetConnections(s []string) {
	m.connections = &s
	m.appendconnections = nil
}

// Connections returns the value of the "connections" field in the mutation.
func (m *StandardMutation) Connections() (r []string, exists bool) {
	v := m.connections
	if v == nil {
		return
	}
	return *v, true
}

// OldConnections returns the old "connections" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldConnections(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnections: %w", err)
	}
	return oldValue.Connections, nil
}

// AppendConnections adds s to the "connections" field.
func (m *StandardMutation) AppendConnections(s []string) {
	m.appendconnections = append(m.appendconnections, s...)
}

// AppendedConnections returns the list of values that were appended to the "connections" field in this mutation.
func (m *StandardMutation) AppendedConnections() ([]string, bool) {
	if len(m.appendconnections) == 0 {
		return nil, false
	}
	return m.appendconnections, true
}

// ClearConnections clears the value of the "connections" field.
func (m *StandardMutation) ClearConnections() {
	m.connections = nil
	m.appendconnections = nil
	m.clearedFields[standard.FieldConnections] = struct{}{}
}

// ConnectionsCleared returns if the "connections" field was cleared in this mutation.
func (m *StandardMutation) ConnectionsCleared() bool {
	_, ok := m.clearedFields[standard.FieldConnections]
	return ok
}

// ResetConnections resets all changes to the "connections" field.
func (m *StandardMutation) ResetConnections() {
	m.connections = nil
	m.appendconnections = nil
	delete(m.clearedFields, standard.FieldConnections)
}

// SetKeyTerms sets the "key_terms" field.
func (m *StandardMutation) SetKeyTerms(s []string) {
	m.key_terms = &s
	m.appendkey_terms = nil
}

// KeyTerms returns the value of the "key_terms" field in the mutation.
func (m *StandardMutation) KeyTerms() (r []string, exists bool) {
	v := m.key_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyTerms returns the old "key_terms" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldKeyTerms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyTerms: %w", err)
	}
	return oldValue.KeyTerms, nil
}

// AppendKeyTerms adds s to the "key_terms" field.
func (m *StandardMutation) AppendKeyTerms(s []string) {
	m.appendkey_terms = append(m.appendkey_terms, s...)
}

// AppendedKeyTerms returns the list of values that were appended to the "key_terms" field in this mutation.
func (m *StandardMutation) AppendedKeyTerms() ([]string, bool) {
	if len(m.appendkey_terms) == 0 {
		return nil, false
	}
	return m.appendkey_terms, true
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (m *StandardMutation) ClearKeyTerms() {
	m.key_terms = nil
	m.appendkey_terms = nil
	m.clearedFields[standard.FieldKeyTerms] = struct{}{}
}

// KeyTermsCleared returns if the "key_terms" field was cleared in this mutation.
func (m *StandardMutation) KeyTermsCleared() bool {
	_, ok := m.clearedFields[standard.FieldKeyTerms]
	return ok
}

// ResetKeyTerms resets all changes to the "key_terms" field.
func (m *StandardMutation) ResetKeyTerms() {
	m.key_terms = nil
	m.appendkey_terms = nil
	delete(m.clearedFields, standard.FieldKeyTerms)
}

// SetDifficulty sets the "difficulty" field.
func (m *StandardMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *StandardMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *StandardMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetCognitiveComplexity sets the "cognitive_complexity" field.
func (m *StandardMutation) SetCognitiveComplexity(s string) {
	m.cognitive_complexity = &s
}

// CognitiveComplexity returns the value of the "cognitive_complexity" field in the mutation.
func (m *StandardMutation) CognitiveComplexity() (r string, exists bool) {
	v := m.cognitive_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveComplexity returns the old "cognitive_complexity" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldCognitiveComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveComplexity: %w", err)
	}
	return oldValue.CognitiveComplexity, nil
}

// ResetCognitiveComplexity resets all changes to the "cognitive_complexity" field.
func (m *StandardMutation) ResetCognitiveComplexity() {
	m.cognitive_complexity = nil
}

// SetSourceDocument sets the "source_document" field.
func (m *StandardMutation) SetSourceDocument(s string) {
	m.source_document = &s
}

// SourceDocument returns the value of the "source_document" field in the mutation.
func (m *StandardMutation) SourceDocument() (r string, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocument returns the old "source_document" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldSourceDocument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocument: %w", err)
	}
	return oldValue.SourceDocument, nil
}

// ClearSourceDocument clears the value of the "source_document" field.
func (m *StandardMutation) ClearSourceDocument() {
	m.source_document = nil
	m.clearedFields[standard.FieldSourceDocument] = struct{}{}
}

// SourceDocumentCleared returns if the "source_document" field was cleared in this mutation.
func (m *StandardMutation) SourceDocumentCleared() bool {
	_, ok := m.clearedFields[standard.FieldSourceDocument]
	return ok
}

// ResetSourceDocument resets all changes to the "source_document" field.
func (m *StandardMutation) ResetSourceDocument() {
	m.source_document = nil
	delete(m.clearedFields, standard.FieldSourceDocument)
}

// SetInsertionOrder sets the "insertion_order" field.
func (m *StandardMutation) SetInsertionOrder(i int64) {
	m.insertion_order = &i
	m.addinsertion_order = nil
}

// InsertionOrder returns the value of the "insertion_order" field in the mutation.
func (m *StandardMutation) InsertionOrder() (r int64, exists bool) {
	v := m.insertion_order
	if v == nil {
		return
	}
	return *v, true
}

// OldInsertionOrder returns the old "insertion_order" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldInsertionOrder(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsertionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsertionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsertionOrder: %w", err)
	}
	return oldValue.InsertionOrder, nil
}

// AddInsertionOrder adds i to the "insertion_order" field.
func (m *StandardMutation) AddInsertionOrder(i int64) {
	if m.addinsertion_order != nil {
		*m.addinsertion_order += i
	} else {
		m.addinsertion_order = &i
	}
}

// AddedInsertionOrder returns the value that was added to the "insertion_order" field in this mutation.
func (m *StandardMutation) AddedInsertionOrder() (r int64, exists bool) {
	v := m.addinsertion_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetInsertionOrder resets all changes to the "insertion_order" field.
func (m *StandardMutation) ResetInsertionOrder() {
	m.insertion_order = nil
	m.addinsertion_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StandardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StandardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StandardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StandardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StandardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Standard entity.
// If the Standard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StandardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the AssessmentItem entity by ids.
func (m *StandardMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the AssessmentItem entity.
func (m *StandardMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the AssessmentItem entity was cleared.
func (m *StandardMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the AssessmentItem entity by IDs.
func (m *StandardMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the AssessmentItem entity.
func (m *StandardMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *StandardMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *StandardMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by ids.
func (m *StandardMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the AssessmentAttempt entity.
func (m *StandardMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the AssessmentAttempt entity was cleared.
func (m *StandardMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the AssessmentAttempt entity by IDs.
func (m *StandardMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the AssessmentAttempt entity.
func (m *StandardMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *StandardMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *StandardMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the StandardMutation builder.
func (m *StandardMutation) Where(ps ...predicate.Standard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StandardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StandardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Standard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StandardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StandardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Standard).
func (m *StandardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StandardMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.code != nil {
		fields = append(fields, standard.FieldCode)
	}
	if m.subject != nil {
		fields = append(fields, standard.FieldSubject)
	}
	if m.grade != nil {
		fields = append(fields, standard.FieldGrade)
	}
	if m.strand != nil {
		fields = append(fields, standard.FieldStrand)
	}
	if m.title != nil {
		fields = append(fields, standard.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, standard.FieldDescription)
	}
	if m.sub_objectives != nil {
		fields = append(fields, standard.FieldSubObjectives)
	}
	if m.prerequisites != nil {
		fields = append(fields, standard.FieldPrerequisites)
	}
	if m.connections != nil {
		fields = append(fields, standard.FieldConnections)
	}
	if m.key_terms != nil {
		fields = append(fields, standard.FieldKeyTerms)
	}
	if m.difficulty != nil {
		fields = append(fields, standard.FieldDifficulty)
	}
	if m.cognitive_complexity != nil {
		fields = append(fields, standard.FieldCognitiveComplexity)
	}
	if m.source_document != nil {
		fields = append(fields, standard.FieldSourceDocument)
	}
	if m.insertion_order != nil {
		fields = append(fields, standard.FieldInsertionOrder)
	}
	if m.created_at != nil {
		fields = append(fields, standard.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, standard.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StandardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case standard.FieldCode:
		return m.Code()
	case standard.FieldSubject:
		return m.Subject()
	case standard.FieldGrade:
		return m.Grade()
	case standard.FieldStrand:
		return m.Strand()
	case standard.FieldTitle:
		return m.Title()
	case standard.FieldDescription:
		return m.Description()
	case standard.FieldSubObjectives:
		return m.SubObjectives()
	case standard.FieldPrerequisites:
		return m.Prerequisites()
	case standard.FieldConnections:
		return m.Connections()
	case standard.FieldKeyTerms:
		return m.KeyTerms()
	case standard.FieldDifficulty:
		return m.Difficulty()
	case standard.FieldCognitiveComplexity:
		return m.CognitiveComplexity()
	case standard.FieldSourceDocument:
		return m.SourceDocument()
	case standard.FieldInsertionOrder:
		return m.InsertionOrder()
	case standard.FieldCreatedAt:
		return m.CreatedAt()
	case standard.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StandardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case standard.FieldCode:
		return m.OldCode(ctx)
	case standard.FieldSubject:
		return m.OldSubject(ctx)
	case standard.FieldGrade:
		return m.OldGrade(ctx)
	case standard.FieldStrand:
		return m.OldStrand(ctx)
	case standard.FieldTitle:
		return m.OldTitle(ctx)
	case standard.FieldDescription:
		return m.OldDescription(ctx)
	case standard.FieldSubObjectives:
		return m.OldSubObjectives(ctx)
	case standard.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	case standard.FieldConnections:
		return m.OldConnections(ctx)
	case standard.FieldKeyTerms:
		return m.OldKeyTerms(ctx)
	case standard.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case standard.FieldCognitiveComplexity:
		return m.OldCognitiveComplexity(ctx)
	case standard.FieldSourceDocument:
		return m.OldSourceDocument(ctx)
	case standard.FieldInsertionOrder:
		return m.OldInsertionOrder(ctx)
	case standard.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case standard.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Standard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case standard.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case standard.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case standard.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case standard.FieldStrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrand(v)
		return nil
	case standard.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case standard.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case standard.FieldSubObjectives:
		v, ok := value.([]catalog.SubObjective)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubObjectives(v)
		return nil
	case standard.FieldPrerequisites:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	case standard.FieldConnections:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnections(v)
		return nil
	case standard.FieldKeyTerms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyTerms(v)
		return nil
	case standard.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case standard.FieldCognitiveComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveComplexity(v)
		return nil
	case standard.FieldSourceDocument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocument(v)
		return nil
	case standard.FieldInsertionOrder:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsertionOrder(v)
		return nil
	case standard.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case standard.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Standard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StandardMutation) AddedFields() []string {
	var fields []string
	if m.addinsertion_order != nil {
		fields = append(fields, standard.FieldInsertionOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StandardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case standard.FieldInsertionOrder:
		return m.AddedInsertionOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case standard.FieldInsertionOrder:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInsertionOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Standard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StandardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(standard.FieldTitle) {
		fields = append(fields, standard.FieldTitle)
	}
	if m.FieldCleared(standard.FieldSubObjectives) {
		fields = append(fields, standard.FieldSubObjectives)
	}
	if m.FieldCleared(standard.FieldPrerequisites) {
		fields = append(fields, standard.FieldPrerequisites)
	}
	if m.FieldCleared(standard.FieldConnections) {
		fields = append(fields, standard.FieldConnections)
	}
	if m.FieldCleared(standard.FieldKeyTerms) {
		fields = append(fields, standard.FieldKeyTerms)
	}
	if m.FieldCleared(standard.FieldSourceDocument) {
		fields = append(fields, standard.FieldSourceDocument)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StandardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StandardMutation) ClearField(name string) error {
	switch name {
	case standard.FieldTitle:
		m.ClearTitle()
		return nil
	case standard.FieldSubObjectives:
		m.ClearSubObjectives()
		return nil
	case standard.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	case standard.FieldConnections:
		m.ClearConnections()
		return nil
	case standard.FieldKeyTerms:
		m.ClearKeyTerms()
		return nil
	case standard.FieldSourceDocument:
		m.ClearSourceDocument()
		return nil
	}
	return fmt.Errorf("unknown Standard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StandardMutation) ResetField(name string) error {
	switch name {
	case standard.FieldCode:
		m.ResetCode()
		return nil
	case standard.FieldSubject:
		m.ResetSubject()
		return nil
	case standard.FieldGrade:
		m.ResetGrade()
		return nil
	case standard.FieldStrand:
		m.ResetStrand()
		return nil
	case standard.FieldTitle:
		m.ResetTitle()
		return nil
	case standard.FieldDescription:
		m.ResetDescription()
		return nil
	case standard.FieldSubObjectives:
		m.ResetSubObjectives()
		return nil
	case standard.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	case standard.FieldConnections:
		m.ResetConnections()
		return nil
	case standard.FieldKeyTerms:
		m.ResetKeyTerms()
		return nil
	case standard.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case standard.FieldCognitiveComplexity:
		m.ResetCognitiveComplexity()
		return nil
	case standard.FieldSourceDocument:
		m.ResetSourceDocument()
		return nil
	case standard.FieldInsertionOrder:
		m.ResetInsertionOrder()
		return nil
	case standard.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case standard.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Standard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StandardMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.items != nil {
		edges = append(edges, standard.EdgeItems)
	}
	if m.attempts != nil {
		edges = append(edges, standard.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StandardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case standard.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case standard.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StandardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, standard.EdgeItems)
	}
	if m.removedattempts != nil {
		edges = append(edges, standard.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StandardMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case standard.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case standard.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StandardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareditems {
		edges = append(edges, standard.EdgeItems)
	}
	if m.clearedattempts {
		edges = append(edges, standard.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StandardMutation) EdgeCleared(name string) bool {
	switch name {
	case standard.EdgeItems:
		return m.cleareditems
	case standard.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StandardMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Standard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StandardMutation) ResetEdge(name string) error {
	switch name {
	case standard.EdgeItems:
		m.ResetItems()
		return nil
	case standard.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Standard edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	grade           *string
	age             *int
	addage          *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	attempts        map[string]struct{}
	removedattempts map[string]struct{}
	clearedattempts bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetGrade sets the "grade" field.
func (m *UserMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *UserMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *UserMutation) ResetGrade() {
	m.grade = nil
}

// SetAge sets the "age" field.
func (m *UserMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *UserMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *UserMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *UserMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *UserMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[user.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *UserMutation) AgeCleared() bool {
	_, ok := m.clearedFields[user.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *UserMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, user.FieldAge)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by ids.
func (m *UserMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the AssessmentAttempt entity.
func (m *UserMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the AssessmentAttempt entity was cleared.
func (m *UserMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the AssessmentAttempt entity by IDs.
func (m *UserMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the AssessmentAttempt entity.
func (m *UserMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *UserMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *UserMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.grade != nil {
		fields = append(fields, user.FieldGrade)
	}
	if m.age != nil {
		fields = append(fields, user.FieldAge)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldGrade:
		return m.Grade()
	case user.FieldAge:
		return m.Age()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldGrade:
		return m.OldGrade(ctx)
	case user.FieldAge:
		return m.OldAge(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case user.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, user.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldAge) {
		fields = append(fields, user.FieldAge)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldAge:
		m.ClearAge()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldGrade:
		m.ResetGrade()
		return nil
	case user.FieldAge:
		m.ResetAge()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, user.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, user.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, user.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
