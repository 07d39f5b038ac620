// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
)

// AssessmentAttemptCreate is the builder for creating a AssessmentAttempt entity.
type AssessmentAttemptCreate struct {
	config
	mutation *AssessmentAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentAttemptCreate) SetUserID(v string) *AssessmentAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *AssessmentAttemptCreate) SetItemID(v string) *AssessmentAttemptCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetStandardID sets the "standard_id" field.
func (_c *AssessmentAttemptCreate) SetStandardID(v string) *AssessmentAttemptCreate {
	_c.mutation.SetStandardID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentAttemptCreate) SetSequence(v int64) *AssessmentAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *AssessmentAttemptCreate) SetResponse(v string) *AssessmentAttemptCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AssessmentAttemptCreate) SetCorrect(v bool) *AssessmentAttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentAttemptCreate) SetScore(v float64) *AssessmentAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *AssessmentAttemptCreate) SetMaxScore(v float64) *AssessmentAttemptCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AssessmentAttemptCreate) SetFeedback(v string) *AssessmentAttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *AssessmentAttemptCreate) SetNillableFeedback(v *string) *AssessmentAttemptCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *AssessmentAttemptCreate) SetTimeSpentSeconds(v int) *AssessmentAttemptCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *AssessmentAttemptCreate) SetNillableTimeSpentSeconds(v *int) *AssessmentAttemptCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentAttemptCreate) SetTimestamp(v time.Time) *AssessmentAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentAttemptCreate) SetNillableTimestamp(v *time.Time) *AssessmentAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentAttemptCreate) SetID(v string) *AssessmentAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AssessmentAttemptCreate) SetUser(v *User) *AssessmentAttemptCreate {
	return _c.SetUserID(v.ID)
}

// SetItem sets the "item" edge to the AssessmentItem entity.
func (_c *AssessmentAttemptCreate) SetItem(v *AssessmentItem) *AssessmentAttemptCreate {
	return _c.SetItemID(v.ID)
}

// SetStandard sets the "standard" edge to the Standard entity.
func (_c *AssessmentAttemptCreate) SetStandard(v *Standard) *AssessmentAttemptCreate {
	return _c.SetStandardID(v.ID)
}

// Mutation returns the AssessmentAttemptMutation object of the builder.
func (_c *AssessmentAttemptCreate) Mutation() *AssessmentAttemptMutation {
	return _c.mutation
}

// Save creates the AssessmentAttempt in the database.
func (_c *AssessmentAttemptCreate) Save(ctx context.Context) (*AssessmentAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentAttemptCreate) SaveX(ctx context.Context) *AssessmentAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentAttemptCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := assessmentattempt.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssessmentAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessmentattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AssessmentAttempt.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := assessmentattempt.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentAttempt.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StandardID(); !ok {
		return &ValidationError{Name: "standard_id", err: errors.New(`ent: missing required field "AssessmentAttempt.standard_id"`)}
	}
	if v, ok := _c.mutation.StandardID(); ok {
		if err := assessmentattempt.StandardIDValidator(v); err != nil {
			return &ValidationError{Name: "standard_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentAttempt.standard_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "AssessmentAttempt.response"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AssessmentAttempt.correct"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentAttempt.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "AssessmentAttempt.max_score"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "AssessmentAttempt.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentAttempt.timestamp"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := assessmentattempt.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "AssessmentAttempt.id": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "AssessmentAttempt.user"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "AssessmentAttempt.item"`)}
	}
	if len(_c.mutation.StandardIDs()) == 0 {
		return &ValidationError{Name: "standard", err: errors.New(`ent: missing required edge "AssessmentAttempt.standard"`)}
	}
	return nil
}

func (_c *AssessmentAttemptCreate) sqlSave(ctx context.Context) (*AssessmentAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AssessmentAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentAttemptCreate) createSpec() (*AssessmentAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentattempt.Table, sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(assessmentattempt.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(assessmentattempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(assessmentattempt.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(assessmentattempt.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(assessmentattempt.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentattempt.UserTable,
			Columns: []string{assessmentattempt.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentattempt.ItemTable,
			Columns: []string{assessmentattempt.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StandardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentattempt.StandardTable,
			Columns: []string{assessmentattempt.StandardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(standard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StandardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssessmentAttemptCreateBulk is the builder for creating many AssessmentAttempt entities in bulk.
type AssessmentAttemptCreateBulk struct {
	config
	err      error
	builders []*AssessmentAttemptCreate
}

// Save creates the AssessmentAttempt entities in the database.
func (_c *AssessmentAttemptCreateBulk) Save(ctx context.Context) ([]*AssessmentAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentAttemptCreateBulk) SaveX(ctx context.Context) []*AssessmentAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
