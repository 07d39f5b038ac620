// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/predicate"
)

// AssessmentAttemptUpdate is the builder for updating AssessmentAttempt entities.
type AssessmentAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentAttemptMutation
}

// Where appends a list predicates to the AssessmentAttemptUpdate builder.
func (_u *AssessmentAttemptUpdate) Where(ps ...predicate.AssessmentAttempt) *AssessmentAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AssessmentAttemptMutation object of the builder.
func (_u *AssessmentAttemptUpdate) Mutation() *AssessmentAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentAttemptUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.user"`)
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.item"`)
	}
	if _u.mutation.StandardCleared() && len(_u.mutation.StandardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.standard"`)
	}
	return nil
}

func (_u *AssessmentAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentattempt.Table, assessmentattempt.Columns, sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(assessmentattempt.FieldFeedback, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentAttemptUpdateOne is the builder for updating a single AssessmentAttempt entity.
type AssessmentAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentAttemptMutation
}

// Mutation returns the AssessmentAttemptMutation object of the builder.
func (_u *AssessmentAttemptUpdateOne) Mutation() *AssessmentAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentAttemptUpdate builder.
func (_u *AssessmentAttemptUpdateOne) Where(ps ...predicate.AssessmentAttempt) *AssessmentAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentAttemptUpdateOne) Select(field string, fields ...string) *AssessmentAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentAttempt entity.
func (_u *AssessmentAttemptUpdateOne) Save(ctx context.Context) (*AssessmentAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentAttemptUpdateOne) SaveX(ctx context.Context) *AssessmentAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentAttemptUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.user"`)
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.item"`)
	}
	if _u.mutation.StandardCleared() && len(_u.mutation.StandardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentAttempt.standard"`)
	}
	return nil
}

func (_u *AssessmentAttemptUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentattempt.Table, assessmentattempt.Columns, sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentattempt.FieldID)
		for _, f := range fields {
			if !assessmentattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(assessmentattempt.FieldFeedback, field.TypeString)
	}
	_node = &AssessmentAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
