// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/predicate"
)

// AssessmentAttemptDelete is the builder for deleting a AssessmentAttempt entity.
type AssessmentAttemptDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentAttemptMutation
}

// Where appends a list predicates to the AssessmentAttemptDelete builder.
func (_d *AssessmentAttemptDelete) Where(ps ...predicate.AssessmentAttempt) *AssessmentAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentattempt.Table, sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentAttemptDeleteOne is the builder for deleting a single AssessmentAttempt entity.
type AssessmentAttemptDeleteOne struct {
	_d *AssessmentAttemptDelete
}

// Where appends a list predicates to the AssessmentAttemptDelete builder.
func (_d *AssessmentAttemptDeleteOne) Where(ps ...predicate.AssessmentAttempt) *AssessmentAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
