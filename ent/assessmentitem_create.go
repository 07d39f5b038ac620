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
)

// AssessmentItemCreate is the builder for creating a AssessmentItem entity.
type AssessmentItemCreate struct {
	config
	mutation *AssessmentItemMutation
	hooks    []Hook
}

// SetStandardID sets the "standard_id" field.
func (_c *AssessmentItemCreate) SetStandardID(v string) *AssessmentItemCreate {
	_c.mutation.SetStandardID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *AssessmentItemCreate) SetItemType(v string) *AssessmentItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AssessmentItemCreate) SetDifficulty(v string) *AssessmentItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetDok sets the "dok" field.
func (_c *AssessmentItemCreate) SetDok(v int) *AssessmentItemCreate {
	_c.mutation.SetDok(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *AssessmentItemCreate) SetStem(v string) *AssessmentItemCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AssessmentItemCreate) SetPayload(v map[string]interface{}) *AssessmentItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentItemCreate) SetCreatedAt(v time.Time) *AssessmentItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentItemCreate) SetNillableCreatedAt(v *time.Time) *AssessmentItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentItemCreate) SetID(v string) *AssessmentItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStandard sets the "standard" edge to the Standard entity.
func (_c *AssessmentItemCreate) SetStandard(v *Standard) *AssessmentItemCreate {
	return _c.SetStandardID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by IDs.
func (_c *AssessmentItemCreate) AddAttemptIDs(ids ...string) *AssessmentItemCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the AssessmentAttempt entity.
func (_c *AssessmentItemCreate) AddAttempts(v ...*AssessmentAttempt) *AssessmentItemCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the AssessmentItemMutation object of the builder.
func (_c *AssessmentItemCreate) Mutation() *AssessmentItemMutation {
	return _c.mutation
}

// Save creates the AssessmentItem in the database.
func (_c *AssessmentItemCreate) Save(ctx context.Context) (*AssessmentItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentItemCreate) SaveX(ctx context.Context) *AssessmentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentItemCreate) check() error {
	if _, ok := _c.mutation.StandardID(); !ok {
		return &ValidationError{Name: "standard_id", err: errors.New(`ent: missing required field "AssessmentItem.standard_id"`)}
	}
	if v, ok := _c.mutation.StandardID(); ok {
		if err := assessmentitem.StandardIDValidator(v); err != nil {
			return &ValidationError{Name: "standard_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.standard_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "AssessmentItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := assessmentitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AssessmentItem.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := assessmentitem.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dok(); !ok {
		return &ValidationError{Name: "dok", err: errors.New(`ent: missing required field "AssessmentItem.dok"`)}
	}
	if v, ok := _c.mutation.Dok(); ok {
		if err := assessmentitem.DokValidator(v); err != nil {
			return &ValidationError{Name: "dok", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.dok": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "AssessmentItem.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := assessmentitem.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "AssessmentItem.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssessmentItem.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := assessmentitem.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "AssessmentItem.id": %w`, err)}
		}
	}
	if len(_c.mutation.StandardIDs()) == 0 {
		return &ValidationError{Name: "standard", err: errors.New(`ent: missing required edge "AssessmentItem.standard"`)}
	}
	return nil
}

func (_c *AssessmentItemCreate) sqlSave(ctx context.Context) (*AssessmentItem, error) {
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
			return nil, fmt.Errorf("unexpected AssessmentItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentItemCreate) createSpec() (*AssessmentItem, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentitem.Table, sqlgraph.NewFieldSpec(assessmentitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(assessmentitem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(assessmentitem.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Dok(); ok {
		_spec.SetField(assessmentitem.FieldDok, field.TypeInt, value)
		_node.Dok = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(assessmentitem.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(assessmentitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StandardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentitem.StandardTable,
			Columns: []string{assessmentitem.StandardColumn},
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
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentitem.AttemptsTable,
			Columns: []string{assessmentitem.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssessmentItemCreateBulk is the builder for creating many AssessmentItem entities in bulk.
type AssessmentItemCreateBulk struct {
	config
	err      error
	builders []*AssessmentItemCreate
}

// Save creates the AssessmentItem entities in the database.
func (_c *AssessmentItemCreateBulk) Save(ctx context.Context) ([]*AssessmentItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentItemMutation)
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
func (_c *AssessmentItemCreateBulk) SaveX(ctx context.Context) []*AssessmentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
