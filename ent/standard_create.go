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
	"github.com/soltrack/soltrack/internal/catalog"
)

// StandardCreate is the builder for creating a Standard entity.
type StandardCreate struct {
	config
	mutation *StandardMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *StandardCreate) SetCode(v string) *StandardCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StandardCreate) SetSubject(v string) *StandardCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *StandardCreate) SetGrade(v string) *StandardCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetStrand sets the "strand" field.
func (_c *StandardCreate) SetStrand(v string) *StandardCreate {
	_c.mutation.SetStrand(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StandardCreate) SetTitle(v string) *StandardCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *StandardCreate) SetNillableTitle(v *string) *StandardCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *StandardCreate) SetDescription(v string) *StandardCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSubObjectives sets the "sub_objectives" field.
func (_c *StandardCreate) SetSubObjectives(v []catalog.SubObjective) *StandardCreate {
	_c.mutation.SetSubObjectives(v)
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *StandardCreate) SetPrerequisites(v []string) *StandardCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetConnections sets the "connections" field.
func (_c *StandardCreate) SetConnections(v []string) *StandardCreate {
	_c.mutation.SetConnections(v)
	return _c
}

// SetKeyTerms sets the "key_terms" field.
func (_c *StandardCreate) SetKeyTerms(v []string) *StandardCreate {
	_c.mutation.SetKeyTerms(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *StandardCreate) SetDifficulty(v string) *StandardCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *StandardCreate) SetNillableDifficulty(v *string) *StandardCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCognitiveComplexity sets the "cognitive_complexity" field.
func (_c *StandardCreate) SetCognitiveComplexity(v string) *StandardCreate {
	_c.mutation.SetCognitiveComplexity(v)
	return _c
}

// SetNillableCognitiveComplexity sets the "cognitive_complexity" field if the given value is not nil.
func (_c *StandardCreate) SetNillableCognitiveComplexity(v *string) *StandardCreate {
	if v != nil {
		_c.SetCognitiveComplexity(*v)
	}
	return _c
}

// SetSourceDocument sets the "source_document" field.
func (_c *StandardCreate) SetSourceDocument(v string) *StandardCreate {
	_c.mutation.SetSourceDocument(v)
	return _c
}

// SetNillableSourceDocument sets the "source_document" field if the given value is not nil.
func (_c *StandardCreate) SetNillableSourceDocument(v *string) *StandardCreate {
	if v != nil {
		_c.SetSourceDocument(*v)
	}
	return _c
}

// SetInsertionOrder sets the "insertion_order" field.
func (_c *StandardCreate) SetInsertionOrder(v int64) *StandardCreate {
	_c.mutation.SetInsertionOrder(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StandardCreate) SetCreatedAt(v time.Time) *StandardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StandardCreate) SetNillableCreatedAt(v *time.Time) *StandardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StandardCreate) SetUpdatedAt(v time.Time) *StandardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StandardCreate) SetNillableUpdatedAt(v *time.Time) *StandardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StandardCreate) SetID(v string) *StandardCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddItemIDs adds the "items" edge to the AssessmentItem entity by IDs.
func (_c *StandardCreate) AddItemIDs(ids ...string) *StandardCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the AssessmentItem entity.
func (_c *StandardCreate) AddItems(v ...*AssessmentItem) *StandardCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by IDs.
func (_c *StandardCreate) AddAttemptIDs(ids ...string) *StandardCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the AssessmentAttempt entity.
func (_c *StandardCreate) AddAttempts(v ...*AssessmentAttempt) *StandardCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the StandardMutation object of the builder.
func (_c *StandardCreate) Mutation() *StandardMutation {
	return _c.mutation
}

// Save creates the Standard in the database.
func (_c *StandardCreate) Save(ctx context.Context) (*Standard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StandardCreate) SaveX(ctx context.Context) *Standard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StandardCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := standard.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.CognitiveComplexity(); !ok {
		v := standard.DefaultCognitiveComplexity
		_c.mutation.SetCognitiveComplexity(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := standard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := standard.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StandardCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Standard.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := standard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Standard.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Standard.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := standard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Standard.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Standard.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := standard.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Standard.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strand(); !ok {
		return &ValidationError{Name: "strand", err: errors.New(`ent: missing required field "Standard.strand"`)}
	}
	if v, ok := _c.mutation.Strand(); ok {
		if err := standard.StrandValidator(v); err != nil {
			return &ValidationError{Name: "strand", err: fmt.Errorf(`ent: validator failed for field "Standard.strand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Standard.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := standard.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Standard.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Standard.difficulty"`)}
	}
	if _, ok := _c.mutation.CognitiveComplexity(); !ok {
		return &ValidationError{Name: "cognitive_complexity", err: errors.New(`ent: missing required field "Standard.cognitive_complexity"`)}
	}
	if _, ok := _c.mutation.InsertionOrder(); !ok {
		return &ValidationError{Name: "insertion_order", err: errors.New(`ent: missing required field "Standard.insertion_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Standard.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Standard.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := standard.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Standard.id": %w`, err)}
		}
	}
	return nil
}

func (_c *StandardCreate) sqlSave(ctx context.Context) (*Standard, error) {
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
			return nil, fmt.Errorf("unexpected Standard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StandardCreate) createSpec() (*Standard, *sqlgraph.CreateSpec) {
	var (
		_node = &Standard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(standard.Table, sqlgraph.NewFieldSpec(standard.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(standard.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(standard.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(standard.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Strand(); ok {
		_spec.SetField(standard.FieldStrand, field.TypeString, value)
		_node.Strand = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(standard.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(standard.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SubObjectives(); ok {
		_spec.SetField(standard.FieldSubObjectives, field.TypeJSON, value)
		_node.SubObjectives = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(standard.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Connections(); ok {
		_spec.SetField(standard.FieldConnections, field.TypeJSON, value)
		_node.Connections = value
	}
	if value, ok := _c.mutation.KeyTerms(); ok {
		_spec.SetField(standard.FieldKeyTerms, field.TypeJSON, value)
		_node.KeyTerms = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(standard.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CognitiveComplexity(); ok {
		_spec.SetField(standard.FieldCognitiveComplexity, field.TypeString, value)
		_node.CognitiveComplexity = value
	}
	if value, ok := _c.mutation.SourceDocument(); ok {
		_spec.SetField(standard.FieldSourceDocument, field.TypeString, value)
		_node.SourceDocument = value
	}
	if value, ok := _c.mutation.InsertionOrder(); ok {
		_spec.SetField(standard.FieldInsertionOrder, field.TypeInt64, value)
		_node.InsertionOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(standard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(standard.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   standard.ItemsTable,
			Columns: []string{standard.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   standard.AttemptsTable,
			Columns: []string{standard.AttemptsColumn},
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

// StandardCreateBulk is the builder for creating many Standard entities in bulk.
type StandardCreateBulk struct {
	config
	err      error
	builders []*StandardCreate
}

// Save creates the Standard entities in the database.
func (_c *StandardCreateBulk) Save(ctx context.Context) ([]*Standard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Standard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StandardMutation)
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
func (_c *StandardCreateBulk) SaveX(ctx context.Context) []*Standard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
