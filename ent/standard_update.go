// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/predicate"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/internal/catalog"
)

// StandardUpdate is the builder for updating Standard entities.
type StandardUpdate struct {
	config
	hooks    []Hook
	mutation *StandardMutation
}

// Where appends a list predicates to the StandardUpdate builder.
func (_u *StandardUpdate) Where(ps ...predicate.Standard) *StandardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *StandardUpdate) SetCode(v string) *StandardUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableCode(v *string) *StandardUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StandardUpdate) SetSubject(v string) *StandardUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableSubject(v *string) *StandardUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *StandardUpdate) SetGrade(v string) *StandardUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableGrade(v *string) *StandardUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetStrand sets the "strand" field.
func (_u *StandardUpdate) SetStrand(v string) *StandardUpdate {
	_u.mutation.SetStrand(v)
	return _u
}

// SetNillableStrand sets the "strand" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableStrand(v *string) *StandardUpdate {
	if v != nil {
		_u.SetStrand(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StandardUpdate) SetTitle(v string) *StandardUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableTitle(v *string) *StandardUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *StandardUpdate) ClearTitle() *StandardUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StandardUpdate) SetDescription(v string) *StandardUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableDescription(v *string) *StandardUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubObjectives sets the "sub_objectives" field.
func (_u *StandardUpdate) SetSubObjectives(v []catalog.SubObjective) *StandardUpdate {
	_u.mutation.SetSubObjectives(v)
	return _u
}

// AppendSubObjectives appends value to the "sub_objectives" field.
func (_u *StandardUpdate) AppendSubObjectives(v []catalog.SubObjective) *StandardUpdate {
	_u.mutation.AppendSubObjectives(v)
	return _u
}

// ClearSubObjectives clears the value of the "sub_objectives" field.
func (_u *StandardUpdate) ClearSubObjectives() *StandardUpdate {
	_u.mutation.ClearSubObjectives()
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *StandardUpdate) SetPrerequisites(v []string) *StandardUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *StandardUpdate) AppendPrerequisites(v []string) *StandardUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *StandardUpdate) ClearPrerequisites() *StandardUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetConnections sets the "connections" field.
func (_u *StandardUpdate) SetConnections(v []string) *StandardUpdate {
	_u.mutation.SetConnections(v)
	return _u
}

// AppendConnections appends value to the "connections" field.
func (_u *StandardUpdate) AppendConnections(v []string) *StandardUpdate {
	_u.mutation.AppendConnections(v)
	return _u
}

// ClearConnections clears the value of the "connections" field.
func (_u *StandardUpdate) ClearConnections() *StandardUpdate {
	_u.mutation.ClearConnections()
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *StandardUpdate) SetKeyTerms(v []string) *StandardUpdate {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *StandardUpdate) AppendKeyTerms(v []string) *StandardUpdate {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *StandardUpdate) ClearKeyTerms() *StandardUpdate {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StandardUpdate) SetDifficulty(v string) *StandardUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableDifficulty(v *string) *StandardUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveComplexity sets the "cognitive_complexity" field.
func (_u *StandardUpdate) SetCognitiveComplexity(v string) *StandardUpdate {
	_u.mutation.SetCognitiveComplexity(v)
	return _u
}

// SetNillableCognitiveComplexity sets the "cognitive_complexity" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableCognitiveComplexity(v *string) *StandardUpdate {
	if v != nil {
		_u.SetCognitiveComplexity(*v)
	}
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *StandardUpdate) SetSourceDocument(v string) *StandardUpdate {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetNillableSourceDocument sets the "source_document" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableSourceDocument(v *string) *StandardUpdate {
	if v != nil {
		_u.SetSourceDocument(*v)
	}
	return _u
}

// ClearSourceDocument clears the value of the "source_document" field.
func (_u *StandardUpdate) ClearSourceDocument() *StandardUpdate {
	_u.mutation.ClearSourceDocument()
	return _u
}

// SetInsertionOrder sets the "insertion_order" field.
func (_u *StandardUpdate) SetInsertionOrder(v int64) *StandardUpdate {
	_u.mutation.ResetInsertionOrder()
	_u.mutation.SetInsertionOrder(v)
	return _u
}

// SetNillableInsertionOrder sets the "insertion_order" field if the given value is not nil.
func (_u *StandardUpdate) SetNillableInsertionOrder(v *int64) *StandardUpdate {
	if v != nil {
		_u.SetInsertionOrder(*v)
	}
	return _u
}

// AddInsertionOrder adds value to the "insertion_order" field.
func (_u *StandardUpdate) AddInsertionOrder(v int64) *StandardUpdate {
	_u.mutation.AddInsertionOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardUpdate) SetUpdatedAt(v time.Time) *StandardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the AssessmentItem entity by IDs.
func (_u *StandardUpdate) AddItemIDs(ids ...string) *StandardUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AssessmentItem entity.
func (_u *StandardUpdate) AddItems(v ...*AssessmentItem) *StandardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by IDs.
func (_u *StandardUpdate) AddAttemptIDs(ids ...string) *StandardUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the AssessmentAttempt entity.
func (_u *StandardUpdate) AddAttempts(v ...*AssessmentAttempt) *StandardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the StandardMutation object of the builder.
func (_u *StandardUpdate) Mutation() *StandardMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the AssessmentItem entity.
func (_u *StandardUpdate) ClearItems() *StandardUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AssessmentItem entities by IDs.
func (_u *StandardUpdate) RemoveItemIDs(ids ...string) *StandardUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AssessmentItem entities.
func (_u *StandardUpdate) RemoveItems(v ...*AssessmentItem) *StandardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the AssessmentAttempt entity.
func (_u *StandardUpdate) ClearAttempts() *StandardUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to AssessmentAttempt entities by IDs.
func (_u *StandardUpdate) RemoveAttemptIDs(ids ...string) *StandardUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to AssessmentAttempt entities.
func (_u *StandardUpdate) RemoveAttempts(v ...*AssessmentAttempt) *StandardUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StandardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StandardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := standard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Standard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := standard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Standard.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := standard.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Standard.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strand(); ok {
		if err := standard.StrandValidator(v); err != nil {
			return &ValidationError{Name: "strand", err: fmt.Errorf(`ent: validator failed for field "Standard.strand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := standard.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Standard.description": %w`, err)}
		}
	}
	return nil
}

func (_u *StandardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standard.Table, standard.Columns, sqlgraph.NewFieldSpec(standard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(standard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(standard.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(standard.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strand(); ok {
		_spec.SetField(standard.FieldStrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(standard.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(standard.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(standard.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubObjectives(); ok {
		_spec.SetField(standard.FieldSubObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldSubObjectives, value)
		})
	}
	if _u.mutation.SubObjectivesCleared() {
		_spec.ClearField(standard.FieldSubObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(standard.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(standard.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Connections(); ok {
		_spec.SetField(standard.FieldConnections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConnections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldConnections, value)
		})
	}
	if _u.mutation.ConnectionsCleared() {
		_spec.ClearField(standard.FieldConnections, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(standard.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(standard.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(standard.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveComplexity(); ok {
		_spec.SetField(standard.FieldCognitiveComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(standard.FieldSourceDocument, field.TypeString, value)
	}
	if _u.mutation.SourceDocumentCleared() {
		_spec.ClearField(standard.FieldSourceDocument, field.TypeString)
	}
	if value, ok := _u.mutation.InsertionOrder(); ok {
		_spec.SetField(standard.FieldInsertionOrder, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInsertionOrder(); ok {
		_spec.AddField(standard.FieldInsertionOrder, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(standard.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StandardUpdateOne is the builder for updating a single Standard entity.
type StandardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StandardMutation
}

// SetCode sets the "code" field.
func (_u *StandardUpdateOne) SetCode(v string) *StandardUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableCode(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StandardUpdateOne) SetSubject(v string) *StandardUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableSubject(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *StandardUpdateOne) SetGrade(v string) *StandardUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableGrade(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetStrand sets the "strand" field.
func (_u *StandardUpdateOne) SetStrand(v string) *StandardUpdateOne {
	_u.mutation.SetStrand(v)
	return _u
}

// SetNillableStrand sets the "strand" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableStrand(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetStrand(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StandardUpdateOne) SetTitle(v string) *StandardUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableTitle(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *StandardUpdateOne) ClearTitle() *StandardUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StandardUpdateOne) SetDescription(v string) *StandardUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableDescription(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubObjectives sets the "sub_objectives" field.
func (_u *StandardUpdateOne) SetSubObjectives(v []catalog.SubObjective) *StandardUpdateOne {
	_u.mutation.SetSubObjectives(v)
	return _u
}

// AppendSubObjectives appends value to the "sub_objectives" field.
func (_u *StandardUpdateOne) AppendSubObjectives(v []catalog.SubObjective) *StandardUpdateOne {
	_u.mutation.AppendSubObjectives(v)
	return _u
}

// ClearSubObjectives clears the value of the "sub_objectives" field.
func (_u *StandardUpdateOne) ClearSubObjectives() *StandardUpdateOne {
	_u.mutation.ClearSubObjectives()
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *StandardUpdateOne) SetPrerequisites(v []string) *StandardUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *StandardUpdateOne) AppendPrerequisites(v []string) *StandardUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *StandardUpdateOne) ClearPrerequisites() *StandardUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetConnections sets the "connections" field.
func (_u *StandardUpdateOne) SetConnections(v []string) *StandardUpdateOne {
	_u.mutation.SetConnections(v)
	return _u
}

// AppendConnections appends value to the "connections" field.
func (_u *StandardUpdateOne) AppendConnections(v []string) *StandardUpdateOne {
	_u.mutation.AppendConnections(v)
	return _u
}

// ClearConnections clears the value of the "connections" field.
func (_u *StandardUpdateOne) ClearConnections() *StandardUpdateOne {
	_u.mutation.ClearConnections()
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *StandardUpdateOne) SetKeyTerms(v []string) *StandardUpdateOne {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *StandardUpdateOne) AppendKeyTerms(v []string) *StandardUpdateOne {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *StandardUpdateOne) ClearKeyTerms() *StandardUpdateOne {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StandardUpdateOne) SetDifficulty(v string) *StandardUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableDifficulty(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveComplexity sets the "cognitive_complexity" field.
func (_u *StandardUpdateOne) SetCognitiveComplexity(v string) *StandardUpdateOne {
	_u.mutation.SetCognitiveComplexity(v)
	return _u
}

// SetNillableCognitiveComplexity sets the "cognitive_complexity" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableCognitiveComplexity(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetCognitiveComplexity(*v)
	}
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *StandardUpdateOne) SetSourceDocument(v string) *StandardUpdateOne {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetNillableSourceDocument sets the "source_document" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableSourceDocument(v *string) *StandardUpdateOne {
	if v != nil {
		_u.SetSourceDocument(*v)
	}
	return _u
}

// ClearSourceDocument clears the value of the "source_document" field.
func (_u *StandardUpdateOne) ClearSourceDocument() *StandardUpdateOne {
	_u.mutation.ClearSourceDocument()
	return _u
}

// SetInsertionOrder sets the "insertion_order" field.
func (_u *StandardUpdateOne) SetInsertionOrder(v int64) *StandardUpdateOne {
	_u.mutation.ResetInsertionOrder()
	_u.mutation.SetInsertionOrder(v)
	return _u
}

// SetNillableInsertionOrder sets the "insertion_order" field if the given value is not nil.
func (_u *StandardUpdateOne) SetNillableInsertionOrder(v *int64) *StandardUpdateOne {
	if v != nil {
		_u.SetInsertionOrder(*v)
	}
	return _u
}

// AddInsertionOrder adds value to the "insertion_order" field.
func (_u *StandardUpdateOne) AddInsertionOrder(v int64) *StandardUpdateOne {
	_u.mutation.AddInsertionOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardUpdateOne) SetUpdatedAt(v time.Time) *StandardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the AssessmentItem entity by IDs.
func (_u *StandardUpdateOne) AddItemIDs(ids ...string) *StandardUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AssessmentItem entity.
func (_u *StandardUpdateOne) AddItems(v ...*AssessmentItem) *StandardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the AssessmentAttempt entity by IDs.
func (_u *StandardUpdateOne) AddAttemptIDs(ids ...string) *StandardUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the AssessmentAttempt entity.
func (_u *StandardUpdateOne) AddAttempts(v ...*AssessmentAttempt) *StandardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the StandardMutation object of the builder.
func (_u *StandardUpdateOne) Mutation() *StandardMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the AssessmentItem entity.
func (_u *StandardUpdateOne) ClearItems() *StandardUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AssessmentItem entities by IDs.
func (_u *StandardUpdateOne) RemoveItemIDs(ids ...string) *StandardUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AssessmentItem entities.
func (_u *StandardUpdateOne) RemoveItems(v ...*AssessmentItem) *StandardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the AssessmentAttempt entity.
func (_u *StandardUpdateOne) ClearAttempts() *StandardUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to AssessmentAttempt entities by IDs.
func (_u *StandardUpdateOne) RemoveAttemptIDs(ids ...string) *StandardUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to AssessmentAttempt entities.
func (_u *StandardUpdateOne) RemoveAttempts(v ...*AssessmentAttempt) *StandardUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the StandardUpdate builder.
func (_u *StandardUpdateOne) Where(ps ...predicate.Standard) *StandardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StandardUpdateOne) Select(field string, fields ...string) *StandardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Standard entity.
func (_u *StandardUpdateOne) Save(ctx context.Context) (*Standard, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardUpdateOne) SaveX(ctx context.Context) *Standard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StandardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := standard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Standard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := standard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Standard.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := standard.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Standard.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strand(); ok {
		if err := standard.StrandValidator(v); err != nil {
			return &ValidationError{Name: "strand", err: fmt.Errorf(`ent: validator failed for field "Standard.strand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := standard.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Standard.description": %w`, err)}
		}
	}
	return nil
}

func (_u *StandardUpdateOne) sqlSave(ctx context.Context) (_node *Standard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standard.Table, standard.Columns, sqlgraph.NewFieldSpec(standard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Standard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, standard.FieldID)
		for _, f := range fields {
			if !standard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != standard.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(standard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(standard.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(standard.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strand(); ok {
		_spec.SetField(standard.FieldStrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(standard.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(standard.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(standard.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubObjectives(); ok {
		_spec.SetField(standard.FieldSubObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldSubObjectives, value)
		})
	}
	if _u.mutation.SubObjectivesCleared() {
		_spec.ClearField(standard.FieldSubObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(standard.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(standard.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Connections(); ok {
		_spec.SetField(standard.FieldConnections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConnections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldConnections, value)
		})
	}
	if _u.mutation.ConnectionsCleared() {
		_spec.ClearField(standard.FieldConnections, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(standard.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, standard.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(standard.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(standard.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveComplexity(); ok {
		_spec.SetField(standard.FieldCognitiveComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(standard.FieldSourceDocument, field.TypeString, value)
	}
	if _u.mutation.SourceDocumentCleared() {
		_spec.ClearField(standard.FieldSourceDocument, field.TypeString)
	}
	if value, ok := _u.mutation.InsertionOrder(); ok {
		_spec.SetField(standard.FieldInsertionOrder, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInsertionOrder(); ok {
		_spec.AddField(standard.FieldInsertionOrder, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(standard.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Standard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
