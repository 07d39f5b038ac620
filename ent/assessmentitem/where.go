// Code generated by ent, DO NOT EDIT.

package assessmentitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/soltrack/soltrack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContainsFold(FieldID, id))
}

// StandardID applies equality check predicate on the "standard_id" field. It's identical to StandardIDEQ.
func StandardID(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldStandardID, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldItemType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldDifficulty, v))
}

// Dok applies equality check predicate on the "dok" field. It's identical to DokEQ.
func Dok(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldDok, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldStem, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldCreatedAt, v))
}

// StandardIDEQ applies the EQ predicate on the "standard_id" field.
func StandardIDEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldStandardID, v))
}

// StandardIDNEQ applies the NEQ predicate on the "standard_id" field.
func StandardIDNEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldStandardID, v))
}

// StandardIDIn applies the In predicate on the "standard_id" field.
func StandardIDIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldStandardID, vs...))
}

// StandardIDNotIn applies the NotIn predicate on the "standard_id" field.
func StandardIDNotIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldStandardID, vs...))
}

// StandardIDGT applies the GT predicate on the "standard_id" field.
func StandardIDGT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldStandardID, v))
}

// StandardIDGTE applies the GTE predicate on the "standard_id" field.
func StandardIDGTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldStandardID, v))
}

// StandardIDLT applies the LT predicate on the "standard_id" field.
func StandardIDLT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldStandardID, v))
}

// StandardIDLTE applies the LTE predicate on the "standard_id" field.
func StandardIDLTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldStandardID, v))
}

// StandardIDContains applies the Contains predicate on the "standard_id" field.
func StandardIDContains(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContains(FieldStandardID, v))
}

// StandardIDHasPrefix applies the HasPrefix predicate on the "standard_id" field.
func StandardIDHasPrefix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasPrefix(FieldStandardID, v))
}

// StandardIDHasSuffix applies the HasSuffix predicate on the "standard_id" field.
func StandardIDHasSuffix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasSuffix(FieldStandardID, v))
}

// StandardIDEqualFold applies the EqualFold predicate on the "standard_id" field.
func StandardIDEqualFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEqualFold(FieldStandardID, v))
}

// StandardIDContainsFold applies the ContainsFold predicate on the "standard_id" field.
func StandardIDContainsFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContainsFold(FieldStandardID, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContainsFold(FieldItemType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContainsFold(FieldDifficulty, v))
}

// DokEQ applies the EQ predicate on the "dok" field.
func DokEQ(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldDok, v))
}

// DokNEQ applies the NEQ predicate on the "dok" field.
func DokNEQ(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldDok, v))
}

// DokIn applies the In predicate on the "dok" field.
func DokIn(vs ...int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldDok, vs...))
}

// DokNotIn applies the NotIn predicate on the "dok" field.
func DokNotIn(vs ...int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldDok, vs...))
}

// DokGT applies the GT predicate on the "dok" field.
func DokGT(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldDok, v))
}

// DokGTE applies the GTE predicate on the "dok" field.
func DokGTE(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldDok, v))
}

// DokLT applies the LT predicate on the "dok" field.
func DokLT(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldDok, v))
}

// DokLTE applies the LTE predicate on the "dok" field.
func DokLTE(v int) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldDok, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldContainsFold(FieldStem, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStandard applies the HasEdge predicate on the "standard" edge.
func HasStandard() predicate.AssessmentItem {
	return predicate.AssessmentItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StandardTable, StandardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandardWith applies the HasEdge predicate on the "standard" edge with a given conditions (other predicates).
func HasStandardWith(preds ...predicate.Standard) predicate.AssessmentItem {
	return predicate.AssessmentItem(func(s *sql.Selector) {
		step := newStandardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.AssessmentItem {
	return predicate.AssessmentItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.AssessmentAttempt) predicate.AssessmentItem {
	return predicate.AssessmentItem(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentItem) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentItem) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentItem) predicate.AssessmentItem {
	return predicate.AssessmentItem(sql.NotPredicates(p))
}
