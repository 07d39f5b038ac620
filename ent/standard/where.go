// Code generated by ent, DO NOT EDIT.

package standard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/soltrack/soltrack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCode, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldGrade, v))
}

// Strand applies equality check predicate on the "strand" field. It's identical to StrandEQ.
func Strand(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldStrand, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldDescription, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldDifficulty, v))
}

// CognitiveComplexity applies equality check predicate on the "cognitive_complexity" field. It's identical to CognitiveComplexityEQ.
func CognitiveComplexity(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCognitiveComplexity, v))
}

// SourceDocument applies equality check predicate on the "source_document" field. It's identical to SourceDocumentEQ.
func SourceDocument(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldSourceDocument, v))
}

// InsertionOrder applies equality check predicate on the "insertion_order" field. It's identical to InsertionOrderEQ.
func InsertionOrder(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldInsertionOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldCode, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldGrade, v))
}

// StrandEQ applies the EQ predicate on the "strand" field.
func StrandEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldStrand, v))
}

// StrandNEQ applies the NEQ predicate on the "strand" field.
func StrandNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldStrand, v))
}

// StrandIn applies the In predicate on the "strand" field.
func StrandIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldStrand, vs...))
}

// StrandNotIn applies the NotIn predicate on the "strand" field.
func StrandNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldStrand, vs...))
}

// StrandGT applies the GT predicate on the "strand" field.
func StrandGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldStrand, v))
}

// StrandGTE applies the GTE predicate on the "strand" field.
func StrandGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldStrand, v))
}

// StrandLT applies the LT predicate on the "strand" field.
func StrandLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldStrand, v))
}

// StrandLTE applies the LTE predicate on the "strand" field.
func StrandLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldStrand, v))
}

// StrandContains applies the Contains predicate on the "strand" field.
func StrandContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldStrand, v))
}

// StrandHasPrefix applies the HasPrefix predicate on the "strand" field.
func StrandHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldStrand, v))
}

// StrandHasSuffix applies the HasSuffix predicate on the "strand" field.
func StrandHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldStrand, v))
}

// StrandEqualFold applies the EqualFold predicate on the "strand" field.
func StrandEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldStrand, v))
}

// StrandContainsFold applies the ContainsFold predicate on the "strand" field.
func StrandContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldStrand, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldDescription, v))
}

// SubObjectivesIsNil applies the IsNil predicate on the "sub_objectives" field.
func SubObjectivesIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldSubObjectives))
}

// SubObjectivesNotNil applies the NotNil predicate on the "sub_objectives" field.
func SubObjectivesNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldSubObjectives))
}

// PrerequisitesIsNil applies the IsNil predicate on the "prerequisites" field.
func PrerequisitesIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldPrerequisites))
}

// PrerequisitesNotNil applies the NotNil predicate on the "prerequisites" field.
func PrerequisitesNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldPrerequisites))
}

// ConnectionsIsNil applies the IsNil predicate on the "connections" field.
func ConnectionsIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldConnections))
}

// ConnectionsNotNil applies the NotNil predicate on the "connections" field.
func ConnectionsNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldConnections))
}

// KeyTermsIsNil applies the IsNil predicate on the "key_terms" field.
func KeyTermsIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldKeyTerms))
}

// KeyTermsNotNil applies the NotNil predicate on the "key_terms" field.
func KeyTermsNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldKeyTerms))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldDifficulty, v))
}

// CognitiveComplexityEQ applies the EQ predicate on the "cognitive_complexity" field.
func CognitiveComplexityEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCognitiveComplexity, v))
}

// CognitiveComplexityNEQ applies the NEQ predicate on the "cognitive_complexity" field.
func CognitiveComplexityNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldCognitiveComplexity, v))
}

// CognitiveComplexityIn applies the In predicate on the "cognitive_complexity" field.
func CognitiveComplexityIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldCognitiveComplexity, vs...))
}

// CognitiveComplexityNotIn applies the NotIn predicate on the "cognitive_complexity" field.
func CognitiveComplexityNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldCognitiveComplexity, vs...))
}

// CognitiveComplexityGT applies the GT predicate on the "cognitive_complexity" field.
func CognitiveComplexityGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldCognitiveComplexity, v))
}

// CognitiveComplexityGTE applies the GTE predicate on the "cognitive_complexity" field.
func CognitiveComplexityGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldCognitiveComplexity, v))
}

// CognitiveComplexityLT applies the LT predicate on the "cognitive_complexity" field.
func CognitiveComplexityLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldCognitiveComplexity, v))
}

// CognitiveComplexityLTE applies the LTE predicate on the "cognitive_complexity" field.
func CognitiveComplexityLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldCognitiveComplexity, v))
}

// CognitiveComplexityContains applies the Contains predicate on the "cognitive_complexity" field.
func CognitiveComplexityContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldCognitiveComplexity, v))
}

// CognitiveComplexityHasPrefix applies the HasPrefix predicate on the "cognitive_complexity" field.
func CognitiveComplexityHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldCognitiveComplexity, v))
}

// CognitiveComplexityHasSuffix applies the HasSuffix predicate on the "cognitive_complexity" field.
func CognitiveComplexityHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldCognitiveComplexity, v))
}

// CognitiveComplexityEqualFold applies the EqualFold predicate on the "cognitive_complexity" field.
func CognitiveComplexityEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldCognitiveComplexity, v))
}

// CognitiveComplexityContainsFold applies the ContainsFold predicate on the "cognitive_complexity" field.
func CognitiveComplexityContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldCognitiveComplexity, v))
}

// SourceDocumentEQ applies the EQ predicate on the "source_document" field.
func SourceDocumentEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldSourceDocument, v))
}

// SourceDocumentNEQ applies the NEQ predicate on the "source_document" field.
func SourceDocumentNEQ(v string) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldSourceDocument, v))
}

// SourceDocumentIn applies the In predicate on the "source_document" field.
func SourceDocumentIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldSourceDocument, vs...))
}

// SourceDocumentNotIn applies the NotIn predicate on the "source_document" field.
func SourceDocumentNotIn(vs ...string) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldSourceDocument, vs...))
}

// SourceDocumentGT applies the GT predicate on the "source_document" field.
func SourceDocumentGT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldSourceDocument, v))
}

// SourceDocumentGTE applies the GTE predicate on the "source_document" field.
func SourceDocumentGTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldSourceDocument, v))
}

// SourceDocumentLT applies the LT predicate on the "source_document" field.
func SourceDocumentLT(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldSourceDocument, v))
}

// SourceDocumentLTE applies the LTE predicate on the "source_document" field.
func SourceDocumentLTE(v string) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldSourceDocument, v))
}

// SourceDocumentContains applies the Contains predicate on the "source_document" field.
func SourceDocumentContains(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContains(FieldSourceDocument, v))
}

// SourceDocumentHasPrefix applies the HasPrefix predicate on the "source_document" field.
func SourceDocumentHasPrefix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasPrefix(FieldSourceDocument, v))
}

// SourceDocumentHasSuffix applies the HasSuffix predicate on the "source_document" field.
func SourceDocumentHasSuffix(v string) predicate.Standard {
	return predicate.Standard(sql.FieldHasSuffix(FieldSourceDocument, v))
}

// SourceDocumentIsNil applies the IsNil predicate on the "source_document" field.
func SourceDocumentIsNil() predicate.Standard {
	return predicate.Standard(sql.FieldIsNull(FieldSourceDocument))
}

// SourceDocumentNotNil applies the NotNil predicate on the "source_document" field.
func SourceDocumentNotNil() predicate.Standard {
	return predicate.Standard(sql.FieldNotNull(FieldSourceDocument))
}

// SourceDocumentEqualFold applies the EqualFold predicate on the "source_document" field.
func SourceDocumentEqualFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldEqualFold(FieldSourceDocument, v))
}

// SourceDocumentContainsFold applies the ContainsFold predicate on the "source_document" field.
func SourceDocumentContainsFold(v string) predicate.Standard {
	return predicate.Standard(sql.FieldContainsFold(FieldSourceDocument, v))
}

// InsertionOrderEQ applies the EQ predicate on the "insertion_order" field.
func InsertionOrderEQ(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldInsertionOrder, v))
}

// InsertionOrderNEQ applies the NEQ predicate on the "insertion_order" field.
func InsertionOrderNEQ(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldInsertionOrder, v))
}

// InsertionOrderIn applies the In predicate on the "insertion_order" field.
func InsertionOrderIn(vs ...int64) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldInsertionOrder, vs...))
}

// InsertionOrderNotIn applies the NotIn predicate on the "insertion_order" field.
func InsertionOrderNotIn(vs ...int64) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldInsertionOrder, vs...))
}

// InsertionOrderGT applies the GT predicate on the "insertion_order" field.
func InsertionOrderGT(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldInsertionOrder, v))
}

// InsertionOrderGTE applies the GTE predicate on the "insertion_order" field.
func InsertionOrderGTE(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldInsertionOrder, v))
}

// InsertionOrderLT applies the LT predicate on the "insertion_order" field.
func InsertionOrderLT(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldInsertionOrder, v))
}

// InsertionOrderLTE applies the LTE predicate on the "insertion_order" field.
func InsertionOrderLTE(v int64) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldInsertionOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Standard {
	return predicate.Standard(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Standard {
	return predicate.Standard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.AssessmentItem) predicate.Standard {
	return predicate.Standard(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Standard {
	return predicate.Standard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.AssessmentAttempt) predicate.Standard {
	return predicate.Standard(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Standard) predicate.Standard {
	return predicate.Standard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Standard) predicate.Standard {
	return predicate.Standard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Standard) predicate.Standard {
	return predicate.Standard(sql.NotPredicates(p))
}
