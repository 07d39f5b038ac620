// Code generated by ent, DO NOT EDIT.

package standard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the standard type in the database.
	Label = "standard"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldStrand holds the string denoting the strand field in the database.
	FieldStrand = "strand"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSubObjectives holds the string denoting the sub_objectives field in the database.
	FieldSubObjectives = "sub_objectives"
	// FieldPrerequisites holds the string denoting the prerequisites field in the database.
	FieldPrerequisites = "prerequisites"
	// FieldConnections holds the string denoting the connections field in the database.
	FieldConnections = "connections"
	// FieldKeyTerms holds the string denoting the key_terms field in the database.
	FieldKeyTerms = "key_terms"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCognitiveComplexity holds the string denoting the cognitive_complexity field in the database.
	FieldCognitiveComplexity = "cognitive_complexity"
	// FieldSourceDocument holds the string denoting the source_document field in the database.
	FieldSourceDocument = "source_document"
	// FieldInsertionOrder holds the string denoting the insertion_order field in the database.
	FieldInsertionOrder = "insertion_order"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// Table holds the table name of the standard in the database.
	Table = "standards"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "assessment_items"
	// ItemsInverseTable is the table name for the AssessmentItem entity.
	// It exists in this package in order to avoid circular dependency with the "assessmentitem" package.
	ItemsInverseTable = "assessment_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "standard_id"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "assessment_attempts"
	// AttemptsInverseTable is the table name for the AssessmentAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "assessmentattempt" package.
	AttemptsInverseTable = "assessment_attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "standard_id"
)

// Columns holds all SQL columns for standard fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldSubject,
	FieldGrade,
	FieldStrand,
	FieldTitle,
	FieldDescription,
	FieldSubObjectives,
	FieldPrerequisites,
	FieldConnections,
	FieldKeyTerms,
	FieldDifficulty,
	FieldCognitiveComplexity,
	FieldSourceDocument,
	FieldInsertionOrder,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// StrandValidator is a validator for the "strand" field. It is called by the builders before save.
	StrandValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultCognitiveComplexity holds the default value on creation for the "cognitive_complexity" field.
	DefaultCognitiveComplexity string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Standard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByStrand orders the results by the strand field.
func ByStrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrand, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCognitiveComplexity orders the results by the cognitive_complexity field.
func ByCognitiveComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveComplexity, opts...).ToFunc()
}

// BySourceDocument orders the results by the source_document field.
func BySourceDocument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDocument, opts...).ToFunc()
}

// ByInsertionOrder orders the results by the insertion_order field.
func ByInsertionOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsertionOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
