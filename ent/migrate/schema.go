// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentAttemptsColumns holds the columns for the "assessment_attempts" table.
	AssessmentAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "max_score", Type: field.TypeFloat64},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "standard_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// AssessmentAttemptsTable holds the schema information for the "assessment_attempts" table.
	AssessmentAttemptsTable = &schema.Table{
		Name:       "assessment_attempts",
		Columns:    AssessmentAttemptsColumns,
		PrimaryKey: []*schema.Column{AssessmentAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessment_attempts_assessment_items_attempts",
				Columns:    []*schema.Column{AssessmentAttemptsColumns[9]},
				RefColumns: []*schema.Column{AssessmentItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "assessment_attempts_standards_attempts",
				Columns:    []*schema.Column{AssessmentAttemptsColumns[10]},
				RefColumns: []*schema.Column{StandardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "assessment_attempts_users_attempts",
				Columns:    []*schema.Column{AssessmentAttemptsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentAttemptsColumns[11]},
			},
			{
				Name:    "assessmentattempt_user_id_standard_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentAttemptsColumns[11], AssessmentAttemptsColumns[10]},
			},
			{
				Name:    "assessmentattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentAttemptsColumns[8]},
			},
		},
	}
	// AssessmentItemsColumns holds the columns for the "assessment_items" table.
	AssessmentItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "dok", Type: field.TypeInt},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "standard_id", Type: field.TypeString},
	}
	// AssessmentItemsTable holds the schema information for the "assessment_items" table.
	AssessmentItemsTable = &schema.Table{
		Name:       "assessment_items",
		Columns:    AssessmentItemsColumns,
		PrimaryKey: []*schema.Column{AssessmentItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessment_items_standards_items",
				Columns:    []*schema.Column{AssessmentItemsColumns[7]},
				RefColumns: []*schema.Column{StandardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentitem_standard_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentItemsColumns[7]},
			},
			{
				Name:    "assessmentitem_item_type",
				Unique:  false,
				Columns: []*schema.Column{AssessmentItemsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// StandardsColumns holds the columns for the "standards" table.
	StandardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "strand", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "sub_objectives", Type: field.TypeJSON, Nullable: true},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "connections", Type: field.TypeJSON, Nullable: true},
		{Name: "key_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Default: "grade-level"},
		{Name: "cognitive_complexity", Type: field.TypeString, Default: "skill"},
		{Name: "source_document", Type: field.TypeString, Nullable: true},
		{Name: "insertion_order", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StandardsTable holds the schema information for the "standards" table.
	StandardsTable = &schema.Table{
		Name:       "standards",
		Columns:    StandardsColumns,
		PrimaryKey: []*schema.Column{StandardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "standard_subject_grade",
				Unique:  false,
				Columns: []*schema.Column{StandardsColumns[2], StandardsColumns[3]},
			},
			{
				Name:    "standard_insertion_order",
				Unique:  false,
				Columns: []*schema.Column{StandardsColumns[14]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentAttemptsTable,
		AssessmentItemsTable,
		LlmRequestEventsTable,
		StandardsTable,
		UsersTable,
	}
)

func init() {
	AssessmentAttemptsTable.ForeignKeys[0].RefTable = AssessmentItemsTable
	AssessmentAttemptsTable.ForeignKeys[1].RefTable = StandardsTable
	AssessmentAttemptsTable.ForeignKeys[2].RefTable = UsersTable
	AssessmentItemsTable.ForeignKeys[0].RefTable = StandardsTable
}
