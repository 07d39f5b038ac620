package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentItem is a generated question for a single standard.
// Items are immutable once created; repeated generation requests for the
// same (standard, type, difficulty) produce new rows.
type AssessmentItem struct {
	ent.Schema
}

func (AssessmentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("standard_id").
			NotEmpty().
			Immutable(),
		field.String("item_type").
			NotEmpty().
			Immutable().
			Comment("MCQ, FIB, or CR; the payload shape is keyed by this"),
		field.String("difficulty").
			NotEmpty().
			Immutable().
			Comment("easy, medium, or hard"),
		field.Int("dok").
			Min(1).
			Max(4).
			Immutable().
			Comment("Depth of Knowledge level"),
		field.Text("stem").
			NotEmpty().
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Immutable().
			Comment("Type-specific payload: choices, answer key, or rubric"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AssessmentItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("standard", Standard.Type).
			Ref("items").
			Field("standard_id").
			Unique().
			Required().
			Immutable(),
		edge.To("attempts", AssessmentAttempt.Type),
	}
}

func (AssessmentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("standard_id"),
		index.Fields("item_type"),
	}
}
