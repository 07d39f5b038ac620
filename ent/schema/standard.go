package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/soltrack/soltrack/internal/catalog"
)

// Standard is a curriculum standard from a Standards of Learning document.
// The id is the natural key "subject-grade-code" so re-ingestion upserts
// instead of duplicating.
type Standard struct {
	ent.Schema
}

func (Standard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("code").
			NotEmpty().
			Comment("Standard code, e.g. 3.NS.1 or A.EO.2"),
		field.String("subject").
			NotEmpty(),
		field.String("grade").
			NotEmpty().
			Comment("Grade level (K, 1-8) or course name (Algebra1)"),
		field.String("strand").
			NotEmpty().
			Comment("Content domain, e.g. Number and Number Sense"),
		field.String("title").
			Optional(),
		field.Text("description").
			NotEmpty(),
		field.JSON("sub_objectives", []catalog.SubObjective{}).
			Optional().
			Comment("Ordered (code, description) pairs"),
		field.JSON("prerequisites", []string{}).
			Optional(),
		field.JSON("connections", []string{}).
			Optional(),
		field.JSON("key_terms", []string{}).
			Optional(),
		field.String("difficulty").
			Default("grade-level").
			Comment("foundational, grade-level, or advanced"),
		field.String("cognitive_complexity").
			Default("skill").
			Comment("recall, skill, strategic, or extended"),
		field.String("source_document").
			Optional().
			Comment("Label of the document this standard was ingested from"),
		field.Int64("insertion_order").
			Comment("Monotonic counter preserving catalog insertion order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Standard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", AssessmentItem.Type),
		edge.To("attempts", AssessmentAttempt.Type),
	}
}

func (Standard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "grade"),
		index.Fields("insertion_order"),
	}
}
