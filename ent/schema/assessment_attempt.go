package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentAttempt records one scored submission. Attempts are append-only;
// the mastery projection is recomputed by replaying them in
// (timestamp, sequence) order, so rows are never updated or deleted.
type AssessmentAttempt struct {
	ent.Schema
}

func (AssessmentAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("standard_id").
			NotEmpty().
			Immutable().
			Comment("Denormalized from the item for mastery queries"),
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global monotonic counter; breaks timestamp ties"),
		field.Text("response").
			Immutable().
			Comment("Raw learner response as submitted"),
		field.Bool("correct").
			Immutable(),
		field.Float("score").
			Immutable(),
		field.Float("max_score").
			Immutable(),
		field.Text("feedback").
			Optional().
			Immutable(),
		field.Int("time_spent_seconds").
			Default(0).
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (AssessmentAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("attempts").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("item", AssessmentItem.Type).
			Ref("attempts").
			Field("item_id").
			Unique().
			Required().
			Immutable(),
		edge.From("standard", Standard.Type).
			Ref("attempts").
			Field("standard_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (AssessmentAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "standard_id"),
		index.Fields("timestamp"),
	}
}
