package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a learner. There is no authentication; the id is handed to the
// client and presented back on each submission.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("grade").
			NotEmpty().
			Comment("Grade level used to calibrate generated item tone"),
		field.Int("age").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", AssessmentAttempt.Type),
	}
}
