// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentAttempt is the predicate function for assessmentattempt builders.
type AssessmentAttempt func(*sql.Selector)

// AssessmentItem is the predicate function for assessmentitem builders.
type AssessmentItem func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Standard is the predicate function for standard builders.
type Standard func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
