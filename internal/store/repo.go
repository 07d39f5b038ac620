package store

import (
	"context"
	"errors"
	"time"

	"github.com/soltrack/soltrack/internal/catalog"
)

// ErrNotFound is returned when a referenced Standard, Item, Attempt, or
// User does not exist. Callers map it to their 404-equivalent.
var ErrNotFound = errors.New("not found")

// StandardFilter narrows a standard listing. Zero values mean no filter.
type StandardFilter struct {
	Subject string
	Grade   string
}

// StandardRepo persists catalog standards.
type StandardRepo interface {
	// Upsert writes a standard keyed by its natural id. Re-ingesting the
	// same standard updates description/strand/metadata in place; created
	// reports whether a new row was inserted.
	Upsert(ctx context.Context, std *catalog.Standard) (created bool, err error)

	// Get returns the standard with the given natural id.
	Get(ctx context.Context, id string) (*catalog.Standard, error)

	// List returns standards in insertion order, optionally filtered.
	List(ctx context.Context, f StandardFilter) ([]*catalog.Standard, error)

	// Count returns the total number of standards.
	Count(ctx context.Context) (int, error)
}

// ItemRecord is the stored form of an assessment item. The typed payload
// union lives in the itemgen package; the store keeps it as JSON.
type ItemRecord struct {
	ID         string
	StandardID string
	ItemType   string
	Difficulty string
	DOK        int
	Stem       string
	Payload    map[string]any
	CreatedAt  time.Time
}

// ItemRepo persists assessment items. Items are immutable.
type ItemRepo interface {
	Create(ctx context.Context, rec *ItemRecord) error
	Get(ctx context.Context, id string) (*ItemRecord, error)
}

// Attempt is one scored submission. Append-only.
type Attempt struct {
	ID               string
	UserID           string
	ItemID           string
	StandardID       string
	Sequence         int64
	Response         string
	Correct          bool
	Score            float64
	MaxScore         float64
	Feedback         string
	TimeSpentSeconds int
	Timestamp        time.Time
}

// AttemptRepo persists attempts. Append assigns the global sequence;
// listings come back in ascending (timestamp, sequence) order so mastery
// can be recomputed by replaying them.
type AttemptRepo interface {
	Append(ctx context.Context, a *Attempt) error
	ListByUser(ctx context.Context, userID string) ([]*Attempt, error)
	ListByUserStandard(ctx context.Context, userID, standardID string) ([]*Attempt, error)
}

// User is a learner record.
type User struct {
	ID        string
	Name      string
	Grade     string
	Age       int
	CreatedAt time.Time
}

// UserRepo persists learners.
type UserRepo interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// LLMRequestEventData captures one call to the generation service.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored generation-service call record.
type LLMRequestEvent struct {
	ID int
	LLMRequestEventData
	Timestamp time.Time
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMUsageStats aggregates events by purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates events by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries generation-service call events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
