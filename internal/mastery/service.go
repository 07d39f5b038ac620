package mastery

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/internal/store"
)

// Service derives mastery records from the attempt log.
type Service struct {
	attempts store.AttemptRepo
}

// NewService creates a mastery service over the given attempt repository.
func NewService(attempts store.AttemptRepo) *Service {
	return &Service{attempts: attempts}
}

// ForUser returns the mastery record for every standard the user has
// attempted, keyed by standard id.
func (s *Service) ForUser(ctx context.Context, userID string) (map[string]Record, error) {
	attempts, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	// Group by standard. The repo returns ascending (timestamp, sequence)
	// order, and grouping preserves it within each standard.
	byStandard := make(map[string][]*store.Attempt)
	for _, a := range attempts {
		byStandard[a.StandardID] = append(byStandard[a.StandardID], a)
	}

	out := make(map[string]Record, len(byStandard))
	for id, group := range byStandard {
		out[id] = Fold(group)
	}
	return out, nil
}

// ForUserStandard returns the mastery record for one (user, standard)
// pair. A user with no attempts gets a zero record, not an error.
func (s *Service) ForUserStandard(ctx context.Context, userID, standardID string) (Record, error) {
	attempts, err := s.attempts.ListByUserStandard(ctx, userID, standardID)
	if err != nil {
		return Record{}, fmt.Errorf("load attempts: %w", err)
	}
	return Fold(attempts), nil
}
