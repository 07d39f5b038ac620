package itemgen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/soltrack/soltrack/internal/store"
)

// Service generates items and persists them. Repeated requests for the
// same (standard, type, difficulty) are not deduplicated; each call
// creates a fresh, independent item.
type Service struct {
	gen       Generator
	standards store.StandardRepo
	items     store.ItemRepo
}

// NewService wires a generator to the standard and item repositories.
func NewService(gen Generator, standards store.StandardRepo, items store.ItemRepo) *Service {
	return &Service{gen: gen, standards: standards, items: items}
}

// Request identifies what to generate and for whom.
type Request struct {
	StandardID string
	Type       ItemType
	Difficulty string
	Grade      string // student grade; falls back to the standard's grade
	Age        int
}

// Generate looks up the standard, generates one item, and persists it.
func (s *Service) Generate(ctx context.Context, req Request) (*Item, error) {
	std, err := s.standards.Get(ctx, req.StandardID)
	if err != nil {
		return nil, err
	}

	grade := req.Grade
	if grade == "" {
		grade = std.Grade
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	item, err := s.gen.Generate(ctx, GenerateInput{
		Standard:   std,
		Type:       req.Type,
		Difficulty: difficulty,
		Grade:      grade,
		Age:        req.Age,
	})
	if err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()
	rec, err := ToRecord(item)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if err := s.items.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist item: %w", err)
	}
	item.CreatedAt = rec.CreatedAt
	return item, nil
}
