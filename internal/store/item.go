package store

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/ent"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Create(ctx context.Context, rec *ItemRecord) error {
	created, err := r.client.AssessmentItem.Create().
		SetID(rec.ID).
		SetStandardID(rec.StandardID).
		SetItemType(rec.ItemType).
		SetDifficulty(rec.Difficulty).
		SetDok(rec.DOK).
		SetStem(rec.Stem).
		SetPayload(rec.Payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create item %s: %w", rec.ID, err)
	}
	rec.CreatedAt = created.CreatedAt
	return nil
}

func (r *itemRepo) Get(ctx context.Context, id string) (*ItemRecord, error) {
	it, err := r.client.AssessmentItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get item %q: %w", id, err)
	}
	return &ItemRecord{
		ID:         it.ID,
		StandardID: it.StandardID,
		ItemType:   it.ItemType,
		Difficulty: it.Difficulty,
		DOK:        it.Dok,
		Stem:       it.Stem,
		Payload:    it.Payload,
		CreatedAt:  it.CreatedAt,
	}, nil
}
