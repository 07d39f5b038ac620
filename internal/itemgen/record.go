package itemgen

import (
	"encoding/json"
	"fmt"

	"github.com/soltrack/soltrack/internal/store"
)

// ToRecord converts an item to its stored form. The typed payload is
// flattened to JSON keyed by the item type.
func ToRecord(item *Item) (*store.ItemRecord, error) {
	var payload any
	switch item.Type {
	case TypeMultipleChoice:
		payload = item.MCQ
	case TypeFillInBlank:
		payload = item.FIB
	case TypeConstructedResponse:
		payload = item.CR
	default:
		return nil, fmt.Errorf("unknown item type %q", item.Type)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("flatten payload: %w", err)
	}

	return &store.ItemRecord{
		ID:         item.ID,
		StandardID: item.StandardID,
		ItemType:   string(item.Type),
		Difficulty: item.Difficulty,
		DOK:        item.DOK,
		Stem:       item.Stem,
		Payload:    m,
		CreatedAt:  item.CreatedAt,
	}, nil
}

// FromRecord converts a stored item back to its typed form.
func FromRecord(rec *store.ItemRecord) (*Item, error) {
	item := &Item{
		ID:         rec.ID,
		StandardID: rec.StandardID,
		Type:       ItemType(rec.ItemType),
		Difficulty: rec.Difficulty,
		DOK:        rec.DOK,
		Stem:       rec.Stem,
		CreatedAt:  rec.CreatedAt,
	}

	raw, err := json.Marshal(rec.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal stored payload: %w", err)
	}

	switch item.Type {
	case TypeMultipleChoice:
		item.MCQ = &MCQPayload{}
		err = json.Unmarshal(raw, item.MCQ)
	case TypeFillInBlank:
		item.FIB = &FIBPayload{}
		err = json.Unmarshal(raw, item.FIB)
	case TypeConstructedResponse:
		item.CR = &CRPayload{}
		err = json.Unmarshal(raw, item.CR)
	default:
		return nil, fmt.Errorf("unknown stored item type %q", rec.ItemType)
	}
	if err != nil {
		return nil, fmt.Errorf("parse stored %s payload: %w", rec.ItemType, err)
	}
	return item, nil
}
