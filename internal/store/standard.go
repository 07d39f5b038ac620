package store

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/ent"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/internal/catalog"
)

// standardRepo implements StandardRepo using the ent client.
type standardRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *standardRepo) Upsert(ctx context.Context, std *catalog.Standard) (bool, error) {
	id := std.ID()

	_, err := r.client.Standard.Query().
		Where(standard.ID(id)).
		Only(ctx)
	switch {
	case err == nil:
		// Corrective update; identity key and insertion order are preserved.
		err = r.client.Standard.UpdateOneID(id).
			SetCode(std.Code).
			SetSubject(std.Subject).
			SetGrade(std.Grade).
			SetStrand(std.Strand).
			SetTitle(std.Title).
			SetDescription(std.Description).
			SetSubObjectives(std.SubObjectives).
			SetPrerequisites(std.Prerequisites).
			SetConnections(std.Connections).
			SetKeyTerms(std.KeyTerms).
			SetDifficulty(string(std.Difficulty)).
			SetCognitiveComplexity(string(std.CognitiveComplexity)).
			SetSourceDocument(std.SourceDocument).
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("update standard %s: %w", id, err)
		}
		return false, nil

	case ent.IsNotFound(err):
		order, err := r.seq.Next(ctx)
		if err != nil {
			return false, fmt.Errorf("next insertion order: %w", err)
		}
		err = r.client.Standard.Create().
			SetID(id).
			SetCode(std.Code).
			SetSubject(std.Subject).
			SetGrade(std.Grade).
			SetStrand(std.Strand).
			SetTitle(std.Title).
			SetDescription(std.Description).
			SetSubObjectives(std.SubObjectives).
			SetPrerequisites(std.Prerequisites).
			SetConnections(std.Connections).
			SetKeyTerms(std.KeyTerms).
			SetDifficulty(string(std.Difficulty)).
			SetCognitiveComplexity(string(std.CognitiveComplexity)).
			SetSourceDocument(std.SourceDocument).
			SetInsertionOrder(order).
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("create standard %s: %w", id, err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("query standard %s: %w", id, err)
	}
}

func (r *standardRepo) Get(ctx context.Context, id string) (*catalog.Standard, error) {
	s, err := r.client.Standard.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("standard %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get standard %q: %w", id, err)
	}
	return entStandardToCatalog(s), nil
}

func (r *standardRepo) List(ctx context.Context, f StandardFilter) ([]*catalog.Standard, error) {
	q := r.client.Standard.Query()
	if f.Subject != "" {
		q = q.Where(standard.Subject(f.Subject))
	}
	if f.Grade != "" {
		q = q.Where(standard.Grade(f.Grade))
	}

	rows, err := q.Order(ent.Asc(standard.FieldInsertionOrder)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standards: %w", err)
	}

	out := make([]*catalog.Standard, len(rows))
	for i, s := range rows {
		out[i] = entStandardToCatalog(s)
	}
	return out, nil
}

func (r *standardRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Standard.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count standards: %w", err)
	}
	return n, nil
}

func entStandardToCatalog(s *ent.Standard) *catalog.Standard {
	return &catalog.Standard{
		Code:                s.Code,
		Subject:             s.Subject,
		Grade:               s.Grade,
		Strand:              s.Strand,
		Title:               s.Title,
		Description:         s.Description,
		SubObjectives:       s.SubObjectives,
		Prerequisites:       s.Prerequisites,
		Connections:         s.Connections,
		KeyTerms:            s.KeyTerms,
		Difficulty:          catalog.Difficulty(s.Difficulty),
		CognitiveComplexity: catalog.CognitiveComplexity(s.CognitiveComplexity),
		SourceDocument:      s.SourceDocument,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
