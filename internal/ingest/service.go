package ingest

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/internal/store"
)

// Service runs extraction and commits the result to the catalog.
type Service struct {
	extractor *Extractor
	standards store.StandardRepo
}

// NewService wires the extractor to the standard repository.
func NewService(extractor *Extractor, standards store.StandardRepo) *Service {
	return &Service{extractor: extractor, standards: standards}
}

// Result summarizes one committed document.
type Result struct {
	Document *Document
	Created  int
	Updated  int
}

// IngestDocument extracts and commits one document. Validation happens
// before any write, so a schema violation commits nothing and a re-run
// is always complete-or-nothing per document. Upserts are keyed by the
// standard's natural id; re-ingesting the same document creates no
// duplicates.
func (s *Service) IngestDocument(ctx context.Context, text string, opts Options) (*Result, error) {
	doc, err := s.extractor.Extract(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc}
	for _, std := range doc.Standards {
		created, err := s.standards.Upsert(ctx, std)
		if err != nil {
			return nil, fmt.Errorf("commit standard %s: %w", std.ID(), err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}
	return res, nil
}
