package ingest

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/internal/catalog"
)

// Extractor turns raw document text into a validated Document. It tries
// each deterministic parser in order and falls back to LLM extraction
// when none recognizes the layout.
type Extractor struct {
	parsers  []Parser
	fallback *LLMExtractor
}

// NewExtractor creates an extractor with the standard parser chain.
// fallback may be nil, in which case unrecognized layouts fail.
func NewExtractor(fallback *LLMExtractor) *Extractor {
	return &Extractor{
		parsers: []Parser{
			&StrandTupleParser{},
			&CodeTupleParser{},
		},
		fallback: fallback,
	}
}

// Extract parses, normalizes, and validates one document. Validation is
// complete-or-nothing: any standard failing the schema aborts the whole
// document with a SchemaViolationError.
func (e *Extractor) Extract(ctx context.Context, text string, opts Options) (*Document, error) {
	doc, err := e.parse(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	for _, std := range doc.Standards {
		normalize(std, opts)
		if err := std.Validate(); err != nil {
			return nil, fmt.Errorf("document %s: %w", opts.Source, err)
		}
	}
	return doc, nil
}

func (e *Extractor) parse(ctx context.Context, text string, opts Options) (*Document, error) {
	for _, p := range e.parsers {
		if p.Recognizes(text) {
			return p.Parse(text, opts)
		}
	}
	if e.fallback == nil {
		return nil, fmt.Errorf("document %s: no parser recognizes the format", opts.Source)
	}
	return e.fallback.Extract(ctx, text, opts)
}

// normalize fills derivable fields so every extraction path converges on
// the same schema.
func normalize(std *catalog.Standard, opts Options) {
	if std.Subject == "" {
		std.Subject = opts.Subject
	}
	if std.Grade == "" {
		std.Grade = opts.Grade
	}
	if std.Strand == "" {
		std.Strand = catalog.InferStrand(std.Code)
	}
	if std.Difficulty == "" {
		std.Difficulty = catalog.DifficultyGradeLevel
	}
	if std.CognitiveComplexity == "" {
		std.CognitiveComplexity = catalog.ComplexitySkill
	}
	if std.SourceDocument == "" {
		std.SourceDocument = opts.Source
	}
	for i, sub := range std.SubObjectives {
		if sub.Code == "" {
			std.SubObjectives[i].Code = catalog.SubObjectiveCode(std.Code, sub.Description)
		}
	}
}
