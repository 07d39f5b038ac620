package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/soltrack/soltrack/internal/catalog"
	"github.com/soltrack/soltrack/internal/llm"
	"github.com/soltrack/soltrack/internal/store"
)

func extractedDocJSON() json.RawMessage {
	return json.RawMessage(`{
		"metadata": {
			"document_title": "Grade 4 Science Standards",
			"subject": "science",
			"grade_level": "4",
			"year_approved": "2018",
			"total_standards": 1
		},
		"standards": [
			{
				"standard_code": "4.PS.1",
				"subject": "Science",
				"grade": "4",
				"strand": "Force, Motion, and Energy",
				"title": "Motion",
				"description": "The student will investigate and understand that objects' motion can be described and predicted.",
				"sub_objectives": [
					{"code": "", "description": "Describe the position of an object"}
				],
				"key_terms": ["motion", "speed"],
				"difficulty": "grade-level",
				"cognitive_complexity": "strategic"
			}
		]
	}`)
}

func TestExtractorFallsBackToLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: extractedDocJSON()})
	e := NewExtractor(NewLLMExtractor(mock))

	doc, err := e.Extract(context.Background(), "Free-form standards prose goes here.", Options{
		Source: "science4.docx",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM calls = %d, want 1", mock.CallCount())
	}
	if len(doc.Standards) != 1 {
		t.Fatalf("standards = %d, want 1", len(doc.Standards))
	}

	std := doc.Standards[0]
	if std.Subject != "science" {
		t.Errorf("subject = %q, want lowercased", std.Subject)
	}
	// Empty sub-objective code gets synthesized during normalization.
	if std.SubObjectives[0].Code != "4.PS.1.describe_the" {
		t.Errorf("sub code = %q", std.SubObjectives[0].Code)
	}
}

func TestExtractorPrefersDeterministicParser(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewExtractor(NewLLMExtractor(mock))

	_, err := e.Extract(context.Background(), strandTupleDoc, Options{
		Source: "3_MATH_SOL.py", Subject: "mathematics", Grade: "3",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("recognized layout must not reach the LLM, got %d calls", mock.CallCount())
	}
}

func TestExtractorValidationAbortsDocument(t *testing.T) {
	// A parsed standard with no grade fails whole-document validation.
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), strandTupleDoc, Options{
		Source: "3_MATH_SOL.py", Subject: "mathematics", Grade: "",
	})
	var sv *catalog.SchemaViolationError
	if !errors.As(err, &sv) {
		t.Fatalf("err = %v, want SchemaViolationError", err)
	}
	if sv.Field != "grade" {
		t.Errorf("field = %q, want grade", sv.Field)
	}
}

func TestExtractorNoParserNoFallback(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.Extract(context.Background(), "unstructured text", Options{Source: "x.txt"})
	if err == nil {
		t.Fatal("expected error when nothing recognizes the format")
	}
}

// memStandards is an in-memory StandardRepo for ingest tests.
type memStandards struct {
	byID  map[string]*catalog.Standard
	order []string
}

func newMemStandards() *memStandards {
	return &memStandards{byID: map[string]*catalog.Standard{}}
}

func (m *memStandards) Upsert(_ context.Context, std *catalog.Standard) (bool, error) {
	id := std.ID()
	cp := *std
	if _, ok := m.byID[id]; ok {
		m.byID[id] = &cp
		return false, nil
	}
	m.byID[id] = &cp
	m.order = append(m.order, id)
	return true, nil
}

func (m *memStandards) Get(_ context.Context, id string) (*catalog.Standard, error) {
	std, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return std, nil
}

func (m *memStandards) List(context.Context, store.StandardFilter) ([]*catalog.Standard, error) {
	out := make([]*catalog.Standard, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *memStandards) Count(context.Context) (int, error) { return len(m.byID), nil }

func TestIngestIdempotent(t *testing.T) {
	repo := newMemStandards()
	svc := NewService(NewExtractor(nil), repo)
	opts := Options{Source: "3_MATH_SOL.py", Subject: "mathematics", Grade: "3"}

	first, err := svc.IngestDocument(context.Background(), strandTupleDoc, opts)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if first.Created != 2 || first.Updated != 0 {
		t.Errorf("first run created=%d updated=%d, want 2/0", first.Created, first.Updated)
	}

	second, err := svc.IngestDocument(context.Background(), strandTupleDoc, opts)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if second.Created != 0 || second.Updated != 2 {
		t.Errorf("second run created=%d updated=%d, want 0/2", second.Created, second.Updated)
	}

	n, _ := repo.Count(context.Background())
	if n != 2 {
		t.Errorf("count = %d, want 2 after re-ingestion", n)
	}
}

func TestIngestCommitsNothingOnViolation(t *testing.T) {
	repo := newMemStandards()
	svc := NewService(NewExtractor(nil), repo)

	_, err := svc.IngestDocument(context.Background(), strandTupleDoc, Options{
		Source: "3_MATH_SOL.py", Subject: "", Grade: "3",
	})
	if err == nil {
		t.Fatal("expected schema violation")
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Errorf("count = %d, want 0 after aborted document", n)
	}
}
