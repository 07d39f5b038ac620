package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/soltrack/soltrack/internal/catalog"
	"github.com/soltrack/soltrack/internal/llm"
)

func testStandard() *catalog.Standard {
	return &catalog.Standard{
		Code:        "3.NS.1",
		Subject:     "mathematics",
		Grade:       "3",
		Strand:      "Number and Number Sense",
		Description: "The student will read, write, and identify the place value of each digit in a six-digit whole number.",
		KeyTerms:    []string{"place value", "digit"},
	}
}

func validMCQJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "In the number 452,318, what is the value of the digit 5?",
		"dok": 2,
		"choices": [
			{"id": "A", "text": "5", "is_correct": false},
			{"id": "B", "text": "500", "is_correct": false},
			{"id": "C", "text": "50,000", "is_correct": true},
			{"id": "D", "text": "5,000", "is_correct": false}
		],
		"rationale": {"C": "The 5 is in the ten thousands place."}
	}`)
}

func validFIBJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "The digit in the hundreds place of 452,318 is _____.",
		"dok": 1,
		"answer_key": {"expected": "3", "alt_equivalents": ["three"]},
		"tolerance": 0,
		"units": ""
	}`)
}

func validCRJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "Explain how the value of the digit 4 changes when 452,318 becomes 45,231.",
		"dok": 3,
		"expected_ideas": ["place value shifts right", "value divided by ten"],
		"rubric": [
			{"dimension": "accuracy", "scale": "1 incorrect to 4 fully correct"},
			{"dimension": "explanation", "scale": "1 no reasoning to 4 complete reasoning"}
		]
	}`)
}

func TestGenerate_MCQ(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMCQJSON()})
	gen := New(mock, DefaultConfig())

	item, err := gen.Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeMultipleChoice,
		Difficulty: "medium",
		Grade:      "3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Type != TypeMultipleChoice {
		t.Errorf("type = %q, want MCQ", item.Type)
	}
	if item.StandardID != "mathematics-3-3.NS.1" {
		t.Errorf("standard id = %q", item.StandardID)
	}
	if item.MCQ == nil || len(item.MCQ.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %+v", item.MCQ)
	}
	if got := item.MCQ.CorrectChoice(); got != "C" {
		t.Errorf("correct choice = %q, want C", got)
	}
	if item.DOK != 2 {
		t.Errorf("dok = %d, want 2", item.DOK)
	}
}

func TestGenerate_FIB(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFIBJSON()})
	gen := New(mock, DefaultConfig())

	item, err := gen.Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeFillInBlank,
		Difficulty: "easy",
		Grade:      "3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.FIB == nil {
		t.Fatal("expected FIB payload")
	}
	accepted := item.FIB.Accepted()
	if len(accepted) != 2 || accepted[0] != "3" || accepted[1] != "three" {
		t.Errorf("accepted = %v", accepted)
	}
}

func TestGenerate_CR(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validCRJSON()})
	gen := New(mock, DefaultConfig())

	item, err := gen.Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeConstructedResponse,
		Difficulty: "hard",
		Grade:      "3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CR == nil || len(item.CR.Rubric) != 2 {
		t.Fatalf("expected 2 rubric dimensions, got %+v", item.CR)
	}
}

func TestGenerate_FencedResponse(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(validFIBJSON()) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})
	gen := New(mock, DefaultConfig())

	item, err := gen.Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeFillInBlank,
		Difficulty: "medium",
		Grade:      "3",
	})
	if err != nil {
		t.Fatalf("fenced JSON should still parse: %v", err)
	}
	if item.FIB.AnswerKey.Expected != "3" {
		t.Errorf("expected answer 3, got %q", item.FIB.AnswerKey.Expected)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Standard: testStandard(),
		Type:     TypeMultipleChoice,
	})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGenerate_WrongTypeRejected(t *testing.T) {
	// Model returns an MCQ shape when FIB was requested; the structural
	// validator rejects it instead of storing a mislabeled item.
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMCQJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeFillInBlank,
		Difficulty: "medium",
		Grade:      "3",
	})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("err = %v, want ErrGenerationFailed for mismatched payload", err)
	}
}

func TestGenerate_UnknownType(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	_, err := gen.Generate(context.Background(), GenerateInput{
		Standard: testStandard(),
		Type:     ItemType("ESSAY"),
	})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("err = %v, want ErrGenerationFailed", err)
	}
}

// purposeRecorder captures the purpose label attached to the context.
type purposeRecorder struct {
	inner    llm.Provider
	recorded string
}

func (p *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.recorded = llm.PurposeFrom(ctx)
	return p.inner.Generate(ctx, req)
}

func (p *purposeRecorder) ModelID() string { return p.inner.ModelID() }

func TestGenerate_PurposeLabel(t *testing.T) {
	rec := &purposeRecorder{inner: llm.NewMockProvider(llm.MockResponse{Content: validMCQJSON()})}

	_, err := New(rec, DefaultConfig()).Generate(context.Background(), GenerateInput{
		Standard:   testStandard(),
		Type:       TypeMultipleChoice,
		Difficulty: "medium",
		Grade:      "3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.recorded != llm.PurposeItemGen {
		t.Errorf("purpose = %q, want %q", rec.recorded, llm.PurposeItemGen)
	}
}
