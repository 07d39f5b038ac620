package scoring

import (
	"testing"

	"github.com/soltrack/soltrack/internal/itemgen"
)

func mcqPayload() *itemgen.MCQPayload {
	return &itemgen.MCQPayload{
		Choices: []itemgen.Choice{
			{ID: "A", Text: "10", Correct: false},
			{ID: "B", Text: "100", Correct: true},
			{ID: "C", Text: "1000", Correct: false},
			{ID: "D", Text: "1", Correct: false},
		},
		Rationale: map[string]string{
			"B": "There are 100 centimeters in a meter.",
			"C": "1000 is millimeters in a meter, not centimeters.",
		},
	}
}

func TestScoreMCQ(t *testing.T) {
	tests := []struct {
		name     string
		response string
		correct  bool
	}{
		{"exact match", "B", true},
		{"surrounding whitespace", " B ", true},
		{"wrong choice", "C", false},
		{"lowercase does not match", "b", false},
		{"choice text not id", "100", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreMCQ(mcqPayload(), tt.response)
			if r.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", r.Correct, tt.correct)
			}
			wantScore := 0.0
			if tt.correct {
				wantScore = 1.0
			}
			if r.Score != wantScore || r.MaxScore != 1 {
				t.Errorf("score = %v/%v", r.Score, r.MaxScore)
			}
		})
	}
}

func TestScoreMCQFeedbackFromRationale(t *testing.T) {
	r := ScoreMCQ(mcqPayload(), "C")
	if r.Feedback == "" {
		t.Error("expected rationale feedback for the submitted choice")
	}
	r = ScoreMCQ(mcqPayload(), "A")
	if r.Feedback != "" {
		t.Errorf("no rationale for A, got %q", r.Feedback)
	}
}

func TestScoreFIB(t *testing.T) {
	payload := &itemgen.FIBPayload{
		AnswerKey: itemgen.AnswerKey{
			Expected:       "42",
			AltEquivalents: []string{"forty-two"},
		},
	}

	tests := []struct {
		name     string
		response string
		correct  bool
	}{
		{"exact", "42", true},
		{"whitespace trimmed", "  42\n", true},
		{"case folded alternative", "Forty-Two", true},
		{"containment", "the answer is 42", true},
		{"wrong", "24", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreFIB(payload, tt.response)
			if r.Correct != tt.correct {
				t.Errorf("ScoreFIB(%q).Correct = %v, want %v", tt.response, r.Correct, tt.correct)
			}
		})
	}
}

func TestScoreFIBEmptyAcceptedEntriesIgnored(t *testing.T) {
	payload := &itemgen.FIBPayload{
		AnswerKey: itemgen.AnswerKey{Expected: "4", AltEquivalents: []string{""}},
	}
	// An empty accepted string must not make every response pass.
	r := ScoreFIB(payload, "nonsense")
	if r.Correct {
		t.Error("empty accepted answer should not match everything")
	}
}

func TestPassThreshold(t *testing.T) {
	if got := passThreshold(4); got != 3 {
		t.Errorf("passThreshold(4) = %v, want 3", got)
	}
	if got := passThreshold(1); got != 1 {
		t.Errorf("passThreshold(1) = %v, want 1", got)
	}
}
