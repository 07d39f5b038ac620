package scoring

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/soltrack/soltrack/internal/itemgen"
	"github.com/soltrack/soltrack/internal/llm"
)

func crItem() *itemgen.Item {
	return &itemgen.Item{
		ID:         "item-cr",
		StandardID: "science-4-4.PS.1",
		Type:       itemgen.TypeConstructedResponse,
		DOK:        3,
		Stem:       "Explain why the sun appears to move across the sky.",
		CR: &itemgen.CRPayload{
			ExpectedIdeas: []string{"Earth rotates", "apparent motion"},
			Rubric: []itemgen.RubricDimension{
				{Dimension: "accuracy", Scale: "1 incorrect to 4 fully correct"},
			},
		},
	}
}

func TestJudgeValidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 4, "meets_expectations": true, "feedback": "Clear explanation of Earth's rotation."}`),
	})
	j := NewLLMJudge(mock)

	jd := j.Judge(context.Background(), crItem(), "The Earth spins, so the sun looks like it moves.")
	if jd.Score != 4 || !jd.MeetsExpectations {
		t.Errorf("judgment = %+v", jd)
	}
	if jd.Feedback == "" {
		t.Error("expected feedback passthrough")
	}
}

func TestJudgeDegradesNeverErrors(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"not json", llm.MockResponse{Content: json.RawMessage(`"I think this deserves a 3"`)}},
		{"score out of range", llm.MockResponse{Content: json.RawMessage(`{"score": 9, "meets_expectations": true, "feedback": ""}`)}},
		{"score below range", llm.MockResponse{Content: json.RawMessage(`{"score": 0, "meets_expectations": false, "feedback": ""}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewLLMJudge(llm.NewMockProvider(tt.resp))
			jd := j.Judge(context.Background(), crItem(), "answer")
			if jd.Score != degradedScore {
				t.Errorf("score = %d, want degraded %d", jd.Score, degradedScore)
			}
			if jd.MeetsExpectations {
				t.Error("degraded judgment must be marked not meeting expectations")
			}
		})
	}
}

func TestJudgeToleratesFencedOutput(t *testing.T) {
	fenced := "```json\n{\"score\": 3, \"meets_expectations\": true, \"feedback\": \"Good.\"}\n```"
	j := NewLLMJudge(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)}))

	jd := j.Judge(context.Background(), crItem(), "answer")
	if jd.Score != 3 {
		t.Errorf("score = %d, want 3 from fenced JSON", jd.Score)
	}
}
