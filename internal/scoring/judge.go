package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soltrack/soltrack/internal/itemgen"
	"github.com/soltrack/soltrack/internal/llm"
)

// Judgment is the external service's verdict on a constructed response.
type Judgment struct {
	Score             int    `json:"score"`
	MeetsExpectations bool   `json:"meets_expectations"`
	Feedback          string `json:"feedback"`
}

// Judge scores constructed responses against a rubric.
type Judge interface {
	// Judge never returns an error for unusable model output; it
	// degrades to a fixed low score instead so a submission always
	// produces a storable attempt.
	Judge(ctx context.Context, item *itemgen.Item, response string) Judgment
}

// degradedScore is recorded when the judgment service's output cannot
// be used: 2 of 4, marked incorrect.
const degradedScore = 2

var judgmentSchema = &llm.Schema{
	Name:        "cr-judgment",
	Description: "Rubric-based score for a student's constructed response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     itemgen.CRMaxScore,
				"description": "Overall rubric score",
			},
			"meets_expectations": map[string]any{
				"type": "boolean",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two or three sentences of specific, encouraging feedback",
			},
		},
		"required":             []any{"score", "meets_expectations", "feedback"},
		"additionalProperties": false,
	},
}

const judgeSystemPrompt = `You are grading a student's written answer against a rubric.

Rules:
- Score the response on the rubric as a whole, from 1 (minimal) to 4 (complete).
- Check the response against each expected idea; a score of 3 or 4 requires most expected ideas to be present and correct.
- Be fair to partial understanding. Do not penalize spelling or grammar unless the rubric asks for it.
- Feedback should name one thing done well and one thing to improve, in language a student at this grade can understand.`

// LLMJudge implements Judge over the LLM provider.
type LLMJudge struct {
	provider llm.Provider
}

// NewLLMJudge creates a judge backed by the given provider.
func NewLLMJudge(provider llm.Provider) *LLMJudge {
	return &LLMJudge{provider: provider}
}

// Judge scores one constructed response. Any provider error or
// unparsable output degrades to degradedScore rather than failing.
func (j *LLMJudge) Judge(ctx context.Context, item *itemgen.Item, response string) Judgment {
	ctx = llm.WithPurpose(ctx, llm.PurposeJudge)

	req := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgeMessage(item, response)},
		},
		Schema:      judgmentSchema,
		MaxTokens:   512,
		Temperature: 0.2,
	}

	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return degraded()
	}

	raw := resp.Content
	if !json.Valid(raw) {
		raw, err = llm.ExtractJSON(string(resp.Content))
		if err != nil {
			return degraded()
		}
	}

	var jd Judgment
	if err := json.Unmarshal(raw, &jd); err != nil {
		return degraded()
	}
	if jd.Score < 1 || jd.Score > itemgen.CRMaxScore {
		return degraded()
	}
	return jd
}

func degraded() Judgment {
	return Judgment{
		Score:             degradedScore,
		MeetsExpectations: false,
		Feedback:          "Your answer was recorded, but it could not be fully evaluated this time.",
	}
}

func buildJudgeMessage(item *itemgen.Item, response string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\n", item.Stem)

	if item.CR != nil {
		b.WriteString("Rubric:\n")
		for _, d := range item.CR.Rubric {
			fmt.Fprintf(&b, "- %s: %s\n", d.Dimension, d.Scale)
		}
		b.WriteString("\nExpected ideas:\n")
		for _, idea := range item.CR.ExpectedIdeas {
			fmt.Fprintf(&b, "- %s\n", idea)
		}
	}

	fmt.Fprintf(&b, "\nStudent response:\n%s\n", response)
	return b.String()
}
