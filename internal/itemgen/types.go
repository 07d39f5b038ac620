package itemgen

import (
	"time"

	"github.com/soltrack/soltrack/internal/catalog"
)

// ItemType selects the assessment item variant and its payload shape.
type ItemType string

const (
	TypeMultipleChoice      ItemType = "MCQ"
	TypeFillInBlank         ItemType = "FIB"
	TypeConstructedResponse ItemType = "CR"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeFillInBlank, TypeConstructedResponse:
		return true
	}
	return false
}

// CRMaxScore is the conventional rubric maximum for constructed response.
const CRMaxScore = 4

// MaxScore returns the maximum attainable score for the item type.
// MCQ and FIB are right-or-wrong; CR is scored against the rubric.
func (t ItemType) MaxScore() float64 {
	if t == TypeConstructedResponse {
		return CRMaxScore
	}
	return 1
}

// Choice is one multiple-choice option.
type Choice struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"is_correct"`
}

// MCQPayload is the payload for multiple-choice items. Exactly one
// choice is correct; Rationale optionally explains each choice by id.
type MCQPayload struct {
	Choices   []Choice          `json:"choices"`
	Rationale map[string]string `json:"rationale,omitempty"`
}

// CorrectChoice returns the id of the correct choice, or "" if the
// payload is malformed.
func (p *MCQPayload) CorrectChoice() string {
	for _, c := range p.Choices {
		if c.Correct {
			return c.ID
		}
	}
	return ""
}

// AnswerKey is the expected answer for a fill-in-the-blank item.
type AnswerKey struct {
	Expected       string   `json:"expected"`
	AltEquivalents []string `json:"alt_equivalents,omitempty"`
	Format         string   `json:"format,omitempty"`
}

// FIBPayload is the payload for fill-in-the-blank items. Tolerance and
// Units are carried for numeric answers but not enforced by the basic
// scorer.
type FIBPayload struct {
	AnswerKey AnswerKey `json:"answer_key"`
	Tolerance float64   `json:"tolerance,omitempty"`
	Units     string    `json:"units,omitempty"`
}

// Accepted returns every string the scorer should accept, expected
// answer first.
func (p *FIBPayload) Accepted() []string {
	out := make([]string, 0, 1+len(p.AnswerKey.AltEquivalents))
	out = append(out, p.AnswerKey.Expected)
	out = append(out, p.AnswerKey.AltEquivalents...)
	return out
}

// RubricDimension is one scored dimension of a constructed-response rubric.
type RubricDimension struct {
	Dimension string `json:"dimension"`
	Scale     string `json:"scale"`
}

// CRPayload is the payload for constructed-response items.
type CRPayload struct {
	ExpectedIdeas []string          `json:"expected_ideas"`
	Rubric        []RubricDimension `json:"rubric"`
}

// Item is a generated assessment item. Exactly one payload pointer is
// non-nil and it matches Type.
type Item struct {
	ID         string
	StandardID string
	Type       ItemType
	Difficulty string
	DOK        int
	Stem       string
	MCQ        *MCQPayload
	FIB        *FIBPayload
	CR         *CRPayload
	CreatedAt  time.Time
}

// GenerateInput carries everything the generator needs for one item.
type GenerateInput struct {
	Standard   *catalog.Standard
	Type       ItemType
	Difficulty string // easy, medium, or hard
	Grade      string // requester grade for tone calibration
	Age        int    // optional, 0 when unknown
}
