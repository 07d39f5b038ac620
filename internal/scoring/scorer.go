package scoring

import (
	"strings"

	"github.com/soltrack/soltrack/internal/itemgen"
)

// Result is the outcome of scoring one response against one item.
type Result struct {
	Correct  bool
	Score    float64
	MaxScore float64
	Feedback string
}

// ScoreMCQ scores a multiple-choice response. Correct iff the submitted
// choice id exactly matches the designated correct choice. Feedback is
// the rationale for the submitted choice when the item carries one.
func ScoreMCQ(payload *itemgen.MCQPayload, response string) Result {
	choice := strings.TrimSpace(response)
	correct := payload.CorrectChoice()

	r := Result{
		Correct:  choice != "" && choice == correct,
		MaxScore: 1,
	}
	if r.Correct {
		r.Score = 1
	}
	if rationale, ok := payload.Rationale[choice]; ok {
		r.Feedback = rationale
	}
	return r
}

// ScoreFIB scores a fill-in-the-blank response. The response and every
// accepted answer are case-folded and trimmed; the response passes if it
// equals or contains any accepted answer. Containment is deliberately
// permissive so "the answer is 42" matches an expected "42". Numeric
// tolerance and unit checking are carried on the payload but not
// enforced here.
func ScoreFIB(payload *itemgen.FIBPayload, response string) Result {
	got := strings.ToLower(strings.TrimSpace(response))

	r := Result{MaxScore: 1}
	if got == "" {
		return r
	}
	for _, want := range payload.Accepted() {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		if got == want || strings.Contains(got, want) {
			r.Correct = true
			r.Score = 1
			break
		}
	}
	return r
}
