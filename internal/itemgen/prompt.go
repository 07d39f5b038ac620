package itemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an assessment writer creating questions aligned to state curriculum standards.

Rules:
- Generate a single question that assesses the given standard at the requested difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions and standard operators.
- The question must be answerable from the standard's content alone and be age-appropriate for the given grade.
- Set "dok" (Depth of Knowledge) honestly: 1 recall, 2 skill/concept, 3 strategic thinking, 4 extended thinking.
- For multiple choice: exactly 4 choices labeled A-D with exactly one correct. Distractors should reflect common misconceptions, not random values.
- For fill in the blank: the stem contains one blank written as "_____". The expected answer should be short; list genuinely equivalent alternative answers.
- For constructed response: the prompt should require explanation or multi-step reasoning, with a rubric of 2 to 4 scored dimensions describing what score levels 1 through 4 look like, and the key ideas a complete answer includes.`

var typeLabels = map[ItemType]string{
	TypeMultipleChoice:      "multiple choice",
	TypeFillInBlank:         "fill in the blank",
	TypeConstructedResponse: "constructed response",
}

// buildUserMessage assembles the generation request from the standard
// and the requester's grade/age context.
func buildUserMessage(input GenerateInput) string {
	std := input.Standard

	var b strings.Builder
	fmt.Fprintf(&b, "Question type: %s\n", typeLabels[input.Type])
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Standard code: %s\n", std.Code)
	fmt.Fprintf(&b, "Subject: %s\n", std.Subject)
	fmt.Fprintf(&b, "Grade: %s\n", std.Grade)
	fmt.Fprintf(&b, "Strand: %s\n", std.Strand)
	if std.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", std.Title)
	}
	fmt.Fprintf(&b, "Description: %s\n", std.Description)

	if len(std.SubObjectives) > 0 {
		b.WriteString("Sub-objectives:\n")
		for _, sub := range std.SubObjectives {
			fmt.Fprintf(&b, "- %s: %s\n", sub.Code, sub.Description)
		}
	}
	if len(std.KeyTerms) > 0 {
		fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(std.KeyTerms, ", "))
	}

	fmt.Fprintf(&b, "\nStudent grade: %s\n", input.Grade)
	if input.Age > 0 {
		fmt.Fprintf(&b, "Student age: %d\n", input.Age)
	}

	return b.String()
}
