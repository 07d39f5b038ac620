package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a patient, encouraging tutor. A student needs a short, clear lesson on one curriculum standard. Match your language to the student's grade level.`

func buildLessonUserMessage(input Input) string {
	var b strings.Builder
	std := input.Standard

	b.WriteString(fmt.Sprintf("Standard: %s (%s, grade %s)\n", std.Code, std.Subject, std.Grade))
	b.WriteString(fmt.Sprintf("Strand: %s\n", std.Strand))
	b.WriteString(fmt.Sprintf("Description: %s\n", std.Description))

	if len(std.SubObjectives) > 0 {
		b.WriteString("Sub-objectives:\n")
		for _, sub := range std.SubObjectives {
			b.WriteString(fmt.Sprintf("- %s\n", sub.Description))
		}
	}
	if len(std.KeyTerms) > 0 {
		b.WriteString(fmt.Sprintf("Key terms: %s\n", strings.Join(std.KeyTerms, ", ")))
	}

	if input.AttemptCount > 0 {
		b.WriteString(fmt.Sprintf("\nStudent accuracy on this standard: %.0f%% over %d attempts\n",
			input.Accuracy*100, input.AttemptCount))
	}

	b.WriteString("\nRecent errors:\n")
	if len(input.RecentErrors) == 0 {
		b.WriteString("None\n")
	} else {
		for _, e := range input.RecentErrors {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	b.WriteString(`
Instructions:
Create a micro-lesson that:
1. Explains the standard clearly in 3-5 sentences, in language a student at this grade level would understand. Address the specific errors shown above.
2. Shows a complete worked example with numbered steps.
3. Creates one practice question that is EASIER than typical assessment items for this standard. The student should be able to solve it using the explanation and worked example above.
4. The practice question must have a single correct answer. Provide a brief explanation for the practice answer.
5. Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication.`)

	return b.String()
}
