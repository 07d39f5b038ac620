package lessons

import "github.com/soltrack/soltrack/internal/catalog"

// Lesson is an LLM-generated micro-lesson for one standard.
type Lesson struct {
	StandardID       string
	Title            string
	Explanation      string
	WorkedExample    string
	PracticeQuestion PracticeQuestion
}

// PracticeQuestion is a mini-practice embedded in a lesson.
type PracticeQuestion struct {
	Text        string
	Answer      string
	Explanation string
}

// Input holds the context for generating one lesson.
type Input struct {
	Standard *catalog.Standard

	// Accuracy is the learner's mastery EWMA on this standard, 0 when
	// they have not attempted it.
	Accuracy float64

	// AttemptCount is how many attempts the accuracy is based on.
	AttemptCount int

	// RecentErrors holds feedback lines from the learner's recent
	// incorrect attempts, most recent last.
	RecentErrors []string
}
