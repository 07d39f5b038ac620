package lessons

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/soltrack/soltrack/internal/catalog"
	"github.com/soltrack/soltrack/internal/llm"
)

func testStandard() *catalog.Standard {
	return &catalog.Standard{
		Code:        "3.CE.1",
		Subject:     "mathematics",
		Grade:       "3",
		Strand:      "Computation and Estimation",
		Description: "The student will estimate and determine the sum or difference of two whole numbers.",
		KeyTerms:    []string{"sum", "difference", "estimate"},
	}
}

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Adding with Regrouping",
		"explanation": "When the digits in a column add up to ten or more, we regroup. Carry the extra ten into the next column and keep going.",
		"worked_example": "1. Write 47 + 38 in columns.\n2. Add ones: 7 + 8 = 15, write 5, carry 1.\n3. Add tens: 4 + 3 + 1 = 8.\n4. Answer: 85.",
		"practice_question": {
			"text": "What is 25 + 17?",
			"answer": "42",
			"explanation": "5 + 7 = 12, write 2 carry 1; 2 + 1 + 1 = 4."
		}
	}`)
}

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	lesson, err := svc.Generate(t.Context(), Input{
		Standard:     testStandard(),
		Accuracy:     0.4,
		AttemptCount: 5,
		RecentErrors: []string{"forgot to carry in 47 + 38"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if lesson.StandardID != "mathematics-3-3.CE.1" {
		t.Errorf("StandardID = %s", lesson.StandardID)
	}
	if lesson.Title != "Adding with Regrouping" {
		t.Errorf("Title = %s", lesson.Title)
	}
	if lesson.PracticeQuestion.Answer != "42" {
		t.Errorf("practice answer = %s", lesson.PracticeQuestion.Answer)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "forgot to carry") {
		t.Error("prompt should carry the recent errors")
	}
	if !strings.Contains(msg, "40%") {
		t.Error("prompt should state the learner's accuracy")
	}
}

func TestGenerateLessonFencedOutput(t *testing.T) {
	fenced := "```json\n" + string(validLessonJSON()) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})

	svc := NewService(mock, DefaultConfig())
	lesson, err := svc.Generate(t.Context(), Input{Standard: testStandard()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if lesson.Explanation == "" {
		t.Error("explanation should survive fence stripping")
	}
}

func TestGenerateLessonProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), Input{Standard: testStandard()}); err == nil {
		t.Fatal("expected an error when the provider fails")
	}
}

func TestGenerateLessonRejectsEmptyLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": "x"}`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), Input{Standard: testStandard()}); err == nil {
		t.Fatal("expected an error for a lesson without content")
	}
}
