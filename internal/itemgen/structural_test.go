package itemgen

import "testing"

func validMCQItem() *Item {
	return &Item{
		StandardID: "mathematics-3-3.NS.1",
		Type:       TypeMultipleChoice,
		Difficulty: "medium",
		DOK:        2,
		Stem:       "Which digit is in the tens place of 347?",
		MCQ: &MCQPayload{Choices: []Choice{
			{ID: "A", Text: "3", Correct: false},
			{ID: "B", Text: "4", Correct: true},
			{ID: "C", Text: "7", Correct: false},
			{ID: "D", Text: "0", Correct: false},
		}},
	}
}

func TestStructural_ValidMCQ(t *testing.T) {
	v := &StructuralValidator{}
	input := GenerateInput{Type: TypeMultipleChoice}
	if err := v.Validate(validMCQItem(), input); err != nil {
		t.Errorf("valid item rejected: %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(*Item)
	}{
		{"empty stem", func(i *Item) { i.Stem = "" }},
		{"dok too low", func(i *Item) { i.DOK = 0 }},
		{"dok too high", func(i *Item) { i.DOK = 5 }},
		{"no payload", func(i *Item) { i.MCQ = nil }},
		{"one choice", func(i *Item) { i.MCQ.Choices = i.MCQ.Choices[:1] }},
		{"no correct choice", func(i *Item) {
			for j := range i.MCQ.Choices {
				i.MCQ.Choices[j].Correct = false
			}
		}},
		{"two correct choices", func(i *Item) {
			i.MCQ.Choices[0].Correct = true
		}},
		{"duplicate choice ids", func(i *Item) {
			i.MCQ.Choices[1].ID = "A"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validMCQItem()
			tt.mutate(item)
			err := v.Validate(item, GenerateInput{Type: TypeMultipleChoice})
			if err == nil {
				t.Error("expected validation failure")
			} else if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestStructural_FIBAndCR(t *testing.T) {
	v := &StructuralValidator{}

	fib := &Item{
		Type: TypeFillInBlank, DOK: 1, Stem: "2 + 2 = _____",
		FIB: &FIBPayload{AnswerKey: AnswerKey{Expected: "4"}},
	}
	if err := v.Validate(fib, GenerateInput{Type: TypeFillInBlank}); err != nil {
		t.Errorf("valid FIB rejected: %v", err)
	}

	fib.FIB.AnswerKey.Expected = ""
	if err := v.Validate(fib, GenerateInput{Type: TypeFillInBlank}); err == nil {
		t.Error("FIB without expected answer should fail")
	}

	cr := &Item{
		Type: TypeConstructedResponse, DOK: 3, Stem: "Explain your reasoning.",
		CR: &CRPayload{
			ExpectedIdeas: []string{"uses place value"},
			Rubric:        []RubricDimension{{Dimension: "accuracy", Scale: "1-4"}},
		},
	}
	if err := v.Validate(cr, GenerateInput{Type: TypeConstructedResponse}); err != nil {
		t.Errorf("valid CR rejected: %v", err)
	}

	cr.CR.Rubric = nil
	if err := v.Validate(cr, GenerateInput{Type: TypeConstructedResponse}); err == nil {
		t.Error("CR without rubric should fail")
	}
}

func TestMaxScoreByType(t *testing.T) {
	if got := TypeMultipleChoice.MaxScore(); got != 1 {
		t.Errorf("MCQ max = %v, want 1", got)
	}
	if got := TypeFillInBlank.MaxScore(); got != 1 {
		t.Errorf("FIB max = %v, want 1", got)
	}
	if got := TypeConstructedResponse.MaxScore(); got != 4 {
		t.Errorf("CR max = %v, want 4", got)
	}
}
