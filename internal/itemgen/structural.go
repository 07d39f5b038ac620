package itemgen

import "fmt"

// StructuralValidator checks that the item's fields are present, within
// limits, and that the payload matches the declared item type.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item *Item, input GenerateInput) *ValidationError {
	if item.Stem == "" {
		return v.fail("stem is empty")
	}
	if len(item.Stem) > 1000 {
		return v.fail("stem exceeds 1000 characters")
	}
	if item.DOK < 1 || item.DOK > 4 {
		return v.fail("dok must be between 1 and 4")
	}
	if item.Type != input.Type {
		// The generator must never substitute a different type than requested.
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("generated type %s does not match requested %s", item.Type, input.Type),
			Retryable: true,
		}
	}

	switch item.Type {
	case TypeMultipleChoice:
		return v.validateMCQ(item.MCQ)
	case TypeFillInBlank:
		return v.validateFIB(item.FIB)
	case TypeConstructedResponse:
		return v.validateCR(item.CR)
	default:
		return v.fail(fmt.Sprintf("unknown item type %q", item.Type))
	}
}

func (v *StructuralValidator) validateMCQ(p *MCQPayload) *ValidationError {
	if p == nil {
		return v.fail("MCQ item has no choices payload")
	}
	if len(p.Choices) < 2 {
		return v.fail("MCQ needs at least 2 choices")
	}
	correct := 0
	seen := make(map[string]bool, len(p.Choices))
	for _, c := range p.Choices {
		if c.ID == "" || c.Text == "" {
			return v.fail("MCQ choice missing id or text")
		}
		if seen[c.ID] {
			return v.fail(fmt.Sprintf("duplicate choice id %q", c.ID))
		}
		seen[c.ID] = true
		if c.Correct {
			correct++
		}
	}
	if correct != 1 {
		return v.fail(fmt.Sprintf("MCQ must have exactly one correct choice, got %d", correct))
	}
	return nil
}

func (v *StructuralValidator) validateFIB(p *FIBPayload) *ValidationError {
	if p == nil {
		return v.fail("FIB item has no answer key payload")
	}
	if p.AnswerKey.Expected == "" {
		return v.fail("FIB expected answer is empty")
	}
	return nil
}

func (v *StructuralValidator) validateCR(p *CRPayload) *ValidationError {
	if p == nil {
		return v.fail("CR item has no rubric payload")
	}
	if len(p.Rubric) == 0 {
		return v.fail("CR rubric is empty")
	}
	for _, d := range p.Rubric {
		if d.Dimension == "" || d.Scale == "" {
			return v.fail("CR rubric dimension missing name or scale")
		}
	}
	if len(p.ExpectedIdeas) == 0 {
		return v.fail("CR expected ideas list is empty")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
