package catalog

import (
	"fmt"
	"time"
)

// Difficulty tiers a standard relative to its grade.
type Difficulty string

const (
	DifficultyFoundational Difficulty = "foundational"
	DifficultyGradeLevel   Difficulty = "grade-level"
	DifficultyAdvanced     Difficulty = "advanced"
)

// CognitiveComplexity is the depth-of-knowledge style tier for a standard,
// inferred from the verbs its description uses.
type CognitiveComplexity string

const (
	ComplexityRecall    CognitiveComplexity = "recall"
	ComplexitySkill     CognitiveComplexity = "skill"
	ComplexityStrategic CognitiveComplexity = "strategic"
	ComplexityExtended  CognitiveComplexity = "extended"
)

// SubObjective is a lettered bullet under a standard, e.g. 3.NS.1.a.
type SubObjective struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Standard is one curriculum standard. Identity is (Subject, Grade, Code);
// standards are never deleted, only superseded by re-ingestion.
type Standard struct {
	Code                string
	Subject             string
	Grade               string
	Strand              string
	Title               string
	Description         string
	SubObjectives       []SubObjective
	Prerequisites       []string
	Connections         []string
	KeyTerms            []string
	Difficulty          Difficulty
	CognitiveComplexity CognitiveComplexity
	SourceDocument      string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ID returns the natural storage key, e.g. "mathematics-3-3.NS.1".
func (s *Standard) ID() string {
	return fmt.Sprintf("%s-%s-%s", s.Subject, s.Grade, s.Code)
}

// Validate checks the required fields. A standard missing any of them
// cannot be committed; during ingestion this fails the whole document.
func (s *Standard) Validate() error {
	switch {
	case s.Code == "":
		return &SchemaViolationError{Field: "code", Reason: "missing"}
	case s.Subject == "":
		return &SchemaViolationError{Field: "subject", Reason: "missing", Code: s.Code}
	case s.Grade == "":
		return &SchemaViolationError{Field: "grade", Reason: "missing", Code: s.Code}
	case s.Strand == "":
		return &SchemaViolationError{Field: "strand", Reason: "missing", Code: s.Code}
	case s.Description == "":
		return &SchemaViolationError{Field: "description", Reason: "missing", Code: s.Code}
	}
	for _, sub := range s.SubObjectives {
		if sub.Description == "" {
			return &SchemaViolationError{Field: "sub_objectives", Reason: "sub-objective without description", Code: s.Code}
		}
	}
	return nil
}

// SchemaViolationError reports a standard that fails required-field
// validation during ingestion.
type SchemaViolationError struct {
	Code   string // standard code, when known
	Field  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("standard %s: field %q %s", e.Code, e.Field, e.Reason)
	}
	return fmt.Sprintf("standard field %q %s", e.Field, e.Reason)
}
