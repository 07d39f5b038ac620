package catalog

import (
	"strings"
	"testing"
)

func validStandard() *Standard {
	return &Standard{
		Code:        "3.NS.1",
		Subject:     "mathematics",
		Grade:       "3",
		Strand:      "Number and Number Sense",
		Description: "The student will use place value understanding to read and write whole numbers.",
		SubObjectives: []SubObjective{
			{Code: "3.NS.1.a", Description: "Read and write six-digit whole numbers."},
		},
	}
}

func TestID(t *testing.T) {
	s := validStandard()
	if got := s.ID(); got != "mathematics-3-3.NS.1" {
		t.Errorf("ID() = %q, want mathematics-3-3.NS.1", got)
	}
}

func TestValidate(t *testing.T) {
	if err := validStandard().Validate(); err != nil {
		t.Fatalf("valid standard rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Standard)
		field  string
	}{
		{"missing code", func(s *Standard) { s.Code = "" }, "code"},
		{"missing subject", func(s *Standard) { s.Subject = "" }, "subject"},
		{"missing grade", func(s *Standard) { s.Grade = "" }, "grade"},
		{"missing strand", func(s *Standard) { s.Strand = "" }, "strand"},
		{"missing description", func(s *Standard) { s.Description = "" }, "description"},
		{"empty sub-objective", func(s *Standard) { s.SubObjectives[0].Description = "" }, "sub_objectives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStandard()
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			sv, ok := err.(*SchemaViolationError)
			if !ok {
				t.Fatalf("expected *SchemaViolationError, got %T", err)
			}
			if sv.Field != tt.field {
				t.Errorf("field = %q, want %q", sv.Field, tt.field)
			}
		})
	}
}

func TestInferStrand(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"3.NS.1", "Number and Number Sense"},
		{"4.CE.2", "Computation and Estimation"},
		{"5.MG.3", "Measurement and Geometry"},
		{"6.PS.1", "Probability and Statistics"},
		{"7.PFA.2", "Patterns, Functions, and Algebra"},
		{"A.EO.1", "Expressions and Operations"},
		{"A.EI.4", "Equations and Inequalities"},
		{"A.F.1", "Functions"},
		{"A.ST.3", "Statistics"},
		{"X.1", "General"},
		{"", "General"},
	}
	for _, tt := range tests {
		if got := InferStrand(tt.code); got != tt.want {
			t.Errorf("InferStrand(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSubObjectiveCode_Explicit(t *testing.T) {
	got := SubObjectiveCode("3.NS.1", "3.NS.1.a Read and write six-digit whole numbers.")
	if got != "3.NS.1.a" {
		t.Errorf("got %q, want 3.NS.1.a", got)
	}

	got = SubObjectiveCode("A.EO.2", "A.EO.2.c Simplify square roots of whole numbers.")
	if got != "A.EO.2.c" {
		t.Errorf("got %q, want A.EO.2.c", got)
	}
}

func TestSubObjectiveCode_Synthesized(t *testing.T) {
	got := SubObjectiveCode("3.NS.1", "Read and write six-digit whole numbers.")
	if got != "3.NS.1.read_and" {
		t.Errorf("got %q, want 3.NS.1.read_and", got)
	}
}

func TestSubObjectiveCode_CapsLength(t *testing.T) {
	long := strings.Repeat("abcdefghij ", 6)
	got := SubObjectiveCode("3.NS.1", long)
	if len(got) > 50 {
		t.Errorf("code length %d exceeds 50: %q", len(got), got)
	}
}
