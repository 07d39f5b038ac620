package ingest

import "testing"

const strandTupleDoc = `# Grade 3 Mathematics Standards of Learning
standards_data = [
    ("Number and Number Sense", "3.NS.1", "The student will read, write, and identify the place value of each digit in a six-digit whole number.", [
        ("3.NS.1.a", "Read six-digit numerals orally."),
        ("3.NS.1.b", "Write six-digit numerals in standard form."),
    ]),
    ("Computation and Estimation", "3.CE.1", "The student will estimate and determine sums and differences of whole numbers.", [
        ("3.CE.1.a", "Estimate sums and differences."),
    ]),
]
`

const codeTupleDoc = `algebra1_data = [
    ("A.EO.1", "The student will represent verbal quantitative situations algebraically.", [
        "A.EO.1.a Translate verbal situations into algebraic expressions",
        "Simplify algebraic expressions using basic operations",
    ]),
    ("A.F.1", "The student will investigate characteristics of linear functions.", []),
]
`

func TestStrandTupleParser(t *testing.T) {
	p := &StrandTupleParser{}
	if !p.Recognizes(strandTupleDoc) {
		t.Fatal("should recognize the 4-tuple layout")
	}

	doc, err := p.Parse(strandTupleDoc, Options{
		Source: "3_MATH_SOL.py", Subject: "mathematics", Grade: "3",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Standards) != 2 {
		t.Fatalf("standards = %d, want 2", len(doc.Standards))
	}

	first := doc.Standards[0]
	if first.Code != "3.NS.1" {
		t.Errorf("code = %q", first.Code)
	}
	if first.Strand != "Number and Number Sense" {
		t.Errorf("strand = %q", first.Strand)
	}
	if len(first.SubObjectives) != 2 {
		t.Fatalf("sub-objectives = %d, want 2", len(first.SubObjectives))
	}
	if first.SubObjectives[0].Code != "3.NS.1.a" {
		t.Errorf("sub code = %q", first.SubObjectives[0].Code)
	}
	if doc.Metadata.TotalStandards != 2 {
		t.Errorf("metadata count = %d", doc.Metadata.TotalStandards)
	}
}

func TestCodeTupleParser(t *testing.T) {
	p := &CodeTupleParser{}
	if !p.Recognizes(codeTupleDoc) {
		t.Fatal("should recognize the 3-tuple layout")
	}
	if p.Recognizes(strandTupleDoc) {
		t.Error("must not claim the 4-tuple layout")
	}

	doc, err := p.Parse(codeTupleDoc, Options{
		Source: "ALG_MATH_SOL.py", Subject: "mathematics", Grade: "Algebra1",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Standards) != 2 {
		t.Fatalf("standards = %d, want 2", len(doc.Standards))
	}

	first := doc.Standards[0]
	if first.Strand != "Expressions and Operations" {
		t.Errorf("inferred strand = %q", first.Strand)
	}
	if len(first.SubObjectives) != 2 {
		t.Fatalf("sub-objectives = %d, want 2", len(first.SubObjectives))
	}
	// Explicit sub code parsed from the description.
	if first.SubObjectives[0].Code != "A.EO.1.a" {
		t.Errorf("parsed sub code = %q", first.SubObjectives[0].Code)
	}
	// No code in the description: synthesized from the first two words.
	if first.SubObjectives[1].Code != "A.EO.1.simplify_algebraic" {
		t.Errorf("synthesized sub code = %q", first.SubObjectives[1].Code)
	}

	second := doc.Standards[1]
	if second.Strand != "Functions" {
		t.Errorf("inferred strand = %q", second.Strand)
	}
	if len(second.SubObjectives) != 0 {
		t.Errorf("expected no sub-objectives, got %d", len(second.SubObjectives))
	}
}

func TestParsersIgnoreUnknownText(t *testing.T) {
	plain := "The student will describe the water cycle including evaporation and condensation."
	if (&StrandTupleParser{}).Recognizes(plain) {
		t.Error("strand parser claimed free text")
	}
	if (&CodeTupleParser{}).Recognizes(plain) {
		t.Error("code parser claimed free text")
	}
}
