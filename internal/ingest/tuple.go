package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/soltrack/soltrack/internal/catalog"
)

// Legacy standards files are Python source holding one list of tuples,
// e.g. `standards_data = [ ... ]`. Two layouts exist:
//
//	("strand", "code", "description", [("subcode", "subdesc"), ...])
//	("code", "description", ["subdesc", ...])
//
// The second layout omits the strand (inferred from the code) and the
// sub-objective codes (synthesized from their descriptions).

var (
	listBlockRe = regexp.MustCompile(`(?s)\w+\s*=\s*\[(.*?)\n\]`)

	strandTupleRe = regexp.MustCompile(`(?s)\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*\[(.*?)\]\s*\)`)
	subPairRe     = regexp.MustCompile(`(?s)\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*\)`)

	codeTupleRe = regexp.MustCompile(`(?s)\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*\[(.*?)\]\s*\)`)
	quotedRe    = regexp.MustCompile(`"([^"]+)"`)
)

// listBody returns the bracketed list contents, or the whole text when
// no assignment marker is present.
func listBody(text string) string {
	if m := listBlockRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// StrandTupleParser handles the 4-tuple layout with explicit strands and
// sub-objective codes.
type StrandTupleParser struct{}

func (p *StrandTupleParser) Name() string { return "strand-tuple" }

func (p *StrandTupleParser) Recognizes(text string) bool {
	return strandTupleRe.MatchString(listBody(text))
}

func (p *StrandTupleParser) Parse(text string, opts Options) (*Document, error) {
	matches := strandTupleRe.FindAllStringSubmatch(listBody(text), -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: no tuples found", p.Name())
	}

	doc := &Document{
		Source: opts.Source,
		Metadata: Metadata{
			Title:   opts.Source,
			Subject: opts.Subject,
			Grade:   opts.Grade,
		},
	}

	for _, m := range matches {
		strand, code, desc, subsRaw := m[1], m[2], m[3], m[4]

		std := newStandard(opts, code, strand, desc)
		for _, sm := range subPairRe.FindAllStringSubmatch(subsRaw, -1) {
			std.SubObjectives = append(std.SubObjectives, catalog.SubObjective{
				Code:        sm[1],
				Description: sm[2],
			})
		}
		doc.Standards = append(doc.Standards, std)
	}

	doc.Metadata.TotalStandards = len(doc.Standards)
	return doc, nil
}

// CodeTupleParser handles the 3-tuple layout. Strands come from the
// code's strand segment; sub-objective codes are synthesized from their
// descriptions.
type CodeTupleParser struct{}

func (p *CodeTupleParser) Name() string { return "code-tuple" }

func (p *CodeTupleParser) Recognizes(text string) bool {
	body := listBody(text)
	// The 4-tuple layout also matches the 3-tuple pattern on its tail,
	// so this format is only claimed when no 4-tuple is present.
	return codeTupleRe.MatchString(body) && !strandTupleRe.MatchString(body)
}

func (p *CodeTupleParser) Parse(text string, opts Options) (*Document, error) {
	matches := codeTupleRe.FindAllStringSubmatch(listBody(text), -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: no tuples found", p.Name())
	}

	doc := &Document{
		Source: opts.Source,
		Metadata: Metadata{
			Title:   opts.Source,
			Subject: opts.Subject,
			Grade:   opts.Grade,
		},
	}

	for _, m := range matches {
		code, desc, subsRaw := m[1], m[2], m[3]

		std := newStandard(opts, code, catalog.InferStrand(code), desc)
		for _, sm := range quotedRe.FindAllStringSubmatch(subsRaw, -1) {
			subDesc := sm[1]
			std.SubObjectives = append(std.SubObjectives, catalog.SubObjective{
				Code:        catalog.SubObjectiveCode(code, subDesc),
				Description: subDesc,
			})
		}
		doc.Standards = append(doc.Standards, std)
	}

	doc.Metadata.TotalStandards = len(doc.Standards)
	return doc, nil
}

func newStandard(opts Options, code, strand, desc string) *catalog.Standard {
	return &catalog.Standard{
		Code:                code,
		Subject:             strings.ToLower(opts.Subject),
		Grade:               opts.Grade,
		Strand:              strand,
		Description:         desc,
		Difficulty:          catalog.DifficultyGradeLevel,
		CognitiveComplexity: catalog.ComplexitySkill,
		SourceDocument:      opts.Source,
	}
}
