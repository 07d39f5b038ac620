package catalog

import (
	"regexp"
	"strings"
)

// maxSyntheticCodeLen caps synthesized sub-objective codes so they stay
// usable as storage keys.
const maxSyntheticCodeLen = 50

// subCodePattern matches an explicit sub-objective code at the start of a
// description: grade or course prefix, strand segment, number, lowercase
// letter. Examples: 3.NS.1.a, A.EO.2.c, K.MG.3.b.
var subCodePattern = regexp.MustCompile(`^([0-9K]+|[A-Z]+)\.[A-Z]+\.\d+\.[a-z]\b`)

// SubObjectiveCode extracts the sub-objective's own code from its
// description, or synthesizes one from the parent code and the first two
// words of the description when no explicit code is present.
func SubObjectiveCode(parentCode, description string) string {
	if m := subCodePattern.FindString(description); m != "" {
		return m
	}
	return synthesizeCode(parentCode, description)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9_]`)

func synthesizeCode(parentCode, description string) string {
	words := strings.Fields(description)
	if len(words) > 2 {
		words = words[:2]
	}
	slug := nonAlnum.ReplaceAllString(strings.ToLower(strings.Join(words, "_")), "")
	code := parentCode + "." + slug
	if len(code) > maxSyntheticCodeLen {
		code = code[:maxSyntheticCodeLen]
	}
	return code
}
