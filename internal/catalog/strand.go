package catalog

import "strings"

// strandAbbrevs maps the strand segment of a standard code to its display
// name. Covers the K-8 strands and the high-school course strands.
var strandAbbrevs = map[string]string{
	"NS":  "Number and Number Sense",
	"CE":  "Computation and Estimation",
	"MG":  "Measurement and Geometry",
	"PS":  "Probability and Statistics",
	"PFA": "Patterns, Functions, and Algebra",
	"EO":  "Expressions and Operations",
	"EI":  "Equations and Inequalities",
	"F":   "Functions",
	"ST":  "Statistics",
	"T":   "Triangular and Circular Trigonometric Functions",
}

// InferStrand derives a strand name from a standard code such as "3.NS.1"
// or "A.EO.2". Codes with no recognizable strand segment map to "General".
func InferStrand(code string) string {
	for _, seg := range strings.Split(code, ".") {
		if name, ok := strandAbbrevs[strings.ToUpper(seg)]; ok {
			return name
		}
	}
	return "General"
}
