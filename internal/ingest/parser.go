package ingest

// Parser is one deterministic extraction strategy for a known legacy
// document layout. Each known format gets its own implementation; all of
// them converge on the same Document shape.
type Parser interface {
	// Name identifies the format for logging, e.g. "strand-tuple".
	Name() string

	// Recognizes reports whether the text looks like this parser's format.
	Recognizes(text string) bool

	// Parse extracts the standards. Called only when Recognizes is true.
	Parse(text string, opts Options) (*Document, error)
}
