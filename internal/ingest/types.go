package ingest

import "github.com/soltrack/soltrack/internal/catalog"

// Metadata is the document-level summary extracted alongside the standards.
type Metadata struct {
	Title          string `json:"document_title"`
	Subject        string `json:"subject"`
	Grade          string `json:"grade_level"`
	Year           string `json:"year_approved"`
	TotalStandards int    `json:"total_standards"`
}

// Document is the result of extracting one standards document.
type Document struct {
	Source    string
	Metadata  Metadata
	Standards []*catalog.Standard
}

// Options carry per-document context the raw text cannot supply on its
// own: the source label and, for the deterministic formats, the subject
// and grade that the legacy files encoded in their filenames.
type Options struct {
	Source  string
	Subject string
	Grade   string
}
