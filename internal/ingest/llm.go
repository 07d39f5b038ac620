package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soltrack/soltrack/internal/catalog"
	"github.com/soltrack/soltrack/internal/llm"
)

const extractSystemPrompt = `You are an expert in state curriculum standards who extracts structured data from educational documents. You must return valid JSON that matches the provided schema exactly.`

const extractRules = `IMPORTANT EXTRACTION RULES:
1. Extract EVERY standard mentioned in the document
2. Identify the correct standard code format (e.g., grade.strand.number)
3. Group sub-objectives under their main standard
4. Infer subject and grade from document context
5. Map content to appropriate strands (Number Sense, Geometry, etc.)
6. Extract key vocabulary and terms mentioned
7. Identify cognitive complexity based on verbs used (remember=recall, apply=skill, analyze=strategic, create=extended)`

var documentSchema = &llm.Schema{
	Name:        "sol-document",
	Description: "Standards extracted from one curriculum document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"document_title":  map[string]any{"type": "string"},
					"subject":         map[string]any{"type": "string", "description": "mathematics, science, english, etc."},
					"grade_level":     map[string]any{"type": "string", "description": "K, 1, 2, 3, etc. or course name"},
					"year_approved":   map[string]any{"type": "string"},
					"total_standards": map[string]any{"type": "integer"},
				},
				"required":             []any{"document_title", "subject", "grade_level"},
				"additionalProperties": false,
			},
			"standards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"standard_code": map[string]any{"type": "string", "description": "e.g. '3.NS.1', 'ALG.A.1'"},
						"subject":       map[string]any{"type": "string"},
						"grade":         map[string]any{"type": "string"},
						"strand":        map[string]any{"type": "string", "description": "content strand/domain"},
						"title":         map[string]any{"type": "string"},
						"description":   map[string]any{"type": "string"},
						"sub_objectives": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"code":        map[string]any{"type": "string"},
									"description": map[string]any{"type": "string"},
								},
								"required":             []any{"code", "description"},
								"additionalProperties": false,
							},
						},
						"prerequisites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"connections":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"key_terms":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"foundational", "grade-level", "advanced"},
						},
						"cognitive_complexity": map[string]any{
							"type": "string",
							"enum": []any{"recall", "skill", "strategic", "extended"},
						},
					},
					"required":             []any{"standard_code", "subject", "grade", "strand", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"metadata", "standards"},
		"additionalProperties": false,
	},
}

type subObjectiveOutput struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type standardOutput struct {
	StandardCode        string               `json:"standard_code"`
	Subject             string               `json:"subject"`
	Grade               string               `json:"grade"`
	Strand              string               `json:"strand"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	SubObjectives       []subObjectiveOutput `json:"sub_objectives"`
	Prerequisites       []string             `json:"prerequisites"`
	Connections         []string             `json:"connections"`
	KeyTerms            []string             `json:"key_terms"`
	Difficulty          string               `json:"difficulty"`
	CognitiveComplexity string               `json:"cognitive_complexity"`
}

type documentOutput struct {
	Metadata  Metadata         `json:"metadata"`
	Standards []standardOutput `json:"standards"`
}

// LLMExtractor extracts standards from free-form document text through
// the generation service. It is the fallback when no deterministic
// parser recognizes the layout.
type LLMExtractor struct {
	provider  llm.Provider
	maxTokens int
}

// NewLLMExtractor creates an extractor over the given provider.
func NewLLMExtractor(provider llm.Provider) *LLMExtractor {
	return &LLMExtractor{provider: provider, maxTokens: 4000}
}

// Extract runs one extraction pass over the document text.
func (e *LLMExtractor) Extract(ctx context.Context, text string, opts Options) (*Document, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExtract)

	var b strings.Builder
	fmt.Fprintf(&b, "Extract standards data from this document and return it as structured JSON.\n\n")
	fmt.Fprintf(&b, "Document: %s\n", opts.Source)
	fmt.Fprintf(&b, "Content:\n%s\n\n", text)
	b.WriteString(extractRules)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      documentSchema,
		MaxTokens:   e.maxTokens,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction request: %w", err)
	}

	raw := resp.Content
	if !json.Valid(raw) {
		raw, err = llm.ExtractJSON(string(resp.Content))
		if err != nil {
			return nil, fmt.Errorf("extraction response: %w", err)
		}
	}

	var out documentOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	doc := &Document{Source: opts.Source, Metadata: out.Metadata}
	for _, so := range out.Standards {
		std := &catalog.Standard{
			Code:                so.StandardCode,
			Subject:             strings.ToLower(so.Subject),
			Grade:               so.Grade,
			Strand:              so.Strand,
			Title:               so.Title,
			Description:         so.Description,
			Prerequisites:       so.Prerequisites,
			Connections:         so.Connections,
			KeyTerms:            so.KeyTerms,
			Difficulty:          catalog.Difficulty(so.Difficulty),
			CognitiveComplexity: catalog.CognitiveComplexity(so.CognitiveComplexity),
			SourceDocument:      opts.Source,
		}
		for _, sub := range so.SubObjectives {
			std.SubObjectives = append(std.SubObjectives, catalog.SubObjective{
				Code:        sub.Code,
				Description: sub.Description,
			})
		}
		doc.Standards = append(doc.Standards, std)
	}
	if doc.Metadata.TotalStandards == 0 {
		doc.Metadata.TotalStandards = len(doc.Standards)
	}
	return doc, nil
}
