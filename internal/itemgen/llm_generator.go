package itemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soltrack/soltrack/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

type mcqOutput struct {
	Stem      string            `json:"stem"`
	DOK       int               `json:"dok"`
	Choices   []Choice          `json:"choices"`
	Rationale map[string]string `json:"rationale"`
}

type fibOutput struct {
	Stem      string    `json:"stem"`
	DOK       int       `json:"dok"`
	AnswerKey AnswerKey `json:"answer_key"`
	Tolerance float64   `json:"tolerance"`
	Units     string    `json:"units"`
}

type crOutput struct {
	Stem          string            `json:"stem"`
	DOK           int               `json:"dok"`
	ExpectedIdeas []string          `json:"expected_ideas"`
	Rubric        []RubricDimension `json:"rubric"`
}

// Generate produces a single validated item for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Item, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrGenerationFailed, input.Type)
	}
	if input.Standard == nil {
		return nil, fmt.Errorf("%w: no standard", ErrGenerationFailed)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeItemGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      schemaFor(input.Type),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// Providers with structured output return clean JSON, but a model
	// may still wrap it in prose or a code fence. Extract the first
	// balanced object before parsing.
	raw := resp.Content
	if !json.Valid(raw) {
		raw, err = llm.ExtractJSON(string(resp.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
	}

	item, err := g.parse(input, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(item, input); verr != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, verr)
		}
	}

	return item, nil
}

func (g *LLMGenerator) parse(input GenerateInput, raw json.RawMessage) (*Item, error) {
	item := &Item{
		StandardID: input.Standard.ID(),
		Type:       input.Type,
		Difficulty: input.Difficulty,
	}

	switch input.Type {
	case TypeMultipleChoice:
		var out mcqOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("parse MCQ response: %w", err)
		}
		item.Stem = out.Stem
		item.DOK = out.DOK
		item.MCQ = &MCQPayload{Choices: out.Choices, Rationale: out.Rationale}

	case TypeFillInBlank:
		var out fibOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("parse FIB response: %w", err)
		}
		item.Stem = out.Stem
		item.DOK = out.DOK
		item.FIB = &FIBPayload{AnswerKey: out.AnswerKey, Tolerance: out.Tolerance, Units: out.Units}

	case TypeConstructedResponse:
		var out crOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("parse CR response: %w", err)
		}
		item.Stem = out.Stem
		item.DOK = out.DOK
		item.CR = &CRPayload{ExpectedIdeas: out.ExpectedIdeas, Rubric: out.Rubric}
	}

	return item, nil
}
