package lessons

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soltrack/soltrack/internal/llm"
)

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

// Service generates micro-lessons.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title            string `json:"title"`
	Explanation      string `json:"explanation"`
	WorkedExample    string `json:"worked_example"`
	PracticeQuestion struct {
		Text        string `json:"text"`
		Answer      string `json:"answer"`
		Explanation string `json:"explanation"`
	} `json:"practice_question"`
}

// Generate builds one micro-lesson for the input's standard.
func (s *Service) Generate(ctx context.Context, input Input) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(input)},
		},
		Schema:      lessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	raw := json.RawMessage(resp.Content)
	if !json.Valid(raw) {
		raw, err = llm.ExtractJSON(string(resp.Content))
		if err != nil {
			return nil, fmt.Errorf("parse lesson response: %w", err)
		}
	}

	var out lessonOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}
	if out.Explanation == "" || out.PracticeQuestion.Text == "" {
		return nil, fmt.Errorf("lesson response missing explanation or practice question")
	}

	return &Lesson{
		StandardID:    input.Standard.ID(),
		Title:         out.Title,
		Explanation:   out.Explanation,
		WorkedExample: out.WorkedExample,
		PracticeQuestion: PracticeQuestion{
			Text:        out.PracticeQuestion.Text,
			Answer:      out.PracticeQuestion.Answer,
			Explanation: out.PracticeQuestion.Explanation,
		},
	}, nil
}
