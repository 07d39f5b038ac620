package lessons

import "github.com/soltrack/soltrack/internal/llm"

// lessonSchema defines the JSON schema for micro-lesson generation.
var lessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A micro-lesson with explanation, worked example, and practice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the lesson (3-8 words)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear, grade-appropriate explanation of the standard (3-5 sentences)",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked example with numbered steps",
			},
			"practice_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "A simple practice question the learner can try",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The correct answer",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Brief explanation of the practice answer",
					},
				},
				"required":             []any{"text", "answer", "explanation"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "explanation", "worked_example", "practice_question"},
		"additionalProperties": false,
	},
}
