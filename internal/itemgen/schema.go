package itemgen

import "github.com/soltrack/soltrack/internal/llm"

// Response schemas for the generation service, one per item type. The
// common envelope (stem, dok) is repeated per schema because the
// providers' structured-output modes want a single flat definition.

var mcqSchema = &llm.Schema{
	Name:        "assessment-item-mcq",
	Description: "A multiple choice question aligned to one curriculum standard",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{
				"type":        "string",
				"description": "The question text shown to the student, plain ASCII",
			},
			"dok": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     4,
				"description": "Depth of Knowledge level",
			},
			"choices": map[string]any{
				"type":        "array",
				"description": "Exactly 4 options with exactly one correct",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":         map[string]any{"type": "string", "description": "Choice label: A, B, C, or D"},
						"text":       map[string]any{"type": "string"},
						"is_correct": map[string]any{"type": "boolean"},
					},
					"required":             []any{"id", "text", "is_correct"},
					"additionalProperties": false,
				},
			},
			"rationale": map[string]any{
				"type":        "object",
				"description": "Optional explanation per choice id of why it is right or wrong",
				"additionalProperties": map[string]any{
					"type": "string",
				},
			},
		},
		"required":             []any{"stem", "dok", "choices"},
		"additionalProperties": false,
	},
}

var fibSchema = &llm.Schema{
	Name:        "assessment-item-fib",
	Description: "A fill in the blank question aligned to one curriculum standard",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{
				"type":        "string",
				"description": "The question text with a blank, plain ASCII",
			},
			"dok": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 4,
			},
			"answer_key": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"expected": map[string]any{
						"type":        "string",
						"description": "The canonical correct answer",
					},
					"alt_equivalents": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Other acceptable phrasings or forms",
					},
					"format": map[string]any{
						"type":        "string",
						"description": "Expected answer format hint, e.g. 'number' or 'word'",
					},
				},
				"required":             []any{"expected"},
				"additionalProperties": false,
			},
			"tolerance": map[string]any{
				"type":        "number",
				"description": "Numeric tolerance for number answers, 0 for exact",
			},
			"units": map[string]any{
				"type":        "string",
				"description": "Required units, empty if none",
			},
		},
		"required":             []any{"stem", "dok", "answer_key"},
		"additionalProperties": false,
	},
}

var crSchema = &llm.Schema{
	Name:        "assessment-item-cr",
	Description: "A constructed response prompt with scoring rubric",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{
				"type":        "string",
				"description": "The open ended prompt shown to the student",
			},
			"dok": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 4,
			},
			"expected_ideas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key ideas a complete answer should include",
			},
			"rubric": map[string]any{
				"type":        "array",
				"description": "Ordered scoring dimensions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"dimension": map[string]any{"type": "string"},
						"scale":     map[string]any{"type": "string", "description": "What each score level 1-4 looks like"},
					},
					"required":             []any{"dimension", "scale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"stem", "dok", "expected_ideas", "rubric"},
		"additionalProperties": false,
	},
}

// schemaFor returns the response schema for the requested item type.
func schemaFor(t ItemType) *llm.Schema {
	switch t {
	case TypeMultipleChoice:
		return mcqSchema
	case TypeFillInBlank:
		return fibSchema
	case TypeConstructedResponse:
		return crSchema
	}
	return nil
}
