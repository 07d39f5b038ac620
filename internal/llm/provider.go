package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the external text/JSON generation service. Item
// generation, constructed-response judgment, and free-text document
// extraction all go through this one interface.
type Provider interface {
	// Generate sends a prompt and returns the response. When the request
	// carries a Schema, the provider uses its native structured-output
	// mechanism and the returned Content is the validated JSON object.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one call to the generation service.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn in this codebase.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must match.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "assessment-item-mcq".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the generation service's output.
type Response struct {
	// Content is the generated output. With a Schema it is the validated
	// JSON object; without one it is the raw text as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
