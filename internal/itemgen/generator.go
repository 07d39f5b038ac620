package itemgen

import "context"

// Generator produces assessment items using an LLM provider.
type Generator interface {
	// Generate produces a single item for the given input. The returned
	// item has passed all configured validators but has no ID and is
	// not yet persisted. Failures wrap ErrGenerationFailed.
	Generate(ctx context.Context, input GenerateInput) (*Item, error)
}
