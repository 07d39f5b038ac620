package cmd

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/internal/llm"
	"github.com/soltrack/soltrack/internal/store"
)

// newProvider builds the configured LLM provider with event logging
// wired to the store. Fails when no API key is configured.
func newProvider(ctx context.Context, s *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("LLM configuration: %w", err)
	}
	return llm.NewProvider(ctx, cfg, s.EventRepo())
}

// newProviderOrDegraded is like newProvider but falls back to an empty
// mock provider when no API key is configured. Callers whose LLM path
// degrades gracefully (the constructed-response judge) use this so that
// MCQ and FIB scoring keep working offline.
func newProviderOrDegraded(ctx context.Context, s *store.Store) llm.Provider {
	p, err := newProvider(ctx, s)
	if err != nil {
		return llm.NewMockProvider()
	}
	return p
}
