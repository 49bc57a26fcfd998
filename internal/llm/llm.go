package llm

import (
	"context"
	"fmt"
)

// Client produces the raw text of a deck specification for a user prompt.
// The response is expected to contain a single JSON object; extraction and
// validation happen downstream.
type Client interface {
	GenerateDeck(ctx context.Context, prompt string) (string, error)
	Model() string
}

// UpstreamError wraps a provider failure (network, auth, rate limit). It is
// fatal for the invocation; no retries happen anywhere in the pipeline.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
