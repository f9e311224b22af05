package llm

import (
	"context"
	"errors"
)

// Request captures one completion call to the AI service.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Client abstracts AI-service providers for resume evaluation and Q&A
// generation. Implementations request a JSON-object response and return the
// raw completion text; callers own parsing and validation.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
