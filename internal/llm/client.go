package llm

import (
	"context"
)

// Client is an interface for invoking generation models on a backend.
// This allows mocking in tests without making real API calls.
type Client interface {
	Generate(ctx context.Context, request Request) (*Response, error)
	ListModels(ctx context.Context) ([]string, error)
}
