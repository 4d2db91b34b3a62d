// Package llm talks to the text-generation services used by the code
// explainer. Every backend is reached through Provider so callers can swap in
// a fake in tests.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a backend answers without any text.
var ErrEmptyResponse = errors.New("llm: response has no text")

// Provider is a text-generation backend.
type Provider interface {
	// Complete sends one request and returns the generated text.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend in logs.
	Name() string
}
