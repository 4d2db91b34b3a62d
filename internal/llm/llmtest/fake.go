// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/lyra-docs/lyra/internal/llm"
)

// Fake records every request and answers with Response or Err. When Gate is
// non-nil each call blocks until a value is sent on it or ctx ends.
type Fake struct {
	mu       sync.Mutex
	calls    []llm.CompletionRequest
	Response *llm.CompletionResponse
	Err      error
	Gate     chan struct{}
	// Started, when non-nil, receives one value per call once the request
	// has been recorded.
	Started chan struct{}
}

// New returns a Fake that answers with text.
func New(text string) *Fake {
	return &Fake{
		Response: &llm.CompletionResponse{
			Content:      text,
			InputTokens:  10,
			OutputTokens: 20,
			Model:        "fake-model",
			FinishReason: "STOP",
		},
	}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	gate, started := f.Gate, f.Started
	resp, err := f.Response, f.Err
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Calls returns a copy of the recorded requests.
func (f *Fake) Calls() []llm.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]llm.CompletionRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns the number of requests received.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
