// Package explainer sends pasted code to a language model and tracks the
// outcome as a small state machine: idle, submitting, then succeeded or
// failed. Each Explainer allows one request at a time.
package explainer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lyra-docs/lyra/internal/llm"
	"github.com/lyra-docs/lyra/internal/logger"
)

// User-visible messages.
const (
	MsgEmptyInput    = "Please enter some code to explain."
	MsgRequestFailed = "An error occurred while explaining the code. Please try again."
)

// DefaultTimeout bounds a single explain request.
const DefaultTimeout = 60 * time.Second

var (
	// ErrEmptyInput is returned for code that is blank after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrInFlight is returned when a request is already running.
	ErrInFlight = errors.New("explain request already in flight")
	// ErrRequestFailed is returned when the model call failed. The cause is
	// logged, not wrapped.
	ErrRequestFailed = errors.New("explain request failed")
)

// State is the explainer state shown to the visitor.
type State struct {
	InputCode   string `json:"input_code"`
	Explanation string `json:"explanation"`
	IsLoading   bool   `json:"is_loading"`
	Error       string `json:"error"`
}

// Outcome describes one finished request.
type Outcome struct {
	Code         string
	Explanation  string
	Err          error
	Provider     string
	Model        string
	Duration     time.Duration
	InputTokens  int
	OutputTokens int
}

// Recorder is notified after every finished request.
type Recorder interface {
	RecordExplain(ctx context.Context, o Outcome)
}

// Option configures an Explainer.
type Option func(*Explainer)

// WithTimeout sets the per-request timeout. Non-positive values disable it.
func WithTimeout(d time.Duration) Option {
	return func(e *Explainer) { e.timeout = d }
}

// WithRecorder attaches r to the explainer.
func WithRecorder(r Recorder) Option {
	return func(e *Explainer) { e.recorder = r }
}

// Explainer owns one State.
type Explainer struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	recorder Recorder

	mu    sync.Mutex
	state State
}

// New creates an idle explainer sending requests for model through provider.
func New(provider llm.Provider, model string, opts ...Option) *Explainer {
	e := &Explainer{
		provider: provider,
		model:    model,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot of the current state.
func (e *Explainer) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Request is an accepted submission waiting to be sent.
type Request struct {
	e    *Explainer
	code string
	once sync.Once
}

// Code returns the submitted code.
func (r *Request) Code() string { return r.code }

// Begin validates code and performs the synchronous part of a submission:
// previous results are cleared and the state is marked loading. The
// returned Request must be Run exactly once.
func (e *Explainer) Begin(code string) (*Request, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsLoading {
		return nil, ErrInFlight
	}
	e.state.InputCode = code
	if strings.TrimSpace(code) == "" {
		// A state never carries both an explanation and an error.
		e.state.Explanation = ""
		e.state.Error = MsgEmptyInput
		return nil, ErrEmptyInput
	}

	e.state.IsLoading = true
	e.state.Explanation = ""
	e.state.Error = ""
	return &Request{e: e, code: code}, nil
}

// Run sends the request and applies the outcome. Calls after the first
// return the current state without sending anything.
func (r *Request) Run(ctx context.Context) (State, error) {
	var err error
	ran := false
	r.once.Do(func() {
		ran = true
		err = r.e.run(ctx, r.code)
	})
	if !ran {
		return r.e.State(), nil
	}
	return r.e.State(), err
}

// Submit is Begin followed by Run.
func (e *Explainer) Submit(ctx context.Context, code string) (State, error) {
	req, err := e.Begin(code)
	if err != nil {
		return e.State(), err
	}
	return req.Run(ctx)
}

func (e *Explainer) run(ctx context.Context, code string) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := e.provider.Complete(ctx, llm.UserPrompt(e.model, Prompt(code)))
	if err == nil && strings.TrimSpace(resp.Content) == "" {
		err = llm.ErrEmptyResponse
	}

	outcome := Outcome{
		Code:     code,
		Err:      err,
		Provider: e.provider.Name(),
		Model:    e.model,
		Duration: time.Since(start),
	}

	log := logger.G(ctx).WithFields(logrus.Fields{
		"provider": outcome.Provider,
		"model":    e.model,
		"duration": outcome.Duration.Round(time.Millisecond).String(),
	})

	e.mu.Lock()
	e.state.IsLoading = false
	if err != nil {
		e.state.Explanation = ""
		e.state.Error = MsgRequestFailed
	} else {
		outcome.Explanation = resp.Content
		outcome.InputTokens = resp.InputTokens
		outcome.OutputTokens = resp.OutputTokens
		e.state.Explanation = resp.Content
		e.state.Error = ""
	}
	e.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("error explaining code")
	} else {
		log.WithFields(logrus.Fields{
			"input_tokens":  resp.InputTokens,
			"output_tokens": resp.OutputTokens,
			"cost_usd":      llm.EstimateCost(e.model, resp.InputTokens, resp.OutputTokens),
		}).Debug("code explained")
	}

	if e.recorder != nil {
		e.recorder.RecordExplain(context.WithoutCancel(ctx), outcome)
	}

	if err != nil {
		return ErrRequestFailed
	}
	return nil
}
