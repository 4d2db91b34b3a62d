package audit

import (
	"context"

	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/llm"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/session"
)

// Recorder writes explainer outcomes to a Store.
type Recorder struct {
	store *Store
}

// NewRecorder returns an explainer.Recorder backed by store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

// RecordExplain logs o. Storage failures are logged and otherwise ignored so
// the visitor still sees the explanation.
func (r *Recorder) RecordExplain(ctx context.Context, o explainer.Outcome) {
	entry := Entry{
		SessionID:    session.IDFromContext(ctx),
		Provider:     o.Provider,
		Model:        o.Model,
		Status:       StatusSucceeded,
		Code:         o.Code,
		Explanation:  o.Explanation,
		DurationMS:   o.Duration.Milliseconds(),
		InputTokens:  o.InputTokens,
		OutputTokens: o.OutputTokens,
		CostUSD:      llm.EstimateCost(o.Model, o.InputTokens, o.OutputTokens),
	}
	if o.Err != nil {
		entry.Status = StatusFailed
		entry.Error = o.Err.Error()
	}
	if err := r.store.Log(ctx, entry); err != nil {
		logger.G(ctx).WithError(err).Warn("failed to record explain history")
	}
}
