// Package audit records every explain request and its outcome in the
// explain history table.
package audit

import "time"

// Status is the outcome of an explain request.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Entry is a single explain history record.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	SessionID    string    `json:"session_id,omitempty"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Status       Status    `json:"status"`
	Code         string    `json:"code"`
	Explanation  string    `json:"explanation,omitempty"`
	Error        string    `json:"error,omitempty"`
	DurationMS   int64     `json:"duration_ms"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CostUSD      float64   `json:"cost_usd"`
}
