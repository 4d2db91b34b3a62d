// Package clipboard implements the copy control shown next to every code
// block: write the exact code string, confirm, then revert after a fixed window.
package clipboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/lyra-docs/lyra/internal/logger"
)

// ConfirmWindow is how long the "copied" confirmation stays visible.
const ConfirmWindow = 2 * time.Second

// Writer receives text destined for a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// RealClock schedules on the runtime timer.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Control is the copy button for a single code block.
type Control struct {
	code   string
	writer Writer
	clock  Clock

	mu     sync.Mutex
	copied bool
	timer  Timer
	gen    uint64
}

// NewControl creates a control for code. A nil clock uses RealClock.
func NewControl(code string, w Writer, clock Clock) *Control {
	if clock == nil {
		clock = RealClock{}
	}
	return &Control{code: code, writer: w, clock: clock}
}

// Code returns the exact string this control copies.
func (c *Control) Code() string { return c.code }

// Copy writes the code to the clipboard. On success the control reports
// Copied until ConfirmWindow has passed since the most recent successful
// copy. On failure the confirmation is left unchanged and the error returned.
func (c *Control) Copy() error {
	if err := c.writer.WriteText(c.code); err != nil {
		logger.L.WithError(err).Warn("failed to copy code block")
		return fmt.Errorf("writing to clipboard: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.copied = true
	c.timer = c.clock.AfterFunc(ConfirmWindow, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A later copy owns the confirmation now.
		if c.gen == gen {
			c.copied = false
			c.timer = nil
		}
	})
	return nil
}

// Copied reports whether the confirmation is showing.
func (c *Control) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}
