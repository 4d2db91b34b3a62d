package clipboard

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	writes []string
	err    error
}

func (w *recordingWriter) WriteText(text string) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, text)
	return nil
}

type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

func TestCopyWritesExactCodeAndReverts(t *testing.T) {
	w := &recordingWriter{}
	clock := &manualClock{}
	c := NewControl("print(1)", w, clock)

	require.NoError(t, c.Copy())
	assert.Equal(t, []string{"print(1)"}, w.writes)
	assert.True(t, c.Copied())

	clock.Advance(1999 * time.Millisecond)
	assert.True(t, c.Copied())

	clock.Advance(time.Millisecond)
	assert.False(t, c.Copied())
}

func TestSecondCopyRestartsWindow(t *testing.T) {
	w := &recordingWriter{}
	clock := &manualClock{}
	c := NewControl("ls -la", w, clock)

	require.NoError(t, c.Copy())
	clock.Advance(1500 * time.Millisecond)
	require.NoError(t, c.Copy())

	clock.Advance(1000 * time.Millisecond)
	assert.True(t, c.Copied(), "window restarts on the second copy")

	clock.Advance(1000 * time.Millisecond)
	assert.False(t, c.Copied())
	assert.Len(t, w.writes, 2)
}

func TestCopyFailureIsReported(t *testing.T) {
	boom := errors.New("permission denied")
	c := NewControl("x", &recordingWriter{err: boom}, &manualClock{})

	err := c.Copy()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Copied())
}

func TestCodePreservesWhitespace(t *testing.T) {
	code := "def f():\n    return `x` <b>\n"
	w := &recordingWriter{}
	c := NewControl(code, w, &manualClock{})
	require.NoError(t, c.Copy())
	assert.Equal(t, code, w.writes[0])
	assert.Equal(t, code, c.Code())
}

func TestConfirmWindow(t *testing.T) {
	assert.Equal(t, 2000*time.Millisecond, ConfirmWindow)
}
