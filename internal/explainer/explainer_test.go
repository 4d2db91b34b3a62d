package explainer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-docs/lyra/internal/llm"
	"github.com/lyra-docs/lyra/internal/llm/llmtest"
)

const model = "gemini-2.5-flash"

type recorder struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (r *recorder) RecordExplain(_ context.Context, o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func TestEmptyInputMakesNoRequest(t *testing.T) {
	for _, code := range []string{"", "   ", "\n\t "} {
		fake := llmtest.New("unused")
		e := New(fake, model)

		st, err := e.Submit(context.Background(), code)
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Equal(t, MsgEmptyInput, st.Error)
		assert.False(t, st.IsLoading)
		assert.Zero(t, fake.CallCount())
	}
}

func TestEmptyInputAfterSuccessClearsExplanation(t *testing.T) {
	e := New(llmtest.New("## Summary\nfine"), model)

	_, err := e.Submit(context.Background(), "x = 1")
	require.NoError(t, err)

	st, err := e.Submit(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, MsgEmptyInput, st.Error)
	assert.Empty(t, st.Explanation)
}

func TestBeginSetsLoadingSynchronously(t *testing.T) {
	fake := llmtest.New("explained")
	e := New(fake, model)

	req, err := e.Begin("x = 1")
	require.NoError(t, err)

	st := e.State()
	assert.True(t, st.IsLoading)
	assert.Equal(t, "x = 1", st.InputCode)
	assert.Empty(t, st.Error)
	assert.Empty(t, st.Explanation)
	assert.Zero(t, fake.CallCount(), "nothing is sent before Run")

	_, err = req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount())
}

func TestSubmitSendsOneRequestWithVerbatimCode(t *testing.T) {
	code := "def add(a, b):\n    return a + b  # `sum`"
	fake := llmtest.New("## Summary\nAdds two numbers.")
	e := New(fake, model)

	st, err := e.Submit(context.Background(), code)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, model, calls[0].Model)
	require.Len(t, calls[0].Messages, 1)
	assert.Equal(t, llm.RoleUser, calls[0].Messages[0].Role)

	prompt := calls[0].Messages[0].Content
	assert.Contains(t, prompt, "```\n"+code+"\n```")
	assert.True(t, strings.HasPrefix(prompt, "You are LYRA, an expert AI programming assistant."))

	assert.Equal(t, State{
		InputCode:   code,
		Explanation: "## Summary\nAdds two numbers.",
	}, st)
}

func TestFailureSetsGenericError(t *testing.T) {
	fake := llmtest.New("")
	fake.Err = errors.New("503 service unavailable")
	rec := &recorder{}
	e := New(fake, model, WithRecorder(rec))

	st, err := e.Submit(context.Background(), "print(1)")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotContains(t, err.Error(), "503")
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Explanation)
	assert.Equal(t, MsgRequestFailed, st.Error)

	require.Len(t, rec.outcomes, 1)
	assert.Error(t, rec.outcomes[0].Err)
	assert.Equal(t, "fake", rec.outcomes[0].Provider)
}

func TestEmptyResponseIsAFailure(t *testing.T) {
	e := New(llmtest.New("  "), model)
	st, err := e.Submit(context.Background(), "print(1)")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, MsgRequestFailed, st.Error)
}

func TestNewSubmissionClearsPreviousResult(t *testing.T) {
	fake := llmtest.New("")
	fake.Err = errors.New("boom")
	e := New(fake, model)
	_, _ = e.Submit(context.Background(), "a")

	fake.Err = nil
	fake.Response = &llm.CompletionResponse{Content: "ok"}
	req, err := e.Begin("b")
	require.NoError(t, err)
	assert.Empty(t, e.State().Error)

	st, err := req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", st.Explanation)
	assert.Empty(t, st.Error)
}

func TestSecondSubmitWhileLoadingIsRejected(t *testing.T) {
	fake := llmtest.New("done")
	fake.Gate = make(chan struct{})
	fake.Started = make(chan struct{}, 1)
	e := New(fake, model)

	done := make(chan State)
	go func() {
		st, _ := e.Submit(context.Background(), "first")
		done <- st
	}()
	<-fake.Started

	_, err := e.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, "first", e.State().InputCode)

	close(fake.Gate)
	st := <-done
	assert.Equal(t, "done", st.Explanation)
	assert.Equal(t, 1, fake.CallCount())
}

func TestTimeoutIsAFailure(t *testing.T) {
	fake := llmtest.New("late")
	fake.Gate = make(chan struct{})
	e := New(fake, model, WithTimeout(10*time.Millisecond))

	st, err := e.Submit(context.Background(), "sleep(100)")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, MsgRequestFailed, st.Error)
	assert.False(t, st.IsLoading)
}

func TestRunIsSingleShot(t *testing.T) {
	fake := llmtest.New("once")
	e := New(fake, model)
	req, err := e.Begin("x")
	require.NoError(t, err)

	_, err = req.Run(context.Background())
	require.NoError(t, err)
	_, err = req.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount())
}

func TestPrompt(t *testing.T) {
	p := Prompt("SELECT {{code}} FROM t")
	assert.Contains(t, p, "**Instructions:**")
	assert.Contains(t, p, "**Code to Explain:**\n```\nSELECT {{code}} FROM t\n```")
	assert.True(t, strings.HasSuffix(p, "```"))
}
