package viewer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/llm/llmtest"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/server"
	"github.com/lyra-docs/lyra/internal/session"
	"github.com/lyra-docs/lyra/internal/site"
)

type testEnv struct {
	server *httptest.Server
	client *http.Client
	fake   *llmtest.Fake
}

func setupTest(t *testing.T, fake *llmtest.Fake) *testEnv {
	t.Helper()
	return setupTestOn(t, fake, chi.NewRouter())
}

// setupTestOn mounts the viewer on r, which may carry middleware.
func setupTestOn(t *testing.T, fake *llmtest.Fake, r chi.Router) *testEnv {
	t.Helper()

	catalog := content.Default()
	store, err := session.NewStore(16, catalog, func() *explainer.Explainer {
		return explainer.New(fake, "gemini-2.5-flash")
	})
	require.NoError(t, err)

	New(catalog, store).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{server: srv, client: &http.Client{Jar: jar}, fake: fake}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Get(e.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) postJSON(t *testing.T, path string, v any) (*http.Response, []byte) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	resp, err := e.client.Post(e.server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func (e *testEnv) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	u, err := url.Parse(e.server.URL)
	require.NoError(t, err)

	header := http.Header{}
	for _, c := range e.client.Jar.Cookies(u) {
		header.Add("Cookie", c.String())
	}
	wsURL := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws/explain"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestIndexShowsFirstSection(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, body := env.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "API Cheatsheet")
	assert.Contains(t, body, `aria-current="page"`)
	assert.Contains(t, body, "copy-button")
	assert.Contains(t, body, "/static/style.css")
}

func TestSelectSectionPersistsInSession(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, body := env.get(t, "/sections/spa-blueprint")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "SPA Blueprint")

	_, body = env.get(t, "/")
	assert.Contains(t, body, "A blueprint for building modern, scalable Single Page Applications.")

	var list []sectionSummary
	_, raw := env.get(t, "/api/sections")
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"api-cheatsheet", "code-explainer", "spa-blueprint"},
		[]string{list[0].ID, list[1].ID, list[2].ID})
	assert.False(t, list[0].Active)
	assert.True(t, list[2].Active)
}

func TestUnknownSectionKeepsState(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	env.get(t, "/sections/spa-blueprint")
	resp, body := env.get(t, "/sections/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Section not found")
	assert.Contains(t, body, "does-not-exist")

	_, body = env.get(t, "/")
	assert.Contains(t, body, "SPA Blueprint")
}

func TestExplainerSectionRendersForm(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	_, body := env.get(t, "/sections/code-explainer")
	assert.Contains(t, body, `id="explain-form"`)
	assert.Contains(t, body, `action="/sections/code-explainer/explain"`)
	assert.Contains(t, body, "Paste your code here...")
	assert.Contains(t, body, "Explain Code")
}

func TestExplainFormSubmission(t *testing.T) {
	env := setupTest(t, llmtest.New("This **adds** numbers."))

	resp, err := env.client.PostForm(env.server.URL+explainAction, url.Values{"code": {"sum(a, b)"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<strong>adds</strong>")
	assert.Contains(t, string(body), "sum(a, b)")
	assert.Equal(t, 1, env.fake.CallCount())
}

func TestExplainFormEmptyInput(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, err := env.client.PostForm(env.server.URL+explainAction, url.Values{"code": {"   "}})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), explainer.MsgEmptyInput)
	assert.Zero(t, env.fake.CallCount())
}

func TestAPIExplain(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := setupTest(t, llmtest.New("It prints `1`."))

		resp, body := env.postJSON(t, "/api/explain", explainRequest{Code: "print(1)"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got explainResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "It prints `1`.", got.Explanation)
		assert.Contains(t, got.ExplanationHTML, "<code>1</code>")
		assert.False(t, got.IsLoading)
		assert.Empty(t, got.Error)

		calls := env.fake.Calls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Messages[0].Content, "print(1)")
	})

	t.Run("empty input", func(t *testing.T) {
		env := setupTest(t, llmtest.New("unused"))

		resp, body := env.postJSON(t, "/api/explain", explainRequest{Code: ""})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got explainResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, explainer.MsgEmptyInput, got.Error)
	})

	t.Run("provider failure", func(t *testing.T) {
		fake := llmtest.New("")
		fake.Err = errors.New("upstream 500")
		env := setupTest(t, fake)

		resp, body := env.postJSON(t, "/api/explain", explainRequest{Code: "x := 1"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got explainResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, explainer.MsgRequestFailed, got.Error)
		assert.Empty(t, got.Explanation)
	})

	t.Run("invalid body", func(t *testing.T) {
		env := setupTest(t, llmtest.New("unused"))

		resp, err := env.client.Post(env.server.URL+"/api/explain", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAPIExplainRejectsConcurrentRequest(t *testing.T) {
	fake := llmtest.New("done")
	fake.Gate = make(chan struct{})
	fake.Started = make(chan struct{}, 1)
	env := setupTest(t, fake)

	// Establish the session cookie first.
	env.get(t, "/")

	first := make(chan int, 1)
	go func() {
		resp, err := env.client.Post(env.server.URL+"/api/explain", "application/json",
			strings.NewReader(`{"code":"first"}`))
		if err != nil {
			first <- 0
			return
		}
		resp.Body.Close()
		first <- resp.StatusCode
	}()
	<-fake.Started

	_, raw := env.get(t, "/api/explain/state")
	var st explainResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &st))
	assert.True(t, st.IsLoading)
	assert.Equal(t, "first", st.InputCode)

	resp, _ := env.postJSON(t, "/api/explain", explainRequest{Code: "second"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(fake.Gate)
	assert.Equal(t, http.StatusOK, <-first)
	assert.Equal(t, 1, fake.CallCount())
}

func TestAPIGetSection(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, body := env.get(t, "/api/sections/api-cheatsheet")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sec map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &sec))
	assert.Equal(t, "api-cheatsheet", sec["id"])
	assert.NotEmpty(t, sec["nodes"])

	resp, _ = env.get(t, "/api/sections/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPISearch(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	_, body := env.get(t, "/api/search?q=manifest")
	var hits []site.SearchEntry
	require.NoError(t, json.Unmarshal([]byte(body), &hits))
	require.NotEmpty(t, hits)
	assert.Equal(t, "spa-blueprint", hits[0].ID)
	assert.Equal(t, "/sections/spa-blueprint", hits[0].Path)

	_, body = env.get(t, "/api/search?q=")
	assert.JSONEq(t, "[]", body)
}

func TestStaticAssets(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, body := env.get(t, "/static/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.NotEmpty(t, body)

	resp, body = env.get(t, "/static/script.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/ws/explain")
}

func TestWebSocketExplain(t *testing.T) {
	env := setupTest(t, llmtest.New("Loops over items."))
	env.get(t, "/sections/code-explainer")
	conn := env.dial(t)

	require.NoError(t, conn.WriteJSON(explainRequest{Code: "for _, x := range xs {}"}))

	var loading explainResponse
	require.NoError(t, conn.ReadJSON(&loading))
	assert.True(t, loading.IsLoading)
	assert.Empty(t, loading.Explanation)
	assert.Empty(t, loading.Error)

	var final explainResponse
	require.NoError(t, conn.ReadJSON(&final))
	assert.False(t, final.IsLoading)
	assert.Equal(t, "Loops over items.", final.Explanation)

	// The result is visible to the page view of the same session.
	_, body := env.get(t, "/sections/code-explainer")
	assert.Contains(t, body, "Loops over items.")
}

func TestWebSocketEmptyInput(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))
	env.get(t, "/")
	conn := env.dial(t)

	require.NoError(t, conn.WriteJSON(explainRequest{Code: "\n\t"}))

	var got explainResponse
	require.NoError(t, conn.ReadJSON(&got))
	assert.False(t, got.IsLoading)
	assert.Equal(t, explainer.MsgEmptyInput, got.Error)
	assert.Zero(t, env.fake.CallCount())
}

func TestWebSocketInvalidMessage(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))
	conn := env.dial(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var got explainResponse
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "invalid message format", got.Error)
}

func TestWebSocketRejectsConcurrentRequest(t *testing.T) {
	fake := llmtest.New("done")
	fake.Gate = make(chan struct{})
	fake.Started = make(chan struct{}, 1)
	env := setupTest(t, fake)
	env.get(t, "/")
	conn := env.dial(t)

	require.NoError(t, conn.WriteJSON(explainRequest{Code: "first"}))
	var loading explainResponse
	require.NoError(t, conn.ReadJSON(&loading))
	require.True(t, loading.IsLoading)
	<-fake.Started

	// A second submit is answered immediately with the in-flight state.
	require.NoError(t, conn.WriteJSON(explainRequest{Code: "second"}))
	var rejected explainResponse
	require.NoError(t, conn.ReadJSON(&rejected))
	assert.True(t, rejected.IsLoading)
	assert.Equal(t, "first", rejected.InputCode)

	close(fake.Gate)
	var final explainResponse
	require.NoError(t, conn.ReadJSON(&final))
	assert.False(t, final.IsLoading)
	assert.Equal(t, "done", final.Explanation)
	assert.Equal(t, 1, fake.CallCount())
}

func TestWebSocketExplainOutlivesRequestTimeout(t *testing.T) {
	fake := llmtest.New("slow answer")
	fake.Gate = make(chan struct{})
	fake.Started = make(chan struct{}, 1)
	srv := server.New(server.Config{RequestTimeout: 100 * time.Millisecond})
	env := setupTestOn(t, fake, srv.Router())
	env.get(t, "/")
	conn := env.dial(t)

	require.NoError(t, conn.WriteJSON(explainRequest{Code: "sleep(1)"}))
	var loading explainResponse
	require.NoError(t, conn.ReadJSON(&loading))
	<-fake.Started

	time.Sleep(300 * time.Millisecond)
	close(fake.Gate)

	var final explainResponse
	require.NoError(t, conn.ReadJSON(&final))
	assert.Empty(t, final.Error)
	assert.Equal(t, "slow answer", final.Explanation)
}

func TestAPIExplainSurvivesClientDisconnect(t *testing.T) {
	fake := llmtest.New("finished anyway")
	fake.Gate = make(chan struct{})
	fake.Started = make(chan struct{}, 1)
	env := setupTest(t, fake)
	env.get(t, "/")

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, env.server.URL+"/api/explain",
		strings.NewReader(`{"code":"x := 1"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if resp, err := env.client.Do(req); err == nil {
			resp.Body.Close()
		}
	}()
	<-fake.Started
	cancel()
	<-done
	close(fake.Gate)

	require.Eventually(t, func() bool {
		_, raw := env.get(t, "/api/explain/state")
		var st explainResponse
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return false
		}
		return !st.IsLoading && st.Explanation == "finished anyway"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestAPIExplainRejectsOversizedBody(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	resp, body := env.postJSON(t, "/api/explain", explainRequest{Code: strings.Repeat("a", maxExplainBody)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.JSONEq(t, `{"error":"request body too large"}`, string(body))
	assert.Zero(t, env.fake.CallCount())
}

func TestExplainFormRejectsOversizedBody(t *testing.T) {
	env := setupTest(t, llmtest.New("unused"))

	form := url.Values{"code": {strings.Repeat("a", maxExplainBody)}}
	resp, err := env.client.PostForm(env.server.URL+explainAction, form)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Zero(t, env.fake.CallCount())
}

func TestExplainContextDetachesFromRequest(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()
	r := httptest.NewRequest(http.MethodPost, "/api/explain", nil).WithContext(parent)

	ctx := explainContext(r, &session.Session{ID: "sess-1"})

	assert.NoError(t, ctx.Err())
	assert.Equal(t, "sess-1", session.IDFromContext(ctx))
	assert.Equal(t, "sess-1", logger.G(ctx).Data["session"])
}
