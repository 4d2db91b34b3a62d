package viewer

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/render"
	"github.com/lyra-docs/lyra/internal/site"
)

// sectionSummary is one entry of the section list endpoint.
type sectionSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// explainRequest is the body of the explain endpoint and of websocket
// messages.
type explainRequest struct {
	Code string `json:"code"`
}

// explainResponse is an explainer snapshot with the explanation rendered
// as HTML.
type explainResponse struct {
	InputCode       string `json:"input_code"`
	Explanation     string `json:"explanation"`
	ExplanationHTML string `json:"explanation_html"`
	IsLoading       bool   `json:"is_loading"`
	Error           string `json:"error"`
}

func newExplainResponse(st explainer.State) explainResponse {
	resp := explainResponse{
		InputCode:   st.InputCode,
		Explanation: st.Explanation,
		IsLoading:   st.IsLoading,
		Error:       st.Error,
	}
	html, err := render.ExplanationHTML(st)
	if err != nil {
		logger.L.WithError(err).Warn("rendering explanation markdown")
		html = template.HTML(template.HTMLEscapeString(st.Explanation))
	}
	resp.ExplanationHTML = string(html)
	return resp
}

func (v *Viewer) handleListSections(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	entries := v.panel.Entries(sess.Nav.Active())

	out := make([]sectionSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, sectionSummary{ID: e.ID, Title: e.Title, Active: e.Active})
	}
	writeJSON(w, http.StatusOK, out)
}

func (v *Viewer) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sec, ok := v.catalog.Lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "section not found"})
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (v *Viewer) handleExplain(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)

	var req explainRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxExplainBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	st, err := sess.Explainer.Submit(explainContext(r, sess), req.Code)
	switch {
	case errors.Is(err, explainer.ErrEmptyInput):
		writeJSON(w, http.StatusBadRequest, newExplainResponse(st))
	case errors.Is(err, explainer.ErrInFlight):
		writeJSON(w, http.StatusConflict, newExplainResponse(st))
	default:
		// Provider failures are reported in the state's error field.
		writeJSON(w, http.StatusOK, newExplainResponse(st))
	}
}

func (v *Viewer) handleExplainState(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	writeJSON(w, http.StatusOK, newExplainResponse(sess.Explainer.State()))
}

func (v *Viewer) handleSearch(w http.ResponseWriter, r *http.Request) {
	hits := site.Search(v.index, r.URL.Query().Get("q"))
	if hits == nil {
		hits = []site.SearchEntry{}
	}
	writeJSON(w, http.StatusOK, hits)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
