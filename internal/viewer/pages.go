package viewer

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/nav"
	"github.com/lyra-docs/lyra/internal/render"
	"github.com/lyra-docs/lyra/internal/session"
)

func (v *Viewer) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	v.renderActive(w, r, sess, http.StatusOK)
}

func (v *Viewer) handleSection(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	id := chi.URLParam(r, "id")

	if err := sess.Nav.Select(id); err != nil {
		if errors.Is(err, nav.ErrUnknownSection) {
			v.writePage(w, r, sess, "Not found", render.NotFound(id), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	v.renderActive(w, r, sess, http.StatusOK)
}

// handleExplainForm serves the explainer when scripts are unavailable: it
// runs the request to completion and renders the resulting state.
func (v *Viewer) handleExplainForm(w http.ResponseWriter, r *http.Request) {
	sess := v.sessions.FromRequest(w, r)
	if err := sess.Nav.Select(content.ExplainerSectionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxExplainBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	status := http.StatusOK
	_, err := sess.Explainer.Submit(explainContext(r, sess), r.PostFormValue("code"))
	switch {
	case errors.Is(err, explainer.ErrInFlight):
		status = http.StatusConflict
	case errors.Is(err, explainer.ErrEmptyInput):
		status = http.StatusBadRequest
	}
	v.renderActive(w, r, sess, status)
}

func (v *Viewer) renderActive(w http.ResponseWriter, r *http.Request, sess *session.Session, status int) {
	sec := sess.Nav.Section()

	var main template.HTML
	if sec.IsExplainer() {
		view, err := render.ExplainerView(sec, sess.Explainer.State(), explainAction)
		if err != nil {
			logger.G(r.Context()).WithError(err).Error("rendering explainer")
			http.Error(w, "rendering failed", http.StatusInternalServerError)
			return
		}
		main = view
	} else {
		main = render.Section(sec)
	}
	v.writePage(w, r, sess, sec.Title, main, status)
}

func (v *Viewer) writePage(w http.ResponseWriter, r *http.Request, sess *session.Session, title string, main template.HTML, status int) {
	var buf bytes.Buffer
	err := render.Page(&buf, render.PageData{
		Title:     title,
		AssetBase: assetBase,
		HomeHref:  "/",
		Sidebar:   render.Links(v.panel.Entries(sess.Nav.Active()), nav.Href),
		Main:      main,
		Search:    true,
	})
	if err != nil {
		logger.G(r.Context()).WithError(err).Error("rendering page")
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(render.StyleCSS))
}

func handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(render.ScriptJS))
}
