// Package viewer serves the documentation pages, the explainer form and the
// JSON API on a chi router.
package viewer

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/nav"
	"github.com/lyra-docs/lyra/internal/session"
	"github.com/lyra-docs/lyra/internal/site"
)

const (
	assetBase     = "/static/"
	explainAction = "/sections/" + content.ExplainerSectionID + "/explain"

	// maxExplainBody caps explain request bodies.
	maxExplainBody = 1 << 20
)

// Viewer resolves the active section of each session and renders it next to
// the navigation panel.
type Viewer struct {
	catalog  *content.Catalog
	panel    *nav.Panel
	sessions *session.Store
	index    []site.SearchEntry
}

// New creates a Viewer over catalog. Per-visitor state lives in sessions.
func New(catalog *content.Catalog, sessions *session.Store) *Viewer {
	return &Viewer{
		catalog:  catalog,
		panel:    nav.NewPanel(catalog),
		sessions: sessions,
		index:    site.BuildSearchIndex(catalog.Sections(), nav.Href),
	}
}

// RegisterRoutes mounts all viewer routes onto the given router.
func (v *Viewer) RegisterRoutes(r chi.Router) {
	r.Get("/", v.handleIndex)
	r.Get("/sections/{id}", v.handleSection)
	r.Post(explainAction, v.handleExplainForm)

	r.Get("/static/style.css", handleStyle)
	r.Get("/static/script.js", handleScript)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", v.handleListSections)
		r.Get("/sections/{id}", v.handleGetSection)
		r.Post("/explain", v.handleExplain)
		r.Get("/explain/state", v.handleExplainState)
		r.Get("/search", v.handleSearch)
	})

	r.Get("/ws/explain", v.handleWebSocket)
}

// explainContext is the context an explain request runs under. It keeps the
// request's values but not its cancellation or deadline: once sent, a request
// is bounded only by the explainer's timeout.
func explainContext(r *http.Request, sess *session.Session) context.Context {
	ctx := session.WithID(context.WithoutCancel(r.Context()), sess.ID)
	return logger.WithLogger(ctx, logger.G(ctx).WithField("session", sess.ID))
}
