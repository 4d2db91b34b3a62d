// Package session keeps per-visitor navigation and explainer state.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/nav"
)

// CookieName carries the session id.
const CookieName = "lyra_session"

// Session is the state of one visitor.
type Session struct {
	ID        string
	Nav       *nav.State
	Explainer *explainer.Explainer
}

// ExplainerFactory creates the explainer for a new session.
type ExplainerFactory func() *explainer.Explainer

// Store holds sessions, evicting the least recently used beyond its size.
type Store struct {
	catalog      *content.Catalog
	newExplainer ExplainerFactory
	cache        *lru.Cache[string, *Session]
}

// NewStore creates a store holding at most size sessions.
func NewStore(size int, catalog *content.Catalog, newExplainer ExplainerFactory) (*Store, error) {
	cache, err := lru.NewWithEvict[string, *Session](size, func(id string, _ *Session) {
		logger.L.WithField("session", id).Debug("session evicted")
	})
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}
	return &Store{catalog: catalog, newExplainer: newExplainer, cache: cache}, nil
}

// Get returns the session for id, if present.
func (s *Store) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}

// New creates and stores a fresh session.
func (s *Store) New() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Nav:       nav.NewState(s.catalog),
		Explainer: s.newExplainer(),
	}
	s.cache.Add(sess.ID, sess)
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int { return s.cache.Len() }

// FromRequest returns the session named by the request cookie, creating one
// and setting the cookie when it is missing or expired.
func (s *Store) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(CookieName); err == nil {
		if sess, ok := s.Get(c.Value); ok {
			return sess
		}
	}
	sess := s.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

type ctxKey struct{}

// WithID returns a copy of ctx carrying the session id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the session id stored by WithID, or "".
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
