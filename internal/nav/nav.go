// Package nav holds the sidebar navigation: the list of catalog entries and
// the per-visitor active selection.
package nav

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lyra-docs/lyra/internal/content"
)

// ErrUnknownSection is returned when a selection names no catalog section.
var ErrUnknownSection = errors.New("unknown section")

// Entry is one sidebar link.
type Entry struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Icon   content.Icon `json:"-"`
	Active bool         `json:"active"`
}

// Href is the page path of the section with the given id.
func Href(id string) string { return "/sections/" + id }

// Panel lists the sections of a catalog.
type Panel struct {
	catalog *content.Catalog
}

// NewPanel creates a panel over catalog.
func NewPanel(catalog *content.Catalog) *Panel {
	return &Panel{catalog: catalog}
}

// Entries returns one entry per section in catalog order. At most one entry
// is active: the one whose id equals active.
func (p *Panel) Entries(active string) []Entry {
	sections := p.catalog.Sections()
	entries := make([]Entry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, Entry{
			ID:     s.ID,
			Title:  s.Title,
			Icon:   s.Icon,
			Active: s.ID == active,
		})
	}
	return entries
}

// State is the active selection of one visitor. It always names a section
// of its catalog.
type State struct {
	mu      sync.RWMutex
	catalog *content.Catalog
	active  string
}

// NewState starts on the first catalog section.
func NewState(catalog *content.Catalog) *State {
	return &State{catalog: catalog, active: catalog.First().ID}
}

// Active returns the active section id.
func (s *State) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Section returns the active section.
func (s *State) Section() content.Section {
	return s.catalog.Resolve(s.Active())
}

// Select makes id the active section. Ids outside the catalog leave the
// state unchanged.
func (s *State) Select(id string) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("selecting %q: %w", id, ErrUnknownSection)
	}
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
	return nil
}
