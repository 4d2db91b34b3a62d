package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ExplainerSectionID is the id of the section served by the code explainer
// instead of the generic renderer.
const ExplainerSectionID = "code-explainer"

// Icon is the path data of a 24x24 outline glyph.
type Icon string

// Section is a named, ordered collection of nodes shown as one page.
type Section struct {
	ID      string
	Title   string
	Tagline string
	Icon    Icon
	nodes   []Node
}

// NewSection builds a section. The node slice is copied.
func NewSection(id, title, tagline string, icon Icon, nodes ...Node) Section {
	cp := make([]Node, len(nodes))
	copy(cp, nodes)
	return Section{ID: id, Title: title, Tagline: tagline, Icon: icon, nodes: cp}
}

// Nodes returns a copy of the section's nodes in order.
func (s Section) Nodes() []Node {
	cp := make([]Node, len(s.nodes))
	copy(cp, s.nodes)
	return cp
}

// Len returns the number of nodes.
func (s Section) Len() int { return len(s.nodes) }

// IsExplainer reports whether the section is rendered by the code explainer.
func (s Section) IsExplainer() bool { return s.ID == ExplainerSectionID }

// CodeBlocks returns the code nodes of the section in order.
func (s Section) CodeBlocks() []Node {
	var out []Node
	for _, n := range s.nodes {
		if n.kind == KindCode {
			out = append(out, n)
		}
	}
	return out
}

type sectionJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tagline string `json:"tagline,omitempty"`
	Nodes   []Node `json:"nodes"`
}

// MarshalJSON encodes the section for the sections API.
func (s Section) MarshalJSON() ([]byte, error) {
	nodes := s.nodes
	if nodes == nil {
		nodes = []Node{}
	}
	return json.Marshal(sectionJSON{ID: s.ID, Title: s.Title, Tagline: s.Tagline, Nodes: nodes})
}

// ErrEmptyCatalog is returned by NewCatalog when no sections are given.
var ErrEmptyCatalog = errors.New("catalog has no sections")

// Catalog is an ordered, immutable set of sections with unique ids.
type Catalog struct {
	sections []Section
	index    map[string]int
}

// NewCatalog validates and indexes sections. Ids must be non-empty and unique.
func NewCatalog(sections ...Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	for i, s := range sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d has an empty id", i)
		}
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		c.index[s.ID] = i
		c.sections[i] = s
	}
	return c, nil
}

// Sections returns the sections in catalog order.
func (c *Catalog) Sections() []Section {
	cp := make([]Section, len(c.sections))
	copy(cp, c.sections)
	return cp
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.sections) }

// First returns the first section; it is the default active section.
func (c *Catalog) First() Section { return c.sections[0] }

// IDs returns the section ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Lookup finds a section by id.
func (c *Catalog) Lookup(id string) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Contains reports whether id names a section.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Resolve returns the section named by id, or the first section when id is
// not in the catalog.
func (c *Catalog) Resolve(id string) Section {
	if s, ok := c.Lookup(id); ok {
		return s
	}
	return c.First()
}
