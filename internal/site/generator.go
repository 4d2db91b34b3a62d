// Package site exports the documentation sections as a static HTML site
// with a client-side search index.
package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/nav"
	"github.com/lyra-docs/lyra/internal/progress"
	"github.com/lyra-docs/lyra/internal/render"
)

const searchIndexFile = "search-index.json"

// SiteGenerator writes catalog sections to a directory of HTML pages.
type SiteGenerator struct {
	Catalog   *content.Catalog
	OutputDir string
	// Patterns are doublestar globs matched against section ids. Empty
	// selects every section.
	Patterns []string
	Reporter progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator for catalog.
func NewSiteGenerator(catalog *content.Catalog, outputDir string, patterns []string) *SiteGenerator {
	return &SiteGenerator{
		Catalog:   catalog,
		OutputDir: outputDir,
		Patterns:  patterns,
		Reporter:  progress.Nop{},
	}
}

// Sections returns the sections selected for export in catalog order. The
// code explainer needs a server and is never exported.
func (g *SiteGenerator) Sections() ([]content.Section, error) {
	for _, p := range g.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid section pattern %q", p)
		}
	}

	var out []content.Section
	for _, s := range g.Catalog.Sections() {
		if s.IsExplainer() {
			continue
		}
		if len(g.Patterns) == 0 || matchAny(g.Patterns, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func matchAny(patterns []string, id string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, id); ok {
			return true
		}
	}
	return false
}

// Generate builds the full static site. Returns the number of section pages
// generated.
func (g *SiteGenerator) Generate() (int, error) {
	sections, err := g.Sections()
	if err != nil {
		return 0, err
	}
	if len(sections) == 0 {
		return 0, fmt.Errorf("no sections match %v", g.Patterns)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	entries := BuildSearchIndex(sections, pageName)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, searchIndexFile)); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(render.StyleCSS), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(render.ScriptJS), 0o644); err != nil {
		return 0, err
	}

	exported, err := content.NewCatalog(sections...)
	if err != nil {
		return 0, err
	}
	panel := nav.NewPanel(exported)

	g.Reporter.Start(len(sections))
	defer g.Reporter.Finish()

	for i, s := range sections {
		if err := g.renderPage(panel, s, pageName(s.ID)); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", s.ID, err)
		}
		if i == 0 {
			if err := g.renderPage(panel, s, "index.html"); err != nil {
				return 0, fmt.Errorf("rendering index: %w", err)
			}
		}
		g.Reporter.Update(i+1, s.ID)
	}

	return len(sections), nil
}

func (g *SiteGenerator) renderPage(panel *nav.Panel, s content.Section, name string) error {
	var buf bytes.Buffer
	err := render.Page(&buf, render.PageData{
		Title:       s.Title,
		HomeHref:    "index.html",
		Sidebar:     render.Links(panel.Entries(s.ID), pageName),
		Main:        render.Section(s),
		Search:      true,
		SearchIndex: searchIndexFile,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, name), buf.Bytes(), 0o644)
}

// pageName is the file a section is written to.
func pageName(id string) string {
	return id + ".html"
}
