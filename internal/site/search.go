package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/render"
)

// SearchEntry represents a single searchable section.
type SearchEntry struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex builds one entry per section. href maps a section id to
// the URL stored in the entry.
func BuildSearchIndex(sections []content.Section, href func(id string) string) []SearchEntry {
	entries := make([]SearchEntry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, SearchEntry{
			ID:      s.ID,
			Path:    href(s.ID),
			Title:   s.Title,
			Summary: s.Tagline,
			Content: sectionText(s),
		})
	}
	return entries
}

// sectionText flattens the text of a section for matching.
func sectionText(s content.Section) string {
	var parts []string
	for _, n := range s.Nodes() {
		switch n.Kind() {
		case content.KindHeading, content.KindSubheading, content.KindParagraph, content.KindNote:
			parts = append(parts, render.PlainText(n.Text()))
		case content.KindList:
			for _, item := range n.Items() {
				parts = append(parts, render.PlainText(string(item)))
			}
		case content.KindCode:
			parts = append(parts, n.Code())
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Search returns the entries containing every word of q, case-insensitively.
// Title matches rank before body matches; ties keep index order.
func Search(entries []SearchEntry, q string) []SearchEntry {
	words := strings.Fields(strings.ToLower(q))
	if len(words) == 0 {
		return nil
	}

	type hit struct {
		entry   SearchEntry
		inTitle bool
	}
	var hits []hit
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		haystack := title + " " + strings.ToLower(e.Summary) + " " + strings.ToLower(e.Content)
		matched, inTitle := true, true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				matched = false
				break
			}
			if !strings.Contains(title, w) {
				inTitle = false
			}
		}
		if matched {
			hits = append(hits, hit{entry: e, inTitle: inTitle})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].inTitle && !hits[j].inTitle
	})
	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
