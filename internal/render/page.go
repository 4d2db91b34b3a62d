package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/nav"
)

// SidebarLink is one navigation entry as shown on a page.
type SidebarLink struct {
	Href   string
	Title  string
	Icon   content.Icon
	Active bool
}

// Links converts navigation entries to sidebar links. href maps a section
// id to its URL.
func Links(entries []nav.Entry, href func(id string) string) []SidebarLink {
	links := make([]SidebarLink, 0, len(entries))
	for _, e := range entries {
		links = append(links, SidebarLink{
			Href:   href(e.ID),
			Title:  e.Title,
			Icon:   e.Icon,
			Active: e.Active,
		})
	}
	return links
}

// PageData holds the data passed to the page template.
type PageData struct {
	Title       string
	AssetBase   string // prefix for style.css and script.js
	HomeHref    string
	Sidebar     []SidebarLink
	Main        template.HTML
	Search      bool   // show the search box
	SearchIndex string // static search index URL; empty queries /api/search
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"icon": IconSVG,
}).Parse(pageTemplate))

var explainerTmpl = template.Must(template.New("explainer").Parse(explainerTemplate))

// Page writes a full HTML document.
func Page(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

type explainerData struct {
	Header          template.HTML
	State           explainer.State
	ExplanationHTML template.HTML
	Action          string
}

// ExplanationHTML renders the explanation text of st, or nothing.
func ExplanationHTML(st explainer.State) (template.HTML, error) {
	if st.Explanation == "" {
		return "", nil
	}
	return Markdown(st.Explanation)
}

// ExplainerView renders the code explainer for section s in state st. The
// form posts to action.
func ExplainerView(s content.Section, st explainer.State, action string) (template.HTML, error) {
	expl, err := ExplanationHTML(st)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = explainerTmpl.Execute(&buf, explainerData{
		Header:          SectionHeader(s),
		State:           st,
		ExplanationHTML: expl,
		Action:          action,
	})
	if err != nil {
		return "", fmt.Errorf("rendering explainer: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// NotFound renders the body of the unknown-section page.
func NotFound(id string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<section class="section-view not-found"><h1 class="section-title">Section not found</h1><p>No section named <code>%s</code>.</p></section>`,
		template.HTMLEscapeString(id)))
}
