// Package render turns catalog content into HTML fragments and pages.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lyra-docs/lyra/internal/content"
)

var nodeRenderers = map[content.Kind]func(*strings.Builder, content.Node){
	content.KindHeading: func(b *strings.Builder, n content.Node) {
		fmt.Fprintf(b, `<h2 class="node-heading">%s</h2>`+"\n", template.HTMLEscapeString(n.Text()))
	},
	content.KindSubheading: func(b *strings.Builder, n content.Node) {
		fmt.Fprintf(b, `<h3 class="node-subheading">%s</h3>`+"\n", template.HTMLEscapeString(n.Text()))
	},
	// Paragraph, note and list text is catalog markup and is emitted as is.
	content.KindParagraph: func(b *strings.Builder, n content.Node) {
		fmt.Fprintf(b, `<p class="node-paragraph">%s</p>`+"\n", n.Text())
	},
	content.KindNote: func(b *strings.Builder, n content.Node) {
		fmt.Fprintf(b, `<div class="node-note">%s</div>`+"\n", n.Text())
	},
	content.KindList: func(b *strings.Builder, n content.Node) {
		b.WriteString(`<ul class="node-list">` + "\n")
		for _, item := range n.Items() {
			fmt.Fprintf(b, "<li>%s</li>\n", item)
		}
		b.WriteString("</ul>\n")
	},
	content.KindCode: func(b *strings.Builder, n content.Node) {
		writeCodeBlock(b, n.Language(), n.Code())
	},
	content.KindSeparator: func(b *strings.Builder, _ content.Node) {
		b.WriteString(`<hr class="node-separator">` + "\n")
	},
}

// Node renders one node. Nodes of an unknown kind render as nothing.
func Node(n content.Node) template.HTML {
	fn, ok := nodeRenderers[n.Kind()]
	if !ok {
		return ""
	}
	var b strings.Builder
	fn(&b, n)
	return template.HTML(b.String())
}

// Nodes renders nodes in order and concatenates the fragments.
func Nodes(nodes []content.Node) template.HTML {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(string(Node(n)))
	}
	return template.HTML(b.String())
}

// CodeBlock renders a code block with its language badge and copy button.
func CodeBlock(lang content.Language, code string) template.HTML {
	var b strings.Builder
	writeCodeBlock(&b, lang, code)
	return template.HTML(b.String())
}

func writeCodeBlock(b *strings.Builder, lang content.Language, code string) {
	escaped := template.HTMLEscapeString(code)

	b.WriteString(`<div class="code-block">` + "\n")
	b.WriteString(`<div class="code-block-header">`)
	if label := content.BadgeLabel(lang); label != "" {
		fmt.Fprintf(b, `<span class="badge %s">%s</span>`,
			content.BadgeClass(lang), template.HTMLEscapeString(label))
	}
	fmt.Fprintf(b, `<button type="button" class="copy-button" data-code="%s" aria-label="Copy code">Copy</button>`, escaped)
	b.WriteString("</div>\n")

	class := ""
	if lang != "" {
		class = fmt.Sprintf(` class="language-%s"`, template.HTMLEscapeString(string(lang)))
	}
	fmt.Fprintf(b, "<pre><code%s>%s</code></pre>\n", class, escaped)
	b.WriteString("</div>\n")
}

// IconSVG renders an outline glyph.
func IconSVG(icon content.Icon, class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg class="%s" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" d="%s"/></svg>`,
		template.HTMLEscapeString(class), template.HTMLEscapeString(string(icon))))
}

// SectionHeader renders the icon, title and tagline of s.
func SectionHeader(s content.Section) template.HTML {
	var b strings.Builder
	b.WriteString(`<header class="section-header">` + "\n")
	b.WriteString(string(IconSVG(s.Icon, "section-icon")))
	b.WriteString("\n<div>\n")
	fmt.Fprintf(&b, `<h1 class="section-title">%s</h1>`+"\n", template.HTMLEscapeString(s.Title))
	if s.Tagline != "" {
		fmt.Fprintf(&b, `<p class="section-tagline">%s</p>`+"\n", template.HTMLEscapeString(s.Tagline))
	}
	b.WriteString("</div>\n</header>\n")
	return template.HTML(b.String())
}

// Section renders the header of s followed by its nodes.
func Section(s content.Section) template.HTML {
	var b strings.Builder
	b.WriteString(`<section class="section-view" id="` + template.HTMLEscapeString(s.ID) + `">` + "\n")
	b.WriteString(string(SectionHeader(s)))
	b.WriteString(`<div class="section-body">` + "\n")
	b.WriteString(string(Nodes(s.Nodes())))
	b.WriteString("</div>\n</section>\n")
	return template.HTML(b.String())
}
