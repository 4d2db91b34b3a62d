package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/lyra-docs/lyra/internal/content"
)

var markupToMarkdown = strings.NewReplacer(
	"<b>", "**", "</b>", "**",
	"<strong>", "**", "</strong>", "**",
	"<i>", "_", "</i>", "_",
	"<em>", "_", "</em>", "_",
	"<code>", "`", "</code>", "`",
	"<br/>", "\n", "<br>", "\n",
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// MarkupToMarkdown converts catalog markup to markdown.
func MarkupToMarkdown(markup string) string {
	s := markupToMarkdown.Replace(markup)
	s = tagPattern.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// PlainText strips catalog markup down to its text.
func PlainText(markup string) string {
	s := strings.ReplaceAll(markup, "<br/>", " ")
	s = tagPattern.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// SectionMarkdown renders s as a markdown document.
func SectionMarkdown(s content.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if s.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", s.Tagline)
	}
	for _, n := range s.Nodes() {
		switch n.Kind() {
		case content.KindHeading:
			fmt.Fprintf(&b, "## %s\n\n", n.Text())
		case content.KindSubheading:
			fmt.Fprintf(&b, "### %s\n\n", n.Text())
		case content.KindParagraph:
			fmt.Fprintf(&b, "%s\n\n", MarkupToMarkdown(n.Text()))
		case content.KindNote:
			for _, line := range strings.Split(MarkupToMarkdown(n.Text()), "\n") {
				fmt.Fprintf(&b, "> %s\n", line)
			}
			b.WriteString("\n")
		case content.KindList:
			for _, item := range n.Items() {
				fmt.Fprintf(&b, "- %s\n", MarkupToMarkdown(string(item)))
			}
			b.WriteString("\n")
		case content.KindCode:
			fence := "```"
			if strings.Contains(n.Code(), fence) {
				fence = "````"
			}
			fmt.Fprintf(&b, "%s%s\n%s\n%s\n\n", fence, n.Language(), strings.TrimRight(n.Code(), "\n"), fence)
		case content.KindSeparator:
			b.WriteString("---\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
