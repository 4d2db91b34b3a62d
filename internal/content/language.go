package content

// Language is the language tag of a code block. Any string is accepted;
// tags outside the known set are shown verbatim.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJSON       Language = "json"
	LangBash       Language = "bash"
	LangHTML       Language = "html"
	LangOther      Language = "other"
)

type badge struct {
	label string
	class string
}

var badges = map[Language]badge{
	LangPython:     {label: "Python", class: "badge-python"},
	LangJavaScript: {label: "JavaScript", class: "badge-javascript"},
	LangJSON:       {label: "JSON", class: "badge-json"},
	LangBash:       {label: "Shell", class: "badge-shell"},
	LangHTML:       {label: "HTML", class: "badge-html"},
}

// BadgeLabel returns the display name for lang. Unrecognized tags are
// returned unchanged.
func BadgeLabel(lang Language) string {
	if b, ok := badges[lang]; ok {
		return b.label
	}
	return string(lang)
}

// BadgeClass returns the CSS class used to color the badge for lang.
func BadgeClass(lang Language) string {
	if b, ok := badges[lang]; ok {
		return b.class
	}
	return "badge-default"
}
