package content

import "encoding/json"

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindUnknown is the zero Kind. Renderers skip it.
	KindUnknown Kind = iota
	KindHeading
	KindSubheading
	KindParagraph
	KindCode
	KindList
	KindNote
	KindSeparator
)

var kindNames = map[Kind]string{
	KindHeading:    "heading",
	KindSubheading: "subheading",
	KindParagraph:  "paragraph",
	KindCode:       "code",
	KindList:       "list",
	KindNote:       "note",
	KindSeparator:  "separator",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Trusted is inline markup written by the catalog's authors. It is emitted
// without escaping, so it must never hold text that came from a request.
type Trusted string

// Node is one typed unit of documentation content. Its fields are set by the
// constructors below and cannot be changed afterwards.
type Node struct {
	kind  Kind
	text  string
	code  string
	lang  Language
	items []Trusted
}

// Heading is a section-level title. Its text is plain and will be escaped.
func Heading(text string) Node { return Node{kind: KindHeading, text: text} }

// Subheading is a sub-section title. Its text is plain and will be escaped.
func Subheading(text string) Node { return Node{kind: KindSubheading, text: text} }

// Paragraph holds trusted inline markup.
func Paragraph(markup Trusted) Node { return Node{kind: KindParagraph, text: string(markup)} }

// Note is a highlighted aside holding trusted inline markup.
func Note(markup Trusted) Node { return Node{kind: KindNote, text: string(markup)} }

// Code is a code block in the given language.
func Code(lang Language, code string) Node { return Node{kind: KindCode, code: code, lang: lang} }

// List is a bulleted list of trusted markup items.
func List(items ...Trusted) Node {
	cp := make([]Trusted, len(items))
	copy(cp, items)
	return Node{kind: KindList, items: cp}
}

// Separator is a horizontal rule.
func Separator() Node { return Node{kind: KindSeparator} }

func (n Node) Kind() Kind { return n.kind }

// Text returns the text of a heading, subheading, paragraph or note.
func (n Node) Text() string { return n.text }

// Code returns the source of a code block.
func (n Node) Code() string { return n.code }

// Language returns the language of a code block.
func (n Node) Language() Language { return n.lang }

// Items returns a copy of a list's items.
func (n Node) Items() []Trusted {
	cp := make([]Trusted, len(n.items))
	copy(cp, n.items)
	return cp
}

type nodeJSON struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	Code     string    `json:"code,omitempty"`
	Language string    `json:"language,omitempty"`
	Items    []Trusted `json:"items,omitempty"`
}

// MarshalJSON encodes the node for the sections API.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		Type:     n.kind.String(),
		Text:     n.text,
		Code:     n.code,
		Language: string(n.lang),
		Items:    n.items,
	})
}
