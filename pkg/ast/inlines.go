package ast

import "github.com/yaklabco/mdedit/pkg/span"

// PlainText is a run of characters with no special meaning. The parser
// also uses single-character PlainText nodes as the fallback production,
// then coalesces adjacent runs.
type PlainText struct {
	Source span.Span
}

func (p *PlainText) Kind() NodeKind  { return KindPlainText }
func (p *PlainText) Span() span.Span { return p.Source }
func (p *PlainText) inlineNode()     {}

// Bold is "**x**" or "__x__". Delim records which pair was used.
type Bold struct {
	Source  span.Span
	Delim   string // "**" or "__"
	Content []Inline
}

func (b *Bold) Kind() NodeKind  { return KindBold }
func (b *Bold) Span() span.Span { return b.Source }
func (b *Bold) inlineNode()     {}

// Italic is "*x*" or "_x_". Delim records which character was used.
type Italic struct {
	Source  span.Span
	Delim   string // "*" or "_"
	Content []Inline
}

func (i *Italic) Kind() NodeKind  { return KindItalic }
func (i *Italic) Span() span.Span { return i.Source }
func (i *Italic) inlineNode()     {}

// BoldItalic is "***x***".
type BoldItalic struct {
	Source  span.Span
	Content []Inline
}

func (b *BoldItalic) Kind() NodeKind  { return KindBoldItalic }
func (b *BoldItalic) Span() span.Span { return b.Source }
func (b *BoldItalic) inlineNode()     {}

// InlineCode is code delimited by one or two backticks. The code is
// verbatim; it has no children.
type InlineCode struct {
	Source span.Span
	Ticks  int // 1 or 2
	Code   string
}

func (c *InlineCode) Kind() NodeKind  { return KindInlineCode }
func (c *InlineCode) Span() span.Span { return c.Source }
func (c *InlineCode) inlineNode()     {}

// Strikethrough is "~~x~~".
type Strikethrough struct {
	Source  span.Span
	Content []Inline
}

func (s *Strikethrough) Kind() NodeKind  { return KindStrikethrough }
func (s *Strikethrough) Span() span.Span { return s.Source }
func (s *Strikethrough) inlineNode()     {}

// Highlight is "==x==".
type Highlight struct {
	Source  span.Span
	Content []Inline
}

func (h *Highlight) Kind() NodeKind  { return KindHighlight }
func (h *Highlight) Span() span.Span { return h.Source }
func (h *Highlight) inlineNode()     {}

// Subscript is "~x~".
type Subscript struct {
	Source  span.Span
	Content []Inline
}

func (s *Subscript) Kind() NodeKind  { return KindSubscript }
func (s *Subscript) Span() span.Span { return s.Source }
func (s *Subscript) inlineNode()     {}

// Superscript is "^x^".
type Superscript struct {
	Source  span.Span
	Content []Inline
}

func (s *Superscript) Kind() NodeKind  { return KindSuperscript }
func (s *Superscript) Span() span.Span { return s.Source }
func (s *Superscript) inlineNode()     {}

// EscapedChar is a backslash followed by one punctuation character.
type EscapedChar struct {
	Source span.Span
	Char   byte // the escaped character
}

func (e *EscapedChar) Kind() NodeKind  { return KindEscapedChar }
func (e *EscapedChar) Span() span.Span { return e.Source }
func (e *EscapedChar) inlineNode()     {}

// Link is "[text](url)" or `[text](url "title")`. Label holds the parsed
// inlines of the link text; RawLabel is the literal text between the
// brackets, needed to locate the delimiter boundary when the label is
// empty.
type Link struct {
	Source   span.Span
	Label    []Inline
	RawLabel string
	URL      string
	Title    string
}

func (l *Link) Kind() NodeKind  { return KindLink }
func (l *Link) Span() span.Span { return l.Source }
func (l *Link) inlineNode()     {}

// Image is a link with a leading "!".
type Image struct {
	Source span.Span
	Alt    []Inline
	RawAlt string
	URL    string
	Title  string
}

func (i *Image) Kind() NodeKind  { return KindImage }
func (i *Image) Span() span.Span { return i.Source }
func (i *Image) inlineNode()     {}

// Autolink is "<url>".
type Autolink struct {
	Source span.Span
	URL    string
}

func (a *Autolink) Kind() NodeKind  { return KindAutolink }
func (a *Autolink) Span() span.Span { return a.Source }
func (a *Autolink) inlineNode()     {}

// InlineMath is "$x$" where the content has no space adjacent to either
// delimiter.
type InlineMath struct {
	Source span.Span
	Expr   string
}

func (m *InlineMath) Kind() NodeKind  { return KindInlineMath }
func (m *InlineMath) Span() span.Span { return m.Source }
func (m *InlineMath) inlineNode()     {}

// FootnoteRef is "[^label]".
type FootnoteRef struct {
	Source span.Span
	Label  string
}

func (f *FootnoteRef) Kind() NodeKind  { return KindFootnoteRef }
func (f *FootnoteRef) Span() span.Span { return f.Source }
func (f *FootnoteRef) inlineNode()     {}

// Emoji is ":shortcode:".
type Emoji struct {
	Source    span.Span
	Shortcode string
}

func (e *Emoji) Kind() NodeKind  { return KindEmoji }
func (e *Emoji) Span() span.Span { return e.Source }
func (e *Emoji) inlineNode()     {}

// InlineChildren returns the nested inlines of a container inline, or nil
// for leaf kinds.
func InlineChildren(in Inline) []Inline {
	switch v := in.(type) {
	case *Bold:
		return v.Content
	case *Italic:
		return v.Content
	case *BoldItalic:
		return v.Content
	case *Strikethrough:
		return v.Content
	case *Highlight:
		return v.Content
	case *Subscript:
		return v.Content
	case *Superscript:
		return v.Content
	case *Link:
		return v.Label
	case *Image:
		return v.Alt
	default:
		return nil
	}
}
