package ast

import "github.com/yaklabco/mdedit/pkg/span"

// Heading is an ATX heading: 1-6 '#' characters, one space, then content.
type Heading struct {
	Source  span.Span
	Level   int // 1..6
	Content []Inline
}

func (h *Heading) Kind() NodeKind  { return KindHeading }
func (h *Heading) Span() span.Span { return h.Source }
func (h *Heading) blockNode()      {}

// PrefixLen returns the byte length of the "#"-run plus its trailing space.
func (h *Heading) PrefixLen() int { return h.Level + 1 }

// Paragraph is the fallback block: a line of inline content.
type Paragraph struct {
	Source  span.Span
	Content []Inline
}

func (p *Paragraph) Kind() NodeKind  { return KindParagraph }
func (p *Paragraph) Span() span.Span { return p.Source }
func (p *Paragraph) blockNode()      {}

// ThematicBreak is a line of three or more '-', '*' or '_' characters.
type ThematicBreak struct {
	Source span.Span
	Marker string // the marker line without its terminator
}

func (t *ThematicBreak) Kind() NodeKind  { return KindThematicBreak }
func (t *ThematicBreak) Span() span.Span { return t.Source }
func (t *ThematicBreak) blockNode()      {}

// BlankLine is a line containing only its terminator.
type BlankLine struct {
	Source span.Span
}

func (b *BlankLine) Kind() NodeKind  { return KindBlankLine }
func (b *BlankLine) Span() span.Span { return b.Source }
func (b *BlankLine) blockNode()      {}

// FencedCode is a fenced code block. The body is verbatim; it has no
// inline children.
type FencedCode struct {
	Source   span.Span
	Fence    string // opening fence run, e.g. "```" or "~~~~"
	Language string // first token of the info string, may be empty
	Body     string // verbatim content between the fence lines
	// BodyStart/BodyStop are absolute offsets of the body within the
	// source. For an unclosed block BodyStop == Source.Stop.
	BodyStart int
	BodyStop  int
	Closed    bool
}

func (f *FencedCode) Kind() NodeKind  { return KindFencedCode }
func (f *FencedCode) Span() span.Span { return f.Source }
func (f *FencedCode) blockNode()      {}

// Blockquote is a single line prefixed with "> ".
type Blockquote struct {
	Source  span.Span
	Content []Inline
}

func (b *Blockquote) Kind() NodeKind  { return KindBlockquote }
func (b *Blockquote) Span() span.Span { return b.Source }
func (b *Blockquote) blockNode()      {}

// PrefixLen returns the byte length of the "> " prefix.
func (b *Blockquote) PrefixLen() int { return 2 }

// UnorderedListItem is a single bullet list item, optionally a task item.
type UnorderedListItem struct {
	Source  span.Span
	Marker  byte // '-', '*' or '+'
	Indent  int  // leading whitespace bytes before the marker
	IsTask  bool
	Checked bool
	Content []Inline
}

func (u *UnorderedListItem) Kind() NodeKind  { return KindUnorderedListItem }
func (u *UnorderedListItem) Span() span.Span { return u.Source }
func (u *UnorderedListItem) blockNode()      {}

// PrefixLen returns the byte length of indent, marker, spaces and any
// task checkbox.
func (u *UnorderedListItem) PrefixLen() int {
	n := u.Indent + 2 // marker + space
	if u.IsTask {
		n += 4 // "[ ] " or "[x] "
	}
	return n
}

// CheckboxOffset returns the offset of the "[" of the task checkbox,
// relative to the block start. Only meaningful when IsTask is set.
func (u *UnorderedListItem) CheckboxOffset() int { return u.Indent + 2 }

// OrderedListItem is a single numbered list item, optionally a task item.
type OrderedListItem struct {
	Source     span.Span
	Number     int
	NumberText string // digits as written, e.g. "07"
	Delim      byte   // '.' or ')'
	Indent     int
	IsTask     bool
	Checked    bool
	Content    []Inline
}

func (o *OrderedListItem) Kind() NodeKind  { return KindOrderedListItem }
func (o *OrderedListItem) Span() span.Span { return o.Source }
func (o *OrderedListItem) blockNode()      {}

// PrefixLen returns the byte length of indent, number, delimiter, spaces
// and any task checkbox.
func (o *OrderedListItem) PrefixLen() int {
	n := o.Indent + len(o.NumberText) + 2 // delim + space
	if o.IsTask {
		n += 4
	}
	return n
}

// CheckboxOffset returns the offset of the "[" of the task checkbox,
// relative to the block start. Only meaningful when IsTask is set.
func (o *OrderedListItem) CheckboxOffset() int {
	return o.Indent + len(o.NumberText) + 2
}

// SetextHeading is a content line underlined by a run of '=' (level 1)
// or '-' (level 2).
type SetextHeading struct {
	Source    span.Span
	Level     int    // 1 or 2
	Underline string // the underline line without its terminator
	// ContentStop is the absolute offset just past the content line text,
	// before its terminator.
	ContentStop int
	Content     []Inline
}

func (s *SetextHeading) Kind() NodeKind  { return KindSetextHeading }
func (s *SetextHeading) Span() span.Span { return s.Source }
func (s *SetextHeading) blockNode()      {}

// Alignment is a table column alignment derived from the delimiter row.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Table is a pipe table: a header row, a delimiter row and zero or more
// body rows. Cells are plain strings and are not parsed further.
type Table struct {
	Source     span.Span
	Header     []string
	Alignments []Alignment
	Rows       [][]string
	// DelimStart/DelimStop are absolute offsets of the delimiter row
	// line including its terminator.
	DelimStart int
	DelimStop  int
}

func (t *Table) Kind() NodeKind  { return KindTable }
func (t *Table) Span() span.Span { return t.Source }
func (t *Table) blockNode()      {}

// MathBlock is a display math block delimited by "$$" lines.
type MathBlock struct {
	Source    span.Span
	Expr      string
	BodyStart int
	BodyStop  int
	Closed    bool
}

func (m *MathBlock) Kind() NodeKind  { return KindMathBlock }
func (m *MathBlock) Span() span.Span { return m.Source }
func (m *MathBlock) blockNode()      {}

// FootnoteDefinition is a "[^label]:" line with inline content.
type FootnoteDefinition struct {
	Source span.Span
	Label  string
	// PrefixLen is the byte length of "[^label]:" plus one optional space.
	PrefixLen int
	Content   []Inline
}

func (f *FootnoteDefinition) Kind() NodeKind  { return KindFootnoteDefinition }
func (f *FootnoteDefinition) Span() span.Span { return f.Source }
func (f *FootnoteDefinition) blockNode()      {}

// YamlFrontMatter holds raw front matter content. Only valid as the
// first block of a document.
type YamlFrontMatter struct {
	Source    span.Span
	Content   string // raw lines between the fences
	BodyStart int
	BodyStop  int
}

func (y *YamlFrontMatter) Kind() NodeKind  { return KindYamlFrontMatter }
func (y *YamlFrontMatter) Span() span.Span { return y.Source }
func (y *YamlFrontMatter) blockNode()      {}

// TableOfContents is a "[TOC]" marker line. It carries no content.
type TableOfContents struct {
	Source span.Span
}

func (t *TableOfContents) Kind() NodeKind  { return KindTableOfContents }
func (t *TableOfContents) Span() span.Span { return t.Source }
func (t *TableOfContents) blockNode()      {}

// BlockInlines returns the ordered inline children of a block, or nil for
// block kinds that have none.
func BlockInlines(b Block) []Inline {
	switch v := b.(type) {
	case *Heading:
		return v.Content
	case *Paragraph:
		return v.Content
	case *Blockquote:
		return v.Content
	case *UnorderedListItem:
		return v.Content
	case *OrderedListItem:
		return v.Content
	case *SetextHeading:
		return v.Content
	case *FootnoteDefinition:
		return v.Content
	default:
		return nil
	}
}
