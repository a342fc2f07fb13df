// Package editor implements the formatting-toggle operations. Each
// operation is a pure function from (source text, selection) to new
// text and selection: it locates the relevant nodes in a fresh parse,
// splices delimiter text in or out, re-parses, and returns. Out-of-range
// input is a no-op, never an error, and every toggle is its own inverse.
package editor

import (
	"github.com/yaklabco/mdedit/pkg/ast"
	"github.com/yaklabco/mdedit/pkg/parser"
)

// Selection is a half-open byte range into the source text, possibly
// collapsed to a single cursor offset.
type Selection struct {
	Start int
	Stop  int
}

// IsCollapsed returns true when the selection is a bare cursor.
func (s Selection) IsCollapsed() bool {
	return s.Start == s.Stop
}

// normalized returns the selection with Start <= Stop.
func (s Selection) normalized() Selection {
	if s.Start > s.Stop {
		return Selection{Start: s.Stop, Stop: s.Start}
	}
	return s
}

// Result is the outcome of an editing operation: the new source text,
// the adjusted selection, and the freshly parsed document.
type Result struct {
	Text      string
	Selection Selection
	Doc       *ast.Document
}

// Editor applies toggle and insert operations, re-parsing after every
// mutation with its configured parser.
type Editor struct {
	parser *parser.Parser
	// indentUnit is the list indent step, in spaces.
	indentUnit int
}

// Option configures an Editor.
type Option func(*Editor)

// WithIndentWidth sets the list indent step in spaces.
func WithIndentWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.indentUnit = width
		}
	}
}

// New creates an Editor around the given parser.
func New(p *parser.Parser, opts ...Option) *Editor {
	e := &Editor{parser: p, indentUnit: 2}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// inBounds reports whether the selection lies within the text.
func inBounds(text string, sel Selection) bool {
	return sel.Start >= 0 && sel.Stop >= sel.Start && sel.Stop <= len(text)
}

// noop returns the input unchanged, with a fresh parse so the host
// always receives a document consistent with the text.
func (e *Editor) noop(text string, sel Selection) Result {
	return Result{Text: text, Selection: sel, Doc: e.parser.Parse(text)}
}

// commit applies the edits, shifts both selection endpoints, re-parses
// and returns the result.
func (e *Editor) commit(text string, sel Selection, edits []TextEdit) Result {
	newText := applyEdits(text, edits)
	newSel := Selection{
		Start: shiftOffset(sel.Start, edits),
		Stop:  shiftOffset(sel.Stop, edits),
	}
	return Result{Text: newText, Selection: newSel, Doc: e.parser.Parse(newText)}
}
