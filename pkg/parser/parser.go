// Package parser turns markdown source into a position-exact syntax tree.
// The grammar is a deliberately scoped dialect subset plus a set of named
// extensions; it is total over arbitrary input because every production
// chain ends in a fallback-character rule, so parsing cannot fail.
package parser

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdedit/pkg/ast"
)

// maxInlineDepth bounds recursive inline nesting. Past the bound the
// remaining range degrades to plain text and the document is flagged
// truncated.
const maxInlineDepth = 32

// Parser parses markdown source with a fixed extension configuration.
// A Parser is immutable and safe for concurrent use on independent
// documents.
type Parser struct {
	exts   ExtensionSet
	logger *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report inline-recursion truncation.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a Parser with the given enabled extensions.
func New(exts ExtensionSet, opts ...Option) *Parser {
	p := &Parser{exts: exts}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extensions returns the parser's extension configuration.
func (p *Parser) Extensions() ExtensionSet {
	return p.exts
}

// Parse parses the whole source into a Document. It never fails:
// unrecognized input resolves to paragraphs and plain text.
func (p *Parser) Parse(source string) *ast.Document {
	st := &state{src: source, exts: p.exts}

	for st.pos < len(st.src) {
		st.blocks = append(st.blocks, st.nextBlock())
	}

	if st.truncated && p.logger != nil {
		p.logger.Warn("inline nesting exceeded recursion bound, degraded to plain text",
			"depth", maxInlineDepth)
	}

	return &ast.Document{
		Source:    source,
		Blocks:    st.blocks,
		Truncated: st.truncated,
	}
}

// state is the per-parse working set. Parsers are stateless across calls;
// each Parse builds a fresh state.
type state struct {
	src       string
	pos       int
	exts      ExtensionSet
	blocks    []ast.Block
	truncated bool
}

// lineEnd returns the offset of the first line terminator at or after
// pos, or the end of input.
func (st *state) lineEnd(pos int) int {
	for i := pos; i < len(st.src); i++ {
		if st.src[i] == '\n' || st.src[i] == '\r' {
			return i
		}
	}
	return len(st.src)
}

// terminatorLen returns the byte length of the line terminator at pos:
// 2 for CRLF, 1 for LF or lone CR, 0 at end of input.
func (st *state) terminatorLen(pos int) int {
	if pos >= len(st.src) {
		return 0
	}
	if st.src[pos] == '\r' {
		if pos+1 < len(st.src) && st.src[pos+1] == '\n' {
			return 2
		}
		return 1
	}
	if st.src[pos] == '\n' {
		return 1
	}
	return 0
}

// lineStop returns the offset just past the line starting at pos,
// including its terminator if present. An unterminated final line is as
// valid as a terminated one.
func (st *state) lineStop(pos int) int {
	end := st.lineEnd(pos)
	return end + st.terminatorLen(end)
}

// line returns the text of the line starting at pos, without terminator.
func (st *state) line(pos int) string {
	return st.src[pos:st.lineEnd(pos)]
}
