package parser

import (
	"strings"

	"github.com/yaklabco/mdedit/pkg/ast"
	"github.com/yaklabco/mdedit/pkg/span"
)

// parseInlines parses the inline content of [start, stop). The range
// never spans a line terminator. Dispatch is left to right; at each
// position the most specific production wins, and anything unmatched
// resolves to plain text, so the result always covers the range exactly.
func (st *state) parseInlines(start, stop, depth int) []ast.Inline {
	if start >= stop {
		return nil
	}
	if depth >= maxInlineDepth {
		st.truncated = true
		return []ast.Inline{&ast.PlainText{Source: span.New(st.src, start, stop)}}
	}

	var out []ast.Inline
	pos := start
	for pos < stop {
		if in, next, ok := st.parseInline(pos, stop, depth); ok {
			out = append(out, in)
			pos = next
			continue
		}
		// Plain run up to the next trigger character, or a single
		// fallback character if we are sitting on a failed trigger.
		runEnd := pos + 1
		for runEnd < stop && !isInlineTrigger(st.src[runEnd]) {
			runEnd++
		}
		out = append(out, &ast.PlainText{Source: span.New(st.src, pos, runEnd)})
		pos = runEnd
	}
	return coalescePlainText(st.src, out)
}

// isInlineTrigger reports whether a byte can begin a structured inline.
func isInlineTrigger(c byte) bool {
	switch c {
	case '\\', '*', '_', '~', '=', '^', '`', '$', '[', '!', '<', ':':
		return true
	default:
		return false
	}
}

// coalescePlainText merges adjacent plain-text nodes, folding the
// single-character fallback nodes back into readable runs.
func coalescePlainText(src string, inlines []ast.Inline) []ast.Inline {
	out := inlines[:0]
	for _, in := range inlines {
		if pt, ok := in.(*ast.PlainText); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*ast.PlainText); ok && prev.Source.Stop == pt.Source.Start {
				out[len(out)-1] = &ast.PlainText{
					Source: span.New(src, prev.Source.Start, pt.Source.Stop),
				}
				continue
			}
		}
		out = append(out, in)
	}
	return out
}

// parseInline attempts one structured inline production at pos. Returns
// the node and the offset just past it.
func (st *state) parseInline(pos, stop, depth int) (ast.Inline, int, bool) {
	switch st.src[pos] {
	case '\\':
		return st.tryEscapedChar(pos, stop)
	case '*':
		if in, next, ok := st.tryBoldItalic(pos, stop, depth); ok {
			return in, next, ok
		}
		if in, next, ok := st.tryBold(pos, stop, depth, "**"); ok {
			return in, next, ok
		}
		return st.tryItalic(pos, stop, depth, "*")
	case '_':
		if in, next, ok := st.tryBold(pos, stop, depth, "__"); ok {
			return in, next, ok
		}
		return st.tryItalic(pos, stop, depth, "_")
	case '~':
		// Strikethrough first so the 2-char form is never shadowed by
		// subscript.
		if in, next, ok := st.tryStrikethrough(pos, stop, depth); ok {
			return in, next, ok
		}
		if st.exts.Enabled(ExtSubscript) {
			return st.trySubscript(pos, stop, depth)
		}
		return nil, 0, false
	case '=':
		if st.exts.Enabled(ExtHighlight) {
			return st.tryHighlight(pos, stop, depth)
		}
		return nil, 0, false
	case '^':
		if st.exts.Enabled(ExtSuperscript) {
			return st.trySuperscript(pos, stop, depth)
		}
		return nil, 0, false
	case '`':
		return st.tryInlineCode(pos, stop)
	case '$':
		if st.exts.Enabled(ExtMath) {
			return st.tryInlineMath(pos, stop)
		}
		return nil, 0, false
	case '[':
		if st.exts.Enabled(ExtFootnotes) {
			if in, next, ok := st.tryFootnoteRef(pos, stop); ok {
				return in, next, ok
			}
		}
		return st.tryLink(pos, stop, depth)
	case '!':
		return st.tryImage(pos, stop, depth)
	case '<':
		return st.tryAutolink(pos, stop)
	case ':':
		if st.exts.Enabled(ExtEmoji) {
			return st.tryEmoji(pos, stop)
		}
		return nil, 0, false
	default:
		return nil, 0, false
	}
}

// tryEscapedChar parses a backslash followed by one escapable
// punctuation character. Any other backslash is plain text.
func (st *state) tryEscapedChar(pos, stop int) (ast.Inline, int, bool) {
	if pos+1 >= stop || !isEscapable(st.src[pos+1]) {
		return nil, 0, false
	}
	node := &ast.EscapedChar{
		Source: span.New(st.src, pos, pos+2),
		Char:   st.src[pos+1],
	}
	return node, pos + 2, true
}

// isEscapable returns true for the fixed ASCII punctuation escape set.
func isEscapable(c byte) bool {
	switch c {
	case '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`', '{', '|', '}', '~':
		return true
	default:
		return false
	}
}

// closeDelim finds the first occurrence of delim after a non-empty
// content region. Returns the content stop offset, or -1. Empty content
// is always rejected so bare delimiter pairs fall through to plain text.
func (st *state) closeDelim(contentStart, stop int, delim string) int {
	if contentStart >= stop {
		return -1
	}
	idx := strings.Index(st.src[contentStart:stop], delim)
	if idx <= 0 {
		return -1 // no close, or empty content
	}
	return contentStart + idx
}

// tryBoldItalic parses "***x***".
func (st *state) tryBoldItalic(pos, stop, depth int) (ast.Inline, int, bool) {
	if !strings.HasPrefix(st.src[pos:stop], "***") {
		return nil, 0, false
	}
	contentStop := st.closeDelim(pos+3, stop, "***")
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.BoldItalic{
		Source:  span.New(st.src, pos, contentStop+3),
		Content: st.parseInlines(pos+3, contentStop, depth+1),
	}
	return node, contentStop + 3, true
}

// tryBold parses "**x**" or "__x__".
func (st *state) tryBold(pos, stop, depth int, delim string) (ast.Inline, int, bool) {
	if !strings.HasPrefix(st.src[pos:stop], delim) {
		return nil, 0, false
	}
	contentStop := st.closeDelim(pos+2, stop, delim)
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Bold{
		Source:  span.New(st.src, pos, contentStop+2),
		Delim:   delim,
		Content: st.parseInlines(pos+2, contentStop, depth+1),
	}
	return node, contentStop + 2, true
}

// tryItalic parses "*x*" or "_x_".
func (st *state) tryItalic(pos, stop, depth int, delim string) (ast.Inline, int, bool) {
	contentStop := st.closeDelim(pos+1, stop, delim)
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Italic{
		Source:  span.New(st.src, pos, contentStop+1),
		Delim:   delim,
		Content: st.parseInlines(pos+1, contentStop, depth+1),
	}
	return node, contentStop + 1, true
}

// tryStrikethrough parses "~~x~~".
func (st *state) tryStrikethrough(pos, stop, depth int) (ast.Inline, int, bool) {
	if !strings.HasPrefix(st.src[pos:stop], "~~") {
		return nil, 0, false
	}
	contentStop := st.closeDelim(pos+2, stop, "~~")
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Strikethrough{
		Source:  span.New(st.src, pos, contentStop+2),
		Content: st.parseInlines(pos+2, contentStop, depth+1),
	}
	return node, contentStop + 2, true
}

// trySubscript parses "~x~".
func (st *state) trySubscript(pos, stop, depth int) (ast.Inline, int, bool) {
	contentStop := st.closeDelim(pos+1, stop, "~")
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Subscript{
		Source:  span.New(st.src, pos, contentStop+1),
		Content: st.parseInlines(pos+1, contentStop, depth+1),
	}
	return node, contentStop + 1, true
}

// tryHighlight parses "==x==".
func (st *state) tryHighlight(pos, stop, depth int) (ast.Inline, int, bool) {
	if !strings.HasPrefix(st.src[pos:stop], "==") {
		return nil, 0, false
	}
	contentStop := st.closeDelim(pos+2, stop, "==")
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Highlight{
		Source:  span.New(st.src, pos, contentStop+2),
		Content: st.parseInlines(pos+2, contentStop, depth+1),
	}
	return node, contentStop + 2, true
}

// trySuperscript parses "^x^".
func (st *state) trySuperscript(pos, stop, depth int) (ast.Inline, int, bool) {
	contentStop := st.closeDelim(pos+1, stop, "^")
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.Superscript{
		Source:  span.New(st.src, pos, contentStop+1),
		Content: st.parseInlines(pos+1, contentStop, depth+1),
	}
	return node, contentStop + 1, true
}

// tryInlineCode parses one- or two-backtick inline code. A longer run
// is not inline code and falls through to plain text.
func (st *state) tryInlineCode(pos, stop int) (ast.Inline, int, bool) {
	ticks := 0
	for pos+ticks < stop && st.src[pos+ticks] == '`' {
		ticks++
	}
	if ticks < 1 || ticks > 2 {
		return nil, 0, false
	}
	delim := st.src[pos : pos+ticks]
	contentStop := st.closeDelim(pos+ticks, stop, delim)
	if contentStop < 0 {
		return nil, 0, false
	}
	node := &ast.InlineCode{
		Source: span.New(st.src, pos, contentStop+ticks),
		Ticks:  ticks,
		Code:   st.src[pos+ticks : contentStop],
	}
	return node, contentStop + ticks, true
}

// tryInlineMath parses "$x$". Content adjacent to either delimiter must
// not be a space, so "$5 and $" stays plain text.
func (st *state) tryInlineMath(pos, stop int) (ast.Inline, int, bool) {
	contentStop := st.closeDelim(pos+1, stop, "$")
	if contentStop < 0 {
		return nil, 0, false
	}
	expr := st.src[pos+1 : contentStop]
	if expr[0] == ' ' || expr[0] == '\t' ||
		expr[len(expr)-1] == ' ' || expr[len(expr)-1] == '\t' {
		return nil, 0, false
	}
	node := &ast.InlineMath{
		Source: span.New(st.src, pos, contentStop+1),
		Expr:   expr,
	}
	return node, contentStop + 1, true
}

// tryFootnoteRef parses "[^label]".
func (st *state) tryFootnoteRef(pos, stop int) (ast.Inline, int, bool) {
	if pos+1 >= stop || st.src[pos+1] != '^' {
		return nil, 0, false
	}
	i := pos + 2
	for i < stop && st.src[i] != ']' {
		if st.src[i] == ' ' || st.src[i] == '\t' {
			return nil, 0, false
		}
		i++
	}
	if i >= stop || i == pos+2 {
		return nil, 0, false
	}
	node := &ast.FootnoteRef{
		Source: span.New(st.src, pos, i+1),
		Label:  st.src[pos+2 : i],
	}
	return node, i + 1, true
}

// tryLink parses "[text](url)" with an optional quoted title. The link
// text may be empty; nested brackets are not supported.
func (st *state) tryLink(pos, stop, depth int) (ast.Inline, int, bool) {
	rb := strings.IndexByte(st.src[pos+1:stop], ']')
	if rb < 0 {
		return nil, 0, false
	}
	rb += pos + 1
	if rb+1 >= stop || st.src[rb+1] != '(' {
		return nil, 0, false
	}
	rp := strings.IndexByte(st.src[rb+2:stop], ')')
	if rp < 0 {
		return nil, 0, false
	}
	rp += rb + 2

	url, title := splitLinkDest(st.src[rb+2 : rp])
	node := &ast.Link{
		Source:   span.New(st.src, pos, rp+1),
		Label:    st.parseInlines(pos+1, rb, depth+1),
		RawLabel: st.src[pos+1 : rb],
		URL:      url,
		Title:    title,
	}
	return node, rp + 1, true
}

// tryImage parses "![alt](url)".
func (st *state) tryImage(pos, stop, depth int) (ast.Inline, int, bool) {
	if pos+1 >= stop || st.src[pos+1] != '[' {
		return nil, 0, false
	}
	link, next, ok := st.tryLink(pos+1, stop, depth)
	if !ok {
		return nil, 0, false
	}
	l := link.(*ast.Link)
	node := &ast.Image{
		Source: span.New(st.src, pos, next),
		Alt:    l.Label,
		RawAlt: l.RawLabel,
		URL:    l.URL,
		Title:  l.Title,
	}
	return node, next, true
}

// splitLinkDest splits a link destination into URL and optional quoted
// title.
func splitLinkDest(dest string) (url, title string) {
	if i := strings.Index(dest, ` "`); i >= 0 && strings.HasSuffix(dest, `"`) && len(dest) > i+2 {
		return dest[:i], dest[i+2 : len(dest)-1]
	}
	return dest, ""
}

// tryAutolink parses "<url>". Empty or unclosed autolinks are rejected.
func (st *state) tryAutolink(pos, stop int) (ast.Inline, int, bool) {
	i := pos + 1
	for i < stop && st.src[i] != '>' {
		if st.src[i] == ' ' || st.src[i] == '\t' || st.src[i] == '<' {
			return nil, 0, false
		}
		i++
	}
	if i >= stop || i == pos+1 {
		return nil, 0, false
	}
	node := &ast.Autolink{
		Source: span.New(st.src, pos, i+1),
		URL:    st.src[pos+1 : i],
	}
	return node, i + 1, true
}

// tryEmoji parses ":shortcode:" with no internal whitespace.
func (st *state) tryEmoji(pos, stop int) (ast.Inline, int, bool) {
	i := pos + 1
	for i < stop && st.src[i] != ':' {
		if st.src[i] == ' ' || st.src[i] == '\t' {
			return nil, 0, false
		}
		i++
	}
	if i >= stop || i == pos+1 {
		return nil, 0, false
	}
	node := &ast.Emoji{
		Source:    span.New(st.src, pos, i+1),
		Shortcode: st.src[pos+1 : i],
	}
	return node, i + 1, true
}
