package editor

import (
	"strings"

	"github.com/yaklabco/mdedit/pkg/ast"
)

// ToggleBold wraps the selection in "**" or removes the enclosing bold
// delimiters, matching "__" on removal when that is what is present.
func (e *Editor) ToggleBold(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindBold, "**")
}

// ToggleItalic wraps the selection in "*" or removes the enclosing
// italic delimiters.
func (e *Editor) ToggleItalic(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindItalic, "*")
}

// ToggleCode wraps the selection in single backticks or removes the
// enclosing inline-code delimiters.
func (e *Editor) ToggleCode(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindInlineCode, "`")
}

// ToggleStrikethrough wraps the selection in "~~" or removes it.
func (e *Editor) ToggleStrikethrough(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindStrikethrough, "~~")
}

// ToggleHighlight wraps the selection in "==" or removes it.
func (e *Editor) ToggleHighlight(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindHighlight, "==")
}

// ToggleSubscript wraps the selection in "~" or removes it.
func (e *Editor) ToggleSubscript(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindSubscript, "~")
}

// ToggleSuperscript wraps the selection in "^" or removes it.
func (e *Editor) ToggleSuperscript(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindSuperscript, "^")
}

// ToggleInlineMath wraps the selection in "$" or removes it.
func (e *Editor) ToggleInlineMath(text string, sel Selection) Result {
	return e.toggleInline(text, sel, ast.KindInlineMath, "$")
}

// toggleInline implements the shared wrap/unwrap algorithm. The insert
// delimiter is fixed per command; removal matches whatever delimiter the
// node actually carries.
func (e *Editor) toggleInline(text string, sel Selection, kind ast.NodeKind, delim string) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) {
		return e.noop(text, sel)
	}
	// Inline delimiters cannot span a line terminator.
	if strings.ContainsAny(text[sel.Start:sel.Stop], "\r\n") {
		return e.noop(text, sel)
	}

	doc := e.parser.Parse(text)
	if block, _ := doc.BlockAt(sel.Start); block != nil {
		if node := ast.InnermostAt(block, kind, sel.Start, sel.Stop); node != nil {
			return e.unwrapInline(text, sel, node)
		}
		// Bold or italic inside a combined "***" run strips only that
		// command's share of the delimiters, leaving the other format.
		if kind == ast.KindBold || kind == ast.KindItalic {
			if node := ast.InnermostAt(block, ast.KindBoldItalic, sel.Start, sel.Stop); node != nil {
				w := len(delim)
				sp := node.Span()
				edits := []TextEdit{
					{StartOffset: sp.Start, EndOffset: sp.Start + w},
					{StartOffset: sp.Stop - w, EndOffset: sp.Stop},
				}
				return e.commit(text, sel, edits)
			}
		}
	}

	// A collapsed cursor sitting between a freshly inserted empty
	// delimiter pair toggles back off.
	if sel.IsCollapsed() && surroundedBy(text, sel.Start, delim) {
		w := len(delim)
		edits := []TextEdit{
			{StartOffset: sel.Start - w, EndOffset: sel.Start},
			{StartOffset: sel.Start, EndOffset: sel.Start + w},
		}
		return e.commit(text, sel, edits)
	}

	// Wrap. The selection maps onto the same content between the new
	// delimiters; a collapsed cursor lands between the pair so a second
	// toggle removes it again.
	w := len(delim)
	edits := []TextEdit{
		{StartOffset: sel.Start, EndOffset: sel.Start, NewText: delim},
		{StartOffset: sel.Stop, EndOffset: sel.Stop, NewText: delim},
	}
	res := e.commit(text, sel, edits)
	res.Selection = Selection{Start: sel.Start + w, Stop: sel.Stop + w}
	if !wrapInvertible(res, kind, sel, w) {
		return e.noop(text, sel)
	}
	return res
}

// wrapInvertible reports whether freshly inserted delimiters parse so
// that the inverse toggle removes exactly the inserted bytes. A wrap
// whose delimiters merged into an unrelated run is rolled back.
func wrapInvertible(res Result, kind ast.NodeKind, sel Selection, w int) bool {
	block, _ := res.Doc.BlockAt(res.Selection.Start)
	if block == nil {
		return false
	}
	node := ast.InnermostAt(block, kind, res.Selection.Start, res.Selection.Stop)
	var combined ast.Inline
	if kind == ast.KindBold || kind == ast.KindItalic {
		combined = ast.InnermostAt(block, ast.KindBoldItalic, res.Selection.Start, res.Selection.Stop)
	}
	if sel.IsCollapsed() {
		// The empty pair parses as plain text and comes back off via
		// the textual surround check, which any enclosing node of the
		// same kind would shadow.
		return node == nil && combined == nil
	}
	if node != nil {
		sp := node.Span()
		return sp.Start == sel.Start && sp.Stop == sel.Stop+2*w
	}
	if combined != nil {
		// The inserted pair joined an existing bold or italic node
		// into a combined run. Stripping this command's share undoes
		// the wrap exactly.
		share := 3 - w
		sp := combined.Span()
		return sp.Start == sel.Start-share && sp.Stop == sel.Stop+2*w+share
	}
	return false
}

// surroundedBy reports whether the delimiter string sits immediately on
// both sides of the offset.
func surroundedBy(text string, offset int, delim string) bool {
	w := len(delim)
	return offset >= w && offset+w <= len(text) &&
		text[offset-w:offset] == delim &&
		strings.HasPrefix(text[offset:], delim)
}

// unwrapInline removes the node's delimiter pair.
func (e *Editor) unwrapInline(text string, sel Selection, node ast.Inline) Result {
	sp := node.Span()
	openW, closeW := delimWidths(node)
	edits := []TextEdit{
		{StartOffset: sp.Start, EndOffset: sp.Start + openW},
		{StartOffset: sp.Stop - closeW, EndOffset: sp.Stop},
	}
	return e.commit(text, sel, edits)
}

// delimWidths returns the open/close delimiter byte widths of a
// symmetric-delimiter inline.
func delimWidths(node ast.Inline) (openWidth, closeWidth int) {
	switch v := node.(type) {
	case *ast.Bold:
		return len(v.Delim), len(v.Delim)
	case *ast.Italic:
		return len(v.Delim), len(v.Delim)
	case *ast.BoldItalic:
		return 3, 3
	case *ast.InlineCode:
		return v.Ticks, v.Ticks
	case *ast.Strikethrough:
		return 2, 2
	case *ast.Highlight:
		return 2, 2
	case *ast.Subscript:
		return 1, 1
	case *ast.Superscript:
		return 1, 1
	case *ast.InlineMath:
		return 1, 1
	default:
		return 0, 0
	}
}
