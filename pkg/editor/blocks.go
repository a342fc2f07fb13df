package editor

import (
	"strings"

	"github.com/yaklabco/mdedit/pkg/ast"
)

// SetHeadingLevel replaces or inserts the leading "#"-run of the block
// containing the selection. Level 0 means plain paragraph and removes
// any heading prefix. Blocks that are neither headings nor paragraphs
// are left alone.
func (e *Editor) SetHeadingLevel(text string, sel Selection, level int) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) || level < 0 || level > 6 {
		return e.noop(text, sel)
	}

	doc := e.parser.Parse(text)
	block, _ := doc.BlockAt(sel.Start)
	if block == nil {
		if level == 0 || text != "" {
			return e.noop(text, sel)
		}
		// Empty document: seed a heading prefix at the cursor.
		prefix := strings.Repeat("#", level) + " "
		return e.commit(text, sel, []TextEdit{{NewText: prefix}})
	}

	bs := block.Span().Start
	prefix := ""
	if level > 0 {
		prefix = strings.Repeat("#", level) + " "
	}

	switch v := block.(type) {
	case *ast.Heading:
		if v.Level == level {
			return e.noop(text, sel)
		}
		return e.commit(text, sel, []TextEdit{
			{StartOffset: bs, EndOffset: bs + v.PrefixLen(), NewText: prefix},
		})
	case *ast.Paragraph:
		if level == 0 {
			return e.noop(text, sel)
		}
		return e.commit(text, sel, []TextEdit{
			{StartOffset: bs, EndOffset: bs, NewText: prefix},
		})
	default:
		return e.noop(text, sel)
	}
}

// Indent adds one indent unit to every list item touched by the
// selection.
func (e *Editor) Indent(text string, sel Selection) Result {
	return e.reindent(text, sel, true)
}

// Outdent removes up to one indent unit from every list item touched by
// the selection.
func (e *Editor) Outdent(text string, sel Selection) Result {
	return e.reindent(text, sel, false)
}

func (e *Editor) reindent(text string, sel Selection, deeper bool) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) {
		return e.noop(text, sel)
	}

	doc := e.parser.Parse(text)
	unit := strings.Repeat(" ", e.indentUnit)

	var edits []TextEdit
	for _, b := range doc.Blocks {
		if !overlaps(b, sel) {
			continue
		}
		indent := 0
		switch v := b.(type) {
		case *ast.UnorderedListItem:
			indent = v.Indent
		case *ast.OrderedListItem:
			indent = v.Indent
		default:
			continue
		}

		bs := b.Span().Start
		if deeper {
			edits = append(edits, TextEdit{StartOffset: bs, EndOffset: bs, NewText: unit})
		} else if remove := min(indent, e.indentUnit); remove > 0 {
			edits = append(edits, TextEdit{StartOffset: bs, EndOffset: bs + remove})
		}
	}
	if len(edits) == 0 {
		return e.noop(text, sel)
	}
	return e.commit(text, sel, edits)
}

// overlaps reports whether the block's span touches the selection. A
// collapsed cursor touches the block containing it.
func overlaps(b ast.Block, sel Selection) bool {
	sp := b.Span()
	if sel.IsCollapsed() {
		return sp.Contains(sel.Start)
	}
	return sp.Start < sel.Stop && sel.Start < sp.Stop
}

// ToggleTaskCheckbox flips "[ ]" and "[x]" in place for the task list
// item at the given block index. A no-op for out-of-range indices and
// non-task blocks.
func (e *Editor) ToggleTaskCheckbox(text string, sel Selection, blockIndex int) Result {
	doc := e.parser.Parse(text)
	if blockIndex < 0 || blockIndex >= len(doc.Blocks) {
		return e.noop(text, sel)
	}

	var markOffset int
	var checked bool
	switch v := doc.Blocks[blockIndex].(type) {
	case *ast.UnorderedListItem:
		if !v.IsTask {
			return e.noop(text, sel)
		}
		markOffset = v.Span().Start + v.CheckboxOffset() + 1
		checked = v.Checked
	case *ast.OrderedListItem:
		if !v.IsTask {
			return e.noop(text, sel)
		}
		markOffset = v.Span().Start + v.CheckboxOffset() + 1
		checked = v.Checked
	default:
		return e.noop(text, sel)
	}

	mark := "x"
	if checked {
		mark = " "
	}
	return e.commit(text, sel, []TextEdit{
		{StartOffset: markOffset, EndOffset: markOffset + 1, NewText: mark},
	})
}

// ToggleCodeBlock wraps the selected lines in a fenced code block, or
// removes the fences when the selection is inside one.
func (e *Editor) ToggleCodeBlock(text string, sel Selection) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) {
		return e.noop(text, sel)
	}

	doc := e.parser.Parse(text)
	if block, _ := doc.BlockAt(sel.Start); block != nil {
		if fc, ok := block.(*ast.FencedCode); ok {
			return e.unwrapCodeBlock(text, sel, fc)
		}
	}

	// Expand the selection to whole lines.
	ls := strings.LastIndexByte(text[:sel.Start], '\n') + 1
	le := sel.Stop
	if i := strings.IndexByte(text[sel.Stop:], '\n'); i >= 0 {
		le = sel.Stop + i + 1
	} else {
		le = len(text)
	}

	var edits []TextEdit
	if le > ls && text[le-1] == '\n' {
		edits = []TextEdit{
			{StartOffset: ls, EndOffset: ls, NewText: "```\n"},
			{StartOffset: le, EndOffset: le, NewText: "```\n"},
		}
	} else {
		edits = []TextEdit{
			{StartOffset: ls, EndOffset: ls, NewText: "```\n"},
			{StartOffset: le, EndOffset: le, NewText: "\n```"},
		}
	}
	return e.commit(text, sel, edits)
}

// unwrapCodeBlock removes the fence lines of a code block. When the
// closing fence ends the text without its own terminator, the body's
// final newline is removed with it so wrap/unwrap round-trips exactly.
func (e *Editor) unwrapCodeBlock(text string, sel Selection, fc *ast.FencedCode) Result {
	sp := fc.Span()
	closeStart := fc.BodyStop
	if sp.Stop == len(text) && !strings.HasSuffix(sp.Text, "\n") && closeStart < sp.Stop {
		if closeStart >= 2 && text[closeStart-2:closeStart] == "\r\n" {
			closeStart -= 2
		} else if closeStart >= 1 && text[closeStart-1] == '\n' {
			closeStart--
		}
	}
	edits := []TextEdit{
		{StartOffset: sp.Start, EndOffset: fc.BodyStart},
	}
	if closeStart < sp.Stop {
		edits = append(edits, TextEdit{StartOffset: closeStart, EndOffset: sp.Stop})
	}
	return e.commit(text, sel, edits)
}
