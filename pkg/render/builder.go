// Package render builds styled run sequences for blocks in two modes.
// Revealed mode styles delimiter bytes with a visible "syntax delimiter"
// role; collapsed mode styles the same bytes with a "hidden syntax" role
// so they keep their layout positions without being perceived. In both
// modes the concatenated run text equals the block's source text, except
// for the collapsed forms of table-of-contents and front-matter blocks,
// which may substitute a generated summary.
package render

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdedit/pkg/ast"
	"github.com/yaklabco/mdedit/pkg/span"
)

// Mode selects the rendering form.
type Mode int

const (
	// Revealed keeps all syntax characters visible.
	Revealed Mode = iota
	// Collapsed hides syntax characters while preserving their
	// source-text positions.
	Collapsed
)

// Run is a leaf of the render description: a literal substring of the
// block plus the semantic role the host styles it with.
type Run struct {
	Text string
	Role Role
}

// Text concatenates the text of a run sequence.
func Text(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// BuildRevealed builds the revealed-mode run sequence for a block. The
// base role styles plain content.
func BuildRevealed(b ast.Block, base Role) []Run {
	return build(b, base, Revealed)
}

// BuildCollapsed builds the collapsed-mode run sequence for a block.
// Without document context, TOC and front-matter blocks render their
// literal text hidden; use BuildCollapsedDocument for summaries.
func BuildCollapsed(b ast.Block, base Role) []Run {
	return build(b, base, Collapsed)
}

// BuildCollapsedDocument builds collapsed run sequences for every block,
// substituting a heading index for TOC blocks and a title line for
// front-matter blocks.
func BuildCollapsedDocument(d *ast.Document, base Role) [][]Run {
	out := make([][]Run, len(d.Blocks))
	for i, b := range d.Blocks {
		switch v := b.(type) {
		case *ast.TableOfContents:
			out[i] = []Run{{Text: headingIndex(d), Role: RoleTOC}}
		case *ast.YamlFrontMatter:
			out[i] = []Run{{Text: frontMatterSummary(v), Role: RoleFrontMatter}}
		default:
			out[i] = build(b, base, Collapsed)
		}
	}
	return out
}

// headingIndex generates the TOC substitution text from the document's
// headings.
func headingIndex(d *ast.Document) string {
	headings := d.Headings()
	if len(headings) == 0 {
		return "(no headings)"
	}
	var sb strings.Builder
	for i, h := range headings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", h.Level-1))
		sb.WriteString(h.Text)
	}
	return sb.String()
}

// frontMatterSummary extracts a title from the YAML content, falling
// back to a generic label.
func frontMatterSummary(y *ast.YamlFrontMatter) string {
	var meta map[string]any
	if err := yaml.Unmarshal([]byte(y.Content), &meta); err == nil {
		if title, ok := meta["title"].(string); ok && title != "" {
			return title
		}
	}
	return "front matter"
}

// builder accumulates runs over a single block's source text.
type builder struct {
	src  string // block source text
	base int    // absolute offset of src[0]
	mode Mode
	runs []Run
}

func build(b ast.Block, base Role, mode Mode) []Run {
	sp := b.Span()
	bd := &builder{src: sp.Text, base: sp.Start, mode: mode}
	bd.block(b, base)
	return bd.runs
}

// emit appends a run for the absolute range [start, stop). Ranges
// arrive in source order, so a run with the same role as its
// predecessor extends it instead of starting a new one.
func (bd *builder) emit(start, stop int, role Role) {
	if stop <= start {
		return
	}
	text := bd.src[start-bd.base : stop-bd.base]
	if n := len(bd.runs); n > 0 && bd.runs[n-1].Role == role {
		bd.runs[n-1].Text += text
		return
	}
	bd.runs = append(bd.runs, Run{Text: text, Role: role})
}

// delim appends a delimiter run, styled per mode.
func (bd *builder) delim(start, stop int) {
	if bd.mode == Collapsed {
		bd.emit(start, stop, RoleHiddenSyntax)
	} else {
		bd.emit(start, stop, RoleSyntaxDelimiter)
	}
}

// delimAs appends a delimiter run with a custom revealed role.
func (bd *builder) delimAs(start, stop int, revealed Role) {
	if bd.mode == Collapsed {
		bd.emit(start, stop, RoleHiddenSyntax)
	} else {
		bd.emit(start, stop, revealed)
	}
}

func (bd *builder) block(b ast.Block, base Role) {
	sp := b.Span()
	switch v := b.(type) {
	case *ast.Heading:
		bd.delim(sp.Start, sp.Start+v.PrefixLen())
		bd.inlines(v.Content, sp.Start+v.PrefixLen(), sp.Stop, HeadingRole(v.Level))

	case *ast.Paragraph:
		bd.inlines(v.Content, sp.Start, sp.Stop, base)

	case *ast.SetextHeading:
		bd.inlines(v.Content, sp.Start, v.ContentStop, HeadingRole(v.Level))
		bd.delim(v.ContentStop, sp.Stop)

	case *ast.ThematicBreak:
		bd.delimAs(sp.Start, sp.Stop, RoleThematicBreak)

	case *ast.BlankLine:
		bd.emit(sp.Start, sp.Stop, base)

	case *ast.FencedCode:
		bd.delim(sp.Start, v.BodyStart)
		bd.emit(v.BodyStart, v.BodyStop, RoleCodeBlock)
		bd.delim(v.BodyStop, sp.Stop)

	case *ast.MathBlock:
		bd.delim(sp.Start, v.BodyStart)
		bd.emit(v.BodyStart, v.BodyStop, RoleMathBlock)
		bd.delim(v.BodyStop, sp.Stop)

	case *ast.Blockquote:
		bd.delimAs(sp.Start, sp.Start+v.PrefixLen(), RoleBlockquoteMark)
		bd.inlines(v.Content, sp.Start+v.PrefixLen(), sp.Stop, RoleBlockquote)

	case *ast.UnorderedListItem:
		bd.listPrefix(sp.Start, v.CheckboxOffset(), v.IsTask, v.Checked)
		bd.inlines(v.Content, sp.Start+v.PrefixLen(), sp.Stop, base)

	case *ast.OrderedListItem:
		bd.listPrefix(sp.Start, v.CheckboxOffset(), v.IsTask, v.Checked)
		bd.inlines(v.Content, sp.Start+v.PrefixLen(), sp.Stop, base)

	case *ast.FootnoteDefinition:
		bd.delim(sp.Start, sp.Start+v.PrefixLen)
		bd.inlines(v.Content, sp.Start+v.PrefixLen, sp.Stop, RoleFootnoteDef)

	case *ast.YamlFrontMatter:
		bd.delim(sp.Start, v.BodyStart)
		bd.emit(v.BodyStart, v.BodyStop, RoleFrontMatter)
		bd.delim(v.BodyStop, sp.Stop)

	case *ast.TableOfContents:
		bd.delimAs(sp.Start, sp.Stop, RoleTOC)

	case *ast.Table:
		bd.table(v)
	}
}

// listPrefix emits indent+marker syntax and, for task items, the
// checkbox with its semantic role. The checkbox keeps its role in both
// modes so the host can draw it as a control.
func (bd *builder) listPrefix(start, checkboxOff int, isTask, checked bool) {
	cb := start + checkboxOff
	bd.delim(start, cb)
	if !isTask {
		return
	}
	role := RoleTaskUnchecked
	if checked {
		role = RoleTaskChecked
	}
	bd.emit(cb, cb+3, role)
	bd.delim(cb+3, cb+4)
}

// table emits the whole table span: the delimiter row and all pipes are
// syntax, cell text is content. Adjacent same-role bytes are coalesced.
func (bd *builder) table(t *ast.Table) {
	sp := t.Span()
	runStart := sp.Start
	runRole := bd.tableRole(sp.Start, t)
	for off := sp.Start + 1; off < sp.Stop; off++ {
		role := bd.tableRole(off, t)
		if role != runRole {
			bd.emit(runStart, off, runRole)
			runStart = off
			runRole = role
		}
	}
	bd.emit(runStart, sp.Stop, runRole)
}

func (bd *builder) tableRole(off int, t *ast.Table) Role {
	syntax := RoleSyntaxDelimiter
	if bd.mode == Collapsed {
		syntax = RoleHiddenSyntax
	}
	if off >= t.DelimStart && off < t.DelimStop {
		return syntax
	}
	if bd.src[off-bd.base] == '|' {
		return syntax
	}
	return RoleTable
}

// inlines emits the inline children covering [start, stop) with the
// given content role, filling any uncovered gaps (line terminators,
// empty content) with the same role.
func (bd *builder) inlines(inlines []ast.Inline, start, stop int, role Role) {
	pos := start
	for _, in := range inlines {
		sp := in.Span()
		bd.emit(pos, sp.Start, role)
		bd.inline(in, role)
		pos = sp.Stop
	}
	bd.emit(pos, stop, role)
}

func (bd *builder) inline(in ast.Inline, parent Role) {
	sp := in.Span()
	switch v := in.(type) {
	case *ast.PlainText:
		bd.emit(sp.Start, sp.Stop, parent)

	case *ast.Bold:
		bd.wrapped(sp, len(v.Delim), v.Content, RoleBold)
	case *ast.Italic:
		bd.wrapped(sp, len(v.Delim), v.Content, RoleItalic)
	case *ast.BoldItalic:
		bd.wrapped(sp, 3, v.Content, RoleBoldItalic)
	case *ast.Strikethrough:
		bd.wrapped(sp, 2, v.Content, RoleStrikethrough)
	case *ast.Highlight:
		bd.wrapped(sp, 2, v.Content, RoleHighlight)
	case *ast.Subscript:
		bd.wrapped(sp, 1, v.Content, RoleSubscript)
	case *ast.Superscript:
		bd.wrapped(sp, 1, v.Content, RoleSuperscript)

	case *ast.InlineCode:
		bd.delim(sp.Start, sp.Start+v.Ticks)
		bd.emit(sp.Start+v.Ticks, sp.Stop-v.Ticks, RoleInlineCode)
		bd.delim(sp.Stop-v.Ticks, sp.Stop)

	case *ast.InlineMath:
		bd.delim(sp.Start, sp.Start+1)
		bd.emit(sp.Start+1, sp.Stop-1, RoleMath)
		bd.delim(sp.Stop-1, sp.Stop)

	case *ast.EscapedChar:
		bd.delim(sp.Start, sp.Start+1)
		bd.emit(sp.Start+1, sp.Stop, RoleEscaped)

	case *ast.Link:
		labelStop := sp.Start + 1 + len(v.RawLabel)
		bd.delim(sp.Start, sp.Start+1)
		bd.inlines(v.Label, sp.Start+1, labelStop, RoleLink)
		bd.delim(labelStop, sp.Stop)

	case *ast.Image:
		altStop := sp.Start + 2 + len(v.RawAlt)
		bd.delim(sp.Start, sp.Start+2)
		bd.inlines(v.Alt, sp.Start+2, altStop, RoleImage)
		bd.delim(altStop, sp.Stop)

	case *ast.Autolink:
		bd.delim(sp.Start, sp.Start+1)
		bd.emit(sp.Start+1, sp.Stop-1, RoleLink)
		bd.delim(sp.Stop-1, sp.Stop)

	case *ast.FootnoteRef:
		bd.delim(sp.Start, sp.Start+2)
		bd.emit(sp.Start+2, sp.Stop-1, RoleFootnoteRef)
		bd.delim(sp.Stop-1, sp.Stop)

	case *ast.Emoji:
		bd.delim(sp.Start, sp.Start+1)
		bd.emit(sp.Start+1, sp.Stop-1, RoleEmoji)
		bd.delim(sp.Stop-1, sp.Stop)
	}
}

// wrapped emits a symmetric-delimiter inline: open run, children with
// the inline's role, close run.
func (bd *builder) wrapped(sp span.Span, width int, children []ast.Inline, role Role) {
	bd.delim(sp.Start, sp.Start+width)
	bd.inlines(children, sp.Start+width, sp.Stop-width, role)
	bd.delim(sp.Stop-width, sp.Stop)
}
