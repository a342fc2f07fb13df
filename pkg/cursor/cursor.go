// Package cursor derives the syntax-only byte ranges of a block and
// snaps cursor offsets out of them. The host's hit-testing uses these
// ranges to keep the caret on visible content in collapsed mode.
package cursor

import (
	"sort"

	"github.com/yaklabco/mdedit/pkg/ast"
)

// Range is a half-open byte range relative to the start of a block.
type Range struct {
	Start int
	Stop  int
}

// DelimiterRanges returns the ordered, merged delimiter ranges of a
// block: byte regions that are pure syntax rather than content, with
// offsets relative to the block start.
func DelimiterRanges(b ast.Block) []Range {
	base := b.Span().Start
	var abs []Range
	abs = appendBlockDelims(abs, b)
	for _, in := range ast.BlockInlines(b) {
		abs = appendInlineDelims(abs, in)
	}

	for i := range abs {
		abs[i].Start -= base
		abs[i].Stop -= base
	}
	return mergeRanges(abs)
}

// appendBlockDelims adds the block's own prefix/suffix syntax ranges,
// in absolute offsets.
func appendBlockDelims(out []Range, b ast.Block) []Range {
	sp := b.Span()
	switch v := b.(type) {
	case *ast.Heading:
		out = append(out, Range{sp.Start, sp.Start + v.PrefixLen()})
	case *ast.Blockquote:
		out = append(out, Range{sp.Start, sp.Start + v.PrefixLen()})
	case *ast.UnorderedListItem:
		out = append(out, Range{sp.Start, sp.Start + v.PrefixLen()})
	case *ast.OrderedListItem:
		out = append(out, Range{sp.Start, sp.Start + v.PrefixLen()})
	case *ast.FootnoteDefinition:
		out = append(out, Range{sp.Start, sp.Start + v.PrefixLen})
	case *ast.SetextHeading:
		// Everything past the content line text is syntax.
		out = append(out, Range{v.ContentStop, sp.Stop})
	case *ast.FencedCode:
		out = append(out, Range{sp.Start, v.BodyStart})
		if v.BodyStop < sp.Stop {
			out = append(out, Range{v.BodyStop, sp.Stop})
		}
	case *ast.MathBlock:
		out = append(out, Range{sp.Start, v.BodyStart})
		if v.BodyStop < sp.Stop {
			out = append(out, Range{v.BodyStop, sp.Stop})
		}
	case *ast.YamlFrontMatter:
		out = append(out, Range{sp.Start, v.BodyStart})
		if v.BodyStop < sp.Stop {
			out = append(out, Range{v.BodyStop, sp.Stop})
		}
	case *ast.ThematicBreak, *ast.TableOfContents:
		// The entire block is a delimiter.
		out = append(out, Range{sp.Start, sp.Stop})
	case *ast.Table:
		// The delimiter row is syntax; pipes elsewhere are syntax.
		out = append(out, Range{v.DelimStart, v.DelimStop})
		text := sp.Text
		for i := 0; i < len(text); i++ {
			off := sp.Start + i
			if text[i] == '|' && (off < v.DelimStart || off >= v.DelimStop) {
				out = append(out, Range{off, off + 1})
			}
		}
	}
	return out
}

// appendInlineDelims adds the open/close delimiter ranges of an inline
// and recurses into its children, in absolute offsets.
func appendInlineDelims(out []Range, in ast.Inline) []Range {
	sp := in.Span()
	switch v := in.(type) {
	case *ast.Bold:
		out = wrap(out, sp.Start, sp.Stop, len(v.Delim))
	case *ast.Italic:
		out = wrap(out, sp.Start, sp.Stop, len(v.Delim))
	case *ast.BoldItalic:
		out = wrap(out, sp.Start, sp.Stop, 3)
	case *ast.InlineCode:
		out = wrap(out, sp.Start, sp.Stop, v.Ticks)
	case *ast.Strikethrough:
		out = wrap(out, sp.Start, sp.Stop, 2)
	case *ast.Highlight:
		out = wrap(out, sp.Start, sp.Stop, 2)
	case *ast.Subscript:
		out = wrap(out, sp.Start, sp.Stop, 1)
	case *ast.Superscript:
		out = wrap(out, sp.Start, sp.Stop, 1)
	case *ast.InlineMath:
		out = wrap(out, sp.Start, sp.Stop, 1)
	case *ast.Emoji:
		out = wrap(out, sp.Start, sp.Stop, 1)
	case *ast.EscapedChar:
		out = append(out, Range{sp.Start, sp.Start + 1})
	case *ast.Link:
		labelStop := sp.Start + 1 + len(v.RawLabel)
		out = append(out, Range{sp.Start, sp.Start + 1})
		out = append(out, Range{labelStop, sp.Stop})
	case *ast.Image:
		altStop := sp.Start + 2 + len(v.RawAlt)
		out = append(out, Range{sp.Start, sp.Start + 2})
		out = append(out, Range{altStop, sp.Stop})
	case *ast.Autolink:
		out = append(out, Range{sp.Start, sp.Start + 1})
		out = append(out, Range{sp.Stop - 1, sp.Stop})
	case *ast.FootnoteRef:
		out = append(out, Range{sp.Start, sp.Start + 2})
		out = append(out, Range{sp.Stop - 1, sp.Stop})
	}
	for _, child := range ast.InlineChildren(in) {
		out = appendInlineDelims(out, child)
	}
	return out
}

// wrap appends symmetric open/close delimiter ranges of the given width.
func wrap(out []Range, start, stop, width int) []Range {
	out = append(out, Range{start, start + width})
	out = append(out, Range{stop - width, stop})
	return out
}

// mergeRanges sorts ranges by start and merges overlapping or touching
// neighbors.
func mergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].Stop < ranges[j].Stop
	})
	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.Stop {
			if r.Stop > last.Stop {
				last.Stop = r.Stop
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// SnapToContent relocates an offset that falls strictly inside a
// delimiter range to that range's end. Offsets already on content, or on
// a range boundary, are returned unchanged. The offset is relative to
// the block start.
func SnapToContent(offset int, b ast.Block) int {
	for _, r := range DelimiterRanges(b) {
		if offset > r.Start && offset < r.Stop {
			return r.Stop
		}
	}
	return offset
}
