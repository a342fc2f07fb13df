package ast

import "strings"

// Document is the root of a parsed source: an ordered sequence of blocks.
// Concatenating each block's source text, in order, reproduces the input
// byte for byte.
type Document struct {
	// Source is the exact input the document was parsed from.
	Source string

	// Blocks are the top-level blocks in source order.
	Blocks []Block

	// Truncated is set when the inline recursion bound was reached and
	// part of the tree degraded to plain text.
	Truncated bool
}

// Reconstruct concatenates the block spans in order. For any correctly
// parsed document this equals Source.
func (d *Document) Reconstruct() string {
	var sb strings.Builder
	sb.Grow(len(d.Source))
	for _, b := range d.Blocks {
		sb.WriteString(b.Span().Text)
	}
	return sb.String()
}

// BlockAt returns the block whose span contains the byte offset, along
// with its index. A document-final offset resolves to the last block.
// Returns (nil, -1) for an empty document or an out-of-range offset.
func (d *Document) BlockAt(offset int) (Block, int) {
	if len(d.Blocks) == 0 || offset < 0 || offset > len(d.Source) {
		return nil, -1
	}
	for i, b := range d.Blocks {
		if b.Span().Contains(offset) {
			return b, i
		}
	}
	if offset == len(d.Source) {
		last := len(d.Blocks) - 1
		return d.Blocks[last], last
	}
	return nil, -1
}

// Headings returns all ATX and setext headings in document order as
// (level, plain text) pairs. Used for table-of-contents summaries.
func (d *Document) Headings() []HeadingInfo {
	var out []HeadingInfo
	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Heading:
			out = append(out, HeadingInfo{Level: v.Level, Text: inlineText(v.Content)})
		case *SetextHeading:
			out = append(out, HeadingInfo{Level: v.Level, Text: inlineText(v.Content)})
		}
	}
	return out
}

// HeadingInfo is a heading summary entry.
type HeadingInfo struct {
	Level int
	Text  string
}

func inlineText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		sb.WriteString(in.Span().Text)
	}
	return sb.String()
}
