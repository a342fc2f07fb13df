package editor

import "strings"

// TextEdit is a single text replacement: bytes [StartOffset, EndOffset)
// are replaced by NewText.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// applyEdits applies a slice of non-overlapping edits, sorted by start
// offset, to the text.
func applyEdits(text string, edits []TextEdit) string {
	if len(edits) == 0 {
		return text
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out strings.Builder
	out.Grow(len(text) + delta)

	cursor := 0
	for _, e := range edits {
		out.WriteString(text[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.WriteString(text[cursor:])

	return out.String()
}

// shiftOffset maps a pre-edit offset to its post-edit position. Offsets
// inside a replaced range clamp to the replacement end.
func shiftOffset(offset int, edits []TextEdit) int {
	shifted := offset
	for _, e := range edits {
		switch {
		case offset >= e.EndOffset:
			shifted += len(e.NewText) - (e.EndOffset - e.StartOffset)
		case offset > e.StartOffset:
			// Inside the replaced range: clamp to its new end.
			shifted += e.StartOffset + len(e.NewText) - offset
		}
	}
	return shifted
}
