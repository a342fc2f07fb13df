package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const labelSnippetMax = 16

// classifyEdit builds a human-readable label for the transition from
// old to new text: pure insertions show the typed snippet, pure
// deletions show a count, mixed edits get a generic label.
func classifyEdit(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	var inserted, deleted string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += d.Text
		case diffmatchpatch.DiffDelete:
			deleted += d.Text
		}
	}

	switch {
	case inserted != "" && deleted == "":
		return fmt.Sprintf("Typed %q", snippet(inserted))
	case deleted != "" && inserted == "":
		n := utf8.RuneCountInString(deleted)
		if n == 1 {
			return "Deleted 1 char"
		}
		return fmt.Sprintf("Deleted %d chars", n)
	default:
		return "Edited text"
	}
}

func snippet(s string) string {
	if utf8.RuneCountInString(s) <= labelSnippetMax {
		return s
	}
	runes := []rune(s)
	return string(runes[:labelSnippetMax]) + "..."
}
