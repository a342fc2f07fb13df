package editor

import (
	"fmt"
	"regexp"
	"strconv"
)

// InsertLink splices a link template at the cursor. A non-collapsed
// selection becomes the link text and the "url" placeholder is left
// selected for replacement; a collapsed cursor lands between the
// brackets.
func (e *Editor) InsertLink(text string, sel Selection) Result {
	return e.insertBracketed(text, sel, "")
}

// InsertImage splices an image template at the cursor, like InsertLink
// with a leading "!".
func (e *Editor) InsertImage(text string, sel Selection) Result {
	return e.insertBracketed(text, sel, "!")
}

func (e *Editor) insertBracketed(text string, sel Selection, bang string) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) {
		return e.noop(text, sel)
	}

	if sel.IsCollapsed() {
		tmpl := bang + "[](url)"
		newText := applyEdits(text, []TextEdit{
			{StartOffset: sel.Start, EndOffset: sel.Start, NewText: tmpl},
		})
		cursor := sel.Start + len(bang) + 1 // between the brackets
		return Result{
			Text:      newText,
			Selection: Selection{Start: cursor, Stop: cursor},
			Doc:       e.parser.Parse(newText),
		}
	}

	edits := []TextEdit{
		{StartOffset: sel.Start, EndOffset: sel.Start, NewText: bang + "["},
		{StartOffset: sel.Stop, EndOffset: sel.Stop, NewText: "](url)"},
	}
	newText := applyEdits(text, edits)
	// Select the "url" placeholder.
	urlStart := sel.Stop + len(bang) + 1 + 2
	return Result{
		Text:      newText,
		Selection: Selection{Start: urlStart, Stop: urlStart + 3},
		Doc:       e.parser.Parse(newText),
	}
}

// footnoteLabelPattern matches integer footnote labels in refs and
// definitions.
var footnoteLabelPattern = regexp.MustCompile(`\[\^(\d+)\]`)

// InsertFootnote splices "[^N]" at the cursor, where N is the lowest
// integer above every numeric footnote label already in the text.
func (e *Editor) InsertFootnote(text string, sel Selection) Result {
	sel = sel.normalized()
	if !inBounds(text, sel) {
		return e.noop(text, sel)
	}

	next := 1
	for _, m := range footnoteLabelPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
			next = n + 1
		}
	}

	ref := fmt.Sprintf("[^%d]", next)
	newText := applyEdits(text, []TextEdit{
		{StartOffset: sel.Start, EndOffset: sel.Start, NewText: ref},
	})
	cursor := sel.Start + len(ref)
	return Result{
		Text:      newText,
		Selection: Selection{Start: cursor, Stop: cursor},
		Doc:       e.parser.Parse(newText),
	}
}
