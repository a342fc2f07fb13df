package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdedit/pkg/editor"
	"github.com/yaklabco/mdedit/pkg/parser"
)

func TestSetHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		sel   editor.Selection
		level int
		want  string
	}{
		{
			name:  "paragraph gains prefix",
			text:  "Title\n",
			sel:   editor.Selection{Start: 2, Stop: 2},
			level: 2,
			want:  "## Title\n",
		},
		{
			name:  "heading level changes",
			text:  "# Title\n",
			sel:   editor.Selection{Start: 3, Stop: 3},
			level: 3,
			want:  "### Title\n",
		},
		{
			name:  "level zero strips prefix",
			text:  "## Title\n",
			sel:   editor.Selection{Start: 4, Stop: 4},
			level: 0,
			want:  "Title\n",
		},
		{
			name:  "same level is a no-op",
			text:  "## Title\n",
			sel:   editor.Selection{Start: 4, Stop: 4},
			level: 2,
			want:  "## Title\n",
		},
		{
			name:  "level seven is a no-op",
			text:  "Title\n",
			sel:   editor.Selection{Start: 0, Stop: 0},
			level: 7,
			want:  "Title\n",
		},
		{
			name:  "code block untouched",
			text:  "```\nx\n```\n",
			sel:   editor.Selection{Start: 5, Stop: 5},
			level: 1,
			want:  "```\nx\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEditor(t)
			res := e.SetHeadingLevel(tt.text, tt.sel, tt.level)
			assert.Equal(t, tt.want, res.Text)
		})
	}

	t.Run("selection tracks prefix edit", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.SetHeadingLevel("Title\n", editor.Selection{Start: 2, Stop: 4}, 2)
		assert.Equal(t, "## Title\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 5, Stop: 7}, res.Selection)
	})
}

func TestIndentOutdent(t *testing.T) {
	t.Parallel()

	t.Run("indent single item", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Indent("- item\n", editor.Selection{Start: 3, Stop: 3})
		assert.Equal(t, "  - item\n", res.Text)
	})

	t.Run("outdent removes one unit", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Outdent("    - item\n", editor.Selection{Start: 6, Stop: 6})
		assert.Equal(t, "  - item\n", res.Text)
	})

	t.Run("outdent clamps at column zero", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Outdent("- item\n", editor.Selection{Start: 3, Stop: 3})
		assert.Equal(t, "- item\n", res.Text)
	})

	t.Run("outdent single leading space", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Outdent(" - item\n", editor.Selection{Start: 3, Stop: 3})
		assert.Equal(t, "- item\n", res.Text)
	})

	t.Run("selection spanning items indents each", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Indent("- a\n- b\n- c\n", editor.Selection{Start: 2, Stop: 6})
		assert.Equal(t, "  - a\n  - b\n- c\n", res.Text)
	})

	t.Run("non-list blocks ignored", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.Indent("plain\n- item\n", editor.Selection{Start: 0, Stop: 13})
		assert.Equal(t, "plain\n  - item\n", res.Text)
	})

	t.Run("custom indent width", func(t *testing.T) {
		t.Parallel()
		e := editor.New(parser.New(parser.AllExtensions()), editor.WithIndentWidth(4))
		res := e.Indent("- item\n", editor.Selection{Start: 0, Stop: 0})
		assert.Equal(t, "    - item\n", res.Text)
	})

	t.Run("indent and outdent round trip", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "- item\n"
		sel := editor.Selection{Start: 3, Stop: 3}
		in := e.Indent(orig, sel)
		out := e.Outdent(in.Text, in.Selection)
		assert.Equal(t, orig, out.Text)
		assert.Equal(t, sel, out.Selection)
	})
}

func TestToggleTaskCheckbox(t *testing.T) {
	t.Parallel()

	t.Run("check and uncheck round trip", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("- [ ] task\n", editor.Selection{}, 0)
		assert.Equal(t, "- [x] task\n", res.Text)

		res = e.ToggleTaskCheckbox(res.Text, res.Selection, 0)
		assert.Equal(t, "- [ ] task\n", res.Text)
	})

	t.Run("uppercase X unchecks", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("- [X] task\n", editor.Selection{}, 0)
		assert.Equal(t, "- [ ] task\n", res.Text)
	})

	t.Run("ordered task item", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("1. [ ] task\n", editor.Selection{}, 0)
		assert.Equal(t, "1. [x] task\n", res.Text)
	})

	t.Run("second block index", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("- [x] a\n- [ ] b\n", editor.Selection{}, 1)
		assert.Equal(t, "- [x] a\n- [x] b\n", res.Text)
	})

	t.Run("non-task item is a no-op", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("- plain\n", editor.Selection{}, 0)
		assert.Equal(t, "- plain\n", res.Text)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleTaskCheckbox("- [ ] task\n", editor.Selection{}, 5)
		assert.Equal(t, "- [ ] task\n", res.Text)
	})
}

func TestToggleCodeBlock(t *testing.T) {
	t.Parallel()

	t.Run("wrap lines", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleCodeBlock("line one\nline two\n", editor.Selection{Start: 2, Stop: 12})
		assert.Equal(t, "```\nline one\nline two\n```\n", res.Text)
	})

	t.Run("unwrap fenced block", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleCodeBlock("```\nbody\n```\n", editor.Selection{Start: 5, Stop: 5})
		assert.Equal(t, "body\n", res.Text)
	})

	t.Run("wrap and unwrap round trip", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "alpha\nbeta\n"
		first := e.ToggleCodeBlock(orig, editor.Selection{Start: 0, Stop: 8})
		second := e.ToggleCodeBlock(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
	})

	t.Run("unterminated text round trips", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "no newline"
		first := e.ToggleCodeBlock(orig, editor.Selection{Start: 2, Stop: 2})
		assert.Equal(t, "```\nno newline\n```", first.Text)
		second := e.ToggleCodeBlock(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
	})

	t.Run("language fence unwraps fully", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleCodeBlock("```go\nx := 1\n```\n", editor.Selection{Start: 8, Stop: 8})
		assert.Equal(t, "x := 1\n", res.Text)
	})
}
