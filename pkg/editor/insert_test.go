package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdedit/pkg/editor"
)

func TestInsertLink(t *testing.T) {
	t.Parallel()

	t.Run("collapsed cursor inserts template", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.InsertLink("see \n", editor.Selection{Start: 4, Stop: 4})
		assert.Equal(t, "see [](url)\n", res.Text)
		// Cursor between the brackets.
		assert.Equal(t, editor.Selection{Start: 5, Stop: 5}, res.Selection)
	})

	t.Run("selection becomes link text", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.InsertLink("see docs\n", editor.Selection{Start: 4, Stop: 8})
		assert.Equal(t, "see [docs](url)\n", res.Text)
		// The "url" placeholder is selected.
		assert.Equal(t, "url", res.Text[res.Selection.Start:res.Selection.Stop])
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.InsertLink("ab\n", editor.Selection{Start: -1, Stop: 2})
		assert.Equal(t, "ab\n", res.Text)
	})
}

func TestInsertImage(t *testing.T) {
	t.Parallel()

	t.Run("collapsed cursor", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.InsertImage("x \n", editor.Selection{Start: 2, Stop: 2})
		assert.Equal(t, "x ![](url)\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 4, Stop: 4}, res.Selection)
	})

	t.Run("selection becomes alt text", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.InsertImage("a pic here\n", editor.Selection{Start: 2, Stop: 5})
		assert.Equal(t, "a ![pic](url) here\n", res.Text)
		assert.Equal(t, "url", res.Text[res.Selection.Start:res.Selection.Stop])
	})
}

func TestInsertFootnote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		sel  editor.Selection
		want string
	}{
		{
			name: "first footnote gets one",
			text: "text\n",
			sel:  editor.Selection{Start: 4, Stop: 4},
			want: "text[^1]\n",
		},
		{
			name: "numbering continues past highest label",
			text: "a[^1] b[^4]\n\n[^1]: x\n[^4]: y\n",
			sel:  editor.Selection{Start: 11, Stop: 11},
			want: "a[^1] b[^4][^5]\n\n[^1]: x\n[^4]: y\n",
		},
		{
			name: "non-numeric labels ignored",
			text: "a[^note]\n",
			sel:  editor.Selection{Start: 8, Stop: 8},
			want: "a[^note][^1]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEditor(t)
			res := e.InsertFootnote(tt.text, tt.sel)
			assert.Equal(t, tt.want, res.Text)
			// Cursor sits just past the inserted reference.
			assert.True(t, res.Selection.IsCollapsed())
		})
	}
}
