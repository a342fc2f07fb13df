package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/mdedit/pkg/editor"
	"github.com/yaklabco/mdedit/pkg/parser"
)

func newEditor(t *testing.T) *editor.Editor {
	t.Helper()
	return editor.New(parser.New(parser.AllExtensions()))
}

func TestToggleBold(t *testing.T) {
	t.Parallel()

	t.Run("wrap selection", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("some text\n", editor.Selection{Start: 5, Stop: 9})
		assert.Equal(t, "some **text**\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 7, Stop: 11}, res.Selection)
	})

	t.Run("unwrap when selection is inside bold", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("some **text**\n", editor.Selection{Start: 7, Stop: 11})
		assert.Equal(t, "some text\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 5, Stop: 9}, res.Selection)
	})

	t.Run("unwrap matches underscore delimiter", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("__text__\n", editor.Selection{Start: 2, Stop: 6})
		assert.Equal(t, "text\n", res.Text)
	})

	t.Run("double toggle restores original", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "roundtrip here\n"
		sel := editor.Selection{Start: 0, Stop: 9}
		first := e.ToggleBold(orig, sel)
		second := e.ToggleBold(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
		assert.Equal(t, sel, second.Selection)
	})

	t.Run("collapsed cursor inserts empty pair and removes it", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "ab\n"
		cursor := editor.Selection{Start: 1, Stop: 1}
		first := e.ToggleBold(orig, cursor)
		assert.Equal(t, "a****b\n", first.Text)
		assert.Equal(t, editor.Selection{Start: 3, Stop: 3}, first.Selection)

		second := e.ToggleBold(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
		assert.Equal(t, cursor, second.Selection)
	})

	t.Run("out of range selection is a no-op", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("ab\n", editor.Selection{Start: 0, Stop: 99})
		assert.Equal(t, "ab\n", res.Text)
		require.NotNil(t, res.Doc)
	})

	t.Run("inverted selection is normalized", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("some text\n", editor.Selection{Start: 9, Stop: 5})
		assert.Equal(t, "some **text**\n", res.Text)
	})
}

func TestToggleVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		toggle func(e *editor.Editor, text string, sel editor.Selection) editor.Result
		want   string
	}{
		{
			name:   "italic",
			toggle: (*editor.Editor).ToggleItalic,
			want:   "a *bc* d\n",
		},
		{
			name:   "code",
			toggle: (*editor.Editor).ToggleCode,
			want:   "a `bc` d\n",
		},
		{
			name:   "strikethrough",
			toggle: (*editor.Editor).ToggleStrikethrough,
			want:   "a ~~bc~~ d\n",
		},
		{
			name:   "highlight",
			toggle: (*editor.Editor).ToggleHighlight,
			want:   "a ==bc== d\n",
		},
		{
			name:   "subscript",
			toggle: (*editor.Editor).ToggleSubscript,
			want:   "a ~bc~ d\n",
		},
		{
			name:   "superscript",
			toggle: (*editor.Editor).ToggleSuperscript,
			want:   "a ^bc^ d\n",
		},
		{
			name:   "inline math",
			toggle: (*editor.Editor).ToggleInlineMath,
			want:   "a $bc$ d\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEditor(t)
			orig := "a bc d\n"
			sel := editor.Selection{Start: 2, Stop: 4}

			on := tt.toggle(e, orig, sel)
			assert.Equal(t, tt.want, on.Text)

			off := tt.toggle(e, on.Text, on.Selection)
			assert.Equal(t, orig, off.Text)
			assert.Equal(t, sel, off.Selection)
		})
	}
}

func TestToggleCombinedEmphasis(t *testing.T) {
	t.Parallel()

	t.Run("bold around italic round-trips", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "*ab*\n"
		sel := editor.Selection{Start: 1, Stop: 3}

		first := e.ToggleBold(orig, sel)
		assert.Equal(t, "***ab***\n", first.Text)
		assert.Equal(t, editor.Selection{Start: 3, Stop: 5}, first.Selection)

		second := e.ToggleBold(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
		assert.Equal(t, sel, second.Selection)
	})

	t.Run("italic around bold round-trips", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		orig := "**ab**\n"
		sel := editor.Selection{Start: 2, Stop: 4}

		first := e.ToggleItalic(orig, sel)
		assert.Equal(t, "***ab***\n", first.Text)
		assert.Equal(t, editor.Selection{Start: 3, Stop: 5}, first.Selection)

		second := e.ToggleItalic(first.Text, first.Selection)
		assert.Equal(t, orig, second.Text)
		assert.Equal(t, sel, second.Selection)
	})

	t.Run("bold strips its share of a combined run", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("***ab***\n", editor.Selection{Start: 3, Stop: 5})
		assert.Equal(t, "*ab*\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 1, Stop: 3}, res.Selection)
	})

	t.Run("italic strips its share of a combined run", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleItalic("***ab***\n", editor.Selection{Start: 3, Stop: 5})
		assert.Equal(t, "**ab**\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 2, Stop: 4}, res.Selection)
	})

	t.Run("wrap merging into an unbalanced run is rolled back", func(t *testing.T) {
		t.Parallel()
		e := newEditor(t)
		res := e.ToggleBold("*ab\n", editor.Selection{Start: 1, Stop: 3})
		assert.Equal(t, "*ab\n", res.Text)
		assert.Equal(t, editor.Selection{Start: 1, Stop: 3}, res.Selection)
	})
}

func TestToggleInlineCodeTwoTicks(t *testing.T) {
	t.Parallel()

	// Removal matches the node's actual tick count.
	e := newEditor(t)
	res := e.ToggleCode("``a`b``\n", editor.Selection{Start: 2, Stop: 5})
	assert.Equal(t, "a`b\n", res.Text)
}

func TestToggleIdempotenceProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		base := rapid.StringOfN(rapid.RuneFrom([]rune("abc def*_~`\n")), 1, 60, -1).Draw(t, "base")
		start := rapid.IntRange(0, len(base)).Draw(t, "start")
		stop := rapid.IntRange(start, len(base)).Draw(t, "stop")
		sel := editor.Selection{Start: start, Stop: stop}

		e := editor.New(parser.New(parser.AllExtensions()))
		first := e.ToggleBold(base, sel)
		if len(first.Text) != len(base)+4 {
			// The first toggle did not wrap: it removed bold, was a
			// no-op, or rolled back. Only a successful wrap promises an
			// exact inverse.
			return
		}
		second := e.ToggleBold(first.Text, first.Selection)
		if second.Text != base {
			t.Fatalf("toggle not invertible:\nbase:   %q\nfirst:  %q\nsecond: %q", base, first.Text, second.Text)
		}
		if second.Selection != sel {
			t.Fatalf("selection not restored: base %v, got %v", sel, second.Selection)
		}
	})
}
