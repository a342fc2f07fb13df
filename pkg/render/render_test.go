package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/mdedit/pkg/ast"
	"github.com/yaklabco/mdedit/pkg/parser"
	"github.com/yaklabco/mdedit/pkg/render"
)

func parseBlocks(t *testing.T, source string) *ast.Document {
	t.Helper()
	return parser.New(parser.AllExtensions()).Parse(source)
}

func TestRevealedHeading(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "## Title\n")
	require.Len(t, doc.Blocks, 1)

	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)
	require.Len(t, runs, 2)
	assert.Equal(t, render.Run{Text: "## ", Role: render.RoleSyntaxDelimiter}, runs[0])
	assert.Equal(t, render.Run{Text: "Title\n", Role: render.RoleHeading2}, runs[1])
}

func TestCollapsedHeading(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "## Title\n")
	runs := render.BuildCollapsed(doc.Blocks[0], render.RoleText)
	require.Len(t, runs, 2)
	assert.Equal(t, render.RoleHiddenSyntax, runs[0].Role)
	assert.Equal(t, render.RoleHeading2, runs[1].Role)
	assert.Equal(t, "## Title\n", render.Text(runs))
}

func TestRevealedBoldParagraph(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "a **b** c\n")
	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)

	want := []render.Run{
		{Text: "a ", Role: render.RoleText},
		{Text: "**", Role: render.RoleSyntaxDelimiter},
		{Text: "b", Role: render.RoleBold},
		{Text: "**", Role: render.RoleSyntaxDelimiter},
		{Text: " c\n", Role: render.RoleText},
	}
	assert.Equal(t, want, runs)
}

func TestAdjacentSameRoleRunsCoalesce(t *testing.T) {
	t.Parallel()

	// The line terminator is not an inline node, yet it must not split
	// off into its own run when the role matches.
	doc := parseBlocks(t, "just words\n")
	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)
	require.Len(t, runs, 1)
	assert.Equal(t, render.Run{Text: "just words\n", Role: render.RoleText}, runs[0])
}

func TestTaskCheckboxKeepsRoleInBothModes(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "- [x] done\n")
	for _, mode := range []func(ast.Block, render.Role) []render.Run{
		render.BuildRevealed,
		render.BuildCollapsed,
	} {
		runs := mode(doc.Blocks[0], render.RoleText)
		var found bool
		for _, r := range runs {
			if r.Role == render.RoleTaskChecked {
				assert.Equal(t, "[x]", r.Text)
				found = true
			}
		}
		assert.True(t, found, "checkbox run missing")
	}
}

func TestFencedCodeRuns(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "```go\nbody\n```\n")
	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)

	want := []render.Run{
		{Text: "```go\n", Role: render.RoleSyntaxDelimiter},
		{Text: "body\n", Role: render.RoleCodeBlock},
		{Text: "```\n", Role: render.RoleSyntaxDelimiter},
	}
	assert.Equal(t, want, runs)
}

func TestLinkRuns(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "[text](url)\n")
	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)

	want := []render.Run{
		{Text: "[", Role: render.RoleSyntaxDelimiter},
		{Text: "text", Role: render.RoleLink},
		{Text: "](url)", Role: render.RoleSyntaxDelimiter},
		{Text: "\n", Role: render.RoleText},
	}
	assert.Equal(t, want, runs)
}

func TestTableRuns(t *testing.T) {
	t.Parallel()

	doc := parseBlocks(t, "| a |\n|---|\n")
	runs := render.BuildRevealed(doc.Blocks[0], render.RoleText)
	assert.Equal(t, "| a |\n|---|\n", render.Text(runs))

	// The delimiter row (with its terminator) is one syntax run.
	var sawDelimRow bool
	for _, r := range runs {
		if r.Role == render.RoleSyntaxDelimiter && r.Text == "|---|\n" {
			sawDelimRow = true
		}
	}
	assert.True(t, sawDelimRow, "runs: %#v", runs)
}

func TestTextInvariantAcrossBlockVariants(t *testing.T) {
	t.Parallel()

	sources := []string{
		"# h **b** `c`\n",
		"Title\n===\n",
		"---\n",
		"\n",
		"> quote with *i*\n",
		"- [ ] task with ==h==\n",
		"7. ordered ~sub~ ^sup^\n",
		"```py\nx = 1\n```\n",
		"$$\na^2\n$$\n",
		"[^1]: note with $m$\n",
		"[TOC]\n",
		"| a | b |\n|---|---|\n| 1 | 2 |\n",
		"---\ntitle: doc\n---\n",
		"plain with [l](u) and ![i](v) and <a> and :e: and \\* done\n",
		"no terminator",
	}

	for _, source := range sources {
		doc := parseBlocks(t, source)
		for _, b := range doc.Blocks {
			revealed := render.BuildRevealed(b, render.RoleText)
			collapsed := render.BuildCollapsed(b, render.RoleText)
			assert.Equal(t, b.Span().Text, render.Text(revealed), "revealed %q", source)
			assert.Equal(t, b.Span().Text, render.Text(collapsed), "collapsed %q", source)
		}
	}
}

func TestTextInvariantProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		source := rapid.StringOfN(rapid.RuneFrom([]rune("ab *_~=^`$[]()!<>:#|-.\n\r\t13")), 0, 160, -1).Draw(t, "source")
		doc := parser.New(parser.AllExtensions()).Parse(source)
		for _, b := range doc.Blocks {
			if got := render.Text(render.BuildRevealed(b, render.RoleText)); got != b.Span().Text {
				t.Fatalf("revealed text %q != span %q", got, b.Span().Text)
			}
			if got := render.Text(render.BuildCollapsed(b, render.RoleText)); got != b.Span().Text {
				t.Fatalf("collapsed text %q != span %q", got, b.Span().Text)
			}
		}
	})
}

func TestCollapsedDocumentSubstitutions(t *testing.T) {
	t.Parallel()

	t.Run("toc becomes heading index", func(t *testing.T) {
		t.Parallel()
		doc := parseBlocks(t, "[TOC]\n# One\n## Two\n")
		out := render.BuildCollapsedDocument(doc, render.RoleText)
		require.Len(t, out, 3)
		require.Len(t, out[0], 1)
		assert.Equal(t, render.RoleTOC, out[0][0].Role)
		assert.Equal(t, "One\n  Two", out[0][0].Text)
	})

	t.Run("toc with no headings", func(t *testing.T) {
		t.Parallel()
		doc := parseBlocks(t, "[TOC]\n")
		out := render.BuildCollapsedDocument(doc, render.RoleText)
		require.Len(t, out, 1)
		assert.Equal(t, "(no headings)", out[0][0].Text)
	})

	t.Run("front matter becomes title", func(t *testing.T) {
		t.Parallel()
		doc := parseBlocks(t, "---\ntitle: My Doc\n---\nbody\n")
		out := render.BuildCollapsedDocument(doc, render.RoleText)
		require.Len(t, out, 2)
		require.Len(t, out[0], 1)
		assert.Equal(t, render.RoleFrontMatter, out[0][0].Role)
		assert.Equal(t, "My Doc", out[0][0].Text)
	})

	t.Run("front matter without title uses generic label", func(t *testing.T) {
		t.Parallel()
		doc := parseBlocks(t, "---\nauthor: x\n---\n")
		out := render.BuildCollapsedDocument(doc, render.RoleText)
		assert.Equal(t, "front matter", out[0][0].Text)
	})

	t.Run("other blocks keep the text invariant", func(t *testing.T) {
		t.Parallel()
		source := "# H\ntext **b**\n"
		doc := parseBlocks(t, source)
		out := render.BuildCollapsedDocument(doc, render.RoleText)
		var all string
		for _, runs := range out {
			all += render.Text(runs)
		}
		assert.Equal(t, source, all)
	})
}
