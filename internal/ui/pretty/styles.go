// Package pretty provides Lipgloss-based styled output for render runs.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/mdedit/pkg/render"
)

// Styles maps render roles to terminal styles, plus a few extras for
// CLI chrome around the rendered document.
type Styles struct {
	// Roles styles each render run by its role key. Roles missing
	// from the map render unstyled.
	Roles map[render.Role]lipgloss.Style

	// CLI chrome
	Title   lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	heading := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	syntax := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return &Styles{
		Roles: map[render.Role]lipgloss.Style{
			render.RoleText: lipgloss.NewStyle(),

			render.RoleHeading1: heading,
			render.RoleHeading2: heading,
			render.RoleHeading3: heading,
			render.RoleHeading4: heading,
			render.RoleHeading5: heading,
			render.RoleHeading6: heading,

			render.RoleBold:       lipgloss.NewStyle().Bold(true),
			render.RoleItalic:     lipgloss.NewStyle().Italic(true),
			render.RoleBoldItalic: lipgloss.NewStyle().Bold(true).Italic(true),

			render.RoleInlineCode: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			render.RoleCodeBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

			render.RoleStrikethrough: lipgloss.NewStyle().Strikethrough(true),
			render.RoleHighlight:     lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
			render.RoleSubscript:     lipgloss.NewStyle().Faint(true),
			render.RoleSuperscript:   lipgloss.NewStyle().Faint(true),

			render.RoleLink:           lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true),
			render.RoleImage:          lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			render.RoleMath:           lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			render.RoleMathBlock:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			render.RoleFootnoteRef:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			render.RoleFootnoteDef:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			render.RoleEmoji:          lipgloss.NewStyle(),
			render.RoleEscaped:        lipgloss.NewStyle(),
			render.RoleBlockquote:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("7")),
			render.RoleBlockquoteMark: syntax,
			render.RoleTaskChecked:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			render.RoleTaskUnchecked:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			render.RoleThematicBreak:  syntax,
			render.RoleTable:          lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			render.RoleFrontMatter:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
			render.RoleTOC:            lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

			render.RoleSyntaxDelimiter: syntax,
			render.RoleHiddenSyntax:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Faint(true),
		},

		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Roles:   map[render.Role]lipgloss.Style{},
		Title:   plain,
		Label:   plain,
		Dim:     plain,
		Success: plain,
		Failure: plain,
	}
}

// Style returns the style for a role, falling back to an unstyled
// renderer for unknown roles.
func (s *Styles) Style(role render.Role) lipgloss.Style {
	if st, ok := s.Roles[role]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
