package pretty

import (
	"strings"

	"github.com/yaklabco/mdedit/pkg/render"
)

// RenderRuns styles a run sequence for terminal output. Concatenating
// the unstyled text of the result equals the concatenated run text.
func (s *Styles) RenderRuns(runs []render.Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(s.Style(r.Role).Render(r.Text))
	}
	return b.String()
}
