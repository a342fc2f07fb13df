package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdedit/internal/logging"
	"github.com/yaklabco/mdedit/internal/ui/pretty"
	"github.com/yaklabco/mdedit/pkg/parser"
	"github.com/yaklabco/mdedit/pkg/render"
)

func newRenderCommand() *cobra.Command {
	var collapsed bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Preview a document as styled terminal output",
		Long: `Parse a markdown document and print it as styled runs, the way an
editor surface would display it. Revealed mode mutes syntax delimiters;
collapsed mode hides them while keeping every byte in place.

Examples:
  mdedit render README.md
  mdedit render --collapsed README.md
  cat notes.md | mdedit render --color never`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, collapsed)
		},
	}

	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "hide syntax delimiters")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, collapsed bool) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	exts, err := cfg.ExtensionSet()
	if err != nil {
		return err
	}

	text, name, err := readInput(args)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	mode := "revealed"
	if collapsed {
		mode = "collapsed"
	}

	doc := parser.New(exts, parser.WithLogger(logger)).Parse(text)
	logger.Debug("rendering document",
		logging.FieldInput, name,
		logging.FieldBlocks, len(doc.Blocks),
		logging.FieldMode, mode,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Label.Render(fmt.Sprintf("%s (%s)", name, mode)))
	fmt.Fprintln(out, styles.Dim.Render(strings.Repeat("-", terminalWidth())))

	if collapsed {
		for _, runs := range render.BuildCollapsedDocument(doc, render.RoleText) {
			fmt.Fprint(out, styles.RenderRuns(runs))
		}
		return nil
	}

	for _, b := range doc.Blocks {
		fmt.Fprint(out, styles.RenderRuns(render.BuildRevealed(b, render.RoleText)))
	}

	return nil
}

// terminalWidth reports the stdout width, defaulting to 80 when stdout
// is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
