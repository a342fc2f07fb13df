// Package cli provides the Cobra command structure for mdedit.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdedit/internal/logging"
	"github.com/yaklabco/mdedit/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdedit",
		Short: "A markdown editing engine with dual revealed/collapsed rendering",
		Long: `mdedit is a markdown editing engine for live-preview editors.

It parses markdown into byte-exact spans, renders each block as styled
text runs in revealed mode (syntax visible but muted) or collapsed mode
(syntax hidden in place), and applies formatting toggles that edit the
underlying text directly. Every operation preserves the source text
byte for byte outside the edited region.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newToggleCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// loadConfig resolves the engine configuration for a command: the
// --config file when given, defaults otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	if configPath == "" {
		return config.NewConfig(), nil
	}
	return config.Load(configPath)
}

// readInput reads the document from a file argument or stdin when the
// argument is "-" or absent.
func readInput(args []string) (text string, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
