package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdedit/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "mdedit" {
		t.Errorf("expected Use to be 'mdedit', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	expectedSubcommands := []string{"inspect", "render", "toggle", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestToggleCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	toggleCmd, _, err := cmd.Find([]string{"toggle"})
	if err != nil {
		t.Fatalf("toggle command not found: %v", err)
	}

	expectedFlags := []string{"start", "end", "level", "block"}

	for _, flagName := range expectedFlags {
		flag := toggleCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on toggle command", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Version output goes through charmbracelet/log to stdout directly,
	// so only the exit status is checked here.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestToggleCommandExecutes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"toggle", "bold", "--start", "0", "--end", "5", path})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("toggle command failed: %v", err)
	}

	want := "**hello** world\n"
	if out.String() != want {
		t.Errorf("expected output %q, got %q", want, out.String())
	}
}

func TestToggleCommandWritesInPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "todo.md")
	if err := os.WriteFile(path, []byte("- [ ] ship it\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"toggle", "task", "--block", "0", "--write", "--backup", path})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("toggle --write failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "- [x] ship it\n" {
		t.Errorf("expected file rewritten to %q, got %q", "- [x] ship it\n", string(got))
	}

	backup, err := os.ReadFile(path + ".mdedit.bak")
	if err != nil {
		t.Fatalf("expected sidecar backup: %v", err)
	}
	if string(backup) != "- [ ] ship it\n" {
		t.Errorf("expected backup to hold original, got %q", string(backup))
	}
}

func TestToggleCommandWriteRequiresFile(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"toggle", "bold", "--write", "-"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error when --write is used without a file")
	}
}

func TestToggleCommandRejectsUnknownOperation(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"toggle", "sparkle", "-"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
}

func TestInspectCommandExecutes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title\n\ntext\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"inspect", path})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("inspect command failed: %v", err)
	}

	for _, want := range []string{"Heading", "BlankLine", "Paragraph", "0..8"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected inspect output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRenderCommandExecutes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("plain text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"render", "--color", "never", path})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("plain text\n")) {
		t.Errorf("expected rendered output to contain document text, got:\n%s", out.String())
	}
}
