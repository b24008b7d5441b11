package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	// Test setting version
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test root command properties
	if rootCmd.Use != "custctl" {
		t.Errorf("Expected Use to be 'custctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	// Create a new command to test version template
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Set the same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "custctl version %s\n" .Version}}`)

	// Capture output
	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	// Execute version command
	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "custctl version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	// Test that subcommands are added
	commands := rootCmd.Commands()

	expectedCommands := []string{"browse", "version", "self-update"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestNewBrowseCmdIsReentrant(t *testing.T) {
	// Each call must build a fresh command with its own flag set;
	// registering flags on a shared singleton twice panics.
	first := newBrowseCmd()
	second := newBrowseCmd()

	if first == second {
		t.Fatal("Expected newBrowseCmd to return a new command per call")
	}

	for i, cmd := range []*cobra.Command{first, second} {
		if cmd.Flags().Lookup("api") == nil {
			t.Errorf("Command %d is missing the --api flag", i)
		}
		if cmd.Flags().Lookup("limit") == nil {
			t.Errorf("Command %d is missing the --limit flag", i)
		}
	}
}

func TestRootCommandInitializesCLILogging(t *testing.T) {
	if rootCmd.PersistentPreRun == nil {
		t.Error("Expected PersistentPreRun to be set for CLI logging")
	}
}

func TestBrowseCommandHelp(t *testing.T) {
	// Test that browse help can be generated without error
	var buf bytes.Buffer
	browseCmd := newBrowseCmd()
	browseCmd.SetOut(&buf)
	browseCmd.SetErr(&buf)
	browseCmd.SetArgs([]string{"--help"})

	err := browseCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing browse help: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "customer browser") {
		t.Errorf("Help output should describe the browser. Got: %q", output)
	}

	if !strings.Contains(output, "--api") {
		t.Errorf("Help output should list the --api flag. Got: %q", output)
	}
}
