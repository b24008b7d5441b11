package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	cmd := newSelfUpdateCmd()

	if cmd.Use != "self-update" {
		t.Errorf("Expected Use to be 'self-update', got %q", cmd.Use)
	}
	if cmd.RunE == nil {
		t.Fatal("Expected RunE function to be set")
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Error executing self-update help: %v", err)
	}
	if !strings.Contains(buf.String(), "Checks for the latest release") {
		t.Errorf("Help output should contain the long description. Got: %q", buf.String())
	}
}

// The update flow itself talks to GitHub and replaces the binary, so
// only the local guard is tested here.
func TestSelfUpdateRefusesUnreleasedBuilds(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	tests := []struct {
		name    string
		version string
	}{
		{name: "dev build", version: "dev"},
		{name: "version unset", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.Version = tt.version

			err := runSelfUpdate(nil, nil)
			if err == nil {
				t.Fatalf("Expected an error for version %q", tt.version)
			}
			if !strings.Contains(err.Error(), "cannot self-update a development version") {
				t.Errorf("Expected development-version refusal, got: %v", err)
			}
		})
	}
}
