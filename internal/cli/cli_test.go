package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/testutils"
)

func TestNew_Structure(t *testing.T) {
	cmd := New(&config.Config{})

	if cmd.Name != "vspec" {
		t.Errorf("Name = %q, want %q", cmd.Name, "vspec")
	}
	if !strings.HasPrefix(cmd.Version, "v") {
		t.Errorf("Version = %q, want a v-prefixed version", cmd.Version)
	}

	expected := []string{"init", "normalize", "locate", "required", "check", "pin"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q to be registered", name)
		}
	}
}

func TestCLI_ConfigFlagOverridesCandidates(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.WriteTempManifest(t, tmpDir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")

	configPath := testutils.WriteTempConfig(t, "files:\n- Cargo.toml\n")

	cmd := New(&config.Config{})

	output, err := testutils.CaptureStdout(func() {
		runErr := cmd.Run(context.Background(), []string{
			"vspec", "--dir", tmpDir, "--config", configPath, "locate",
		})
		if runErr != nil {
			t.Errorf("Run() error = %v", runErr)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "Cargo.toml") {
		t.Errorf("expected the configured candidate to be located, got:\n%s", output)
	}
}

func TestCLI_ConfigFlagLoadFailure(t *testing.T) {
	configPath := testutils.WriteTempConfig(t, "files: [unclosed\n")

	cmd := New(&config.Config{})

	runErr := cmd.Run(context.Background(), []string{
		"vspec", "--config", configPath, "normalize", "1.2.3",
	})
	if runErr == nil {
		t.Fatal("expected an error for a broken config file, got nil")
	}
	if !strings.Contains(runErr.Error(), "failed to load config") {
		t.Errorf("expected config load failure, got: %v", runErr)
	}
}
