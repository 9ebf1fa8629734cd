package locate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/testutils"
)

func TestCLI_LocateCommand_CurrentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := testutils.WriteTempManifest(t, tmpDir, "package.json",
		`{"name": "demo-app", "version": "0.3.0", "dependencies": {"left-pad": "^1.3.0"}}`)

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"vspec", "locate"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, manifestPath) {
		t.Errorf("expected output to contain %q, got %q", manifestPath, output)
	}
	if !strings.Contains(output, "demo-app@0.3.0") {
		t.Errorf("expected output to contain name and version, got %q", output)
	}
}

func TestCLI_LocateCommand_AncestorDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := testutils.WriteTempManifest(t, tmpDir, "package.json", `{"name": "root"}`)

	nested := filepath.Join(tmpDir, "packages", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(nested, []*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"vspec", "locate"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, manifestPath) {
		t.Errorf("expected the ancestor manifest %q, got %q", manifestPath, output)
	}
}

func TestCLI_LocateCommand_CandidateOrder(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.WriteTempManifest(t, tmpDir, "package.json", `{"name": "npm-side"}`)
	pubspecPath := testutils.WriteTempManifest(t, tmpDir, "pubspec.yaml", "name: dart-side\n")

	cfg := &config.Config{Files: []string{"pubspec.yaml", "package.json"}}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"vspec", "locate"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, pubspecPath) {
		t.Errorf("expected the first candidate %q to win, got %q", pubspecPath, output)
	}
}

func TestCLI_LocateCommand_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.WriteTempManifest(t, tmpDir, "package.json",
		`{"name": "demo-app", "version": "0.3.0", "dependencies": {"a": "1.0.0", "b": "2.0.0"}}`)

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"vspec", "locate", "--json"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	for _, want := range []string{
		`"name": "demo-app"`,
		`"version": "0.3.0"`,
		`"dependencies": 2`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestCLI_LocateCommand_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.Config{Files: []string{"definitely-absent-manifest.json"}}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"vspec", "locate"}, tmpDir)
	if err == nil || !strings.Contains(err.Error(), "no manifest found") {
		t.Errorf("error = %v, want a not-found failure", err)
	}
}
