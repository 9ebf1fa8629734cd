// Package testutils provides shared helpers for CLI command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// CaptureStdout runs fn while capturing everything it writes to os.Stdout
// and returns the captured output.
func CaptureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildCLIForTests wraps the given commands in a root command mirroring the
// production CLI surface, with the global --dir flag pre-pointed at dir.
func BuildCLIForTests(dir string, cmds []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "vspec",
		Usage: "vspec test harness",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   dir,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{Name: "no-color"},
		},
		Commands: cmds,
	}
}

// RunCLITest runs appCli with args from inside tmpDir and fails the test if
// the command returns an error.
func RunCLITest(t *testing.T, appCli *cli.Command, args []string, tmpDir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, appCli, args, tmpDir); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// RunCLITestAllowError runs appCli with args from inside tmpDir and returns
// the command error, if any.
func RunCLITestAllowError(t *testing.T, appCli *cli.Command, args []string, tmpDir string) error {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to enter %q: %v", tmpDir, err)
	}
	defer func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	}()
	return appCli.Run(context.Background(), args)
}

// WriteTempConfig writes content as a .vspec.yaml inside a fresh temp
// directory and returns the file path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpPath := filepath.Join(t.TempDir(), ".vspec.yaml")
	if err := os.WriteFile(tmpPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return tmpPath
}

// WriteTempManifest writes a manifest named filename with the given content
// into dir, creating parent directories as needed, and returns its path.
func WriteTempManifest(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %q: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest %q: %v", path, err)
	}
	return path
}
