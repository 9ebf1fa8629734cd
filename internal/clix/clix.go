// Package clix carries small helpers shared by the CLI command
// implementations.
package clix

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
	"github.com/vspec-dev/vspec/internal/manifest"
)

// StartDir resolves the directory a command operates from: the global --dir
// flag when set, the working directory otherwise.
func StartDir(cmd *cli.Command) (string, error) {
	if dir := cmd.String("dir"); dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return dir, nil
}

// NoManifestError reports that the upward walk found no manifest.
type NoManifestError struct {
	Dir        string
	Candidates []string
}

func (e *NoManifestError) Error() string {
	return fmt.Sprintf("no manifest found from %q upward", e.Dir)
}

// Suggestion returns a hint on how to fix the error.
func (e *NoManifestError) Suggestion() string {
	return fmt.Sprintf(
		"Looked for %s. Run 'vspec init' to change the candidate list, or pass --dir to start elsewhere.",
		strings.Join(e.Candidates, ", "),
	)
}

// FindManifest locates the nearest manifest for a command, resolving the
// start directory from the flags and the candidate list from the
// configuration.
func FindManifest(ctx context.Context, cmd *cli.Command, cfg *config.Config) (*manifest.Record, error) {
	dir, err := StartDir(cmd)
	if err != nil {
		return nil, err
	}

	fsys := core.NewOSFileSystem()
	rec, err := manifest.Find(ctx, fsys, dir, cfg.GetManifestFiles())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &NoManifestError{Dir: dir, Candidates: cfg.GetManifestFiles()}
	}
	return rec, nil
}
