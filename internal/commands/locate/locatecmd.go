// Package locate provides the "vspec locate" command which finds the nearest
// dependency manifest from a starting directory upward.
package locate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/manifest"
	"github.com/vspec-dev/vspec/internal/printer"
)

// Run returns the "locate" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "locate",
		Usage:     "Find the nearest dependency manifest",
		UsageText: "vspec locate [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the located manifest as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLocateCmd(ctx, cmd, cfg)
		},
	}
}

// runLocateCmd executes the locate command.
func runLocateCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rec, err := clix.FindManifest(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return printJSON(rec)
	}

	fmt.Println(rec.Path)
	if name := rec.Name(); name != "" {
		detail := name
		if v := rec.Version(); v != "" {
			detail = fmt.Sprintf("%s@%s", name, v)
		}
		printer.PrintFaint(detail)
	}
	return nil
}

// printJSON prints the located record as JSON.
func printJSON(rec *manifest.Record) error {
	out := struct {
		Path         string `json:"path"`
		Name         string `json:"name,omitempty"`
		Version      string `json:"version,omitempty"`
		Dependencies int    `json:"dependencies"`
	}{
		Path:         rec.Path,
		Name:         rec.Name(),
		Version:      rec.Version(),
		Dependencies: len(manifest.Dependencies(rec.Data)),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
