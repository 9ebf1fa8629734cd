// Package pin provides the "vspec pin" command which rewrites a dependency
// specifier in the nearest JSON manifest, preserving its formatting.
package pin

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
	"github.com/vspec-dev/vspec/internal/manifest"
	"github.com/vspec-dev/vspec/internal/printer"
	"github.com/vspec-dev/vspec/internal/specifier"
	"github.com/vspec-dev/vspec/internal/tui"
)

// confirmFn is swapped out in tests to avoid interactive prompts.
var confirmFn = tui.Confirm

// Run returns the "pin" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "pin",
		Usage:     "Rewrite a dependency specifier in the nearest package.json",
		UsageText: "vspec pin [options] <package> <specifier>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "field",
				Usage: "Dependency table to write to",
				Value: "dependencies",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPinCmd(ctx, cmd, cfg)
		},
	}
}

// runPinCmd executes the pin command.
func runPinCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	pkg := cmd.Args().Get(0)
	spec := cmd.Args().Get(1)
	if pkg == "" || spec == "" {
		return fmt.Errorf("package name and specifier required")
	}

	if specifier.Normalize(spec) == "" {
		return fmt.Errorf("specifier %q does not pin a version", spec)
	}

	field := cmd.String("field")
	if !slices.Contains(manifest.Fields(), field) {
		return fmt.Errorf("unknown dependency field %q (valid: %s)",
			field, strings.Join(manifest.Fields(), ", "))
	}

	rec, err := clix.FindManifest(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	if !cmd.Bool("yes") && tui.IsInteractive() {
		ok, err := confirmFn(
			fmt.Sprintf("Pin %s to %s?", pkg, spec),
			fmt.Sprintf("This rewrites %s in %s.", field, rec.Path),
		)
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintFaint("Aborted.")
			return nil
		}
	}

	fsys := core.NewOSFileSystem()
	prev, err := manifest.SetDependency(ctx, fsys, rec.Path, field, pkg, spec)
	if err != nil {
		return err
	}

	if prev == "" {
		printer.PrintSuccess(fmt.Sprintf("Pinned %s to %s", pkg, spec))
	} else {
		printer.PrintSuccess(fmt.Sprintf("Pinned %s: %s -> %s", pkg, prev, spec))
	}
	return nil
}
