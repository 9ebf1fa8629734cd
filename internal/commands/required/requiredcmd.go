// Package required provides the "vspec required" command which resolves the
// version requirement a manifest records for a package.
package required

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/manifest"
)

// Run returns the "required" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "required",
		Aliases: []string{"req"},
		Usage:   "Resolve the version the nearest manifest requires for a package",
		UsageText: `vspec required [options] <package>

The dependency tables are consulted in precedence order: optional
dependencies shadow regular ones, then peer, then dev. The recorded
specifier is normalized before printing.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print the recorded specifier instead of the normalized version",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRequiredCmd(ctx, cmd, cfg)
		},
	}
}

// runRequiredCmd executes the required command.
func runRequiredCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	pkg := cmd.Args().First()
	if pkg == "" {
		return fmt.Errorf("package name required")
	}

	rec, err := clix.FindManifest(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	if cmd.Bool("raw") {
		spec, ok := manifest.RequiredSpec(rec.Data, pkg)
		if !ok {
			return notRequired(pkg, rec.Path)
		}
		fmt.Println(spec)
		return nil
	}

	version, ok := manifest.RequiredVersion(rec.Data, pkg)
	if !ok {
		return notRequired(pkg, rec.Path)
	}
	fmt.Println(version)
	return nil
}

func notRequired(pkg, path string) error {
	return fmt.Errorf("%q is not required by %s", pkg, path)
}
