package cli

import (
	"context"
	"fmt"

	"github.com/vspec-dev/vspec/internal/commands/check"
	"github.com/vspec-dev/vspec/internal/commands/initialize"
	"github.com/vspec-dev/vspec/internal/commands/locate"
	"github.com/vspec-dev/vspec/internal/commands/normalize"
	"github.com/vspec-dev/vspec/internal/commands/pin"
	"github.com/vspec-dev/vspec/internal/commands/required"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/printer"
	"github.com/vspec-dev/vspec/internal/tui"
	"github.com/vspec-dev/vspec/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the vspec cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "vspec",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Resolve and audit dependency version requirements",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Directory to start the manifest lookup from",
				DefaultText: "current directory",
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the config file",
				DefaultText: config.DefaultConfigFile,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			if path := cmd.String("config"); path != "" {
				loaded, err := config.LoadConfigFromFn(path)
				if err != nil {
					return ctx, fmt.Errorf("failed to load config from %q: %w", path, err)
				}
				if loaded != nil {
					*cfg = *loaded
				}
			}
			printer.SetNoColor(noColorFlag || cfg.NoColor)
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			normalize.Run(),
			locate.Run(cfg),
			required.Run(cfg),
			check.Run(cfg),
			pin.Run(cfg),
		},
	}
}
