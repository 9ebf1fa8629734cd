package check

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
)

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Audit dependency requirements and configuration health",
		UsageText: `vspec check [options]

Checks the nearest manifest by default. With --all the directory tree is
scanned downward and every manifest found is checked, including requirement
conflicts between manifests.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Scan the tree downward and check every manifest",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheckCmd(ctx, cmd, cfg)
		},
	}
}

// runCheckCmd executes the check command.
func runCheckCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rootDir, err := clix.StartDir(cmd)
	if err != nil {
		return err
	}

	fsys := core.NewOSFileSystem()

	var report *Report
	if cmd.Bool("all") {
		report, err = buildWorkspaceReport(ctx, fsys, cfg, rootDir)
	} else {
		report, err = buildManifestReport(ctx, fsys, cfg, rootDir)
	}
	if err != nil {
		return err
	}

	configPath := cmd.String("config")
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	report.Config, err = config.NewValidator(fsys, cfg, configPath).Validate(ctx)
	if err != nil {
		return err
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	if cmd.Bool("quiet") {
		printQuietSummary(report)
	} else {
		formatter.PrintReport(report)
	}

	if n := report.ProblemCount(); n > 0 {
		return fmt.Errorf("%d problem(s) found", n)
	}
	return nil
}

// printQuietSummary prints a minimal summary of the report.
func printQuietSummary(report *Report) {
	fmt.Printf("Mode: %s | Manifests: %d | Dependencies: %d",
		report.Mode, len(report.Manifests), len(report.Items))

	if n := report.UnrecognizedCount(); n > 0 {
		fmt.Printf(" | Unrecognized: %d", n)
	}
	if n := len(report.Conflicts); n > 0 {
		fmt.Printf(" | Conflicts: %d", n)
	}
	if n := len(report.Broken); n > 0 {
		fmt.Printf(" | Broken: %d", n)
	}

	fmt.Println()
}
