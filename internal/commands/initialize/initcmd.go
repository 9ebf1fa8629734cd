// Package initialize implements the init command. It scans the start
// directory for manifest files and writes a .vspec.yaml recording the
// candidate filenames lookup should try.
package initialize

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
	"github.com/vspec-dev/vspec/internal/discovery"
	"github.com/vspec-dev/vspec/internal/printer"
	"github.com/vspec-dev/vspec/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// MultiSelect shows a multi-select prompt.
func (p *TUIPrompter) MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	return tui.MultiSelect(title, description, options, defaults)
}

// prompter is swapped out in tests to avoid interactive prompts.
var prompter = NewPrompter()

// Run returns the init command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a .vspec.yaml configuration file",
		UsageText: `vspec init             Scan and write .vspec.yaml
vspec init --yes       Accept discovered candidates without prompting
vspec init --force     Overwrite an existing .vspec.yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing config file",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept discovered candidates without prompting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(config.DefaultConfigFile); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultConfigFile)
	}

	dir, err := clix.StartDir(cmd)
	if err != nil {
		return err
	}

	// Scan with the built-in candidates: the config being generated is the
	// one that would override them.
	fsys := core.NewOSFileSystem()
	var result *discovery.Result
	var scanErr error
	if err := tui.WithSpinner(ctx, "Scanning for manifests...", func() {
		result, scanErr = discovery.ScanAt(ctx, fsys, &config.Config{}, dir)
	}); err != nil {
		return err
	}
	if scanErr != nil {
		return fmt.Errorf("scan failed: %w", scanErr)
	}

	files, err := chooseFiles(result, cmd.Bool("yes"))
	if err != nil {
		return err
	}

	cfg := &config.Config{Files: files}
	if err := writeConfig(cfg); err != nil {
		return err
	}

	printInitSuccess(files, result)
	return nil
}

// chooseFiles decides which candidate filenames to record. Non-interactive
// runs take the discovered filenames, or the defaults when the scan found
// nothing.
func chooseFiles(result *discovery.Result, assumeYes bool) ([]string, error) {
	found := result.Filenames()

	if assumeYes || !tui.IsInteractive() {
		if len(found) > 0 {
			return found, nil
		}
		return config.DefaultManifestFiles(), nil
	}

	return selectFiles(result)
}

// selectFiles prompts for the candidate filenames to record. Discovered
// filenames are marked and preselected.
func selectFiles(result *discovery.Result) ([]string, error) {
	found := result.Filenames()
	foundSet := make(map[string]bool, len(found))
	for _, f := range found {
		foundSet[f] = true
	}

	candidates := config.DefaultManifestFiles()
	for _, f := range found {
		if !slices.Contains(candidates, f) {
			candidates = append(candidates, f)
		}
	}

	options := make([]huh.Option[string], len(candidates))
	for i, name := range candidates {
		label := name
		if foundSet[name] {
			label = name + " (found)"
		}
		options[i] = huh.NewOption(label, name)
	}

	defaults := found
	if len(defaults) == 0 {
		defaults = candidates
	}

	selected, err := prompter.MultiSelect(
		"Select manifest filenames to look for:",
		"Lookup tries these names in order at each directory.",
		options,
		defaults,
	)
	if err != nil {
		return nil, err
	}

	if len(selected) == 0 {
		printer.PrintFaint("No files selected. Using the discovered candidates.")
		return defaults, nil
	}
	return selected, nil
}
