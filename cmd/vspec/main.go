// Package main is the entry point for the vspec CLI.
package main

import (
	"context"
	"os"

	"github.com/vspec-dev/vspec/internal/cli"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/printer"
)

// runCLI loads the configuration and runs the root command with the given
// arguments.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	return cli.New(cfg).Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintErrorWithSuggestion(err)
		os.Exit(1)
	}
}
