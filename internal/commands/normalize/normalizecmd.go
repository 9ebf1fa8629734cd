// Package normalize provides the "vspec normalize" command which reduces raw
// dependency specifiers to the version or commit reference they pin.
package normalize

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/printer"
	"github.com/vspec-dev/vspec/internal/semver"
	"github.com/vspec-dev/vspec/internal/specifier"
)

// Run returns the "normalize" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:    "normalize",
		Aliases: []string{"norm"},
		Usage:   "Reduce dependency specifiers to the version they pin",
		UsageText: `vspec normalize [options] <specifier>...

Semver ranges pass through unchanged. Git URLs in any of their shorthand
forms (github:user/repo#ref, git@host:user/repo.git#ref, https://...) reduce
to the version or commit reference they pin. Unrecognizable input prints an
empty line and makes the command exit non-zero.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output results as JSON",
			},
			&cli.BoolFlag{
				Name:    "explain",
				Aliases: []string{"e"},
				Usage:   "Show how each specifier was classified",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress output and report through the exit status",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runNormalizeCmd(ctx, cmd)
		},
	}
}

// runNormalizeCmd executes the normalize command.
func runNormalizeCmd(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("no specifier given")
	}

	results := make([]specifier.Result, len(args))
	unrecognized := 0
	for i, arg := range args {
		results[i] = specifier.Inspect(arg)
		if results[i].Version == "" {
			unrecognized++
		}
	}

	switch {
	case cmd.Bool("quiet"):
		// The exit status carries the outcome.
	case cmd.Bool("json"):
		if err := printJSON(results); err != nil {
			return err
		}
	case cmd.Bool("explain"):
		for _, r := range results {
			printExplained(r)
		}
	default:
		for _, r := range results {
			fmt.Println(r.Version)
		}
	}

	if unrecognized > 0 {
		return fmt.Errorf("%d specifier(s) not recognized", unrecognized)
	}
	return nil
}

// printJSON prints the results as a JSON array.
func printJSON(results []specifier.Result) error {
	type jsonResult struct {
		Input   string `json:"input"`
		Version string `json:"version"`
		Kind    string `json:"kind"`
		Host    string `json:"host,omitempty"`
	}

	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Input:   r.Input,
			Version: r.Version,
			Kind:    r.Kind.String(),
		}
		if r.Kind == specifier.KindGitRef {
			out[i].Host = r.Host.String()
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printExplained prints one classified result.
func printExplained(r specifier.Result) {
	switch r.Kind {
	case specifier.KindRange:
		detail := "semver range"
		if semver.IsExact(r.Version) {
			detail = "exact version"
		}
		fmt.Printf("%s %s %s\n", printer.Success("✓"), r.Input, printer.Faint("("+detail+")"))
	case specifier.KindGitRef:
		detail := fmt.Sprintf("git ref %s", r.Version)
		if r.Host != specifier.HostOther {
			detail = fmt.Sprintf("git ref %s on %s", r.Version, r.Host)
		}
		fmt.Printf("%s %s %s\n", printer.Success("✓"), r.Input, printer.Faint("("+detail+")"))
	default:
		fmt.Printf("%s %s %s\n", printer.Error("✗"), r.Input, printer.Faint("(unrecognized)"))
	}
}
