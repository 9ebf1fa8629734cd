package initialize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/discovery"
	"github.com/vspec-dev/vspec/internal/printer"
)

// headerMarshaler wraps the YAML encoding with explanatory header comments so
// a generated .vspec.yaml documents itself.
type headerMarshaler struct{}

func (m *headerMarshaler) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("# vspec configuration file\n")
	sb.WriteString("# Documentation: https://vspec.dev/docs/configuration\n")
	sb.WriteString("# Generated by 'vspec init'\n")
	sb.WriteString("\n")
	sb.Write(data)
	return []byte(sb.String()), nil
}

// writeConfig persists the configuration to the default config file in the
// working directory.
func writeConfig(cfg *config.Config) error {
	return config.NewConfigSaver(&headerMarshaler{}, nil, nil).Save(cfg)
}

// printInitSuccess prints a summary after the config file has been written.
func printInitSuccess(files []string, result *discovery.Result) {
	fmt.Println()
	printer.PrintSuccess(fmt.Sprintf("Created %s", config.DefaultConfigFile))

	fmt.Println()
	printer.PrintInfo("Manifest candidates:")
	for _, f := range files {
		fmt.Printf("  - %s\n", f)
	}

	if result != nil && len(result.Manifests) > 0 {
		fmt.Println()
		printer.PrintInfo(fmt.Sprintf("Discovered %d manifest(s) under the start directory.", len(result.Manifests)))
	}

	fmt.Println()
	printer.PrintInfo("Next steps:")
	fmt.Println("  - Review .vspec.yaml and adjust settings")
	fmt.Println("  - Run 'vspec locate' to find the active manifest")
	fmt.Println("  - Run 'vspec check --all' to audit dependency requirements")
}
