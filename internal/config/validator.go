package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vspec-dev/vspec/internal/core"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "YAML Syntax", "Files").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration files and settings.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	configPath  string
	validations []ValidationResult
}

// NewValidator creates a new configuration validator for the config file at
// configPath.
func NewValidator(fs core.FileSystem, cfg *Config, configPath string) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		configPath:  configPath,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	// Reset validations
	v.validations = make([]ValidationResult, 0)

	v.validateYAMLSyntax(ctx)
	v.validateFiles()
	v.validateDiscovery()

	return v.validations, nil
}

// validateYAMLSyntax checks that the config file parses under strict decoding.
func (v *Validator) validateYAMLSyntax(ctx context.Context) {
	data, err := v.fs.ReadFile(ctx, v.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.addValidation("YAML Syntax", true, "no config file found, defaults in use", false)
			return
		}
		v.addValidation("YAML Syntax", false, fmt.Sprintf("cannot read %s: %v", v.configPath, err), false)
		return
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		v.addValidation("YAML Syntax", false, fmt.Sprintf("invalid YAML in %s: %v", v.configPath, err), false)
		return
	}

	v.addValidation("YAML Syntax", true, "configuration parses cleanly", false)
}

// supportedManifestExts are the extensions the manifest decoder understands
// natively. Anything else is parsed as JSON.
var supportedManifestExts = []string{".json", ".yaml", ".yml", ".toml"}

// validateFiles checks the candidate manifest filenames.
func (v *Validator) validateFiles() {
	if v.cfg == nil || len(v.cfg.Files) == 0 {
		v.addValidation("Files", true, "using default manifest candidates", false)
		return
	}
	files := v.cfg.Files

	ok := true
	for _, name := range files {
		if strings.Contains(name, "..") {
			v.addValidation("Files", false, fmt.Sprintf("candidate %q: path traversal not allowed", name), false)
			ok = false
			continue
		}
		if filepath.IsAbs(name) {
			v.addValidation("Files", false, fmt.Sprintf("candidate %q: must be relative, it is joined under each scanned directory", name), false)
			ok = false
			continue
		}
		if ext := strings.ToLower(filepath.Ext(name)); !slices.Contains(supportedManifestExts, ext) {
			v.addValidation("Files", true, fmt.Sprintf("candidate %q has no recognized extension, it will be parsed as JSON", name), true)
		}
	}
	if ok {
		v.addValidation("Files", true, fmt.Sprintf("%d manifest candidate(s) configured", len(files)), false)
	}
}

// validateDiscovery checks the discovery section.
func (v *Validator) validateDiscovery() {
	discovery := v.cfg.GetDiscoveryConfig()

	if discovery.MaxDepth != nil && *discovery.MaxDepth < 0 {
		v.addValidation("Discovery", false, fmt.Sprintf("max-depth must be >= 0, got %d", *discovery.MaxDepth), false)
		return
	}

	for _, pattern := range discovery.Exclude {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			v.addValidation("Discovery", false, fmt.Sprintf("exclude pattern %q: %v", pattern, err), false)
			return
		}
	}

	v.addValidation("Discovery", true, "discovery settings are valid", false)
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
