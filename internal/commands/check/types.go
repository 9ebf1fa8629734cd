package check

import (
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/discovery"
	"github.com/vspec-dev/vspec/internal/specifier"
)

// OutputFormat controls how check reports are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs a styled table.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Item is one checked dependency entry.
type Item struct {
	Manifest string
	Field    string
	Package  string
	Spec     string
	Version  string
	Kind     specifier.Kind
}

// Report aggregates everything a check run found.
type Report struct {
	Root      string
	Mode      discovery.Mode
	Manifests []string
	Items     []Item
	Conflicts []discovery.Conflict
	Broken    []discovery.Problem
	Config    []config.ValidationResult
}

// UnrecognizedCount returns how many dependency specifiers carry no
// extractable version.
func (r *Report) UnrecognizedCount() int {
	n := 0
	for _, it := range r.Items {
		if it.Version == "" {
			n++
		}
	}
	return n
}

// ProblemCount returns the number of findings that fail the run: version
// conflicts, unreadable manifests and configuration errors. Unrecognized
// specifiers are informational only.
func (r *Report) ProblemCount() int {
	return len(r.Conflicts) + len(r.Broken) + config.ErrorCount(r.Config)
}
