package check

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/printer"
	"github.com/vspec-dev/vspec/internal/specifier"
)

// Formatter handles display of check reports.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatReport formats the report for display.
func (f *Formatter) FormatReport(report *Report) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(report)
	case FormatTable:
		return f.formatTable(report)
	default:
		return f.formatText(report)
	}
}

// formatText formats the report as human-readable text.
func (f *Formatter) formatText(report *Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Dependency Check"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Mode: %s\n", printer.Bold(report.Mode.String()))
	sb.WriteString("\n")

	for _, m := range report.Manifests {
		sb.WriteString(printer.Info(m + ":"))
		sb.WriteString("\n")
		found := false
		for _, it := range report.Items {
			if it.Manifest == m {
				sb.WriteString(formatItemLine(it))
				found = true
			}
		}
		if !found {
			sb.WriteString(printer.Faint("  (no dependencies)"))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(f.formatFindings(report))

	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	sb.WriteString(f.formatSummary(report))
	sb.WriteString("\n")

	return sb.String()
}

// formatFindings renders the conflict, broken-manifest and configuration
// sections shared by the text and table formats.
func (f *Formatter) formatFindings(report *Report) string {
	var sb strings.Builder

	if len(report.Conflicts) > 0 {
		sb.WriteString(printer.Warning("Version Conflicts:"))
		sb.WriteString("\n")
		for _, c := range report.Conflicts {
			fmt.Fprintf(&sb, "  %s %s\n", printer.Warning("⚠"), c.Name)
			for _, req := range c.Requirements {
				fmt.Fprintf(&sb, "      %s wants %s %s\n",
					req.Source, req.Spec, printer.Faint("("+displayVersion(req.Version)+")"))
			}
		}
		sb.WriteString("\n")
	}

	if len(report.Broken) > 0 {
		sb.WriteString(printer.Error("Broken Manifests:"))
		sb.WriteString("\n")
		for _, p := range report.Broken {
			fmt.Fprintf(&sb, "  %s %s: %v\n", printer.Error("✗"), p.RelPath, p.Err)
		}
		sb.WriteString("\n")
	}

	if len(report.Config) > 0 {
		sb.WriteString(printer.Info("Configuration:"))
		sb.WriteString("\n")
		for _, res := range report.Config {
			sb.WriteString(formatValidationLine(res))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatItemLine renders one dependency row as text.
func formatItemLine(it Item) string {
	field := printer.Faint("[" + it.Field + "]")
	switch {
	case it.Version == "":
		return fmt.Sprintf("  %s %s %s %s %s\n",
			printer.Warning("⚠"), it.Package, it.Spec, printer.Faint("(unrecognized)"), field)
	case it.Kind == specifier.KindGitRef:
		return fmt.Sprintf("  %s %s %s %s %s\n",
			printer.Success("✓"), it.Package, it.Spec, printer.Faint("(git ref "+it.Version+")"), field)
	default:
		return fmt.Sprintf("  %s %s %s %s %s\n",
			printer.Success("✓"), it.Package, it.Spec, printer.Faint("(range)"), field)
	}
}

// formatValidationLine renders one configuration validation as text.
func formatValidationLine(res config.ValidationResult) string {
	status := printer.Success("✓")
	switch {
	case !res.Passed:
		status = printer.Error("✗")
	case res.Warning:
		status = printer.Warning("⚠")
	}
	return fmt.Sprintf("  %s %s: %s\n", status, res.Category, res.Message)
}

// formatTable formats the report with the dependency rows as a styled table.
func (f *Formatter) formatTable(report *Report) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Dependency Check"))
	sb.WriteString("\n\n")

	if len(report.Items) == 0 {
		sb.WriteString(printer.Faint("No dependencies found"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(renderItemsTable(report.Items))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(f.formatFindings(report))

	sb.WriteString(f.formatSummary(report))
	sb.WriteString("\n")

	return sb.String()
}

// renderItemsTable renders dependency rows through a static bubbles table.
func renderItemsTable(items []Item) string {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{
			it.Manifest, it.Field, it.Package, it.Spec,
			displayVersion(it.Version), it.Kind.String(),
		}
	}

	titles := []string{"MANIFEST", "FIELD", "PACKAGE", "SPEC", "VERSION", "KIND"}
	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		columns[i] = table.Column{Title: title, Width: columnWidth(rows, i, len(title))}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return t.View()
}

// columnWidth sizes a column to its widest cell, capped to keep rows legible
// in narrow terminals.
func columnWidth(rows []table.Row, col, min int) int {
	w := min
	for _, r := range rows {
		if n := len(r[col]); n > w {
			w = n
		}
	}
	if w > 40 {
		w = 40
	}
	return w
}

// formatJSON formats the report as JSON.
func (f *Formatter) formatJSON(report *Report) string {
	type jsonItem struct {
		Manifest string `json:"manifest"`
		Field    string `json:"field"`
		Package  string `json:"package"`
		Spec     string `json:"spec"`
		Version  string `json:"version"`
		Kind     string `json:"kind"`
	}

	type jsonRequirement struct {
		Source  string `json:"source"`
		Field   string `json:"field"`
		Spec    string `json:"spec"`
		Version string `json:"version"`
	}

	type jsonConflict struct {
		Package      string            `json:"package"`
		Requirements []jsonRequirement `json:"requirements"`
	}

	type jsonProblem struct {
		Path  string `json:"path"`
		Error string `json:"error"`
	}

	type jsonValidation struct {
		Category string `json:"category"`
		Passed   bool   `json:"passed"`
		Warning  bool   `json:"warning,omitempty"`
		Message  string `json:"message"`
	}

	output := struct {
		Root         string           `json:"root"`
		Mode         string           `json:"mode"`
		Manifests    []string         `json:"manifests"`
		Dependencies []jsonItem       `json:"dependencies"`
		Conflicts    []jsonConflict   `json:"conflicts"`
		Broken       []jsonProblem    `json:"broken"`
		Config       []jsonValidation `json:"config"`
		Summary      struct {
			ManifestCount     int  `json:"manifest_count"`
			DependencyCount   int  `json:"dependency_count"`
			UnrecognizedCount int  `json:"unrecognized_count"`
			ConflictCount     int  `json:"conflict_count"`
			BrokenCount       int  `json:"broken_count"`
			ConfigErrorCount  int  `json:"config_error_count"`
			Consistent        bool `json:"consistent"`
		} `json:"summary"`
	}{
		Root:         report.Root,
		Mode:         report.Mode.String(),
		Manifests:    report.Manifests,
		Dependencies: make([]jsonItem, len(report.Items)),
		Conflicts:    make([]jsonConflict, len(report.Conflicts)),
		Broken:       make([]jsonProblem, len(report.Broken)),
		Config:       make([]jsonValidation, len(report.Config)),
	}

	for i, it := range report.Items {
		output.Dependencies[i] = jsonItem{
			Manifest: it.Manifest,
			Field:    it.Field,
			Package:  it.Package,
			Spec:     it.Spec,
			Version:  it.Version,
			Kind:     it.Kind.String(),
		}
	}

	for i, c := range report.Conflicts {
		jc := jsonConflict{
			Package:      c.Name,
			Requirements: make([]jsonRequirement, len(c.Requirements)),
		}
		for j, req := range c.Requirements {
			jc.Requirements[j] = jsonRequirement{
				Source:  req.Source,
				Field:   req.Field,
				Spec:    req.Spec,
				Version: req.Version,
			}
		}
		output.Conflicts[i] = jc
	}

	for i, p := range report.Broken {
		output.Broken[i] = jsonProblem{Path: p.RelPath, Error: p.Err.Error()}
	}

	for i, res := range report.Config {
		output.Config[i] = jsonValidation{
			Category: res.Category,
			Passed:   res.Passed,
			Warning:  res.Warning,
			Message:  res.Message,
		}
	}

	output.Summary.ManifestCount = len(report.Manifests)
	output.Summary.DependencyCount = len(report.Items)
	output.Summary.UnrecognizedCount = report.UnrecognizedCount()
	output.Summary.ConflictCount = len(report.Conflicts)
	output.Summary.BrokenCount = len(report.Broken)
	output.Summary.ConfigErrorCount = config.ErrorCount(report.Config)
	output.Summary.Consistent = len(report.Conflicts) == 0

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data)
}

// formatSummary returns a one-line summary of the report.
func (f *Formatter) formatSummary(report *Report) string {
	parts := []string{
		fmt.Sprintf("%d manifest(s)", len(report.Manifests)),
		fmt.Sprintf("%d dependencies", len(report.Items)),
	}

	if n := report.UnrecognizedCount(); n > 0 {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d unrecognized", n)))
	}
	if n := len(report.Conflicts); n > 0 {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d conflict(s)", n)))
	}
	if n := len(report.Broken); n > 0 {
		parts = append(parts, printer.Error(fmt.Sprintf("%d broken manifest(s)", n)))
	}
	if n := config.ErrorCount(report.Config); n > 0 {
		parts = append(parts, printer.Error(fmt.Sprintf("%d config error(s)", n)))
	}

	return "Checked: " + strings.Join(parts, ", ")
}

// displayVersion renders an empty normalized version as a visible marker.
func displayVersion(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// PrintReport prints the formatted report to stdout.
func (f *Formatter) PrintReport(report *Report) {
	fmt.Print(f.FormatReport(report))
}
