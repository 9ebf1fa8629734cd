package check

import (
	"context"
	"fmt"

	"github.com/vspec-dev/vspec/internal/clix"
	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
	"github.com/vspec-dev/vspec/internal/discovery"
	"github.com/vspec-dev/vspec/internal/manifest"
	"github.com/vspec-dev/vspec/internal/specifier"
	"github.com/vspec-dev/vspec/internal/tui"
)

// buildManifestReport checks the nearest manifest found walking upward from
// dir.
func buildManifestReport(ctx context.Context, fsys core.FileSystem, cfg *config.Config, dir string) (*Report, error) {
	rec, err := manifest.Find(ctx, fsys, dir, cfg.GetManifestFiles())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &clix.NoManifestError{Dir: dir, Candidates: cfg.GetManifestFiles()}
	}

	report := &Report{Root: dir, Mode: discovery.SingleManifest}
	appendManifest(report, rec.Path, rec)
	return report, nil
}

// buildWorkspaceReport scans downward from root and checks every manifest
// found, recording unreadable ones and cross-manifest conflicts.
func buildWorkspaceReport(ctx context.Context, fsys core.FileSystem, cfg *config.Config, root string) (*Report, error) {
	var (
		result  *discovery.Result
		scanErr error
	)
	if err := tui.WithSpinner(ctx, "Scanning for manifests...", func() {
		result, scanErr = discovery.ScanAt(ctx, fsys, cfg, root)
	}); err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, fmt.Errorf("scan failed: %w", scanErr)
	}

	report := &Report{Root: root, Mode: result.Mode, Broken: result.Broken}
	for _, entry := range result.Manifests {
		appendManifest(report, entry.RelPath, entry.Record)
	}
	report.Conflicts = discovery.DetectConflicts(result)
	return report, nil
}

// appendManifest adds one checked row per dependency of the manifest.
func appendManifest(report *Report, label string, rec *manifest.Record) {
	report.Manifests = append(report.Manifests, label)
	for _, dep := range manifest.Dependencies(rec.Data) {
		res := specifier.Inspect(dep.Spec)
		report.Items = append(report.Items, Item{
			Manifest: label,
			Field:    dep.Field,
			Package:  dep.Name,
			Spec:     dep.Spec,
			Version:  res.Version,
			Kind:     res.Kind,
		})
	}
}
