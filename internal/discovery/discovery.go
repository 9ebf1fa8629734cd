package discovery

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/core"
	"github.com/vspec-dev/vspec/internal/manifest"
)

// Service provides manifest discovery functionality.
type Service struct {
	fs  core.FileSystem
	cfg *config.Config
}

// NewService creates a new discovery Service.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Service{
		fs:  fs,
		cfg: cfg,
	}
}

// Scan walks the given root directory and returns the manifests found.
func (s *Service) Scan(ctx context.Context, root string) (*Result, error) {
	return s.ScanWithDepth(ctx, root, -1)
}

// ScanWithDepth scans the given root directory down to maxDepth levels.
// If maxDepth is -1, the configured default is used.
func (s *Service) ScanWithDepth(ctx context.Context, root string, maxDepth int) (*Result, error) {
	result := &Result{
		Mode:      NoManifests,
		Manifests: make([]Entry, 0),
		Broken:    make([]Problem, 0),
	}

	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if maxDepth < 0 {
		discovery := s.cfg.GetDiscoveryConfig()
		if discovery.MaxDepth != nil {
			maxDepth = *discovery.MaxDepth
		} else {
			maxDepth = core.MaxDiscoveryDepth
		}
	}

	if err := s.scanTree(ctx, root, maxDepth, result); err != nil {
		return nil, err
	}

	switch len(result.Manifests) {
	case 0:
		result.Mode = NoManifests
	case 1:
		result.Mode = SingleManifest
	default:
		result.Mode = Workspace
	}

	return result, nil
}

// scanTree recursively collects manifests below root into result.
func (s *Service) scanTree(ctx context.Context, root string, maxDepth int, result *Result) error {
	seen := make(map[string]bool) // Track visited paths to avoid duplicates
	excludes := s.cfg.GetExcludePatterns()

	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		if depth > maxDepth {
			return nil
		}

		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		if seen[dir] {
			return nil
		}
		seen[dir] = true

		if err := s.collectDir(ctx, root, dir, result); err != nil {
			return err
		}

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			// Skip directories we can't read
			return nil
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			name := entry.Name()
			path := filepath.Join(dir, name)

			if s.shouldExclude(name, relativeTo(root, path), excludes) {
				continue
			}

			if err := walk(path, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(filepath.Clean(root), 0)
}

// collectDir tries every candidate manifest filename in dir.
func (s *Service) collectDir(ctx context.Context, root, dir string, result *Result) error {
	for _, name := range s.cfg.GetManifestFiles() {
		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, name)

		// Check if file exists
		if _, err := s.fs.Stat(ctx, path); err != nil {
			continue
		}

		relPath := relativeTo(root, path)
		rec, err := manifest.Load(ctx, s.fs, path)
		if err != nil {
			result.Broken = append(result.Broken, Problem{
				Path:    path,
				RelPath: relPath,
				Err:     err,
			})
			continue
		}

		result.Manifests = append(result.Manifests, Entry{
			Path:     path,
			RelPath:  relPath,
			Filename: name,
			Record:   rec,
		})
	}

	return nil
}

// skipDirs are directory names never descended into.
var skipDirs = []string{"node_modules", "vendor", ".git", "__pycache__", "target", "dist", "build"}

// shouldExclude checks if a directory should be excluded from scanning.
func (s *Service) shouldExclude(name, relPath string, excludes []string) bool {
	// Skip hidden directories
	if strings.HasPrefix(name, ".") {
		return true
	}

	if slices.Contains(skipDirs, name) {
		return true
	}

	// Check configured excludes against both the bare name and the path
	// relative to the scan root
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
	}

	return false
}

// relativeTo rebases path onto root, falling back to path itself.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// ScanAt is a convenience function that creates a Service and runs a scan.
func ScanAt(ctx context.Context, fsys core.FileSystem, cfg *config.Config, root string) (*Result, error) {
	svc := NewService(fsys, cfg)
	return svc.Scan(ctx, root)
}
