// Package manifest locates and reads dependency manifests (package.json and
// friends). Lookup walks from a starting directory toward the filesystem
// root, trying candidate filenames in priority order.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vspec-dev/vspec/internal/core"
)

// Record is a located manifest: its decoded content and the path that
// satisfied the lookup.
type Record struct {
	Data map[string]any
	Path string
}

// Name returns the manifest's "name" field, empty when absent.
func (r *Record) Name() string {
	s, _ := r.Data["name"].(string)
	return s
}

// Version returns the manifest's "version" field, empty when absent.
func (r *Record) Version() string {
	s, _ := r.Data["version"].(string)
	return s
}

// Find walks from dir upward looking for the first readable manifest. In
// each directory every candidate filename is tried in order: a missing file
// advances to the next candidate, any other read or decode failure aborts
// the search. When the filesystem root is reached without a match, Find
// returns (nil, nil).
func Find(ctx context.Context, fsys core.FileSystem, dir string, candidates []string) (*Record, error) {
	current := filepath.Clean(dir)
	for {
		for _, name := range candidates {
			path := filepath.Join(current, name)
			data, err := fsys.ReadFile(ctx, path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("failed to read %q: %w", path, err)
			}
			obj, err := decodeObject(path, data)
			if err != nil {
				return nil, err
			}
			return &Record{Data: obj, Path: path}, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, nil
		}
		current = parent
	}
}

// Load reads and decodes a single manifest file.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Record, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	obj, err := decodeObject(path, data)
	if err != nil {
		return nil, err
	}
	return &Record{Data: obj, Path: path}, nil
}
