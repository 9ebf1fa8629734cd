package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vspec-dev/vspec/internal/core"
)

// SetDependency rewrites the specifier for pkg under the given dependency
// field of a JSON manifest, preserving the file's existing formatting. It
// returns the previous specifier (empty when the entry is new). Non-JSON
// manifests are refused: rewriting them loses comments and formatting.
func SetDependency(ctx context.Context, fsys core.FileSystem, path, field, pkg, spec string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" {
		return "", &UnsupportedFormatError{Path: path}
	}

	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}

	key := field + "." + escapeKey(pkg)
	prev := gjson.GetBytes(data, key).String()

	updated, err := sjson.SetBytes(data, key, spec)
	if err != nil {
		return "", fmt.Errorf("failed to update %s in %q: %w", field, path, err)
	}

	if err := fsys.WriteFile(ctx, path, updated, core.PermOwnerRW); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}
	return prev, nil
}

// escapeKey escapes gjson/sjson path metacharacters in a package name so
// names like "socket.io" address a single key.
func escapeKey(name string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(name)
}
