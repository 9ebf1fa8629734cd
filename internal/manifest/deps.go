package manifest

import (
	"sort"

	"github.com/vspec-dev/vspec/internal/specifier"
)

// dependencyFields is the lookup order for version requirements. Optional
// dependencies shadow regular ones, then peer, then dev.
var dependencyFields = []string{
	"optionalDependencies",
	"dependencies",
	"peerDependencies",
	"devDependencies",
}

// Dependency is one entry of a manifest dependency table.
type Dependency struct {
	Field string `json:"field"`
	Name  string `json:"name"`
	Spec  string `json:"spec"`
}

// Fields returns the dependency table names in precedence order.
func Fields() []string {
	return append([]string(nil), dependencyFields...)
}

// RequiredSpec returns the raw specifier recorded for pkg. The first
// dependency table (in precedence order) that contains the package wins,
// even when its value is empty or not a string. The second return is false
// only when no table mentions the package.
func RequiredSpec(data map[string]any, pkg string) (string, bool) {
	for _, field := range dependencyFields {
		table, ok := data[field].(map[string]any)
		if !ok {
			continue
		}
		raw, ok := table[pkg]
		if !ok {
			continue
		}
		spec, _ := raw.(string)
		return spec, true
	}
	return "", false
}

// RequiredVersion resolves the normalized version requirement for pkg,
// honoring the same table precedence as RequiredSpec.
func RequiredVersion(data map[string]any, pkg string) (string, bool) {
	spec, ok := RequiredSpec(data, pkg)
	if !ok {
		return "", false
	}
	return specifier.Normalize(spec), true
}

// Dependencies lists every dependency entry in precedence order, names
// sorted within each table.
func Dependencies(data map[string]any) []Dependency {
	var out []Dependency
	for _, field := range dependencyFields {
		table, ok := data[field].(map[string]any)
		if !ok {
			continue
		}
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			spec, _ := table[name].(string)
			out = append(out, Dependency{Field: field, Name: name, Spec: spec})
		}
	}
	return out
}
