package discovery

import (
	"sort"

	"github.com/vspec-dev/vspec/internal/manifest"
	"github.com/vspec-dev/vspec/internal/specifier"
)

// Requirement records where one package requirement was found.
type Requirement struct {
	// Source is the relative path of the manifest declaring the requirement.
	Source string

	// Field is the dependency table the winning entry came from.
	Field string

	// Spec is the raw specifier as written in the manifest.
	Spec string

	// Version is the normalized version, empty when the specifier does not
	// resolve to one.
	Version string
}

// Conflict is one package required at different versions across manifests.
type Conflict struct {
	// Name is the package name.
	Name string

	// Requirements lists every manifest's winning requirement for the
	// package, sorted by source path.
	Requirements []Requirement
}

// DetectConflicts groups dependency requirements by package name and flags
// packages whose manifests disagree about the required version. Within each
// manifest only the winning dependency table counts; specifiers that do not
// normalize to a version are listed but not compared.
func DetectConflicts(result *Result) []Conflict {
	if result == nil {
		return nil
	}

	byName := make(map[string][]Requirement)
	for _, e := range result.Manifests {
		seen := make(map[string]bool)
		// Dependencies is precedence-ordered, the first entry per name is
		// the winner.
		for _, d := range manifest.Dependencies(e.Record.Data) {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			byName[d.Name] = append(byName[d.Name], Requirement{
				Source:  e.RelPath,
				Field:   d.Field,
				Spec:    d.Spec,
				Version: specifier.Normalize(d.Spec),
			})
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var conflicts []Conflict
	for _, name := range names {
		reqs := byName[name]
		if len(reqs) < 2 {
			continue
		}

		distinct := make(map[string]struct{})
		for _, r := range reqs {
			if r.Version != "" {
				distinct[r.Version] = struct{}{}
			}
		}
		if len(distinct) < 2 {
			continue
		}

		sort.Slice(reqs, func(i, j int) bool { return reqs[i].Source < reqs[j].Source })
		conflicts = append(conflicts, Conflict{Name: name, Requirements: reqs})
	}

	return conflicts
}

// IsConsistent returns true if no conflicting requirements were detected.
func IsConsistent(result *Result) bool {
	return len(DetectConflicts(result)) == 0
}
