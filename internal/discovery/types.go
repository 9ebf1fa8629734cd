package discovery

import (
	"sort"

	"github.com/vspec-dev/vspec/internal/manifest"
)

// Mode indicates the workspace shape detected by a scan.
type Mode int

const (
	// NoManifests indicates no manifest files were found.
	NoManifests Mode = iota

	// SingleManifest indicates exactly one manifest file was found.
	SingleManifest

	// Workspace indicates multiple manifest files were found.
	Workspace
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case SingleManifest:
		return "SingleManifest"
	case Workspace:
		return "Workspace"
	case NoManifests:
		return "NoManifests"
	default:
		return "Unknown"
	}
}

// Result represents the complete scan result for a directory tree.
type Result struct {
	// Mode indicates the detected workspace shape.
	Mode Mode

	// Manifests contains the manifests found, in scan order.
	Manifests []Entry

	// Broken contains manifest files that exist but could not be decoded.
	Broken []Problem
}

// HasManifests returns true if any manifest files were found.
func (r *Result) HasManifests() bool {
	return len(r.Manifests) > 0
}

// HasProblems returns true if any manifest files failed to decode.
func (r *Result) HasProblems() bool {
	return len(r.Broken) > 0
}

// IsEmpty returns true if the scan found nothing at all.
func (r *Result) IsEmpty() bool {
	return len(r.Manifests) == 0 && len(r.Broken) == 0
}

// Filenames returns the unique manifest base filenames found, sorted.
func (r *Result) Filenames() []string {
	set := make(map[string]struct{})
	for _, e := range r.Manifests {
		set[e.Filename] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entry represents a discovered manifest file.
type Entry struct {
	// Path is the absolute path to the manifest file.
	Path string

	// RelPath is the relative path from the scan root.
	RelPath string

	// Filename is the base name of the file (e.g., "package.json").
	Filename string

	// Record holds the decoded manifest content.
	Record *manifest.Record
}

// Problem represents a manifest file that exists but could not be decoded.
type Problem struct {
	// Path is the absolute path to the offending file.
	Path string

	// RelPath is the relative path from the scan root.
	RelPath string

	// Err is the decode failure.
	Err error
}
