// Package specifier normalizes dependency version specifiers. Semver ranges
// pass through untouched; git URLs in their many shorthand forms reduce to
// the version or commit reference they pin; anything else collapses to the
// empty string. Normalize is total: no input panics or errors.
package specifier

import (
	"strings"

	"github.com/vspec-dev/vspec/internal/semver"
)

// Kind classifies what a specifier turned out to be.
type Kind int

const (
	// KindUnrecognized means no version could be extracted.
	KindUnrecognized Kind = iota
	// KindRange is a semver version or range taken as-is.
	KindRange
	// KindGitRef is a version or commit reference extracted from a git URL.
	KindGitRef
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindGitRef:
		return "git ref"
	default:
		return "unrecognized"
	}
}

// Result describes how a specifier was normalized.
type Result struct {
	Input   string `json:"input"`
	Version string `json:"version"`
	Kind    Kind   `json:"-"`
	Host    Host   `json:"-"`
}

// Normalize reduces a raw dependency specifier to the version requirement it
// carries. Semver-looking strings are returned unchanged (after trimming);
// git URL forms yield the version or commit reference encoded in them; any
// unrecognized input yields "".
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if semver.IsRange(trimmed) {
		return trimmed
	}
	version, _ := gitVersion(strings.ToLower(trimmed))
	return version
}

// Inspect runs the same normalization as Normalize and reports how the input
// was classified, for diagnostic output.
func Inspect(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if semver.IsRange(trimmed) {
		return Result{Input: raw, Version: trimmed, Kind: KindRange}
	}
	version, host := gitVersion(strings.ToLower(trimmed))
	if version == "" {
		return Result{Input: raw, Kind: KindUnrecognized}
	}
	return Result{Input: raw, Version: version, Kind: KindGitRef, Host: host}
}
