package semver

import "regexp"

// rangeStartRegex recognizes strings that already look like a semver version
// or range: a leading digit, caret, equals, "v" prefix, comparator, or tilde,
// or a bare wildcard ("*", "x", "X").
var rangeStartRegex = regexp.MustCompile(`^([\d^=v<>~]|[*xX]$)`)

// IsRange reports whether s already reads as a semver version or range
// requirement. Such strings are taken as-is by the specifier normalizer;
// everything else goes through git URL extraction.
//
// This is a shape check, not a validation: "1.banana" passes. The goal is
// routing, matching how package managers decide between registry ranges and
// git references.
func IsRange(s string) bool {
	return rangeStartRegex.MatchString(s)
}
