package manifest

import (
	"fmt"
	"strings"
)

// NotObjectError indicates a manifest whose top-level value is not an object.
type NotObjectError struct {
	Path string
}

func (e *NotObjectError) Error() string {
	return fmt.Sprintf("description file %s is not an object", e.Path)
}

// Suggestion returns guidance on fixing the manifest shape.
func (e *NotObjectError) Suggestion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "The manifest at %s does not contain an object at the top level.\n\n", e.Path)
	sb.WriteString("Dependency manifests must look like:\n\n")
	sb.WriteString("  {\n")
	sb.WriteString("    \"name\": \"my-package\",\n")
	sb.WriteString("    \"dependencies\": { ... }\n")
	sb.WriteString("  }\n\n")
	sb.WriteString("Documentation: https://vspec.dev/manifests\n")

	return sb.String()
}

// DecodeError indicates a manifest file that could not be parsed.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse manifest at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Suggestion returns guidance on fixing the parse failure.
func (e *DecodeError) Suggestion() string {
	return fmt.Sprintf("Check %s for syntax errors; the format is inferred from the file extension.", e.Path)
}

// UnsupportedFormatError indicates an in-place rewrite was requested for a
// manifest format that cannot be rewritten while preserving formatting.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("cannot rewrite %s: only JSON manifests support in-place updates", e.Path)
}

// Suggestion returns guidance for unsupported rewrite targets.
func (e *UnsupportedFormatError) Suggestion() string {
	return fmt.Sprintf("Edit %s manually; in-place rewriting preserves formatting only for JSON manifests.", e.Path)
}
