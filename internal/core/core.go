package core

import "os"

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is the default permission for files the tool writes.
	PermOwnerRW os.FileMode = 0o600
	// PermDir is the default permission for directories the tool creates.
	PermDir os.FileMode = 0o755
)

// MaxDiscoveryDepth caps how deep the workspace scan descends when the
// configuration does not set a limit.
const MaxDiscoveryDepth = 3

// Marshaler serializes a value for persistence. Implementations pick the
// encoding (YAML for config files).
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
