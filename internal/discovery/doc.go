// Package discovery scans a directory tree for dependency manifests
// (package.json, Cargo.toml, etc.) to help users understand their workspace
// layout and pick candidate filenames for lookup. It also detects packages
// whose manifests disagree about the required version.
package discovery
