// Package check provides the "vspec check" command which reports every
// dependency requirement of one or all manifests, normalized and classified,
// together with cross-manifest conflicts and configuration health.
package check
