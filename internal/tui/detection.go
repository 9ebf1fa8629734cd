package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are environment variables that indicate a CI/CD environment.
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"SEMAPHORE",              // Semaphore CI
	"APPVEYOR",               // AppVeyor
	"CODEBUILD_BUILD_ID",     // AWS CodeBuild
	"TF_BUILD",               // Azure Pipelines
}

// IsCI reports whether the process appears to run under a CI/CD system.
func IsCI() bool {
	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsInteractive determines if the current environment supports interactive prompts.
// It returns false in the following cases:
//   - stdout is not a terminal (redirected to file, pipe, etc.)
//   - running in a CI/CD environment (detected via environment variables)
//
// This function is used to automatically skip TUI prompts in non-interactive contexts.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}
	return !IsCI()
}

// IsTTY checks if stdout is a terminal.
// This is a lower-level check than IsInteractive.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
