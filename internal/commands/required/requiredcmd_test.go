package required

import (
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/vspec-dev/vspec/internal/config"
	"github.com/vspec-dev/vspec/internal/testutils"
)

const manifestContent = `{
  "name": "demo-app",
  "optionalDependencies": {
    "left-pad": "github:user/left-pad#v1.3.0"
  },
  "dependencies": {
    "left-pad": "^1.0.0",
    "react": "18.2.0"
  },
  "devDependencies": {
    "typescript": "~5.4"
  }
}`

func TestCLI_RequiredCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "plain dependency",
			args:           []string{"vspec", "required", "react"},
			expectedOutput: "18.2.0\n",
		},
		{
			name:           "dev dependency",
			args:           []string{"vspec", "required", "typescript"},
			expectedOutput: "~5.4\n",
		},
		{
			name:           "optional table shadows regular",
			args:           []string{"vspec", "required", "left-pad"},
			expectedOutput: "v1.3.0\n",
		},
		{
			name:           "raw prints the recorded specifier",
			args:           []string{"vspec", "required", "--raw", "left-pad"},
			expectedOutput: "github:user/left-pad#v1.3.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			testutils.WriteTempManifest(t, tmpDir, "package.json", manifestContent)

			cfg := &config.Config{}
			appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

			output, err := testutils.CaptureStdout(func() {
				testutils.RunCLITest(t, appCli, tt.args, tmpDir)
			})
			if err != nil {
				t.Fatalf("Failed to capture stdout: %v", err)
			}

			if output != tt.expectedOutput {
				t.Errorf("output = %q, want %q", output, tt.expectedOutput)
			}
		})
	}
}

func TestCLI_RequiredCommand_Absent(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.WriteTempManifest(t, tmpDir, "package.json", manifestContent)

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"vspec", "required", "lodash"}, tmpDir)
	if err == nil || !strings.Contains(err.Error(), `"lodash" is not required`) {
		t.Errorf("error = %v, want a not-required failure", err)
	}
}

func TestCLI_RequiredCommand_UnresolvableSpecifier(t *testing.T) {
	// A listed package whose specifier carries no extractable version still
	// counts as required: the command prints the empty normalization.
	tmpDir := t.TempDir()
	testutils.WriteTempManifest(t, tmpDir, "package.json",
		`{"dependencies": {"weird": "some local build"}}`)

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"vspec", "required", "weird"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if output != "\n" {
		t.Errorf("output = %q, want a single empty line", output)
	}
}

func TestCLI_RequiredCommand_MissingArgument(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.Config{}
	appCli := testutils.BuildCLIForTests(tmpDir, []*cli.Command{Run(cfg)})

	err := testutils.RunCLITestAllowError(t, appCli, []string{"vspec", "required"}, tmpDir)
	if err == nil || !strings.Contains(err.Error(), "package name required") {
		t.Errorf("error = %v, want missing-argument failure", err)
	}
}
