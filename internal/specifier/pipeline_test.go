package specifier

import "testing"

func TestCorrectProtocol(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"github alias untouched", "github:user/repo#v1", "github:user/repo#v1"},
		{"gist alias untouched", "gist:123abc", "gist:123abc"},
		{"https untouched", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"git+https untouched", "git+https://host.com/a", "git+https://host.com/a"},
		{"file url untouched", "file:///tmp/repo", "file:///tmp/repo"},
		{"scp shorthand prefixed", "git@github.com:user/repo", "git+ssh://git@github.com:user/repo"},
		{"bare path prefixed", "some/path", "git+ssh://some/path"},
		{"file without slashes prefixed", "file:x", "git+ssh://file:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := correctProtocol(tt.input); got != tt.want {
				t.Errorf("correctProtocol(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrectHostColon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scp separator rewritten",
			input: "git+ssh://git@github.com:user/repo#v1.0",
			want:  "git+ssh://git@github.com/user/repo#v1.0",
		},
		{
			name:  "localhost rewritten",
			input: "git+ssh://localhost:repo",
			want:  "git+ssh://localhost/repo",
		},
		{
			name:  "port preserved",
			input: "https://host.com:8080/path",
			want:  "https://host.com:8080/path",
		},
		{
			name:  "only first occurrence",
			input: "a.com:x/b.com:y",
			want:  "a.com/x/b.com:y",
		},
		{
			name:  "no separator",
			input: "https://github.com/user/repo",
			want:  "https://github.com/user/repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := correctHostColon(tt.input); got != tt.want {
				t.Errorf("correctHostColon(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionFromFragment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain fragment", "github:user/repo#v1.0.0", "v1.0.0"},
		{"semver fragment", "github:user/repo#semver:^1.0", "^1.0"},
		{"no fragment", "github:user/repo", ""},
		{"empty fragment", "github:user/repo#", ""},
		{"semver marker only", "url#semver:", "semver:"},
		{"nested hash kept", "url#a#b", "a#b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionFromFragment(tt.input); got != tt.want {
				t.Errorf("versionFromFragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtremeShorthand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user/repo#v1", true},
		{"user/repo#semver:^1.0", true},
		{"user/repo/sub#ref", true},
		{"user/repo", false},
		{"user/repo#", false},
		{".dot/repo#v1", false},
		{"@scope/pkg#v1", false},
		{"git@host:user/repo#v1", false},
		{"github:user/repo#v1", false},
		{"has space/repo#v1", false},
	}

	for _, tt := range tests {
		if got := extremeShorthandRegex.MatchString(tt.input); got != tt.want {
			t.Errorf("extremeShorthandRegex.MatchString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
