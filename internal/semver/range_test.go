package semver

import "testing"

func TestIsRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain version", "1.2.3", true},
		{"caret range", "^1.0.0", true},
		{"tilde range", "~2.1", true},
		{"v prefix", "v1.0.0", true},
		{"equals", "=3.0.0", true},
		{"less than", "<5.0.0", true},
		{"greater than", ">1.0.0", true},
		{"star wildcard", "*", true},
		{"x wildcard", "x", true},
		{"capital X wildcard", "X", true},
		{"compound range", ">=1.2.3 <2.0.0", true},
		{"wildcard with suffix", "x.1", false},
		{"github shorthand", "github:user/repo#v1.0.0", false},
		{"bare ref", "latest", false},
		{"url", "https://github.com/user/repo", false},
		{"empty", "", false},
		{"hash first", "#v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRange(tt.input); got != tt.want {
				t.Errorf("IsRange(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
