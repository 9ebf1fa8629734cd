package config

import (
	"os"
	"path/filepath"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfigFn_EnvOverride(t *testing.T) {
	t.Run("comma separated list", func(t *testing.T) {
		t.Setenv("VSPEC_FILES", "package.json, composer.json")

		cfg, err := LoadConfigFn()
		checkError(t, err, false)
		checkConfigNil(t, cfg, false)
		assertStringSlice(t, "Files", cfg.Files, []string{"package.json", "composer.json"})
	})

	t.Run("empty entries are dropped", func(t *testing.T) {
		t.Setenv("VSPEC_FILES", "package.json,, ,Cargo.toml")

		cfg, err := LoadConfigFn()
		checkError(t, err, false)
		assertStringSlice(t, "Files", cfg.Files, []string{"package.json", "Cargo.toml"})
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Setenv("VSPEC_FILES", "../outside/package.json")

		cfg, err := LoadConfigFn()
		checkError(t, err, true)
		checkConfigNil(t, cfg, true)
	})
}

func TestLoadConfigFn_YAMLFile(t *testing.T) {
	t.Setenv("VSPEC_FILES", "")

	t.Run("full config", func(t *testing.T) {
		tmp := t.TempDir()
		configFile := filepath.Join(tmp, DefaultConfigFile)
		content := `files:
  - package.json
  - Chart.yaml
theme: tokyo-night
no-color: true
discovery:
  max-depth: 5
  exclude:
    - testdata
    - "examples/*"
`
		if err := os.WriteFile(configFile, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		runInTempDir(t, configFile, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, false)

			assertStringSlice(t, "Files", cfg.Files, []string{"package.json", "Chart.yaml"})
			if cfg.Theme != "tokyo-night" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "tokyo-night")
			}
			if !cfg.NoColor {
				t.Error("NoColor should be true")
			}
			requireNonNilDiscovery(t, cfg)
			assertIntPtr(t, "MaxDepth", cfg.Discovery.MaxDepth, 5)
			assertStringSlice(t, "Exclude", cfg.Discovery.Exclude, []string{"testdata", "examples/*"})
		})
	})

	t.Run("missing file returns nil", func(t *testing.T) {
		tmp := t.TempDir()
		runInTempDir(t, filepath.Join(tmp, "dummy"), func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmp := t.TempDir()
		configFile := filepath.Join(tmp, DefaultConfigFile)
		if err := os.WriteFile(configFile, []byte("files: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}

		runInTempDir(t, configFile, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, true)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		tmp := t.TempDir()
		configFile := filepath.Join(tmp, DefaultConfigFile)
		if err := os.WriteFile(configFile, []byte("not-a-real-key: yes\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		runInTempDir(t, configFile, func() {
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})
}

func TestLoadConfigFromFn(t *testing.T) {
	tmp := t.TempDir()
	configFile := filepath.Join(tmp, "custom-config.yaml")
	if err := os.WriteFile(configFile, []byte("theme: base16\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromFn(configFile)
	checkError(t, err, false)
	checkConfigNil(t, cfg, false)
	if cfg.Theme != "base16" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "base16")
	}
}

/* ------------------------------------------------------------------------- */
/* ACCESSORS                                                                 */
/* ------------------------------------------------------------------------- */

func TestGetManifestFiles(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want []string
	}{
		{"nil config", nil, DefaultManifestFiles()},
		{"empty config", &Config{}, DefaultManifestFiles()},
		{"configured files", &Config{Files: []string{"Chart.yaml"}}, []string{"Chart.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStringSlice(t, "GetManifestFiles()", tt.cfg.GetManifestFiles(), tt.want)
		})
	}
}

func TestGetDiscoveryConfig(t *testing.T) {
	var nilCfg *Config
	if got := nilCfg.GetDiscoveryConfig(); got.MaxDepth != nil || got.Exclude != nil {
		t.Errorf("nil config should yield zero DiscoveryConfig, got %+v", got)
	}

	depth := 7
	cfg := &Config{Discovery: &DiscoveryConfig{MaxDepth: &depth}}
	if got := cfg.GetDiscoveryConfig(); got.MaxDepth == nil || *got.MaxDepth != 7 {
		t.Errorf("GetDiscoveryConfig().MaxDepth = %v, want 7", got.MaxDepth)
	}
}

func TestGetExcludePatterns(t *testing.T) {
	var nilCfg *Config
	if got := nilCfg.GetExcludePatterns(); got != nil {
		t.Errorf("nil config should yield nil patterns, got %v", got)
	}

	cfg := &Config{Discovery: &DiscoveryConfig{Exclude: []string{"testdata"}}}
	assertStringSlice(t, "GetExcludePatterns()", cfg.GetExcludePatterns(), []string{"testdata"})
}

func TestNormalizeManifestPath(t *testing.T) {
	tmp := t.TempDir()

	t.Run("directory gets default manifest appended", func(t *testing.T) {
		got := NormalizeManifestPath(tmp)
		want := filepath.Join(tmp, "package.json")
		if got != want {
			t.Errorf("NormalizeManifestPath(%q) = %q, want %q", tmp, got, want)
		}
	})

	t.Run("existing file unchanged", func(t *testing.T) {
		file := filepath.Join(tmp, "pubspec.yaml")
		if err := os.WriteFile(file, []byte("name: app\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := NormalizeManifestPath(file); got != file {
			t.Errorf("NormalizeManifestPath(%q) = %q, want unchanged", file, got)
		}
	})

	t.Run("nonexistent path unchanged", func(t *testing.T) {
		missing := filepath.Join(tmp, "nope", "package.json")
		if got := NormalizeManifestPath(missing); got != missing {
			t.Errorf("NormalizeManifestPath(%q) = %q, want unchanged", missing, got)
		}
	})
}
