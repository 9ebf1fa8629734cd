package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vspec-dev/vspec/internal/core"
)

// DiscoveryConfig controls the workspace manifest scan.
type DiscoveryConfig struct {
	// MaxDepth limits how deep the scan descends below the root.
	MaxDepth *int `yaml:"max-depth,omitempty"`

	// Exclude lists glob patterns for directories to skip, in addition to
	// the built-in exclusions.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Config is the main configuration structure for vspec.
type Config struct {
	// Files overrides the candidate manifest filenames tried during lookup.
	Files []string `yaml:"files,omitempty"`

	// Theme selects the output theme for interactive prompts.
	Theme string `yaml:"theme,omitempty"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no-color,omitempty"`

	// Discovery configures the workspace manifest scan.
	Discovery *DiscoveryConfig `yaml:"discovery,omitempty"`
}

// DefaultManifestFiles returns the candidate manifest filenames tried during
// lookup when the configuration does not override them. Order is priority
// order.
func DefaultManifestFiles() []string {
	return []string{"package.json", "pubspec.yaml", "Cargo.toml", "pyproject.toml"}
}

// GetManifestFiles returns the configured candidate filenames, falling back
// to the defaults when unset. Safe to call on a nil Config.
func (c *Config) GetManifestFiles() []string {
	if c == nil || len(c.Files) == 0 {
		return DefaultManifestFiles()
	}
	return c.Files
}

// GetDiscoveryConfig returns the discovery section. Safe to call on a nil
// Config.
func (c *Config) GetDiscoveryConfig() DiscoveryConfig {
	if c == nil || c.Discovery == nil {
		return DiscoveryConfig{}
	}
	return *c.Discovery
}

// GetExcludePatterns returns the configured scan exclusions. Safe to call on
// a nil Config.
func (c *Config) GetExcludePatterns() []string {
	if c == nil || c.Discovery == nil {
		return nil
	}
	return c.Discovery.Exclude
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, DefaultConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the default ConfigSaver instance for backward compatibility.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn, LoadConfigFromFn and SaveConfigFn are declared as variables
// so tests and callers can swap the implementations.
var (
	LoadConfigFn     = loadConfig
	LoadConfigFromFn = loadConfigFrom
	SaveConfigFn     = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envFiles := os.Getenv("VSPEC_FILES"); envFiles != "" {
		files, err := splitFileList(envFiles)
		if err != nil {
			return nil, err
		}
		return &Config{Files: files}, nil
	}

	return loadConfigFrom(DefaultConfigFile)
}

// loadConfigFrom reads a config file. A missing file is not an error: the
// caller falls back to defaults on a nil Config.
func loadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitFileList parses the comma-separated VSPEC_FILES value.
func splitFileList(raw string) ([]string, error) {
	var files []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		// Reject relative paths with traversal (candidates are joined under
		// scanned directories)
		if strings.Contains(entry, "..") {
			return nil, fmt.Errorf("invalid VSPEC_FILES entry %q: path traversal not allowed", entry)
		}
		files = append(files, entry)
	}
	return files, nil
}

// NormalizeManifestPath ensures the path is a file, not just a directory.
func NormalizeManifestPath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultManifestFiles()[0])
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}

// DefaultConfigFile is the config filename looked up in the working directory.
const DefaultConfigFile = ".vspec.yaml"

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
// References core.PermOwnerRW for consistency across the codebase.
const ConfigFilePerm = core.PermOwnerRW
