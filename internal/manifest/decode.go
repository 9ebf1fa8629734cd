package manifest

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Decode parses manifest bytes, picking the format from the file extension:
// YAML for .yaml/.yml, TOML for .toml, JSON for everything else.
func Decode(path string, data []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
	}
	return doc, nil
}

// decodeObject decodes manifest bytes and enforces that the top-level value
// is an object. Arrays, primitives, and null are manifest corruption, not
// something to skip over.
func decodeObject(path string, data []byte) (map[string]any, error) {
	doc, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &NotObjectError{Path: path}
	}
	return obj, nil
}
