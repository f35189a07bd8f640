package model

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies an interchange encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for encodings the codec cannot handle.
var ErrUnsupportedFormat = errors.New("model: unsupported format")

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Decode parses a configuration. YAML and TOML documents are normalised into
// JSON first so every format goes through the same conversion boundary.
func Decode(data []byte, format Format) (FormConfig, error) {
	var payload []byte
	switch format {
	case FormatJSON, "":
		payload = data
	case FormatYAML:
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return FormConfig{}, fmt.Errorf("model: decode yaml: %w", err)
		}
		normalised, err := json.Marshal(generic)
		if err != nil {
			return FormConfig{}, fmt.Errorf("model: normalise yaml: %w", err)
		}
		payload = normalised
	case FormatTOML:
		generic := map[string]any{}
		if err := toml.Unmarshal(data, &generic); err != nil {
			return FormConfig{}, fmt.Errorf("model: decode toml: %w", err)
		}
		normalised, err := json.Marshal(generic)
		if err != nil {
			return FormConfig{}, fmt.Errorf("model: normalise toml: %w", err)
		}
		payload = normalised
	default:
		return FormConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var cfg FormConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return FormConfig{}, fmt.Errorf("model: decode %s: %w", formatName(format), err)
	}
	if err := cfg.Validate(); err != nil {
		return FormConfig{}, err
	}
	return cfg, nil
}

// Encode serialises a configuration. TOML is accepted for input only.
func Encode(cfg FormConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return MarshalIndent(cfg)
	case FormatYAML:
		return marshalYAML(cfg)
	default:
		return nil, fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
}

// MarshalIndent renders the canonical interchange text: two-space indented
// JSON in declaration order, terminated by a newline.
func MarshalIndent(cfg FormConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("model: encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// marshalYAML keeps key order by loading the canonical JSON into a node tree
// and dropping the JSON presentation styles. The encoder re-quotes scalars
// whose plain form would resolve to a different tag.
func marshalYAML(cfg FormConfig) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("model: encode json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("model: convert to yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("model: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("model: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}

func formatName(format Format) string {
	if format == "" {
		return string(FormatJSON)
	}
	return string(format)
}
