package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/dotpip/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps task file validation failures
// (as opposed to syntax, filesystem, or other loading errors).
var ErrConfigValidation = errors.New("config validation failed")

// Format identifies a task file syntax.
type Format string

const (
	// FormatYAML covers YAML and JSON task files.
	FormatYAML Format = "yaml"
	// FormatTOML covers TOML task files using [[tasks]] tables.
	FormatTOML Format = "toml"
)

// FormatFromPath infers the task file format from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf(messages.ConfigUnsupportedFormatFmt, path, filepath.Ext(path))
	}
}

// LoadConfig reads a task file and validates it.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path, format)
}

// ParseConfig parses and validates task file data.
// data is the file content; source is used in error messages.
func ParseConfig(data []byte, source string, format Format) (*Config, error) {
	var items []any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
		}
	case FormatTOML:
		doc, err := decodeTOML(data, source)
		if err != nil {
			return nil, err
		}
		for _, task := range doc.Tasks {
			items = append(items, task)
		}
	default:
		return nil, fmt.Errorf(messages.ConfigUnsupportedFormatFmt, source, format)
	}

	cfg, err := buildConfig(items, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// tomlDocument is the TOML task file layout.
type tomlDocument struct {
	Tasks []map[string]any `toml:"tasks"`
}

// decodeTOML decodes data, rejecting top-level keys other than tasks.
func decodeTOML(data []byte, source string) (*tomlDocument, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var strict tomlDocument
	if err := decoder.Decode(&strict); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	return &doc, nil
}

// buildConfig converts decoded task items into tasks, checking each has exactly one directive.
func buildConfig(items []any, source string) (*Config, error) {
	cfg := &Config{Tasks: make([]Task, 0, len(items))}
	for i, item := range items {
		task, err := taskFromItem(item, source, i)
		if err != nil {
			return nil, err
		}
		cfg.Tasks = append(cfg.Tasks, task)
	}
	return cfg, cfg.Validate(source)
}

// taskFromItem extracts the directive and data of a single-key mapping.
func taskFromItem(item any, source string, index int) (Task, error) {
	switch m := item.(type) {
	case map[string]any:
		if len(m) != 1 {
			return Task{}, fmt.Errorf(messages.ConfigTaskDirectiveCountFmt, source, index, len(m))
		}
		for directive, data := range m {
			return Task{Directive: directive, Data: data}, nil
		}
	case map[any]any:
		if len(m) != 1 {
			return Task{}, fmt.Errorf(messages.ConfigTaskDirectiveCountFmt, source, index, len(m))
		}
		for key, data := range m {
			directive, ok := key.(string)
			if !ok {
				return Task{}, fmt.Errorf(messages.ConfigTaskKeyNotStringFmt, source, index)
			}
			return Task{Directive: directive, Data: data}, nil
		}
	}
	return Task{}, fmt.Errorf(messages.ConfigTaskNotMappingFmt, source, index)
}
