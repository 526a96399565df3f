package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrDuplicateToken is returned when a manifest declares the same token twice.
var ErrDuplicateToken = errors.New("duplicate placeholder token")

// Default returns the embedded manifest.
func Default() (*Manifest, error) {
	m, err := parse(defaultsYAML, "embedded defaults")
	if err != nil {
		return nil, err
	}
	if err := checkUnique(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads the manifest named fileName from root. When the file does not
// exist the embedded defaults are returned. A present manifest must pass
// schema validation; fields it leaves out are taken from the defaults.
func Load(root, fileName string) (*Manifest, error) {
	path := filepath.Join(root, fileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse validates and decodes manifest YAML. source names the data in errors.
func Parse(data []byte, source string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid manifest %s:\n  %s", source, strings.Join(msgs, "\n  "))
	}

	m, err := parse(data, source)
	if err != nil {
		return nil, err
	}
	if err := checkUnique(m); err != nil {
		return nil, err
	}

	defaults, err := parse(defaultsYAML, "embedded defaults")
	if err != nil {
		return nil, err
	}
	applyDefaults(m, defaults)
	return m, nil
}

func parse(data []byte, source string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

// applyDefaults fills fields m leaves empty. Placeholders are never merged:
// a project manifest replaces the default list.
func applyDefaults(m, defaults *Manifest) {
	if m.Readme == "" {
		m.Readme = defaults.Readme
	}
	if m.Separator == "" {
		m.Separator = defaults.Separator
	}
	if m.BinaryExtensions == nil {
		m.BinaryExtensions = defaults.BinaryExtensions
	}
	if m.Notice == "" {
		m.Notice = defaults.Notice
	}
}

func checkUnique(m *Manifest) error {
	seen := make(map[string]bool, len(m.Placeholders))
	for _, d := range m.Placeholders {
		if seen[d.Token] {
			return fmt.Errorf("%w: %q", ErrDuplicateToken, d.Token)
		}
		seen[d.Token] = true
	}
	return nil
}
