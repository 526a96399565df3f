package manifest

import "github.com/kickoff-labs/kickoff/internal/placeholder"

// Manifest describes one project template.
type Manifest struct {
	MinVersion       string                   `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Placeholders     []placeholder.Definition `yaml:"placeholders" json:"placeholders"`
	Readme           string                   `yaml:"readme,omitempty" json:"readme,omitempty"`
	Separator        string                   `yaml:"separator,omitempty" json:"separator,omitempty"`
	BinaryExtensions []string                 `yaml:"binary_extensions,omitempty" json:"binary_extensions,omitempty"`
	Notice           string                   `yaml:"notice,omitempty" json:"notice,omitempty"`

	// Path is the file the manifest was read from, empty for the embedded defaults.
	Path string `yaml:"-" json:"-"`
}

// Tokens returns the declared tokens in order.
func (m *Manifest) Tokens() []string {
	tokens := make([]string, len(m.Placeholders))
	for i, d := range m.Placeholders {
		tokens[i] = d.Token
	}
	return tokens
}
