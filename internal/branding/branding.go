// Package branding provides compile-time identity values for the initializer.
//
// Template authors who ship a renamed copy edit branding.yaml in this package
// before building; //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ManifestFile string `yaml:"manifest_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "kickoff",
			DisplayName:  "Kickoff",
			Description:  "One-shot initializer for projects created from a template",
			EnvPrefix:    "KICKOFF",
			ManifestFile: ".kickoff.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "kickoff").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Kickoff").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "KICKOFF").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ManifestFile returns the template manifest file name looked up in the
// project root (e.g., ".kickoff.yaml").
func ManifestFile() string { load(); return defaults.ManifestFile }

// EnvVar returns a fully qualified env var name for a flag or key name,
// e.g., EnvVar("dry-run") → "KICKOFF_DRY_RUN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(suffix, "-", "_"))
}
