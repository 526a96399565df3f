package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kickoff-labs/kickoff/internal/branding"
)

// Keys shared by flags and environment variables.
const (
	KeyRoot     = "root"
	KeySelf     = "self"
	KeyDryRun   = "dry-run"
	KeyKeepSelf = "keep-self"
	KeySet      = "set"
	KeyVerbose  = "verbose"
)

// Settings holds the resolved run settings.
type Settings struct {
	Root     string            // Absolute project root
	Self     string            // Initializer path override, empty for the running executable
	DryRun   bool              // Report changes without touching the tree
	KeepSelf bool              // Skip the final self-removal
	Values   map[string]string // Pre-set placeholder values
	Verbose  bool
}

// RegisterFlags adds the run flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyRoot, ".", "Project root to initialize")
	fs.String(KeySelf, "", "Path of the initializer file to delete at the end (default: the running executable)")
	fs.Bool(KeyDryRun, false, "Show what would change without modifying anything")
	fs.Bool(KeyKeepSelf, false, "Do not delete the initializer when done")
	fs.StringArray(KeySet, nil, "Preset a placeholder value as token=value (repeatable); skips the prompt")
	fs.BoolP(KeyVerbose, "v", false, "Log every file operation to stderr")
}

// Load reads the settings from fs, falling back to environment variables
// prefixed with the branding env prefix (KICKOFF_DRY_RUN, ...).
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	root, err := filepath.Abs(v.GetString(KeyRoot))
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	values, err := ParseValues(assignments(fs))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Root:     root,
		Self:     v.GetString(KeySelf),
		DryRun:   v.GetBool(KeyDryRun),
		KeepSelf: v.GetBool(KeyKeepSelf),
		Values:   values,
		Verbose:  v.GetBool(KeyVerbose),
	}, nil
}

// assignments returns the --set values, or the lines of the KICKOFF_SET
// environment variable when the flag is not given. Values may contain spaces,
// so the variable holds one token=value per line.
func assignments(fs *pflag.FlagSet) []string {
	if fs.Changed(KeySet) {
		values, _ := fs.GetStringArray(KeySet)
		return values
	}
	env, ok := os.LookupEnv(branding.EnvVar(KeySet))
	if !ok {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(env, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseValues parses token=value assignments. The value may contain "=".
func ParseValues(assignments []string) (map[string]string, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(assignments))
	for _, a := range assignments {
		token, value, ok := strings.Cut(a, "=")
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid --%s %q: expected token=value", KeySet, a)
		}
		values[token] = value
	}
	return values, nil
}
