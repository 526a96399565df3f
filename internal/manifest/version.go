package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of unreleased builds. It satisfies any
// min_version requirement.
const DevVersion = "dev"

// CheckVersion returns an error if current is older than the manifest's
// min_version. An empty requirement always passes.
func (m *Manifest) CheckVersion(current string) error {
	if m.MinVersion == "" || current == DevVersion {
		return nil
	}

	required, err := parseSemver(m.MinVersion)
	if err != nil {
		return fmt.Errorf("parsing min_version %q: %w", m.MinVersion, err)
	}
	running, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}

	if running.LessThan(required) {
		return fmt.Errorf("template requires version %s or newer, running %s", required, running)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
