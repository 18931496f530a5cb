package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Satisfies reports whether installed falls within the semver range
// requested. Both sides tolerate a leading "v".
func Satisfies(installed, requested string) (bool, error) {
	v, err := parseSemver(installed)
	if err != nil {
		return false, fmt.Errorf("parsing installed version %q: %w", installed, err)
	}
	c, err := semver.NewConstraint(strings.TrimSpace(requested))
	if err != nil {
		return false, fmt.Errorf("parsing version range %q: %w", requested, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
