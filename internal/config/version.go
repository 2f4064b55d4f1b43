package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsOlderThanMinimum reports whether the running version is a release
// build older than minimum. Non-semver builds such as "dev" never count
// as older; a malformed minimum is an error for the caller to surface.
func IsOlderThanMinimum(current, minimum string) (bool, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return false, nil
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing min_version %q: %w", minimum, err)
	}
	return cv.LessThan(mv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
