package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Relations reported by Relation.
const (
	RelationSame    = "same"
	RelationNewer   = "newer"
	RelationOlder   = "older"
	RelationDiffers = "differs"
)

// NeedsUpdate reports whether the installed version differs from the
// published one. Any difference counts, including a published version that
// sorts lower: the release is the source of truth.
func NeedsUpdate(current, latest string) bool {
	return current != latest
}

// CompareVersions compares two version strings using semver.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// Relation describes latest relative to current for display: "newer",
// "older" or "same" when both parse as semver, otherwise "same" for equal
// strings and "differs" for anything else.
func Relation(current, latest string) string {
	if current == latest {
		return RelationSame
	}
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return RelationDiffers
	}
	switch cmp {
	case -1:
		return RelationNewer
	case 1:
		return RelationOlder
	}
	return RelationSame
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
