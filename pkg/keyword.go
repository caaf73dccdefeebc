package bumpver

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ResolveVersion turns the new-version argument into a concrete literal.
// The keywords "major", "minor" and "patch" compute the new literal from the
// old one, which must then parse as semver. Anything else is passed through
// untouched: explicit literals are opaque and never validated.
// It returns the resolved literal and the bump type ("explicit" or the
// keyword that was used).
func ResolveVersion(oldVersion, versionArg string) (string, string, error) {
	switch versionArg {
	case "major", "minor", "patch":
	default:
		return versionArg, "explicit", nil
	}

	normalized := oldVersion
	if !strings.HasPrefix(normalized, "v") {
		normalized = "v" + normalized
	}
	if !semver.IsValid(normalized) {
		return "", "", fmt.Errorf("cannot bump %q by %s: not a semantic version", oldVersion, versionArg)
	}

	bumped, err := bumpVersion(normalized, versionArg)
	if err != nil {
		return "", "", err
	}
	return strings.TrimPrefix(bumped, "v"), versionArg, nil
}

// parseSemVer extracts the numerical components and prerelease from a semver
// string. The expected input is canonical semver with a leading "v".
func parseSemVer(version string) (major, minor, patch int, prerelease string, err error) {
	vWithoutPrefix := strings.TrimPrefix(version, "v")
	parts := strings.SplitN(vWithoutPrefix, "-", 2)
	numParts := strings.Split(parts[0], ".")
	if len(numParts) != 3 {
		err = fmt.Errorf("unexpected version format: %s", version)
		return
	}

	if major, err = strconv.Atoi(numParts[0]); err != nil {
		return
	}
	if minor, err = strconv.Atoi(numParts[1]); err != nil {
		return
	}
	if patch, err = strconv.Atoi(numParts[2]); err != nil {
		return
	}
	if len(parts) == 2 {
		prerelease = parts[1]
	}
	return
}

// bumpVersion takes a normalized semver string (with "v" prefix) and a bump
// keyword to produce the successor version. Any prerelease part is dropped.
func bumpVersion(current, bump string) (string, error) {
	major, minor, patch, _, err := parseSemVer(current)
	if err != nil {
		return "", err
	}

	switch bump {
	case "major":
		major++
		minor = 0
		patch = 0
	case "minor":
		minor++
		patch = 0
	case "patch":
		patch++
	default:
		return "", fmt.Errorf("unknown bump argument: %s", bump)
	}

	return fmt.Sprintf("v%d.%d.%d", major, minor, patch), nil
}
