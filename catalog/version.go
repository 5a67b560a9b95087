package catalog

import (
	"github.com/blang/semver"
)

// GreaterThan compares two major.minor.patch versions numerically.
// Versions that do not parse are never greater, nor is anything greater than them.
func GreaterThan(a, b string) bool {
	va, err := semver.Make(a)
	if err != nil {
		return false
	}
	vb, err := semver.Make(b)
	if err != nil {
		return false
	}
	return va.GT(vb)
}

// ParseVersion validates a version filter.
func ParseVersion(v string) (semver.Version, error) {
	parsed, err := semver.Make(v)
	if err != nil {
		return semver.Version{}, &InvalidVersion{Version: v, Err: err}
	}
	return parsed, nil
}
