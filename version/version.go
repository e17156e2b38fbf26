// Package version maintains version.json and the version marker in the
// published HTML page.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidKind is returned for bump kinds other than patch, minor and major.
	ErrInvalidKind = errors.New("version: invalid bump kind")
	// ErrInvalidVersion is returned for version strings that are not MAJOR.MINOR.PATCH.
	ErrInvalidVersion = errors.New("version: invalid version")
)

// BumpKind selects which version component to increment.
type BumpKind string

const (
	Patch BumpKind = "patch"
	Minor BumpKind = "minor"
	Major BumpKind = "major"
)

// ParseBumpKind validates a bump kind. The empty string means patch.
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(s); k {
	case "":
		return Patch, nil
	case Patch, Minor, Major:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (use patch, minor or major)", ErrInvalidKind, s)
}

// Version is a semantic version number.
type Version struct {
	Major, Minor, Patch int
}

// Parse reads a MAJOR.MINOR.PATCH string.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{nums[0], nums[1], nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns v incremented by kind.
func Bump(v Version, kind BumpKind) (Version, error) {
	switch kind {
	case Major:
		return Version{v.Major + 1, 0, 0}, nil
	case Minor:
		return Version{v.Major, v.Minor + 1, 0}, nil
	case Patch:
		return Version{v.Major, v.Minor, v.Patch + 1}, nil
	}
	return v, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}
