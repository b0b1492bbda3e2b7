// Package semver implements the version model used for release tags: a
// (major, minor, patch) triple with an optional prerelease ordinal.
//
// Tag grammar:
//
//	M.N.P        final release
//	M.N.P-pre    prerelease ordinal 0
//	M.N.P-pre.K  prerelease ordinal K
//
// A final release sorts above every prerelease of the same triple.
package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTagFormat indicates a tag string that does not match the
// M.N.P[-pre[.K]] grammar.
var ErrInvalidTagFormat = errors.New("invalid tag format")

// preMarker is the only prerelease identifier the tag grammar accepts.
const preMarker = "pre"

// Version is an immutable semantic version, release or prerelease. The zero
// value is the 0.0.0 final release.
type Version struct {
	Major int
	Minor int
	Patch int

	// pre holds the prerelease ordinal plus one; zero marks a final
	// release, which keeps the zero Version a final 0.0.0.
	pre int
}

// Release constructs a final release version.
func Release(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Prerelease constructs a prerelease version with the given ordinal.
func Prerelease(major, minor, patch, ordinal int) Version {
	return Version{Major: major, Minor: minor, Patch: patch, pre: ordinal + 1}
}

// Parse parses a tag string. It is the strict inverse of TagString: a suffix
// whose first segment is not the literal "pre" is rejected, as is any
// non-numeric component.
func Parse(tag string) (Version, error) {
	base, suffix, hasSuffix := strings.Cut(tag, "-")

	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("parsing tag %q: %w: expected M.N.P", tag, ErrInvalidTagFormat)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("parsing tag %q: %w: %v", tag, ErrInvalidTagFormat, err)
		}
		nums[i] = n
	}

	v := Release(nums[0], nums[1], nums[2])
	if !hasSuffix {
		return v, nil
	}

	marker, ordinal, hasOrdinal := strings.Cut(suffix, ".")
	if marker != preMarker {
		return Version{}, fmt.Errorf("parsing tag %q: %w: prerelease marker must be %q", tag, ErrInvalidTagFormat, preMarker)
	}

	if !hasOrdinal {
		return Prerelease(v.Major, v.Minor, v.Patch, 0), nil
	}
	n, err := parseComponent(ordinal)
	if err != nil {
		return Version{}, fmt.Errorf("parsing tag %q: %w: %v", tag, ErrInvalidTagFormat, err)
	}
	return Prerelease(v.Major, v.Minor, v.Patch, n), nil
}

// parseComponent parses a single non-negative numeric component. Signs and
// empty strings are rejected so parsing stays a strict inverse of TagString.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric component %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("component %q out of range", s)
	}
	return n, nil
}

// MustParse parses a tag string and panics on error. Intended for tests and
// constants.
func MustParse(tag string) Version {
	v, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return v
}

// TagString renders the version in tag form. Ordinal 0 renders as "-pre"
// with no ordinal, matching Parse.
func (v Version) TagString() string {
	ordinal, ok := v.PreOrdinal()
	switch {
	case !ok:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	case ordinal == 0:
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, preMarker)
	default:
		return fmt.Sprintf("%d.%d.%d-%s.%d", v.Major, v.Minor, v.Patch, preMarker, ordinal)
	}
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return v.TagString()
}

// PublishString renders the version for artifact publication: prereleases
// carry a -SNAPSHOT suffix in place of the -pre[.K] ordinal.
func (v Version) PublishString() string {
	if v.IsPreRelease() {
		return fmt.Sprintf("%d.%d.%d-SNAPSHOT", v.Major, v.Minor, v.Patch)
	}
	return v.TagString()
}

// IsPreRelease reports whether the version carries a prerelease ordinal.
func (v Version) IsPreRelease() bool {
	return v.pre != 0
}

// PreOrdinal returns the prerelease ordinal. ok is false for a final release.
func (v Version) PreOrdinal() (ordinal int, ok bool) {
	if !v.IsPreRelease() {
		return 0, false
	}
	return v.pre - 1, true
}

// IsMajorRelease reports whether minor and patch are both zero.
func (v Version) IsMajorRelease() bool {
	return v.Minor == 0 && v.Patch == 0
}

// IsMinorRelease reports whether patch is zero.
func (v Version) IsMinorRelease() bool {
	return v.Patch == 0
}

// IsPatchRelease reports whether patch is nonzero.
func (v Version) IsPatchRelease() bool {
	return v.Patch > 0
}

// IsAtLeastMajorRelease reports whether the lower components are already at
// their just-bumped zero state for a major bump.
func (v Version) IsAtLeastMajorRelease() bool {
	return v.IsMajorRelease()
}

// IsAtLeastMinorRelease reports whether the lower components are already at
// their just-bumped zero state for a minor bump.
func (v Version) IsAtLeastMinorRelease() bool {
	return v.IsMajorRelease() || v.IsMinorRelease()
}

// IsAtLeastPatchRelease reports whether the version already satisfies a
// patch bump. Every version does; the predicate exists so the transition
// tables read uniformly across the three magnitudes.
func (v Version) IsAtLeastPatchRelease() bool {
	return v.IsMajorRelease() || v.IsMinorRelease() || v.IsPatchRelease()
}

// Compare returns -1, 0, or 1 ordering v against o. The order is
// lexicographic on (major, minor, patch, ordinal) with a final release
// sorting above every prerelease of the same triple.
func (v Version) Compare(o Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, o.Patch); c != 0 {
		return c
	}
	return compareInt(v.rank(), o.rank())
}

// Compare returns -1, 0, or 1 ordering a against b.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// rank maps the ordinal to a comparable value where final beats every
// prerelease ordinal.
func (v Version) rank() int {
	if v.pre == 0 {
		return int(^uint(0) >> 1)
	}
	return v.pre
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
