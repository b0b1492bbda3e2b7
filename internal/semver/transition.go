package semver

import "fmt"

// Bump is the magnitude of a version increment.
type Bump int

// Bump magnitudes.
const (
	BumpMajor Bump = iota
	BumpMinor
	BumpPatch
)

// String returns the lowercase name of the bump magnitude.
func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return fmt.Sprintf("bump(%d)", int(b))
	}
}

// Next computes the version that follows current for the given bump
// magnitude. toPrerelease selects whether the result opens (or advances) a
// prerelease line or is a final release.
//
// Four transitions exist, keyed by (current.IsPreRelease, toPrerelease):
//
//   - release → release: increment the named component, zero the lower ones.
//   - release → prerelease: same increment, at prerelease ordinal 0.
//   - prerelease → release: if the current prerelease already satisfies the
//     requested magnitude (the at-least predicates), finalize in place by
//     dropping the ordinal; otherwise increment and finalize.
//   - prerelease → prerelease: same test, but advance the ordinal when
//     satisfied and open a fresh line at ordinal 0 when not.
//
// The at-least tests keep successive prereleases on one line: once 1.0.0-pre
// exists, another major bump yields 1.0.0-pre.1, not 2.0.0-pre.
func Next(current Version, bump Bump, toPrerelease bool) (Version, error) {
	if bump != BumpMajor && bump != BumpMinor && bump != BumpPatch {
		return Version{}, fmt.Errorf("unrecognized bump magnitude %d", int(bump))
	}

	if !current.IsPreRelease() {
		bumped := incremented(current, bump)
		if toPrerelease {
			return Prerelease(bumped.Major, bumped.Minor, bumped.Patch, 0), nil
		}
		return bumped, nil
	}

	if satisfies(current, bump) {
		if toPrerelease {
			ordinal, _ := current.PreOrdinal()
			return Prerelease(current.Major, current.Minor, current.Patch, ordinal+1), nil
		}
		return Release(current.Major, current.Minor, current.Patch), nil
	}

	bumped := incremented(current, bump)
	if toPrerelease {
		return Prerelease(bumped.Major, bumped.Minor, bumped.Patch, 0), nil
	}
	return bumped, nil
}

// incremented applies the named component bump to the triple, producing a
// final release with the lower components zeroed.
func incremented(v Version, bump Bump) Version {
	switch bump {
	case BumpMajor:
		return Release(v.Major+1, 0, 0)
	case BumpMinor:
		return Release(v.Major, v.Minor+1, 0)
	default:
		return Release(v.Major, v.Minor, v.Patch+1)
	}
}

// satisfies reports whether the current version already counts as an
// at-least-bump release, meaning the component was bumped when its
// prerelease line opened.
func satisfies(v Version, bump Bump) bool {
	switch bump {
	case BumpMajor:
		return v.IsAtLeastMajorRelease()
	case BumpMinor:
		return v.IsAtLeastMinorRelease()
	default:
		return v.IsAtLeastPatchRelease()
	}
}
