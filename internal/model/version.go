// Package model defines the data structures shared by the shadow registry,
// the resolver and the dispatch layer.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a version range violates its bounds.
var ErrInvalidRange = errors.New("invalid version range")

// VersionRange is a half-open interval [min, max) of platform versions.
// An unbounded range has no upper limit.
type VersionRange struct {
	min       int
	max       int
	unbounded bool
}

// NewVersionRange returns the bounded range [minVersion, maxVersion).
func NewVersionRange(minVersion, maxVersion int) (VersionRange, error) {
	if minVersion < 0 {
		return VersionRange{}, fmt.Errorf("%w: min %d is negative", ErrInvalidRange, minVersion)
	}

	if maxVersion < minVersion {
		return VersionRange{}, fmt.Errorf("%w: max %d below min %d", ErrInvalidRange, maxVersion, minVersion)
	}

	return VersionRange{min: minVersion, max: maxVersion}, nil
}

// MustVersionRange is NewVersionRange for static declarations. It panics on
// invalid bounds.
func MustVersionRange(minVersion, maxVersion int) VersionRange {
	r, err := NewVersionRange(minVersion, maxVersion)
	if err != nil {
		panic(err)
	}

	return r
}

// AtLeast returns the unbounded range [minVersion, ∞). Negative values are
// clamped to zero.
func AtLeast(minVersion int) VersionRange {
	if minVersion < 0 {
		minVersion = 0
	}

	return VersionRange{min: minVersion, unbounded: true}
}

// AnyVersion is the range covering every version.
func AnyVersion() VersionRange {
	return AtLeast(0)
}

// Min returns the inclusive lower bound.
func (r VersionRange) Min() int { return r.min }

// Max returns the exclusive upper bound and whether the range is bounded.
func (r VersionRange) Max() (int, bool) { return r.max, !r.unbounded }

// Unbounded reports whether the range has no upper limit.
func (r VersionRange) Unbounded() bool { return r.unbounded }

// Empty reports whether the range contains no version at all.
func (r VersionRange) Empty() bool {
	return !r.unbounded && r.max == r.min
}

// Contains reports whether version lies within the range.
func (r VersionRange) Contains(version int) bool {
	if version < r.min {
		return false
	}

	return r.unbounded || version < r.max
}

// Overlaps reports whether r and other share at least one version.
func (r VersionRange) Overlaps(other VersionRange) bool {
	if r.Empty() || other.Empty() {
		return false
	}

	// [a,b) and [c,d) intersect iff a < d and c < b.
	if !other.unbounded && r.min >= other.max {
		return false
	}

	if !r.unbounded && other.min >= r.max {
		return false
	}

	return true
}

func (r VersionRange) String() string {
	if r.unbounded {
		return fmt.Sprintf("[%d,∞)", r.min)
	}

	return fmt.Sprintf("[%d,%d)", r.min, r.max)
}
