// Package isearch provides interpolation search over sorted random-access
// sequences, plus a plain bisecting search sharing the same result shape.
//
// Interpolation search estimates the target's position by linear
// interpolation between the window's endpoints instead of always probing
// the midpoint. When element values are roughly uniformly distributed this
// takes an expected O(log log N) comparisons; under adversarial value
// distributions it degrades to O(N), though it always terminates and never
// probes out of range.
package isearch

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/Johniel/gointerp/linear"
	"github.com/Johniel/gointerp/scalable"
)

// ErrNotFound is returned when a search does not find a matching element.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents an error when an element is not found during a
// search. The accompanying index is the position at which the target could
// be inserted while keeping the sequence sorted.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}

// Number constrains the primitive element types that get interpolation
// search without implementing any capability.
type Number interface {
	constraints.Integer | constraints.Float
}

// SearchBy performs an interpolation search on a sorted collection of size
// elements. The comparison function f should return:
//   - negative value if the element at index is less than the target
//   - zero if the element at index equals the target
//   - positive value if the element at index is greater than the target
//
// factor should return the interpolation factor of the target between the
// elements at low and high, a value in [0.0, 1.0]. Out-of-range or
// non-finite factors are tolerated: they are clamped, and NaN or infinite
// values make the iteration bisect instead.
//
// Returns the index if found, or ErrNotFound with the insertion point if
// not found. If the collection is not sorted the returned index is
// unspecified. When several elements equal the target, any one of their
// indices may be returned.
func SearchBy(size int, f func(int) int, factor func(low, high int) float64) (int, error) {
	low := 0
	high := size - 1

	for low <= high {
		if c := f(low); c == 0 {
			return low, nil
		} else if c > 0 {
			// Target sorts before the window.
			return low, ErrNotFound
		}
		if c := f(high); c == 0 {
			return high, nil
		} else if c < 0 {
			// Target sorts after the window.
			return high + 1, ErrNotFound
		}
		// The target is strictly between the endpoints. A window of two
		// elements has no interior index left to probe.
		if high-low < 2 {
			return low + 1, ErrNotFound
		}
		probe := lerpIndex(low, high, normalize(factor(low, high)))
		switch c := f(probe); {
		case c == 0:
			return probe, nil
		case c > 0:
			low, high = low+1, probe-1
		default:
			low, high = probe+1, high-1
		}
	}
	return low, ErrNotFound
}

// BisectBy performs a binary search on a sorted collection of size
// elements, with the same comparison function and result shape as
// SearchBy. It probes the midpoint unconditionally and serves as the
// baseline interpolation search is measured against.
func BisectBy(size int, f func(int) int) (int, error) {
	left := 0
	right := size

	for left < right {
		mid := left + (right-left)/2
		cmp := f(mid)
		if cmp < 0 {
			left = mid + 1
		} else if cmp > 0 {
			right = mid
		} else {
			return mid, nil
		}
	}
	return left, ErrNotFound
}

// Search performs an interpolation search on a sorted slice of
// capability-bearing elements. The element type supplies both the ordering
// and the distance measure; see linear.Value.
//
// Both type arguments must be spelled out at the call site, for example
// Search[linear.Time, scalable.Span](seq, target).
func Search[T linear.Value[T, D], D scalable.Scalable[D]](seq []T, target T) (int, error) {
	return SearchBy(len(seq),
		func(i int) int {
			return seq[i].Compare(target)
		},
		func(low, high int) float64 {
			total := seq[low].DistanceTo(seq[high])
			return seq[low].DistanceTo(target).FractionOf(total)
		})
}

// SearchOrdered performs an interpolation search on a sorted slice of
// primitive numeric elements. Distances are measured in float64, which is
// precise enough for a position estimate over any integer or float type.
func SearchOrdered[T Number](seq []T, target T) (int, error) {
	return SearchBy(len(seq),
		func(i int) int {
			return cmp.Compare(seq[i], target)
		},
		func(low, high int) float64 {
			total := float64(seq[high]) - float64(seq[low])
			if total == 0 {
				return 0.5
			}
			return (float64(target) - float64(seq[low])) / total
		})
}

// lerpIndex projects a normalized factor onto the window, keeping the
// estimate strictly inside (low, high): the endpoints were already
// compared, and excluding them guarantees the window shrinks. Requires
// high-low >= 2 so an interior index exists.
func lerpIndex(low, high int, f float64) int {
	probe := low + int(f*float64(high-low))
	if probe <= low {
		return low + 1
	}
	if probe >= high {
		return high - 1
	}
	return probe
}

// normalize clamps an interpolation factor to [0.0, 1.0]. NaN and infinite
// factors map to 0.5 so that a misbehaving factor function degrades the
// iteration to a bisection instead of stalling the window.
func normalize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.5
	}
	if f < 0.0 {
		return 0.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}
