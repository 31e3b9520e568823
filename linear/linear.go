// Package linear provides the distance capability for orderable element
// types, together with ready-made element types for common cases. Element
// types that are not locally owned (time.Time, string) are attached to the
// capability through small newtype wrappers.
package linear

import (
	"cmp"
	"time"

	"github.com/Johniel/gointerp/scalable"
)

// Value describes the element types interpolation search can operate on:
// totally ordered, and able to measure the distance to another value of the
// same type. The distance must be consistent with the order: for any
// a <= b <= c, a.DistanceTo(b) never exceeds a.DistanceTo(c).
type Value[T any, D scalable.Scalable[D]] interface {
	// Compare returns a negative value if the receiver orders before
	// other, zero if they are equal, and a positive value otherwise.
	Compare(other T) int
	// DistanceTo returns the magnitude of the gap between the receiver
	// and other. There is no precondition on which of the two is larger.
	DistanceTo(other T) D
}

// Int is an int64 element measuring distances as scalable.Magnitude.
type Int int64

func (v Int) Compare(other Int) int {
	return cmp.Compare(v, other)
}

// DistanceTo subtracts in uint64 space so that the gap between the extreme
// int64 values does not overflow.
func (v Int) DistanceTo(other Int) scalable.Magnitude {
	a, b := v, other
	if a > b {
		a, b = b, a
	}
	return scalable.Magnitude(uint64(b) - uint64(a))
}

// Uint is a uint64 element measuring distances as scalable.Magnitude.
type Uint uint64

func (v Uint) Compare(other Uint) int {
	return cmp.Compare(v, other)
}

func (v Uint) DistanceTo(other Uint) scalable.Magnitude {
	if v > other {
		return scalable.Magnitude(v - other)
	}
	return scalable.Magnitude(other - v)
}

// Float is a float64 element measuring distances as scalable.Extent.
type Float float64

func (v Float) Compare(other Float) int {
	return cmp.Compare(v, other)
}

func (v Float) DistanceTo(other Float) scalable.Extent {
	d := scalable.Extent(other - v)
	if d < 0 {
		d = -d
	}
	return d
}

// Time wraps time.Time so the distance capability can be attached to it.
// The distance between two time points is the absolute duration between
// them.
type Time time.Time

func (v Time) Compare(other Time) int {
	return time.Time(v).Compare(time.Time(other))
}

func (v Time) DistanceTo(other Time) scalable.Span {
	d := time.Time(other).Sub(time.Time(v))
	if d < 0 {
		d = -d
	}
	return scalable.Span(d)
}

// String is a string element measuring distances byte-wise: position i of
// the distance is the absolute difference of the byte at position i, with a
// missing byte counted as zero. The distance is as long as the longer of
// the two strings.
type String string

func (v String) Compare(other String) int {
	return cmp.Compare(v, other)
}

func (v String) DistanceTo(other String) scalable.Bytes {
	a, b := string(v), string(other)
	if len(b) > len(a) {
		a, b = b, a
	}
	d := make(scalable.Bytes, len(a))
	for i := 0; i < len(a); i++ {
		c := byte(0)
		if i < len(b) {
			c = b[i]
		}
		if a[i] >= c {
			d[i] = a[i] - c
		} else {
			d[i] = c - a[i]
		}
	}
	return d
}

var (
	_ Value[Int, scalable.Magnitude]  = Int(0)
	_ Value[Uint, scalable.Magnitude] = Uint(0)
	_ Value[Float, scalable.Extent]   = Float(0)
	_ Value[Time, scalable.Span]      = Time{}
	_ Value[String, scalable.Bytes]   = String("")
)
