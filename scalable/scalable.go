// Package scalable provides the fraction-of-distance capability used by
// interpolation search. A distance that can express itself as a fraction of
// a reference distance lets the search project the target's offset onto a
// normalized interpolation factor, independent of the concrete distance
// representation.
package scalable

import "time"

// Scalable is implemented by distance types that can express themselves as
// a fraction of a reference distance. FractionOf must return a value in
// [0.0, 1.0] whenever the receiver was measured between two points lying
// inside the span measured by ref.
type Scalable[D any] interface {
	// FractionOf answers "what fraction is this distance of ref?".
	// A zero ref carries no positional information, so implementations
	// return 0.5 in that case.
	FractionOf(ref D) float64
}

// Magnitude is the default distance for integer elements.
// It is wide enough to hold the gap between any two int64 or uint64 values.
type Magnitude uint64

func (m Magnitude) FractionOf(ref Magnitude) float64 {
	if ref == 0 {
		return 0.5
	}
	return float64(m) / float64(ref)
}

// Extent is the distance between floating-point elements.
type Extent float64

func (e Extent) FractionOf(ref Extent) float64 {
	if ref == 0 {
		return 0.5
	}
	return float64(e) / float64(ref)
}

// Span is the distance between two points in time.
type Span time.Duration

func (s Span) FractionOf(ref Span) float64 {
	if ref == 0 {
		return 0.5
	}
	return float64(s) / float64(ref)
}

// Bytes is a positional byte-wise distance between strings or byte
// sequences. In FractionOf the byte at position i carries weight 65535^-i,
// so earlier bytes dominate the fraction the way more significant digits
// dominate a number. Positions beyond the shorter of the two distances are
// ignored.
type Bytes []byte

func (b Bytes) FractionOf(ref Bytes) float64 {
	frac := 0.0
	weight := 1.0
	n := min(len(b), len(ref))
	for i := 0; i < n; i++ {
		frac += Magnitude(b[i]).FractionOf(Magnitude(ref[i])) * weight
		weight /= 65535.0
	}
	return frac
}

var (
	_ Scalable[Magnitude] = Magnitude(0)
	_ Scalable[Extent]    = Extent(0)
	_ Scalable[Span]      = Span(0)
	_ Scalable[Bytes]     = Bytes(nil)
)
