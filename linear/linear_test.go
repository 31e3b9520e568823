package linear

import (
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Johniel/gointerp/scalable"
)

func TestIntDistanceTo(t *testing.T) {
	assert.Equal(t, scalable.Magnitude(7), Int(3).DistanceTo(10))
	assert.Equal(t, scalable.Magnitude(7), Int(10).DistanceTo(3))
	assert.Equal(t, scalable.Magnitude(0), Int(-4).DistanceTo(-4))
	assert.Equal(t, scalable.Magnitude(15), Int(-10).DistanceTo(5))

	// The full int64 range fits in a Magnitude without overflow.
	assert.Equal(t,
		scalable.Magnitude(math.MaxUint64),
		Int(math.MinInt64).DistanceTo(Int(math.MaxInt64)))
}

func TestUintDistanceTo(t *testing.T) {
	assert.Equal(t, scalable.Magnitude(7), Uint(3).DistanceTo(10))
	assert.Equal(t, scalable.Magnitude(7), Uint(10).DistanceTo(3))
	assert.Equal(t,
		scalable.Magnitude(math.MaxUint64),
		Uint(0).DistanceTo(Uint(math.MaxUint64)))
}

func TestFloatDistanceTo(t *testing.T) {
	assert.Equal(t, scalable.Extent(2.5), Float(1.0).DistanceTo(3.5))
	assert.Equal(t, scalable.Extent(2.5), Float(3.5).DistanceTo(1.0))
	assert.Equal(t, scalable.Extent(0), Float(-1.5).DistanceTo(-1.5))
}

func TestTimeDistanceTo(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(90 * time.Second)

	assert.Equal(t, scalable.Span(90*time.Second), Time(t0).DistanceTo(Time(t1)))
	assert.Equal(t, scalable.Span(90*time.Second), Time(t1).DistanceTo(Time(t0)))
	assert.Equal(t, scalable.Span(0), Time(t0).DistanceTo(Time(t0)))
}

func TestStringDistanceTo(t *testing.T) {
	assert.Equal(t, scalable.Bytes{0, 0, 1}, String("abc").DistanceTo("abd"))
	assert.Equal(t, scalable.Bytes{0, 0, 1}, String("abd").DistanceTo("abc"))

	// A missing byte counts as zero.
	assert.Equal(t, scalable.Bytes{0, 0, 'c'}, String("ab").DistanceTo("abc"))
	assert.Equal(t, scalable.Bytes{0, 0, 'c'}, String("abc").DistanceTo("ab"))

	assert.Equal(t, scalable.Bytes{}, String("").DistanceTo(""))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Int(-3).Compare(4))
	assert.Positive(t, Int(4).Compare(-3))
	assert.Zero(t, Int(4).Compare(4))

	assert.Negative(t, String("apple").Compare("banana"))
	assert.Positive(t, String("pear").Compare("peach"))
	assert.Zero(t, String("fig").Compare("fig"))

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Negative(t, Time(t0).Compare(Time(t0.Add(time.Second))))
	assert.Zero(t, Time(t0).Compare(Time(t0)))
}

// Distances must be consistent with the order: for sorted a <= b <= c the
// distance from a to b never exceeds the distance from a to c, and the
// derived fraction stays within [0.0, 1.0].
func TestIntDistanceMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		vals := []Int{Int(rng.Int63n(2000) - 1000), Int(rng.Int63n(2000) - 1000), Int(rng.Int63n(2000) - 1000)}
		a, b, c := sortedTriple(vals)

		near := a.DistanceTo(b)
		far := a.DistanceTo(c)
		assert.LessOrEqual(t, near, far)

		f := near.FractionOf(far)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestTimeDistanceMonotonic(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		vals := []Time{
			Time(t0.Add(time.Duration(rng.Int63n(int64(time.Hour))))),
			Time(t0.Add(time.Duration(rng.Int63n(int64(time.Hour))))),
			Time(t0.Add(time.Duration(rng.Int63n(int64(time.Hour))))),
		}
		a, b, c := sortedTriple(vals)

		near := a.DistanceTo(b)
		far := a.DistanceTo(c)
		assert.LessOrEqual(t, near, far)

		f := near.FractionOf(far)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

// String fractions are an estimate: bytes after the first differing one can
// push the fraction a hair past 1.0, which the search clamps away.
func TestStringDistanceFraction(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	letters := []byte("abcdefgh")
	for i := 0; i < 1000; i++ {
		vals := make([]String, 3)
		for j := range vals {
			word := make([]byte, 1+rng.Intn(5))
			for k := range word {
				word[k] = letters[rng.Intn(len(letters))]
			}
			vals[j] = String(word)
		}
		a, b, c := sortedTriple(vals)

		f := a.DistanceTo(b).FractionOf(a.DistanceTo(c))
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.01)
	}
}

func sortedTriple[T interface{ Compare(T) int }](vals []T) (a, b, c T) {
	slices.SortFunc(vals, func(x, y T) int { return x.Compare(y) })
	return vals[0], vals[1], vals[2]
}
