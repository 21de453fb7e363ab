package mechanism

import (
	"fmt"
	"sort"
)

const (
	DefaultStart   = 0.1
	DefaultEnd     = 6.0
	DefaultSamples = 500
)

// Domain describes an evenly spaced sample of [Start, End] with both ends included.
type Domain struct {
	Start   float64
	End     float64
	Samples int
}

var DefaultDomain = Domain{Start: DefaultStart, End: DefaultEnd, Samples: DefaultSamples}

func (d Domain) Validate() error {
	if d.Samples < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDomain, d.Samples)
	}
	if !(d.End > d.Start) {
		return fmt.Errorf("%w: end %g must exceed start %g", ErrInvalidDomain, d.End, d.Start)
	}
	if d.Start <= -1 {
		return fmt.Errorf("%w: start %g leaves the positive mechanism undefined", ErrInvalidDomain, d.Start)
	}
	return nil
}

// Points regenerates the sample. The result is identical on every call.
func (d Domain) Points() []float64 {
	return Linspace(d.Start, d.End, d.Samples)
}

func (d Domain) Curve(fn Func) Series {
	xs := d.Points()
	return Series{X: xs, Y: Apply(fn, xs)}
}

func (d Domain) RevealedCurve(limit float64) Series {
	xs := Reveal(d.Points(), limit)
	return Series{X: xs, Y: Apply(Resultant, xs)}
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

// Reveal returns the leading points whose value is <= limit. points must be
// sorted ascending. The result shares storage with points and is never nil.
func Reveal(points []float64, limit float64) []float64 {
	n := sort.Search(len(points), func(i int) bool { return points[i] > limit })
	if n == 0 {
		return []float64{}
	}
	return points[:n:n]
}

func Apply(fn Func, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}
