package mechanism

import "math"

// Series is a sampled curve. X and Y always have equal length.
type Series struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (s Series) Len() int { return len(s.X) }

func (s Series) Empty() bool { return len(s.X) == 0 }

// At linearly interpolates the curve at x. The second result is false when x
// lies outside the sampled range.
func (s Series) At(x float64) (float64, bool) {
	n := len(s.X)
	if n == 0 || x < s.X[0] || x > s.X[n-1] {
		return math.NaN(), false
	}
	if n == 1 {
		return s.Y[0], true
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.X[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	x0, x1 := s.X[lo], s.X[hi]
	if x1 == x0 {
		return s.Y[lo], true
	}
	t := (x - x0) / (x1 - x0)
	return s.Y[lo] + t*(s.Y[hi]-s.Y[lo]), true
}

// Bounds returns the min and max of Y, ignoring NaN.
func (s Series) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Y {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
