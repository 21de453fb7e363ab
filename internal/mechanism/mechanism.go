package mechanism

import "math"

// Func is a closed-form mechanism evaluated pointwise over the domain.
type Func func(x float64) float64

// Positive is the supply chain responsiveness curve. Defined for x > -1.
func Positive(x float64) float64 {
	return 3.5*math.Log((x+1)*0.5) + 1
}

// Negative is the operations complexity curve.
func Negative(x float64) float64 {
	return 0.1*math.Exp(x*0.7) - 0.1
}

// Resultant is what is left of the positive mechanism after the negative one.
func Resultant(x float64) float64 {
	return Positive(x) - Negative(x)
}

// FullCurve evaluates fn over the default domain sample.
func FullCurve(fn Func) Series {
	return DefaultDomain.Curve(fn)
}

// RevealedCurve evaluates the resultant over the default domain sample, up to limit.
func RevealedCurve(limit float64) Series {
	return DefaultDomain.RevealedCurve(limit)
}
