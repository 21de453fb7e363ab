package mechanism_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mechviz/internal/mechanism"
)

const tol = 1e-9

var _ = Describe("Mechanisms", func() {
	It("has a zero negative mechanism at the origin", func() {
		Expect(mechanism.Negative(0)).To(BeNumerically("~", 0.0, tol))
	})

	It("has a unit positive mechanism at one", func() {
		Expect(mechanism.Positive(1)).To(BeNumerically("~", 1.0, tol))
	})

	It("defines the resultant as the pointwise difference", func() {
		for _, x := range []float64{0.1, 1, 2.5, 6} {
			Expect(mechanism.Resultant(x)).To(BeNumerically("~", mechanism.Positive(x)-mechanism.Negative(x), tol))
		}
	})
})

var _ = Describe("Domain", func() {
	It("samples 500 points from 0.1 to 6.0", func() {
		xs := mechanism.DefaultDomain.Points()
		Expect(xs).To(HaveLen(500))
		Expect(xs[0]).To(Equal(0.1))
		Expect(xs[499]).To(Equal(6.0))
	})

	It("is evenly spaced and strictly increasing", func() {
		xs := mechanism.DefaultDomain.Points()
		step := (6.0 - 0.1) / 499
		for i := 1; i < len(xs); i++ {
			Expect(xs[i] - xs[i-1]).To(BeNumerically("~", step, tol))
		}
	})

	It("regenerates identically", func() {
		Expect(mechanism.DefaultDomain.Points()).To(Equal(mechanism.DefaultDomain.Points()))
	})

	DescribeTable("validation",
		func(d mechanism.Domain, ok bool) {
			err := d.Validate()
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(mechanism.ErrInvalidDomain))
			}
		},
		Entry("default", mechanism.DefaultDomain, true),
		Entry("single sample", mechanism.Domain{Start: 0.1, End: 6, Samples: 1}, false),
		Entry("reversed", mechanism.Domain{Start: 6, End: 0.1, Samples: 10}, false),
		Entry("below log pole", mechanism.Domain{Start: -1, End: 6, Samples: 10}, false),
	)
})

var _ = Describe("Curves", func() {
	It("keeps full curves at 500 points", func() {
		Expect(mechanism.FullCurve(mechanism.Positive).Len()).To(Equal(500))
		Expect(mechanism.FullCurve(mechanism.Negative).Len()).To(Equal(500))
	})

	It("reveals nothing at limit 0", func() {
		c := mechanism.RevealedCurve(0)
		Expect(c.Empty()).To(BeTrue())
		Expect(c.X).NotTo(BeNil())
		Expect(c.Y).To(BeEmpty())
	})

	It("reveals the whole domain at limit 6", func() {
		c := mechanism.RevealedCurve(6)
		Expect(c.Len()).To(Equal(500))
		Expect(c.Y).To(HaveLen(500))
	})

	It("only includes points at or below the limit", func() {
		c := mechanism.RevealedCurve(2)
		Expect(c.Len()).To(BeNumerically(">", 0))
		for _, x := range c.X {
			Expect(x).To(BeNumerically("<=", 2.0))
		}
		next := mechanism.DefaultDomain.Points()[c.Len()]
		Expect(next).To(BeNumerically(">", 2.0))
	})

	It("matches the pointwise difference at every revealed x", func() {
		c := mechanism.RevealedCurve(6)
		for i, x := range c.X {
			Expect(c.Y[i]).To(BeNumerically("~", mechanism.Positive(x)-mechanism.Negative(x), tol))
		}
	})

	It("never shrinks as the limit grows", func() {
		prev := -1
		for limit := 0.0; limit <= 6.0; limit += 0.25 {
			n := mechanism.RevealedCurve(limit).Len()
			Expect(n).To(BeNumerically(">=", prev))
			prev = n
		}
	})
})

var _ = Describe("Series", func() {
	s := mechanism.Series{X: []float64{0, 1, 2}, Y: []float64{0, 10, 0}}

	It("interpolates inside the sampled range", func() {
		v, ok := s.At(0.5)
		Expect(ok).To(BeTrue())
		Expect(v).To(BeNumerically("~", 5.0, tol))
	})

	It("reports points outside the range", func() {
		v, ok := s.At(2.5)
		Expect(ok).To(BeFalse())
		Expect(math.IsNaN(v)).To(BeTrue())
	})

	It("ignores NaN in bounds", func() {
		lo, hi := mechanism.Series{X: []float64{0, 1, 2}, Y: []float64{math.NaN(), -1, 3}}.Bounds()
		Expect(lo).To(Equal(-1.0))
		Expect(hi).To(Equal(3.0))
	})
})
