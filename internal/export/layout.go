package export

import (
	"math"

	"github.com/san-kum/mechviz/internal/figure"
)

const titleBand = 24.0

// panel maps one spec's data coordinates to pixels inside its slot of the
// stacked image.
type panel struct {
	spec          figure.Spec
	top           float64
	width, height float64
	left, right   float64
	plotTop       float64
	bottom        float64
	yr            figure.Range
}

func layoutPanels(fig figure.Figure, opts Options) ([]panel, int, int) {
	opts = opts.normalized()
	var panels []panel
	top := 0.0
	for _, s := range fig.Specs() {
		h := float64(s.Height) * opts.Scale
		p := panel{
			spec:    s,
			top:     top,
			width:   float64(opts.Width),
			height:  h,
			left:    float64(s.Margin.Left) * opts.Scale,
			right:   float64(opts.Width) - float64(s.Margin.Right)*opts.Scale,
			plotTop: top + math.Max(float64(s.Margin.Top)*opts.Scale, titleBand),
			bottom:  top + h - float64(s.Margin.Bottom)*opts.Scale,
			yr:      s.YBounds(),
		}
		panels = append(panels, p)
		top += h
	}
	return panels, opts.Width, int(math.Ceil(top))
}

func (p panel) px(x float64) float64 {
	xr := p.spec.XRange
	return p.left + (x-xr.Min)/xr.Span()*(p.right-p.left)
}

func (p panel) py(y float64) float64 {
	return p.bottom - (y-p.yr.Min)/p.yr.Span()*(p.bottom-p.plotTop)
}

// segments splits the series into runs that stay inside the y-range, so
// clipped samples break the line instead of being drawn at the frame edge.
func (p panel) segments() [][][2]float64 {
	var out [][][2]float64
	var cur [][2]float64
	s := p.spec.Series
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(y) || !p.yr.Contains(y) || !p.spec.XRange.Contains(x) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, [2]float64{p.px(x), p.py(y)})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
