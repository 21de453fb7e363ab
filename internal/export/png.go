package export

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/mechviz/internal/figure"
)

const titleSize = 14.0

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func titleFace() (text.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return fontSource.Face(titleSize), nil
}

// PNG rasterizes the stacked panels with the software renderer and saves them to path.
// Nothing is written when drawing fails.
func PNG(path string, fig figure.Figure, opts Options) error {
	dc, err := RasterizePNG(fig, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(path)
}

// RasterizePNG draws the figure into a new context. Callers own the context.
func RasterizePNG(fig figure.Figure, opts Options) (*gg.Context, error) {
	face, err := titleFace()
	if err != nil {
		return nil, fmt.Errorf("export: load title font: %w", err)
	}

	panels, width, height := layoutPanels(fig, opts)
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	dc.SetFont(face)

	for i, p := range panels {
		if err := drawPanel(dc, p); err != nil {
			dc.Close()
			return nil, fmt.Errorf("export: draw panel %d (%s): %w", i, p.spec.Title, err)
		}
	}
	return dc, nil
}

func drawPanel(dc *gg.Context, p panel) error {
	s := p.spec

	dc.SetHexColor("#333333")
	dc.DrawString(s.Title, p.left, p.top+18)

	dc.ClearDash()
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1)
	dc.DrawRectangle(p.left, p.plotTop, p.right-p.left, p.bottom-p.plotTop)
	if err := dc.Stroke(); err != nil {
		return err
	}

	if p.yr.Contains(0) {
		dc.SetHexColor(svgColor(s.ZeroLine))
		dc.DrawLine(p.left, p.py(0), p.right, p.py(0))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.SetHexColor(s.Color)
	dc.SetLineWidth(s.LineWidth)
	for _, seg := range p.segments() {
		if len(seg) < 2 {
			continue
		}
		dc.MoveTo(seg[0][0], seg[0][1])
		for _, pt := range seg[1:] {
			dc.LineTo(pt[0], pt[1])
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if m := s.Marker; m != nil && s.XRange.Contains(m.X) {
		x := p.px(m.X)
		dc.SetHexColor(markerHex(m.Color))
		dc.SetLineWidth(m.Width)
		dc.SetDash(6, 4)
		dc.DrawLine(x, p.plotTop, x, p.bottom)
		err := dc.Stroke()
		dc.ClearDash()
		if err != nil {
			return err
		}
	}
	return nil
}

func markerHex(name string) string {
	if name == figure.MarkerColor {
		return "#000000"
	}
	return name
}
