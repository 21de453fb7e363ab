package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/mechviz/internal/figure"
)

// SVG draws the three panels stacked vertically.
func SVG(w io.Writer, fig figure.Figure, opts Options) error {
	_, err := io.WriteString(w, RenderSVG(fig, opts))
	return err
}

func RenderSVG(fig figure.Figure, opts Options) string {
	panels, width, height := layoutPanels(fig, opts)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for _, p := range panels {
		writePanel(&sb, p)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePanel(sb *strings.Builder, p panel) {
	s := p.spec
	sb.WriteString(fmt.Sprintf(`<g class="chart">
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="14" fill="#333333">%s</text>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#dddddd"/>
`, p.left, p.top+18, html.EscapeString(s.Title), p.left, p.plotTop, p.right-p.left, p.bottom-p.plotTop))

	if p.yr.Contains(0) {
		y := p.py(0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>
`, p.left, y, p.right, y, svgColor(s.ZeroLine)))
	}

	for _, seg := range p.segments() {
		if len(seg) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, s.Color, s.LineWidth))
		for i, pt := range seg {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt[0], pt[1]))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", pt[0], pt[1]))
			}
		}
		sb.WriteString(`"/>
`)
	}

	if m := s.Marker; m != nil && s.XRange.Contains(m.X) {
		x := p.px(m.X)
		sb.WriteString(fmt.Sprintf(`<line class="marker" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="6,4"/>
`, x, p.plotTop, x, p.bottom, m.Color, m.Width))
	}

	sb.WriteString("</g>\n")
}

func svgColor(name string) string {
	if strings.EqualFold(name, figure.ZeroColor) {
		return "#d3d3d3"
	}
	return name
}
