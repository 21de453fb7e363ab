package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mechviz/internal/figure"
)

const (
	DefaultPlotHeight = 8
	DefaultPlotWidth  = 64
)

type ChartOptions struct {
	Height int
	Width  int
	Theme  Theme
}

func (o ChartOptions) normalized() ChartOptions {
	if o.Height < 2 {
		o.Height = DefaultPlotHeight
	}
	if o.Width < 8 {
		o.Width = DefaultPlotWidth
	}
	if o.Theme.Name == "" {
		o.Theme = ThemeCyberpunk
	}
	return o
}

// Resample evaluates the spec's series on width columns spanning its x-range.
// Columns with no data, or whose value falls outside the y-range, are NaN.
func Resample(s figure.Spec, width int) []float64 {
	out := make([]float64, width)
	yr := s.YBounds()
	for i := range out {
		x := columnX(s.XRange, i, width)
		v, ok := s.Series.At(x)
		if !ok || !yr.Contains(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out
}

// MarkerColumn maps the spec's marker onto a column, or -1 when it has none
// or it falls outside the x-range.
func MarkerColumn(s figure.Spec, width int) int {
	if s.Marker == nil || !s.XRange.Contains(s.Marker.X) || width < 2 {
		return -1
	}
	return int(math.Round((s.Marker.X - s.XRange.Min) / s.XRange.Span() * float64(width-1)))
}

func columnX(r figure.Range, i, width int) float64 {
	if width < 2 {
		return r.Min
	}
	return r.Min + float64(i)*r.Span()/float64(width-1)
}

// RenderSpec draws one chart: a colored title over an asciigraph plot.
func RenderSpec(s figure.Spec, opts ChartOptions) string {
	opts = opts.normalized()
	samples := Resample(s, opts.Width)
	yr := s.YBounds()

	var plot string
	if allNaN(samples) {
		plot = blankPlot(yr, opts.Height, opts.Width)
	} else {
		plot = asciigraph.Plot(samples,
			asciigraph.Height(opts.Height),
			asciigraph.LowerBound(yr.Min),
			asciigraph.UpperBound(yr.Max),
			asciigraph.Precision(1),
		)
	}

	lines := strings.Split(plot, "\n")
	col := MarkerColumn(s, opts.Width)
	line := style(lipgloss.Color(s.Color))
	axis := style(opts.Theme.Muted)
	mark := style(opts.Theme.Accent)

	var b strings.Builder
	b.WriteString(line.Bold(true).Render(s.Title))
	for _, l := range lines {
		b.WriteString("\n")
		prefix, data, ok := splitAxis(l)
		if !ok {
			b.WriteString(axis.Render(l))
			continue
		}
		if col >= 0 {
			data = overlayMarker(data, col)
		}
		b.WriteString(axis.Render(prefix))
		b.WriteString(colorData(data, line, mark))
	}
	return b.String()
}

// RenderFigure stacks the three charts vertically.
func RenderFigure(fig figure.Figure, opts ChartOptions) string {
	charts := make([]string, 0, 3)
	for _, s := range fig.Specs() {
		charts = append(charts, RenderSpec(s, opts))
	}
	return strings.Join(charts, "\n\n")
}

func allNaN(vs []float64) bool {
	for _, v := range vs {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// blankPlot mimics asciigraph's frame for a series with nothing to draw.
func blankPlot(yr figure.Range, height, width int) string {
	labels := make([]string, height+1)
	maxw := 0
	for i := range labels {
		v := yr.Max - float64(i)*yr.Span()/float64(height)
		labels[i] = fmt.Sprintf("%.1f", v)
		maxw = max(maxw, len(labels[i]))
	}
	rows := make([]string, height+1)
	for i, l := range labels {
		rows[i] = fmt.Sprintf(" %*s ┤%s", maxw, l, strings.Repeat(" ", width))
	}
	return strings.Join(rows, "\n")
}

// splitAxis cuts a plot row after its y-axis glyph.
func splitAxis(line string) (prefix string, data []rune, ok bool) {
	runes := []rune(line)
	for i, r := range runes {
		if r == '┤' || r == '┼' {
			return string(runes[:i+1]), runes[i+1:], true
		}
	}
	return line, nil, false
}

func overlayMarker(data []rune, col int) []rune {
	for len(data) <= col {
		data = append(data, ' ')
	}
	if data[col] == ' ' {
		data[col] = markerRune
	}
	return data
}

func colorData(data []rune, line, mark lipgloss.Style) string {
	var b strings.Builder
	start := 0
	flush := func(end int) {
		if end > start {
			b.WriteString(line.Render(string(data[start:end])))
		}
	}
	for i, r := range data {
		if r == markerRune {
			flush(i)
			b.WriteString(mark.Render(string(r)))
			start = i + 1
		}
	}
	flush(len(data))
	return b.String()
}
