package figure

import "github.com/san-kum/mechviz/internal/mechanism"

const (
	LineWidth   = 3.0
	MarkerWidth = 2.0
	MarkerColor = "black"
	MarkerDash  = "dash"
	ZeroColor   = "LightGrey"
)

// Range is a closed axis interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Span() float64 { return r.Max - r.Min }

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Margin is the padding around a chart in display units.
type Margin struct {
	Left   int `json:"l"`
	Right  int `json:"r"`
	Top    int `json:"t"`
	Bottom int `json:"b"`
}

// Marker is a vertical guide line drawn across the whole plot area.
type Marker struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash"`
	Color string  `json:"color"`
}

// Spec is everything a renderer needs to draw one chart.
type Spec struct {
	Title      string           `json:"title"`
	Color      string           `json:"color"`
	LineWidth  float64          `json:"line_width"`
	Series     mechanism.Series `json:"series"`
	Marker     *Marker          `json:"marker,omitempty"`
	XRange     Range            `json:"x_range"`
	YRange     *Range           `json:"y_range,omitempty"`
	Height     int              `json:"height"`
	Margin     Margin           `json:"margin"`
	ShowLegend bool             `json:"show_legend"`
	FixedAxes  bool             `json:"fixed_axes"`
	ZeroLine   string           `json:"zero_line"`
}

// Layout carries the chart settings shared by every spec in a figure.
type Layout struct {
	Limit  float64
	XRange Range
	Height int
}

var DefaultLayout = Layout{
	Limit:  1.0,
	XRange: Range{Min: 0, Max: 6.5},
	Height: 250,
}

// BuildSpec packages a series and its styling. It never fails.
func BuildSpec(x, y []float64, title, color string, showMarker bool, yRange *Range, layout Layout) Spec {
	s := Spec{
		Title:     title,
		Color:     color,
		LineWidth: LineWidth,
		Series:    mechanism.Series{X: x, Y: y},
		XRange:    layout.XRange,
		Height:    layout.Height,
		Margin:    Margin{Left: 10, Right: 10, Top: 40, Bottom: 10},
		FixedAxes: true,
		ZeroLine:  ZeroColor,
	}
	if showMarker {
		s.Marker = &Marker{X: layout.Limit, Width: MarkerWidth, Dash: MarkerDash, Color: MarkerColor}
	}
	if yRange != nil {
		r := *yRange
		s.YRange = &r
	}
	return s
}

// YBounds returns the fixed y-range, or the data range when the spec is auto-scaled.
func (s Spec) YBounds() Range {
	if s.YRange != nil {
		return *s.YRange
	}
	lo, hi := s.Series.Bounds()
	if lo > hi {
		return Range{Min: 0, Max: 1}
	}
	if lo == hi {
		return Range{Min: lo - 0.5, Max: hi + 0.5}
	}
	return Range{Min: lo, Max: hi}
}
