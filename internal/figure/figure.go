package figure

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/mechviz/internal/config"
	"github.com/san-kum/mechviz/internal/mechanism"
)

const (
	PositiveTitle  = "Supply Chain Responsiveness (Positive Mechanism)"
	NegativeTitle  = "Operations Complexity (Negative Mechanism)"
	ResultantTitle = "Globalization Performance (Foreign Profits)"

	PositiveColor  = "#2E7D32"
	NegativeColor  = "#C62828"
	ResultantColor = "#1565C0"
)

var ErrLimitOutOfRange = errors.New("figure: reveal limit out of range")

// Figure is the three stacked charts for one reveal limit, top to bottom.
type Figure struct {
	Title     string  `json:"title"`
	Limit     float64 `json:"limit"`
	Positive  Spec    `json:"positive"`
	Negative  Spec    `json:"negative"`
	Resultant Spec    `json:"resultant"`
}

// Specs returns the charts in display order.
func (f Figure) Specs() []Spec {
	return []Spec{f.Positive, f.Negative, f.Resultant}
}

// Compose runs the whole pipeline for one reveal limit. Both mechanisms are
// drawn over the full domain; only the resultant is truncated at the limit.
func Compose(limit float64, cfg *config.Config) (Figure, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if math.IsNaN(limit) || !cfg.Slider.Contains(limit) {
		return Figure{}, fmt.Errorf("%w: %g not in [%g, %g]", ErrLimitOutOfRange, limit, cfg.Slider.Min, cfg.Slider.Max)
	}
	domain := cfg.MechanismDomain()
	if err := domain.Validate(); err != nil {
		return Figure{}, err
	}

	layout := Layout{
		Limit:  limit,
		XRange: Range{Min: cfg.Chart.XMin, Max: cfg.Chart.XMax},
		Height: cfg.Chart.Height,
	}
	yRange := &Range{Min: cfg.Chart.YMin, Max: cfg.Chart.YMax}

	pos := domain.Curve(mechanism.Positive)
	neg := domain.Curve(mechanism.Negative)
	res := domain.RevealedCurve(limit)

	return Figure{
		Title:     cfg.Title,
		Limit:     limit,
		Positive:  BuildSpec(pos.X, pos.Y, PositiveTitle, PositiveColor, true, yRange, layout),
		Negative:  BuildSpec(neg.X, neg.Y, NegativeTitle, NegativeColor, true, yRange, layout),
		Resultant: BuildSpec(res.X, res.Y, ResultantTitle, ResultantColor, false, yRange, layout),
	}, nil
}
