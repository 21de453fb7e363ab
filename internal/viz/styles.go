package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	markerRune = '┆'
	trackRune  = "─"
	filledRune = "━"
	knobRune   = "●"
)

func style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// SliderBar draws a horizontal slider with the knob at value.
func SliderBar(value, min, max float64, width int, theme Theme) string {
	if width < 3 {
		width = 3
	}
	pos := 0
	if max > min {
		pos = int(math.Round((value - min) / (max - min) * float64(width-1)))
	}
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}

	bar := style(theme.Primary).Render(strings.Repeat(filledRune, pos)) +
		style(theme.Accent).Bold(true).Render(knobRune) +
		style(theme.Muted).Render(strings.Repeat(trackRune, width-1-pos))

	lo := style(theme.Muted).Render(fmt.Sprintf("%.1f", min))
	hi := style(theme.Muted).Render(fmt.Sprintf("%.1f", max))
	return lo + " " + bar + " " + hi
}

// KeyHints renders "key label" pairs separated by two spaces.
func KeyHints(theme Theme, pairs ...string) string {
	key := style(theme.Secondary).Bold(true)
	label := style(theme.Muted)
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(key.Render(pairs[i]))
		b.WriteString(label.Render(" " + pairs[i+1]))
	}
	return b.String()
}

// Separator is a thin rule with a centre mark.
func Separator(width int, theme Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return style(theme.Muted).Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
