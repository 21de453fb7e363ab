package viz

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mechviz/internal/config"
	"github.com/san-kum/mechviz/internal/figure"
	"github.com/san-kum/mechviz/internal/logging"
)

// Slider is the interactive view: one reveal limit control above the three
// stacked charts. Every change recomposes the figure from scratch.
type Slider struct {
	cfg    *config.Config
	logger *slog.Logger
	theme  Theme

	limit float64
	fig   figure.Figure
	err   error

	width, height int
}

func NewSlider(cfg *config.Config, logger *slog.Logger) Slider {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	m := Slider{
		cfg:    cfg,
		logger: logger,
		theme:  GetTheme(cfg.Terminal.Theme),
		width:  80,
		height: 24,
	}
	m.setLimit(cfg.Slider.Default)
	return m
}

func (m Slider) Limit() float64 { return m.limit }

func (m Slider) Figure() figure.Figure { return m.fig }

func (m Slider) Theme() Theme { return m.theme }

func (m Slider) Err() error { return m.err }

func (m Slider) Init() tea.Cmd { return nil }

func (m Slider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	return m, nil
}

func (m Slider) handleKey(msg tea.KeyMsg) (Slider, tea.Cmd) {
	s := m.cfg.Slider
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h", "-":
		m.setLimit(m.limit - s.Step)
	case "right", "l", "+", "=":
		m.setLimit(m.limit + s.Step)
	case "home", "g":
		m.setLimit(s.Min)
	case "end", "G":
		m.setLimit(s.Max)
	case "t":
		m.theme = NextTheme(m.theme)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			v, _ := strconv.ParseFloat(key, 64)
			if s.Contains(v) {
				m.setLimit(v)
			}
		}
	}
	return m, nil
}

// setLimit snaps v onto the slider's step grid, clamps it and recomposes.
func (m *Slider) setLimit(v float64) {
	s := m.cfg.Slider
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	m.limit = s.Clamp(v)
	m.fig, m.err = figure.Compose(m.limit, m.cfg)
	if m.err != nil {
		m.logger.Error("compose failed", "limit", m.limit, "error", m.err)
		return
	}
	m.logger.Debug("figure composed", "limit", m.limit, "revealed", m.fig.Resultant.Series.Len())
}

func (m Slider) plotWidth() int {
	w := m.cfg.Terminal.PlotWidth
	if avail := m.width - 12; avail >= 8 && avail < w {
		w = avail
	}
	return w
}

func (m Slider) View() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true)
	text := lipgloss.NewStyle().Foreground(m.theme.Text)

	b.WriteString("\n  " + title.Render(strings.ToUpper(m.cfg.Title)) + "\n")
	b.WriteString("  " + Separator(m.plotWidth()+8, m.theme) + "\n\n")
	b.WriteString("  " + text.Render("Move Slider  ") + text.Bold(true).Render(strconv.FormatFloat(m.limit, 'f', 1, 64)) + "\n")
	b.WriteString("  " + SliderBar(m.limit, m.cfg.Slider.Min, m.cfg.Slider.Max, m.plotWidth(), m.theme) + "\n\n")

	if m.err != nil {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.err.Error()) + "\n")
	} else {
		chart := RenderFigure(m.fig, ChartOptions{
			Height: m.cfg.Terminal.PlotHeight,
			Width:  m.plotWidth(),
			Theme:  m.theme,
		})
		for _, l := range strings.Split(chart, "\n") {
			b.WriteString("  " + l + "\n")
		}
	}

	b.WriteString("\n  " + KeyHints(m.theme, "h/l", "move", "0-9", "jump", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

// RunSlider runs the interactive view on the alternate screen until quit.
func RunSlider(cfg *config.Config, logger *slog.Logger) error {
	_, err := tea.NewProgram(NewSlider(cfg, logger), tea.WithAltScreen()).Run()
	return err
}
