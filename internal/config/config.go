package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/mechviz/internal/mechanism"
)

const (
	DefaultTitle      = "Mechanism Interaction"
	DefaultLogLevel   = "info"
	DefaultSliderMin  = 0.0
	DefaultSliderMax  = 6.0
	DefaultStep       = 1.0
	DefaultLimit      = 1.0
	DefaultHeight     = 250
	DefaultXMin       = 0.0
	DefaultXMax       = 6.5
	DefaultYMin       = 0.0
	DefaultYMax       = 6.0
	DefaultPlotHeight = 8
	DefaultPlotWidth  = 64
	DefaultTheme      = "cyberpunk"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Title    string         `yaml:"title" validate:"required"`
	LogLevel string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Slider   SliderConfig   `yaml:"slider"`
	Domain   DomainConfig   `yaml:"domain"`
	Chart    ChartConfig    `yaml:"chart"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type SliderConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max" validate:"gtfield=Min"`
	Step    float64 `yaml:"step" validate:"gt=0"`
	Default float64 `yaml:"default" validate:"gtefield=Min,ltefield=Max"`
}

type DomainConfig struct {
	Start   float64 `yaml:"start" validate:"gt=-1"`
	End     float64 `yaml:"end" validate:"gtfield=Start"`
	Samples int     `yaml:"samples" validate:"gte=2"`
}

type ChartConfig struct {
	Height int     `yaml:"height" validate:"gt=0"`
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max" validate:"gtfield=XMin"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max" validate:"gtfield=YMin"`
}

type TerminalConfig struct {
	PlotHeight int    `yaml:"plot_height" validate:"gte=2"`
	PlotWidth  int    `yaml:"plot_width" validate:"gte=8"`
	Theme      string `yaml:"theme" validate:"omitempty,oneof=cyberpunk retro minimal ocean sunset"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:    DefaultTitle,
		LogLevel: DefaultLogLevel,
		Slider: SliderConfig{
			Min:     DefaultSliderMin,
			Max:     DefaultSliderMax,
			Step:    DefaultStep,
			Default: DefaultLimit,
		},
		Domain: DomainConfig{
			Start:   mechanism.DefaultStart,
			End:     mechanism.DefaultEnd,
			Samples: mechanism.DefaultSamples,
		},
		Chart: ChartConfig{
			Height: DefaultHeight,
			XMin:   DefaultXMin,
			XMax:   DefaultXMax,
			YMin:   DefaultYMin,
			YMax:   DefaultYMax,
		},
		Terminal: TerminalConfig{
			PlotHeight: DefaultPlotHeight,
			PlotWidth:  DefaultPlotWidth,
			Theme:      DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) MechanismDomain() mechanism.Domain {
	return mechanism.Domain{Start: c.Domain.Start, End: c.Domain.End, Samples: c.Domain.Samples}
}

// Clamp pulls limit into the slider bounds.
func (s SliderConfig) Clamp(limit float64) float64 {
	if limit < s.Min {
		return s.Min
	}
	if limit > s.Max {
		return s.Max
	}
	return limit
}

func (s SliderConfig) Contains(limit float64) bool {
	return limit >= s.Min && limit <= s.Max
}
