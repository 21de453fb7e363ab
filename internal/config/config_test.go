package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Slider.Default != 1.0 {
		t.Errorf("expected default limit 1.0, got %f", cfg.Slider.Default)
	}
	if cfg.Slider.Step != 1.0 {
		t.Errorf("expected step 1.0, got %f", cfg.Slider.Step)
	}
	if cfg.Domain.Samples != 500 {
		t.Errorf("expected 500 samples, got %d", cfg.Domain.Samples)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mechviz.yaml")
	cfg := DefaultConfig()
	cfg.Slider.Default = 4
	cfg.Terminal.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Slider.Default != 4 {
		t.Errorf("expected default 4, got %f", loaded.Slider.Default)
	}
	if loaded.Terminal.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", loaded.Terminal.Theme)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("slider:\n  default: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Slider.Default != 2 {
		t.Errorf("expected default 2, got %f", cfg.Slider.Default)
	}
	if cfg.Slider.Max != DefaultSliderMax {
		t.Errorf("expected max %f, got %f", DefaultSliderMax, cfg.Slider.Max)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default above max", func(c *Config) { c.Slider.Default = 7 }},
		{"zero step", func(c *Config) { c.Slider.Step = 0 }},
		{"inverted slider", func(c *Config) { c.Slider.Max = -1 }},
		{"one sample", func(c *Config) { c.Domain.Samples = 1 }},
		{"domain below pole", func(c *Config) { c.Domain.Start = -2 }},
		{"inverted y range", func(c *Config) { c.Chart.YMax = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown theme", func(c *Config) { c.Terminal.Theme = "bogus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSliderClamp(t *testing.T) {
	s := DefaultConfig().Slider
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{3.5, 3.5},
		{6, 6},
		{9, 6},
	}
	for _, tt := range tests {
		if got := s.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetPreset(t *testing.T) {
	limit, ok := GetPreset("midway")
	if !ok {
		t.Fatal("expected preset midway")
	}
	if limit != 3.0 {
		t.Errorf("expected 3.0, got %f", limit)
	}
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for nonexistent")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "default" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}
