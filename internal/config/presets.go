package config

import "sort"

// Presets are named reveal positions along the slider.
var Presets = map[string]float64{
	"origin":  0.0,
	"default": DefaultLimit,
	"midway":  3.0,
	"full":    DefaultSliderMax,
}

func GetPreset(name string) (float64, bool) {
	limit, ok := Presets[name]
	return limit, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
