// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/zoomline/pkg/preview"
	"github.com/user/zoomline/pkg/timeline"
)

// Config represents the full configuration for zoomline.
type Config struct {
	// Output
	OutputPath string `yaml:"output"`

	// Canvas
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`

	// Text
	FontPath string `yaml:"font_path"`

	// Theme
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig represents theming options as hex color strings.
type ThemeConfig struct {
	BackgroundColor   string `yaml:"background_color"`
	AxisColor         string `yaml:"axis_color"`
	GridColor         string `yaml:"grid_color"`
	TickColor         string `yaml:"tick_color"`
	LabelColor        string `yaml:"label_color"`
	RegionFillColor   string `yaml:"region_fill_color"`
	RegionBorderColor string `yaml:"region_border_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		CanvasWidth:  960,
		CanvasHeight: 160,

		Theme: ThemeConfig{
			BackgroundColor:   "#1e1e1e",
			AxisColor:         "#c8c8c8",
			GridColor:         "#3c3c3c",
			TickColor:         "#8c8c8c",
			LabelColor:        "#dcdcdc",
			RegionFillColor:   "#4c82af",
			RegionBorderColor: "#78b4e6",
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToTheme converts the hex theme to a preview.Theme, falling back to
// the default theme color for any missing entry.
func (c Config) ToTheme() preview.Theme {
	base := preview.DefaultTheme()
	return preview.Theme{
		BackgroundColor: colorOr(c.Theme.BackgroundColor, base.BackgroundColor),
		AxisColor:       colorOr(c.Theme.AxisColor, base.AxisColor),
		GridColor:       colorOr(c.Theme.GridColor, base.GridColor),
		TickColor:       colorOr(c.Theme.TickColor, base.TickColor),
		LabelColor:      colorOr(c.Theme.LabelColor, base.LabelColor),
		RegionFill:      colorOr(c.Theme.RegionFillColor, base.RegionFill),
		RegionBorder:    colorOr(c.Theme.RegionBorderColor, base.RegionBorder),
	}
}

func colorOr(hex string, fallback color.Color) color.Color {
	if hex == "" {
		return fallback
	}
	return ParseColor(hex)
}

// RegionSpec is one region entry in a regions file.
type RegionSpec struct {
	StartMs int64 `yaml:"start_ms"`
	EndMs   int64 `yaml:"end_ms"`
}

// RegionsFile is the on-disk format for a region set.
type RegionsFile struct {
	Regions []RegionSpec `yaml:"regions"`
}

// LoadRegions loads a region set from a YAML file.
func LoadRegions(path string) ([]timeline.TimeSpan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions file: %w", err)
	}

	var file RegionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse regions file: %w", err)
	}

	spans := make([]timeline.TimeSpan, 0, len(file.Regions))
	for _, r := range file.Regions {
		spans = append(spans, timeline.TimeSpan{StartMs: r.StartMs, EndMs: r.EndMs})
	}
	return spans, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
