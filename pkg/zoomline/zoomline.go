// Package zoomline provides a high-level API for the timeline scale
// and region layout engine.
package zoomline

import (
	"github.com/user/zoomline/pkg/engine"
	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/preview"
	"github.com/user/zoomline/pkg/stages/markers"
	"github.com/user/zoomline/pkg/stages/scale"
)

// Config represents the configuration for zoomline previews.
type Config struct {
	// Canvas size
	Width  int // Output image width (default: 960)
	Height int // Output image height (default: 160)

	// Style
	Theme    preview.Theme // Preview colors
	FontPath string        // TTF font for axis labels ("" = built-in face)
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Width:  960,
			Height: 160,
			Theme:  preview.DefaultTheme(),
		},
	}
}

// WithWidth sets the output image width.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.config.Width = width
	return b
}

// WithHeight sets the output image height.
func (b *ConfigBuilder) WithHeight(height int) *ConfigBuilder {
	b.config.Height = height
	return b
}

// WithTheme sets the preview theme.
func (b *ConfigBuilder) WithTheme(theme preview.Theme) *ConfigBuilder {
	b.config.Theme = theme
	return b
}

// WithFontPath sets the label font.
func (b *ConfigBuilder) WithFontPath(path string) *ConfigBuilder {
	b.config.FontPath = path
	return b
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce a canvas large enough for at least a handful of labels
	if cfg.Width < 160 {
		cfg.Width = 160
	}
	if cfg.Height < 80 {
		cfg.Height = 80
	}

	return cfg
}

// NewEngine wires the memoized stages into an engine. The converter
// and seek handler may be nil for headless use.
func NewEngine(
	store ports.RegionStore,
	notifier ports.Notifier,
	seek ports.SeekHandler,
	convert ports.TimeConverter,
	logger ports.Logger,
) *engine.Engine {
	return engine.New(
		scale.NewStage(),
		markers.NewStage(),
		store,
		notifier,
		seek,
		convert,
		logger,
	)
}
