// Package main provides the CLI entry point for zoomline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/zoomline/pkg/adapters/ggrenderer"
	"github.com/user/zoomline/pkg/adapters/logger"
	"github.com/user/zoomline/pkg/adapters/memstore"
	"github.com/user/zoomline/pkg/adapters/mp4probe"
	"github.com/user/zoomline/pkg/config"
	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/preview"
	"github.com/user/zoomline/pkg/stages/labels"
	"github.com/user/zoomline/pkg/stages/scale"
	"github.com/user/zoomline/pkg/timeline"
	"github.com/user/zoomline/pkg/zoomline"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Preview PreviewCmd `cmd:"" help:"Render a timeline preview image for a video."`
	Scale   ScaleCmd   `cmd:"" help:"Print the scale selected for a duration."`
	Place   PlaceCmd   `cmd:"" help:"Find an insertion slot among existing regions."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// PreviewCmd defines the preview subcommand.
type PreviewCmd struct {
	// Input: either an MP4 file to probe, or an explicit duration
	Input      string  `arg:"" optional:"" help:"MP4 file to probe for the duration."`
	DurationMs int64   `help:"Media duration in milliseconds (alternative to probing a file)."`
	Output     string  `short:"o" required:"" help:"Output PNG file path."`

	// Region set
	Regions string `short:"r" help:"YAML file with the region set."`

	// Canvas options
	Config string `short:"c" help:"YAML configuration file."`
	Width  *int   `short:"W" help:"Output image width (default: 960)."`
	Height *int   `short:"H" help:"Output image height (default: 160)."`
	Font   string `help:"TTF font for axis labels."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ScaleCmd defines the scale subcommand.
type ScaleCmd struct {
	DurationSeconds []float64 `arg:"" help:"Durations in seconds."`
}

// PlaceCmd defines the place subcommand.
type PlaceCmd struct {
	DurationMs int64  `required:"" help:"Media duration in milliseconds."`
	Regions    string `short:"r" help:"YAML file with the region set."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("zoomline"),
		kong.Description("Timeline scale and zoom-region layout engine for video annotation."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger selects the logger for the given flags.
func newLogger(level string, quiet bool) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// consoleNotifier surfaces engine rejections as warnings.
type consoleNotifier struct {
	log ports.Logger
}

// Notify implements ports.Notifier.
func (n *consoleNotifier) Notify(msg string, args ...interface{}) {
	n.log.Warn(msg, args...)
}

// Run executes the preview command.
func (cmd *PreviewCmd) Run() error {
	log := newLogger(cmd.LogLevel, cmd.Quiet)
	ctx := context.Background()

	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	seconds, err := cmd.resolveDuration(log)
	if err != nil {
		return err
	}

	spans, err := loadSpans(cmd.Regions)
	if err != nil {
		return err
	}

	store := memstore.NewWithRegions(spans)
	eng := zoomline.NewEngine(store, &consoleNotifier{log: log}, nil, nil, log)
	if err := eng.LoadDuration(ctx, seconds); err != nil {
		return err
	}

	marks, err := eng.Markers(ctx)
	if err != nil {
		return err
	}

	renderer := ggrenderer.New()
	previewStage := preview.NewStage(renderer, log)
	img, err := previewStage.Execute(ctx, preview.Input{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Viewport: eng.Viewport(),
		Markers:  marks,
		Regions:  store.Regions(),
		GridMs:   eng.Scale().GridMs,
		Theme:    cfg.Theme,
		FontPath: cfg.FontPath,
	})
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	data, err := renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.Output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("Preview saved to %s", cmd.Output)
	return nil
}

// buildConfig merges the config file with CLI overrides.
func (cmd *PreviewCmd) buildConfig() (zoomline.Config, error) {
	fileCfg := config.Defaults()
	if cmd.Config != "" {
		var err error
		fileCfg, err = config.LoadFromFile(cmd.Config)
		if err != nil {
			return zoomline.Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	builder := zoomline.NewConfigBuilder().
		WithWidth(fileCfg.CanvasWidth).
		WithHeight(fileCfg.CanvasHeight).
		WithTheme(fileCfg.ToTheme()).
		WithFontPath(fileCfg.FontPath)

	if cmd.Width != nil {
		builder.WithWidth(*cmd.Width)
	}
	if cmd.Height != nil {
		builder.WithHeight(*cmd.Height)
	}
	if cmd.Font != "" {
		builder.WithFontPath(cmd.Font)
	}

	return builder.Build(), nil
}

// resolveDuration probes the input file, or falls back to the
// explicit duration flag.
func (cmd *PreviewCmd) resolveDuration(log ports.Logger) (float64, error) {
	if cmd.Input != "" {
		log.Debug("Probing duration of %s", cmd.Input)
		probe := mp4probe.New()
		seconds, err := probe.ProbeDuration(cmd.Input)
		if err != nil {
			return 0, fmt.Errorf("probe duration: %w", err)
		}
		log.Debug("Probed duration: %.3fs", seconds)
		return seconds, nil
	}
	if cmd.DurationMs > 0 {
		return float64(cmd.DurationMs) / 1000.0, nil
	}
	return 0, fmt.Errorf("%s", l10n.T("An input file or --duration-ms is required"))
}

// loadSpans reads the regions file, or returns an empty set.
func loadSpans(path string) ([]timeline.TimeSpan, error) {
	if path == "" {
		return nil, nil
	}
	return config.LoadRegions(path)
}

// Run executes the scale command.
func (cmd *ScaleCmd) Run() error {
	for _, seconds := range cmd.DurationSeconds {
		cfg := scale.SelectScale(seconds)
		fmt.Printf("%gs:\n", seconds)
		fmt.Printf("  interval     %dms (%s)\n", cfg.IntervalMs, labels.Format(cfg.IntervalMs, cfg.IntervalMs))
		fmt.Printf("  grid         %dms\n", cfg.GridMs)
		fmt.Printf("  default item %dms\n", cfg.DefaultItemDurationMs)
		fmt.Printf("  min viewport %dms\n", cfg.MinVisibleRangeMs)
	}
	return nil
}

// Run executes the place command.
func (cmd *PlaceCmd) Run() error {
	log := newLogger(cmd.LogLevel, cmd.Quiet)
	ctx := context.Background()

	spans, err := loadSpans(cmd.Regions)
	if err != nil {
		return err
	}

	store := memstore.NewWithRegions(spans)
	eng := zoomline.NewEngine(store, &consoleNotifier{log: log}, nil, nil, log)
	if err := eng.LoadDuration(ctx, float64(cmd.DurationMs)/1000.0); err != nil {
		return err
	}

	region, ok, err := eng.AddRegion(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println(l10n.F("Slot found: %dms-%dms", region.StartMs, region.EndMs))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("zoomline version %s", version))
	return nil
}
