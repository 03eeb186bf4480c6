// Package preview composes a static rendering of the engine output:
// the axis with its markers and the region set over the viewport.
package preview

import (
	"context"
	"image"
	"image/color"

	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/timeline"
)

// superSample is the oversampling factor for composition. Drawing at
// double resolution and downscaling keeps tick lines and label edges
// crisp at the output size.
const superSample = 2

// Input contains parameters for preview composition.
type Input struct {
	Width    int
	Height   int
	Viewport timeline.TimeSpan
	Markers  []timeline.Marker
	Regions  []timeline.ZoomRegion
	GridMs   int64 // Sub-grid spacing; 0 disables the sub-grid
	Theme    Theme
	FontPath string
}

// Theme defines preview styling.
type Theme struct {
	BackgroundColor color.Color
	AxisColor       color.Color
	GridColor       color.Color
	TickColor       color.Color
	LabelColor      color.Color
	RegionFill      color.Color
	RegionBorder    color.Color
}

// DefaultTheme returns a default preview theme.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		AxisColor:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		GridColor:       color.RGBA{R: 60, G: 60, B: 60, A: 255},
		TickColor:       color.RGBA{R: 140, G: 140, B: 140, A: 255},
		LabelColor:      color.RGBA{R: 220, G: 220, B: 220, A: 255},
		RegionFill:      color.RGBA{R: 76, G: 130, B: 175, A: 160},
		RegionBorder:    color.RGBA{R: 120, G: 180, B: 230, A: 255},
	}
}

// Stage composes the preview image.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new preview stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("preview"),
	}
}

// Execute draws the axis and regions for the input viewport.
func (s *Stage) Execute(ctx context.Context, input Input) (image.Image, error) {
	s.logger.Debug("Rendering preview: %dx%d canvas, %d markers, %d regions",
		input.Width, input.Height, len(input.Markers), len(input.Regions))

	w := input.Width * superSample
	h := input.Height * superSample
	canvas := s.renderer.CreateCanvas(w, h, input.Theme.BackgroundColor)
	conv := NewConverter(input.Viewport, float64(w))

	axisY := h * 3 / 4
	regionTop := h / 6
	regionBottom := axisY - h/12

	// Sub-grid lines behind everything else
	if input.GridMs > 0 {
		first := ((input.Viewport.StartMs + input.GridMs - 1) / input.GridMs) * input.GridMs
		for t := first; t <= input.Viewport.EndMs; t += input.GridMs {
			x := int(conv.ValueToOffset(t))
			canvas.DrawLine(x, 0, x, axisY, input.Theme.GridColor, 1)
		}
	}

	// Region rectangles
	for _, r := range input.Regions {
		if r.EndMs <= input.Viewport.StartMs || r.StartMs >= input.Viewport.EndMs {
			continue
		}
		x0 := int(conv.ValueToOffset(max(r.StartMs, input.Viewport.StartMs)))
		x1 := int(conv.ValueToOffset(min(r.EndMs, input.Viewport.EndMs)))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		canvas.DrawRect(x0, regionTop, x1-x0, regionBottom-regionTop, input.Theme.RegionFill)
		canvas.DrawRectStroke(x0, regionTop, x1-x0, regionBottom-regionTop, input.Theme.RegionBorder, float64(superSample))
	}

	// Axis baseline
	canvas.DrawLine(0, axisY, w, axisY, input.Theme.AxisColor, float64(superSample))

	// Ticks and labels
	tickLen := h / 24
	style := ports.TextStyle{
		FontSize: float64(12 * superSample),
		FontPath: input.FontPath,
		Color:    input.Theme.LabelColor,
		Align:    ports.AlignCenter,
	}
	for _, m := range input.Markers {
		x := int(conv.ValueToOffset(m.TimeMs))
		canvas.DrawLine(x, axisY, x, axisY+tickLen, input.Theme.TickColor, float64(superSample))
		canvas.DrawText(m.Label, x, axisY+tickLen+int(style.FontSize), style)
	}

	img := s.renderer.ResizeImage(canvas.ToImage(), input.Width, input.Height)
	return img, nil
}
