package preview

import (
	"math"

	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/timeline"
)

// Converter maps the visible viewport onto a horizontal pixel span.
// It implements the coordinate capability the engine expects from the
// interaction layer.
type Converter struct {
	viewport timeline.TimeSpan
	widthPx  float64
}

// NewConverter creates a converter for the given viewport and pixel width.
func NewConverter(viewport timeline.TimeSpan, widthPx float64) *Converter {
	return &Converter{viewport: viewport, widthPx: widthPx}
}

// ValueToOffset converts an absolute time to a pixel offset.
func (c *Converter) ValueToOffset(ms int64) float64 {
	rangeMs := c.viewport.DurationMs()
	if rangeMs <= 0 || c.widthPx <= 0 {
		return 0
	}
	return float64(ms-c.viewport.StartMs) / float64(rangeMs) * c.widthPx
}

// OffsetToValue converts a pixel offset to an absolute time.
func (c *Converter) OffsetToValue(px float64) int64 {
	rangeMs := c.viewport.DurationMs()
	if rangeMs <= 0 || c.widthPx <= 0 {
		return c.viewport.StartMs
	}
	return c.viewport.StartMs + int64(math.Round(px/c.widthPx*float64(rangeMs)))
}

// Ensure Converter implements ports.TimeConverter
var _ ports.TimeConverter = (*Converter)(nil)
