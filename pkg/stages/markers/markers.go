// Package markers generates the axis tick set for a visible range.
package markers

import (
	"context"
	"sort"

	"github.com/user/zoomline/pkg/stages/labels"
	"github.com/user/zoomline/pkg/timeline"
)

// Stage generates axis markers.
// Results are memoized by the full input tuple: generation is pure, and
// the viewport re-renders far more often than it changes.
type Stage struct {
	cache map[timeline.MarkerInput][]timeline.Marker
}

// NewStage creates a new marker generation stage.
func NewStage() *Stage {
	return &Stage{
		cache: make(map[timeline.MarkerInput][]timeline.Marker),
	}
}

// Execute generates the markers for the input range. Callers receive a
// copy so mutating the result cannot corrupt the cached entry.
func (s *Stage) Execute(ctx context.Context, input timeline.MarkerInput) ([]timeline.Marker, error) {
	ms, ok := s.cache[input]
	if !ok {
		ms = Generate(input)
		s.cache[input] = ms
	}
	out := make([]timeline.Marker, len(ms))
	copy(out, ms)
	return out, nil
}

// Generate produces the ordered, deduplicated tick times visible within
// the range, each labeled at the interval's precision tier.
//
// Ticks land on interval boundaries starting at the first boundary at
// or after the visible start. The visible start itself and the video's
// exact end are always included when they fall inside the bound, so
// the axis shows the true start and end regardless of grid alignment.
// A non-positive interval yields no markers.
func Generate(input timeline.MarkerInput) []timeline.Marker {
	if input.IntervalMs <= 0 {
		return nil
	}

	visibleStart := input.Range.StartMs
	if visibleStart < 0 {
		visibleStart = 0
	}

	maxTime := input.Range.EndMs
	if input.VideoDurationMs > 0 {
		maxTime = input.VideoDurationMs
	}
	upper := min(input.Range.EndMs, maxTime)

	times := make(map[int64]struct{})

	firstMarker := ((visibleStart + input.IntervalMs - 1) / input.IntervalMs) * input.IntervalMs
	for t := firstMarker; t <= upper; t += input.IntervalMs {
		times[t] = struct{}{}
	}

	if visibleStart <= upper {
		times[visibleStart] = struct{}{}
	}
	if input.VideoDurationMs > 0 && input.VideoDurationMs <= upper {
		times[input.VideoDurationMs] = struct{}{}
	}

	sorted := make([]int64, 0, len(times))
	for t := range times {
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	result := make([]timeline.Marker, len(sorted))
	for i, t := range sorted {
		result[i] = timeline.Marker{
			TimeMs: t,
			Label:  labels.Format(t, input.IntervalMs),
		}
	}
	return result
}
