// Package scale implements granularity selection for the timeline axis.
package scale

import (
	"context"
	"math"

	"github.com/user/zoomline/pkg/timeline"
)

// candidate is one (interval, grid) pair from the granularity table.
type candidate struct {
	IntervalSeconds float64
	GridSeconds     float64
}

// candidates is the ordered granularity table, strictly increasing,
// spanning 250ms to 1 hour.
var candidates = []candidate{
	{0.25, 0.05},
	{0.5, 0.1},
	{1, 0.25},
	{2, 0.5},
	{5, 1},
	{10, 2},
	{15, 3},
	{30, 5},
	{60, 10},
	{120, 20},
	{300, 30},
	{600, 60},
	{900, 120},
	{1800, 180},
	{3600, 300},
}

// targetMarkerCount bounds how many major markers the axis shows.
// The first candidate keeping the count at or under this bound wins.
const targetMarkerCount = 12

// Stage selects the scale for a duration.
// Results are memoized by duration: the selection is a pure function,
// so re-deriving on every render must never drift.
type Stage struct {
	cache map[float64]timeline.ScaleConfig
}

// NewStage creates a new scale selection stage.
func NewStage() *Stage {
	return &Stage{
		cache: make(map[float64]timeline.ScaleConfig),
	}
}

// Execute selects the scale configuration for the input duration.
// The duration is sanitized before the cache lookup: NaN never equals
// itself as a map key and would insert an unreachable entry per call.
func (s *Stage) Execute(ctx context.Context, input timeline.ScaleInput) (timeline.ScaleConfig, error) {
	seconds := input.DurationSeconds
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if cfg, ok := s.cache[seconds]; ok {
		return cfg, nil
	}
	cfg := SelectScale(seconds)
	s.cache[seconds] = cfg
	return cfg, nil
}

// SelectScale derives the scale configuration for a duration.
// This is exposed as a standalone function for testing and reuse.
//
// Selection walks the candidate table from the finest entry and picks
// the first interval that yields at most targetMarkerCount markers.
// Zero or negative duration selects the finest entry; a duration too
// long for every entry falls back to the coarsest.
func SelectScale(durationSeconds float64) timeline.ScaleConfig {
	if math.IsNaN(durationSeconds) || durationSeconds < 0 {
		durationSeconds = 0
	}

	chosen := candidates[len(candidates)-1]
	for _, c := range candidates {
		if durationSeconds <= 0 || durationSeconds/c.IntervalSeconds <= targetMarkerCount {
			chosen = c
			break
		}
	}

	totalMs := int64(math.Round(durationSeconds * 1000))
	intervalMs := int64(math.Round(chosen.IntervalSeconds * 1000))
	gridMs := int64(math.Round(chosen.GridSeconds * 1000))

	// Placement granularity: regions may be as short as 1ms.
	minItemMs := int64(1)

	defaultItemMs := intervalMs * 2
	if totalMs > 0 {
		defaultItemMs = clamp(defaultItemMs, minItemMs, totalMs)
	}

	// The viewport may never zoom narrower than three marker intervals,
	// six minimum items, or one second, whichever is largest.
	minVisibleMs := max(intervalMs*3, minItemMs*6, 1000)
	if totalMs > 0 {
		minVisibleMs = min(minVisibleMs, totalMs)
	}

	return timeline.ScaleConfig{
		IntervalMs:            intervalMs,
		GridMs:                gridMs,
		MinItemDurationMs:     minItemMs,
		DefaultItemDurationMs: defaultItemMs,
		MinVisibleRangeMs:     minVisibleMs,
	}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
