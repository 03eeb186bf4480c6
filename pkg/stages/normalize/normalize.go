// Package normalize clamps region boundaries against the video duration.
package normalize

import (
	"context"

	"github.com/user/zoomline/pkg/timeline"
)

// Stage normalizes region boundaries.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new normalization stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute normalizes the input span against the total duration.
func (s *Stage) Execute(ctx context.Context, input timeline.NormalizeInput) (timeline.NormalizeResult, error) {
	return Normalize(input), nil
}

// Normalize clamps a region's boundaries into [0, total] while
// respecting the minimum region length. A region of minimum length
// always fits before the end of the video: the start is pulled back to
// total - minDuration when necessary.
//
// With no meaningful duration to normalize against (total of zero, or
// a non-positive minimum) the span is returned untouched.
func Normalize(input timeline.NormalizeInput) timeline.NormalizeResult {
	total := input.TotalMs
	minDur := input.MinItemDurationMs
	if total == 0 || minDur <= 0 {
		return timeline.NormalizeResult{Span: input.Span}
	}
	if minDur > total {
		minDur = total
	}

	clampedStart := clamp(input.Span.StartMs, 0, total)
	minEnd := clampedStart + minDur
	clampedEnd := clamp(max(minEnd, input.Span.EndMs), minEnd, total)

	normStart := clamp(clampedStart, 0, total-minDur)
	normEnd := clamp(max(minEnd, clampedEnd), minEnd, total)

	span := timeline.TimeSpan{StartMs: normStart, EndMs: normEnd}
	return timeline.NormalizeResult{
		Span:    span,
		Changed: span != input.Span,
	}
}

// All re-validates a full region set against a duration, returning a
// correction for each region whose boundaries had to move. The caller
// applies every correction before consuming any derived output, so a
// duration change never leaves a torn region set.
func All(regions []timeline.ZoomRegion, totalMs, minItemDurationMs int64) []timeline.Correction {
	var corrections []timeline.Correction
	for _, r := range regions {
		result := Normalize(timeline.NormalizeInput{
			Span:              r.Span(),
			TotalMs:           totalMs,
			MinItemDurationMs: minItemDurationMs,
		})
		if result.Changed {
			corrections = append(corrections, timeline.Correction{ID: r.ID, Span: result.Span})
		}
	}
	return corrections
}

// clamp restricts v to [lo, hi]. When lo exceeds hi (a minimum-length
// region pressed against the end of the video) the upper bound wins.
func clamp(v, lo, hi int64) int64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
