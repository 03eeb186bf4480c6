// Package placement finds an insertion slot for a new region among the
// existing ones.
package placement

import (
	"context"
	"sort"

	"github.com/user/zoomline/pkg/timeline"
)

// Stage finds insertion slots.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new placement stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute scans for a slot of the desired duration.
func (s *Stage) Execute(ctx context.Context, input timeline.PlacementInput) (timeline.PlacementResult, error) {
	return FindSlot(input), nil
}

// FindSlot walks the regions in start order looking for the first gap
// large enough for the desired duration. The scan is greedy
// left-to-right, so gaps nearest the start fill first, and the result
// is deterministic for a given region set.
func FindSlot(input timeline.PlacementInput) timeline.PlacementResult {
	regions := make([]timeline.ZoomRegion, len(input.Regions))
	copy(regions, input.Regions)
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].StartMs < regions[j].StartMs
	})

	var startPos int64
	for _, r := range regions {
		if startPos+input.DurationMs <= r.StartMs {
			break
		}
		startPos = max(startPos, r.EndMs)
	}

	if startPos+input.DurationMs > input.TotalMs {
		return timeline.PlacementResult{}
	}

	return timeline.PlacementResult{
		Span:  timeline.TimeSpan{StartMs: startPos, EndMs: startPos + input.DurationMs},
		Found: true,
	}
}

// DefaultDuration is the length used for a region added without an
// explicit span: three seconds preferred, never shorter than the
// minimum granularity, never longer than the whole video.
func DefaultDuration(minItemDurationMs, totalMs int64) int64 {
	d := max(3000, minItemDurationMs)
	if totalMs > 0 {
		d = min(d, totalMs)
	}
	return d
}
