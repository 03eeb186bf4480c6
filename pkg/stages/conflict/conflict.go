// Package conflict detects overlaps and snap-gap violations between a
// candidate span and the existing region set.
package conflict

import (
	"context"

	"github.com/user/zoomline/pkg/timeline"
)

// Stage gates region mutations against the existing set.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new conflict detection stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute reports whether the candidate span is rejected.
func (s *Stage) Execute(ctx context.Context, input timeline.ConflictInput) (bool, error) {
	return HasConflict(input), nil
}

// HasConflict reports whether the candidate span conflicts with any
// existing region. A single conflicting region rejects the candidate.
//
// A candidate is rejected when it truly overlaps a region, or when it
// sits within the snap threshold of one: a gap of 1-2ms on either side
// is a forced-overlap zone rather than an acceptable sliver. Exact
// boundary touch (gap of zero) is not a conflict. The region named by
// ExcludeID is skipped so a resize never conflicts with itself.
func HasConflict(input timeline.ConflictInput) bool {
	for _, r := range input.Regions {
		if input.ExcludeID != "" && r.ID == input.ExcludeID {
			continue
		}

		gapBefore := input.Candidate.StartMs - r.EndMs
		if gapBefore > 0 && gapBefore <= timeline.SnapThresholdMs {
			return true
		}

		gapAfter := r.StartMs - input.Candidate.EndMs
		if gapAfter > 0 && gapAfter <= timeline.SnapThresholdMs {
			return true
		}

		if !(input.Candidate.EndMs <= r.StartMs || input.Candidate.StartMs >= r.EndMs) {
			return true
		}
	}
	return false
}
