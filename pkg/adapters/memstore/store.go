// Package memstore provides an in-memory region store.
package memstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/timeline"
)

// Store implements ports.RegionStore in memory. Region IDs are UUIDs,
// so an ID is never reused even after its region is removed.
type Store struct {
	regions []timeline.ZoomRegion
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NewWithRegions creates a store pre-populated with spans, each
// assigned a fresh ID. Used by the CLI when loading a regions file.
func NewWithRegions(spans []timeline.TimeSpan) *Store {
	s := New()
	for _, span := range spans {
		s.regions = append(s.regions, timeline.ZoomRegion{
			ID:      uuid.NewString(),
			StartMs: span.StartMs,
			EndMs:   span.EndMs,
		})
	}
	return s
}

// Regions returns a copy of the current region set.
func (s *Store) Regions() []timeline.ZoomRegion {
	out := make([]timeline.ZoomRegion, len(s.regions))
	copy(out, s.regions)
	return out
}

// Add creates a new region with a fresh identifier.
func (s *Store) Add(span timeline.TimeSpan) (timeline.ZoomRegion, error) {
	region := timeline.ZoomRegion{
		ID:      uuid.NewString(),
		StartMs: span.StartMs,
		EndMs:   span.EndMs,
	}
	s.regions = append(s.regions, region)
	return region, nil
}

// Update replaces the span of an existing region.
func (s *Store) Update(id string, span timeline.TimeSpan) error {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions[i].StartMs = span.StartMs
			s.regions[i].EndMs = span.EndMs
			return nil
		}
	}
	return fmt.Errorf("region %s not found", id)
}

// Remove deletes a region. The ID is not recycled.
func (s *Store) Remove(id string) error {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("region %s not found", id)
}

// Ensure Store implements ports.RegionStore
var _ ports.RegionStore = (*Store)(nil)
