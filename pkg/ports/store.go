package ports

import (
	"github.com/user/zoomline/pkg/timeline"
)

// RegionStore owns the zoom region set. The engine reads the set on
// every recomputation and requests mutations through this interface;
// it never deletes regions itself.
type RegionStore interface {
	// Regions returns the current region set. Order is unspecified.
	Regions() []timeline.ZoomRegion

	// Add creates a new region with a fresh identifier.
	Add(span timeline.TimeSpan) (timeline.ZoomRegion, error)

	// Update replaces the span of an existing region.
	Update(id string, span timeline.TimeSpan) error

	// Remove deletes a region. Only external callers remove regions.
	Remove(id string) error
}
