package timeline

// =============================================================================
// Common Types
// =============================================================================

// TimeSpan represents a half-open slice of the timeline in milliseconds.
// Start < End for any valid span; both fall within [0, duration].
type TimeSpan struct {
	StartMs int64
	EndMs   int64
}

// DurationMs returns the length of the span in milliseconds.
func (s TimeSpan) DurationMs() int64 {
	return s.EndMs - s.StartMs
}

// ZoomRegion is a user-defined annotation interval over the video.
// ID is assigned at creation and never reused. Regions never overlap
// each other; this is enforced at mutation time by the engine.
type ZoomRegion struct {
	ID      string
	StartMs int64
	EndMs   int64
}

// Span returns the region's extent as a TimeSpan.
func (r ZoomRegion) Span() TimeSpan {
	return TimeSpan{StartMs: r.StartMs, EndMs: r.EndMs}
}

// SnapThresholdMs is the tolerance inside which a proposed span is
// rejected as "too close" to an existing region rather than accepted
// with a sliver gap. Placements inside the threshold are rejected, not
// auto-merged.
const SnapThresholdMs int64 = 2

// =============================================================================
// Scale Stage Types
// =============================================================================

// ScaleInput contains parameters for scale selection.
type ScaleInput struct {
	DurationSeconds float64 // Total media length in seconds (0 = no content)
}

// ScaleConfig is the granularity chosen for a given duration.
// It is derived purely from the duration and recomputed on every
// duration change; it is never mutated in place.
type ScaleConfig struct {
	IntervalMs            int64 // Spacing of major axis markers
	GridMs                int64 // Sub-grid spacing between markers
	MinItemDurationMs     int64 // Smallest allowed region length
	DefaultItemDurationMs int64 // Length used when adding a region without an explicit span
	MinVisibleRangeMs     int64 // Narrowest allowed viewport
}

// =============================================================================
// Normalize Stage Types
// =============================================================================

// NormalizeInput contains parameters for region boundary normalization.
type NormalizeInput struct {
	Span              TimeSpan
	TotalMs           int64
	MinItemDurationMs int64
}

// NormalizeResult is the corrected span plus whether a correction was
// required. Changed is false when the input was already valid, or when
// there is no meaningful duration to normalize against.
type NormalizeResult struct {
	Span    TimeSpan
	Changed bool
}

// Correction pairs a region ID with its corrected span, produced when a
// duration change invalidates existing regions.
type Correction struct {
	ID   string
	Span TimeSpan
}

// =============================================================================
// Conflict Stage Types
// =============================================================================

// ConflictInput contains parameters for overlap and snap-gap detection.
type ConflictInput struct {
	Candidate TimeSpan
	Regions   []ZoomRegion
	ExcludeID string // Region being resized or moved; skipped to avoid self-conflict
}

// =============================================================================
// Placement Stage Types
// =============================================================================

// PlacementInput contains parameters for finding an insertion slot.
type PlacementInput struct {
	DurationMs int64 // Desired length of the new region
	Regions    []ZoomRegion
	TotalMs    int64
}

// PlacementResult carries the slot found by the placement scan.
// Found is false when no gap is large enough ("no space available").
type PlacementResult struct {
	Span  TimeSpan
	Found bool
}

// =============================================================================
// Marker Stage Types
// =============================================================================

// MarkerInput contains parameters for axis marker generation.
type MarkerInput struct {
	IntervalMs      int64
	Range           TimeSpan // Currently visible viewport
	VideoDurationMs int64    // Authoritative upper bound; <= 0 means unknown
}

// Marker is a single axis tick with its display label.
type Marker struct {
	TimeMs int64
	Label  string
}
