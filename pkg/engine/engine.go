// Package engine coordinates the layout stages against external ports.
package engine

import (
	"context"
	"math"

	zlog "github.com/user/zoomline/pkg/adapters/logger"
	"github.com/user/zoomline/pkg/ports"
	"github.com/user/zoomline/pkg/stages/conflict"
	"github.com/user/zoomline/pkg/stages/normalize"
	"github.com/user/zoomline/pkg/stages/placement"
	"github.com/user/zoomline/pkg/timeline"
)

// Engine owns the derived timeline state: the current duration, the
// scale configuration, and the clamped viewport. The region set lives
// in the external store; the engine reads it on every recomputation
// and requests mutations through the store port.
//
// All operations are synchronous pure computations triggered by
// external events. A duration of zero means "no content" and
// short-circuits all region logic.
type Engine struct {
	scaleStage  timeline.Stage[timeline.ScaleInput, timeline.ScaleConfig]
	markerStage timeline.Stage[timeline.MarkerInput, []timeline.Marker]

	store    ports.RegionStore
	notifier ports.Notifier
	seek     ports.SeekHandler
	convert  ports.TimeConverter
	logger   ports.Logger

	durationSeconds float64
	totalMs         int64
	scale           timeline.ScaleConfig
	viewport        timeline.TimeSpan
}

// New creates an engine wired to the given ports. The notifier,
// converter, seek handler, and logger may be nil when no interaction
// layer is attached (e.g. headless CLI use); SeekAt is then a no-op
// and rejections are not announced.
func New(
	scaleStage timeline.Stage[timeline.ScaleInput, timeline.ScaleConfig],
	markerStage timeline.Stage[timeline.MarkerInput, []timeline.Marker],
	store ports.RegionStore,
	notifier ports.Notifier,
	seek ports.SeekHandler,
	convert ports.TimeConverter,
	logger ports.Logger,
) *Engine {
	if logger == nil {
		logger = zlog.NewNoop()
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Engine{
		scaleStage:  scaleStage,
		markerStage: markerStage,
		store:       store,
		notifier:    notifier,
		seek:        seek,
		convert:     convert,
		logger:      logger.WithComponent("engine"),
	}
}

// LoadDuration installs a new media duration. The scale configuration
// is re-derived, every region is re-validated against the new duration
// before any derived output is produced, and the viewport is clamped.
func (e *Engine) LoadDuration(ctx context.Context, seconds float64) error {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}

	e.durationSeconds = seconds
	e.totalMs = int64(math.Round(seconds * 1000))

	cfg, err := e.scaleStage.Execute(ctx, timeline.ScaleInput{DurationSeconds: seconds})
	if err != nil {
		return err
	}
	e.scale = cfg
	e.logger.Debug("Scale selected: %dms interval, %dms grid", cfg.IntervalMs, cfg.GridMs)

	if e.totalMs > 0 {
		corrections := normalize.All(e.store.Regions(), e.totalMs, cfg.MinItemDurationMs)
		for _, c := range corrections {
			if err := e.store.Update(c.ID, c.Span); err != nil {
				return err
			}
		}
		if len(corrections) > 0 {
			e.logger.Debug("Normalized %d regions after duration change", len(corrections))
		}
	}

	if e.viewport == (timeline.TimeSpan{}) {
		e.viewport = timeline.TimeSpan{StartMs: 0, EndMs: e.totalMs}
	}
	e.SetViewport(e.viewport)

	e.logger.Info("Duration loaded: %.3fs", seconds)
	return nil
}

// SetViewport clamps the requested visible range into [0, duration]
// and widens it to the minimum visible range when necessary.
func (e *Engine) SetViewport(span timeline.TimeSpan) {
	if e.totalMs <= 0 {
		e.viewport = span
		return
	}

	start := clamp(span.StartMs, 0, e.totalMs)
	end := clamp(span.EndMs, start, e.totalMs)

	if end-start < e.scale.MinVisibleRangeMs {
		end = min(e.totalMs, start+e.scale.MinVisibleRangeMs)
		start = max(0, end-e.scale.MinVisibleRangeMs)
	}

	e.viewport = timeline.TimeSpan{StartMs: start, EndMs: end}
	e.logger.Debug("Viewport clamped to %dms-%dms", start, end)
}

// AddRegion finds a free slot for a default-length region and adds it
// through the store. A failed placement is surfaced via the notifier
// and leaves all state unchanged; ok reports whether a region was
// added.
func (e *Engine) AddRegion(ctx context.Context) (region timeline.ZoomRegion, ok bool, err error) {
	if e.totalMs <= 0 {
		return timeline.ZoomRegion{}, false, nil
	}

	regions := e.store.Regions()
	duration := placement.DefaultDuration(e.scale.MinItemDurationMs, e.totalMs)

	slot := placement.FindSlot(timeline.PlacementInput{
		DurationMs: duration,
		Regions:    regions,
		TotalMs:    e.totalMs,
	})
	if !slot.Found {
		e.logger.Debug("Placement rejected: no free slot of %dms", duration)
		e.notifier.Notify("No space available for a new zoom region")
		return timeline.ZoomRegion{}, false, nil
	}

	// The first-fit scan leaves no overlap, but every mutation passes
	// through the conflict gate before it is applied.
	if conflict.HasConflict(timeline.ConflictInput{Candidate: slot.Span, Regions: regions}) {
		e.logger.Debug("Placement conflict for new region")
		return timeline.ZoomRegion{}, false, nil
	}

	region, err = e.store.Add(slot.Span)
	if err != nil {
		return timeline.ZoomRegion{}, false, err
	}
	e.logger.Debug("Region %s added at %dms-%dms", region.ID, region.StartMs, region.EndMs)
	return region, true, nil
}

// ResizeRegion validates a new span for an existing region and applies
// it through the store. The span is normalized first; a conflict with
// any other region rejects the mutation silently, per policy.
func (e *Engine) ResizeRegion(ctx context.Context, id string, span timeline.TimeSpan) (bool, error) {
	if e.totalMs <= 0 {
		return false, nil
	}

	result := normalize.Normalize(timeline.NormalizeInput{
		Span:              span,
		TotalMs:           e.totalMs,
		MinItemDurationMs: e.scale.MinItemDurationMs,
	})

	if conflict.HasConflict(timeline.ConflictInput{
		Candidate: result.Span,
		Regions:   e.store.Regions(),
		ExcludeID: id,
	}) {
		e.logger.Debug("Mutation rejected for region %s", id)
		return false, nil
	}

	if err := e.store.Update(id, result.Span); err != nil {
		return false, err
	}
	e.logger.Debug("Region %s updated to %dms-%dms", id, result.Span.StartMs, result.Span.EndMs)
	return true, nil
}

// MoveRegion shifts an existing region to a new span. Validation is
// identical to a resize: normalize, then gate against the other
// regions.
func (e *Engine) MoveRegion(ctx context.Context, id string, span timeline.TimeSpan) (bool, error) {
	return e.ResizeRegion(ctx, id, span)
}

// Markers returns the axis ticks for the current viewport.
func (e *Engine) Markers(ctx context.Context) ([]timeline.Marker, error) {
	return e.markerStage.Execute(ctx, timeline.MarkerInput{
		IntervalMs:      e.scale.IntervalMs,
		Range:           e.viewport,
		VideoDurationMs: e.totalMs,
	})
}

// SeekAt converts a pixel offset on the axis to an absolute time,
// clamps it to the media bounds, and reports it to the seek handler
// in seconds.
func (e *Engine) SeekAt(pixelOffset float64) {
	if e.convert == nil || e.seek == nil {
		return
	}
	ms := clamp(e.convert.OffsetToValue(pixelOffset), 0, e.totalMs)
	seconds := float64(ms) / 1000.0
	e.logger.Debug("Seek to %.3fs", seconds)
	e.seek.Seek(seconds)
}

// Scale returns the current scale configuration.
func (e *Engine) Scale() timeline.ScaleConfig {
	return e.scale
}

// Viewport returns the current clamped viewport.
func (e *Engine) Viewport() timeline.TimeSpan {
	return e.viewport
}

// DurationMs returns the media duration in milliseconds.
func (e *Engine) DurationMs() int64 {
	return e.totalMs
}

// noopNotifier swallows notifications when no UI is attached.
type noopNotifier struct{}

func (noopNotifier) Notify(msg string, args ...interface{}) {}

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
