package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/user/zoomline/pkg/adapters/logger"
	"github.com/user/zoomline/pkg/stages/markers"
	"github.com/user/zoomline/pkg/stages/scale"
	"github.com/user/zoomline/pkg/timeline"
)

// fakeStore is a minimal in-memory region store with predictable IDs.
type fakeStore struct {
	regions []timeline.ZoomRegion
	nextID  int
}

func (s *fakeStore) Regions() []timeline.ZoomRegion {
	out := make([]timeline.ZoomRegion, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *fakeStore) Add(span timeline.TimeSpan) (timeline.ZoomRegion, error) {
	s.nextID++
	r := timeline.ZoomRegion{ID: fmt.Sprintf("r%d", s.nextID), StartMs: span.StartMs, EndMs: span.EndMs}
	s.regions = append(s.regions, r)
	return r, nil
}

func (s *fakeStore) Update(id string, span timeline.TimeSpan) error {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions[i].StartMs = span.StartMs
			s.regions[i].EndMs = span.EndMs
			return nil
		}
	}
	return fmt.Errorf("region %s not found", id)
}

func (s *fakeStore) Remove(id string) error {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("region %s not found", id)
}

// fakeNotifier records user-facing messages.
type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(msg string, args ...interface{}) {
	n.messages = append(n.messages, fmt.Sprintf(msg, args...))
}

// fakeSeek records seek requests.
type fakeSeek struct {
	seconds []float64
}

func (s *fakeSeek) Seek(seconds float64) {
	s.seconds = append(s.seconds, seconds)
}

// fakeConverter maps 1 pixel to 10 milliseconds from zero.
type fakeConverter struct{}

func (fakeConverter) ValueToOffset(ms int64) float64 { return float64(ms) / 10 }
func (fakeConverter) OffsetToValue(px float64) int64 { return int64(px * 10) }

func newTestEngine(store *fakeStore, notifier *fakeNotifier, seek *fakeSeek) *Engine {
	return New(
		scale.NewStage(),
		markers.NewStage(),
		store,
		notifier,
		seek,
		fakeConverter{},
		logger.NewNoop(),
	)
}

// TestLoadDuration_DerivesScaleAndViewport verifies the derived state
// after a load.
func TestLoadDuration_DerivesScaleAndViewport(t *testing.T) {
	store := &fakeStore{}
	eng := newTestEngine(store, &fakeNotifier{}, &fakeSeek{})

	if err := eng.LoadDuration(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if eng.DurationMs() != 10000 {
		t.Errorf("duration: expected 10000, got %d", eng.DurationMs())
	}
	// 10s -> 1s interval (10 markers)
	if eng.Scale().IntervalMs != 1000 {
		t.Errorf("interval: expected 1000, got %d", eng.Scale().IntervalMs)
	}
	// Initial viewport spans the whole video.
	expected := timeline.TimeSpan{StartMs: 0, EndMs: 10000}
	if eng.Viewport() != expected {
		t.Errorf("viewport: expected %+v, got %+v", expected, eng.Viewport())
	}
}

// TestLoadDuration_NormalizesRegions verifies the full region set is
// re-validated when the duration shrinks.
func TestLoadDuration_NormalizesRegions(t *testing.T) {
	store := &fakeStore{regions: []timeline.ZoomRegion{
		{ID: "keep", StartMs: 0, EndMs: 1000},
		{ID: "clip", StartMs: 5000, EndMs: 8000},
	}}
	eng := newTestEngine(store, &fakeNotifier{}, &fakeSeek{})

	if err := eng.LoadDuration(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Media trimmed to 3s: the out-of-range region collapses to a
	// minimum-length sliver at the end.
	if err := eng.LoadDuration(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	regions := store.Regions()
	if regions[0].Span() != (timeline.TimeSpan{StartMs: 0, EndMs: 1000}) {
		t.Errorf("valid region was altered: %+v", regions[0])
	}
	expected := timeline.TimeSpan{StartMs: 2999, EndMs: 3000}
	if regions[1].Span() != expected {
		t.Errorf("expected %+v, got %+v", expected, regions[1].Span())
	}
}

// TestLoadDuration_NoContent verifies zero and invalid durations
// short-circuit region logic.
func TestLoadDuration_NoContent(t *testing.T) {
	store := &fakeStore{regions: []timeline.ZoomRegion{
		{ID: "a", StartMs: 5000, EndMs: 8000},
	}}
	eng := newTestEngine(store, &fakeNotifier{}, &fakeSeek{})

	if err := eng.LoadDuration(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Regions()[0].Span() != (timeline.TimeSpan{StartMs: 5000, EndMs: 8000}) {
		t.Error("regions must not be touched without content")
	}

	if _, ok, _ := eng.AddRegion(context.Background()); ok {
		t.Error("add must be rejected without content")
	}
	if ok, _ := eng.ResizeRegion(context.Background(), "a", timeline.TimeSpan{StartMs: 0, EndMs: 1}); ok {
		t.Error("resize must be rejected without content")
	}
}

// TestAddRegion_PlacesFirstFit verifies placement through the store.
func TestAddRegion_PlacesFirstFit(t *testing.T) {
	store := &fakeStore{}
	eng := newTestEngine(store, &fakeNotifier{}, &fakeSeek{})
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	region, ok, err := eng.AddRegion(ctx)
	if err != nil || !ok {
		t.Fatalf("expected a region, got ok=%v err=%v", ok, err)
	}
	// Default item duration prefers 3 seconds.
	if region.Span() != (timeline.TimeSpan{StartMs: 0, EndMs: 3000}) {
		t.Errorf("expected 0-3000ms, got %+v", region.Span())
	}

	// Second add lands after the first.
	region, ok, err = eng.AddRegion(ctx)
	if err != nil || !ok {
		t.Fatalf("expected a region, got ok=%v err=%v", ok, err)
	}
	if region.Span() != (timeline.TimeSpan{StartMs: 3000, EndMs: 6000}) {
		t.Errorf("expected 3000-6000ms, got %+v", region.Span())
	}
}

// TestAddRegion_NoSpaceNotifies verifies the soft rejection path: the
// notifier fires and the store is unchanged.
func TestAddRegion_NoSpaceNotifies(t *testing.T) {
	store := &fakeStore{regions: []timeline.ZoomRegion{
		{ID: "a", StartMs: 0, EndMs: 2000},
		{ID: "b", StartMs: 2001, EndMs: 3000},
	}}
	notifier := &fakeNotifier{}
	eng := newTestEngine(store, notifier, &fakeSeek{})
	ctx := context.Background()

	// 5s total: a 3s default region fits in neither the 1ms gap nor
	// the 2s tail.
	if err := eng.LoadDuration(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := eng.AddRegion(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected rejection")
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.messages))
	}
	if len(store.Regions()) != 2 {
		t.Error("store must be unchanged after a failed placement")
	}
}

// TestResizeRegion_Gates verifies normalization and the conflict gate.
func TestResizeRegion_Gates(t *testing.T) {
	store := &fakeStore{regions: []timeline.ZoomRegion{
		{ID: "a", StartMs: 0, EndMs: 2000},
		{ID: "b", StartMs: 5000, EndMs: 6000},
	}}
	eng := newTestEngine(store, &fakeNotifier{}, &fakeSeek{})
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Growing a into b must be rejected and leave the store untouched.
	ok, err := eng.ResizeRegion(ctx, "a", timeline.TimeSpan{StartMs: 0, EndMs: 5500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("overlap with b must be rejected")
	}
	if store.Regions()[0].Span() != (timeline.TimeSpan{StartMs: 0, EndMs: 2000}) {
		t.Error("store changed after rejected resize")
	}

	// A span past the end of the video normalizes, then applies.
	ok, err = eng.ResizeRegion(ctx, "b", timeline.TimeSpan{StartMs: 9000, EndMs: 12000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected resize to apply")
	}
	if store.Regions()[1].Span() != (timeline.TimeSpan{StartMs: 9000, EndMs: 10000}) {
		t.Errorf("expected 9000-10000ms, got %+v", store.Regions()[1].Span())
	}
}

// TestSetViewport_EnforcesMinimum verifies viewport clamping.
func TestSetViewport_EnforcesMinimum(t *testing.T) {
	eng := newTestEngine(&fakeStore{}, &fakeNotifier{}, &fakeSeek{})
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10s at 1s interval: min visible range is 3000ms.

	eng.SetViewport(timeline.TimeSpan{StartMs: 2000, EndMs: 2500})
	if eng.Viewport() != (timeline.TimeSpan{StartMs: 2000, EndMs: 5000}) {
		t.Errorf("narrow viewport not widened: %+v", eng.Viewport())
	}

	// Near the end the start moves back instead.
	eng.SetViewport(timeline.TimeSpan{StartMs: 9500, EndMs: 9900})
	if eng.Viewport() != (timeline.TimeSpan{StartMs: 7000, EndMs: 10000}) {
		t.Errorf("end-of-media viewport not shifted: %+v", eng.Viewport())
	}

	// Out-of-bounds span is clamped into the media.
	eng.SetViewport(timeline.TimeSpan{StartMs: -100, EndMs: 20000})
	if eng.Viewport() != (timeline.TimeSpan{StartMs: 0, EndMs: 10000}) {
		t.Errorf("out-of-bounds viewport not clamped: %+v", eng.Viewport())
	}
}

// TestMarkers_UsesViewport verifies the marker set follows the clamped
// viewport.
func TestMarkers_UsesViewport(t *testing.T) {
	eng := newTestEngine(&fakeStore{}, &fakeNotifier{}, &fakeSeek{})
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eng.SetViewport(timeline.TimeSpan{StartMs: 2500, EndMs: 6500})

	marks, err := eng.Markers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Forced start 2500 plus boundaries 3000-6000.
	expected := []int64{2500, 3000, 4000, 5000, 6000}
	if len(marks) != len(expected) {
		t.Fatalf("expected %d markers, got %d", len(expected), len(marks))
	}
	for i, e := range expected {
		if marks[i].TimeMs != e {
			t.Errorf("marker %d: expected %d, got %d", i, e, marks[i].TimeMs)
		}
	}
}

// TestNew_AcceptsInjectedStages verifies the engine runs against stage
// implementations supplied from outside, wrapped as StageFuncs.
func TestNew_AcceptsInjectedStages(t *testing.T) {
	canned := timeline.ScaleConfig{
		IntervalMs:            2000,
		GridMs:                500,
		MinItemDurationMs:     1,
		DefaultItemDurationMs: 4000,
		MinVisibleRangeMs:     6000,
	}
	scaleStage := timeline.StageFunc[timeline.ScaleInput, timeline.ScaleConfig](
		func(ctx context.Context, input timeline.ScaleInput) (timeline.ScaleConfig, error) {
			return canned, nil
		})
	markerStage := timeline.StageFunc[timeline.MarkerInput, []timeline.Marker](
		func(ctx context.Context, input timeline.MarkerInput) ([]timeline.Marker, error) {
			return []timeline.Marker{{TimeMs: input.Range.StartMs, Label: "start"}}, nil
		})

	eng := New(scaleStage, markerStage, &fakeStore{}, &fakeNotifier{}, &fakeSeek{}, fakeConverter{}, logger.NewNoop())
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eng.Scale() != canned {
		t.Errorf("injected scale not used: %+v", eng.Scale())
	}

	marks, err := eng.Markers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(marks) != 1 || marks[0].Label != "start" {
		t.Errorf("injected marker stage not used: %+v", marks)
	}
}

// TestSeekAt_ClampsAndReports verifies pixel offsets convert, clamp,
// and reach the seek handler as seconds.
func TestSeekAt_ClampsAndReports(t *testing.T) {
	seek := &fakeSeek{}
	eng := newTestEngine(&fakeStore{}, &fakeNotifier{}, seek)
	ctx := context.Background()

	if err := eng.LoadDuration(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 100px * 10ms/px = 1000ms = 1s
	eng.SeekAt(100)
	// Past the end: clamped to the duration.
	eng.SeekAt(5000)
	// Negative: clamped to zero.
	eng.SeekAt(-50)

	expected := []float64{1.0, 10.0, 0.0}
	if len(seek.seconds) != len(expected) {
		t.Fatalf("expected %d seeks, got %d", len(expected), len(seek.seconds))
	}
	for i, e := range expected {
		if seek.seconds[i] != e {
			t.Errorf("seek %d: expected %g, got %g", i, e, seek.seconds[i])
		}
	}
}
