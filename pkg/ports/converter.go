package ports

// TimeConverter abstracts the pixel-to-millisecond mapping owned by the
// interaction layer. The engine never depends on actual rendering
// geometry; it only converts through this interface.
type TimeConverter interface {
	// ValueToOffset converts an absolute time to a pixel offset.
	ValueToOffset(ms int64) float64

	// OffsetToValue converts a pixel offset to an absolute time.
	OffsetToValue(px float64) int64
}
