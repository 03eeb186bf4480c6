package ports

// DurationProbe reads the media duration from a source file.
type DurationProbe interface {
	// ProbeDuration returns the duration in seconds.
	ProbeDuration(path string) (float64, error)
}
