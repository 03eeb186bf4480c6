package ports

// Notifier surfaces transient user-facing messages, such as a failed
// placement. The msg parameter is a message key that implementations
// may translate.
type Notifier interface {
	Notify(msg string, args ...interface{})
}

// SeekHandler receives absolute seek requests in seconds.
type SeekHandler interface {
	Seek(seconds float64)
}
