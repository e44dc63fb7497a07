package ports

// SessionWaker keeps the display awake for the duration of a session.
// Acquire and Release bracket the session; Release must be safe to call
// when Acquire failed or was never called.
type SessionWaker interface {
	Acquire() error
	Release() error
}
