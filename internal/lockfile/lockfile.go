// Package lockfile guards the single live-session slot: only one running
// countdown may own the audio channel at a time, so a second `fitick start`
// fails fast instead of talking over the first.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Lock is a held exclusive lock on the session lock file
type Lock struct {
	file *os.File
}

// defaultLockPath returns the lock file location, honoring FITICK_HOME
func defaultLockPath() (string, error) {
	if home := os.Getenv("FITICK_HOME"); home != "" {
		return filepath.Join(home, "session.lock"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fitick", "session.lock"), nil
}

// Acquire takes the exclusive session lock, failing immediately when
// another session holds it
func Acquire() (*Lock, error) {
	path, err := defaultLockPath()
	if err != nil {
		return nil, err
	}
	return AcquireAt(path)
}

// AcquireAt takes the exclusive lock on an explicit path (used by tests)
func AcquireAt(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("another session is already running: %w", err)
	}

	return &Lock{file: file}, nil
}

// Release unlocks and closes the lock file
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
