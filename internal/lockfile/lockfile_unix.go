//go:build unix

package lockfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile acquires an exclusive non-blocking lock (Unix implementation)
func lockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

// unlockFile releases the lock on the file (Unix implementation)
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
