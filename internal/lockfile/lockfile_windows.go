//go:build windows

package lockfile

import (
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx   = kernel32.NewProc("LockFileEx")
	procUnlockFileEx = kernel32.NewProc("UnlockFileEx")
)

const (
	lockfileExclusiveLock   = 0x00000002
	lockfileFailImmediately = 0x00000001
)

// lockFile acquires an exclusive lock on the file (Windows implementation)
func lockFile(file *os.File) error {
	var overlapped syscall.Overlapped

	ret, _, err := procLockFileEx.Call(
		uintptr(file.Fd()),
		uintptr(lockfileExclusiveLock|lockfileFailImmediately),
		uintptr(0),
		uintptr(1),
		uintptr(0),
		uintptr(unsafe.Pointer(&overlapped)),
	)

	if ret == 0 {
		return err
	}
	return nil
}

// unlockFile releases the lock on the file (Windows implementation)
func unlockFile(file *os.File) error {
	var overlapped syscall.Overlapped

	ret, _, err := procUnlockFileEx.Call(
		uintptr(file.Fd()),
		uintptr(0),
		uintptr(1),
		uintptr(0),
		uintptr(unsafe.Pointer(&overlapped)),
	)

	if ret == 0 {
		return err
	}
	return nil
}
