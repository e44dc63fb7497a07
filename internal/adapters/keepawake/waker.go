package keepawake

import (
	"os/exec"
	"sync"

	"fitick/internal/ports"
)

// Waker implements ports.SessionWaker by holding a platform idle-inhibitor
// process (caffeinate, systemd-inhibit) for the session's lifetime
type Waker struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// Verify interface compliance at compile time
var _ ports.SessionWaker = (*Waker)(nil)

// NewWaker creates a new session waker
func NewWaker() *Waker {
	return &Waker{}
}

// Acquire starts the inhibitor. Missing platform tools are not an error;
// keep-awake is a best-effort capability.
func (w *Waker) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cmd != nil {
		return nil
	}

	args := wakeCommand()
	if len(args) == 0 {
		return nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return nil
	}
	go func() { _ = cmd.Wait() }()
	w.cmd = cmd
	return nil
}

// Release stops the inhibitor. Safe to call without a prior Acquire.
func (w *Waker) Release() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cmd == nil || w.cmd.Process == nil {
		w.cmd = nil
		return nil
	}
	err := w.cmd.Process.Kill()
	w.cmd = nil
	return err
}
