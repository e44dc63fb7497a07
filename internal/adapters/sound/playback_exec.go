package sound

import "os/exec"

// execPlayback wraps a started player process so it can be killed early
type execPlayback struct {
	cmd *exec.Cmd
}

func (e *execPlayback) stop() error {
	if e.cmd == nil || e.cmd.Process == nil {
		return nil
	}
	return e.cmd.Process.Kill()
}

// startFirst starts the first player command that launches successfully
// and reaps it in the background
func startFirst(candidates [][]string) (playback, bool) {
	for _, candidate := range candidates {
		cmd := exec.Command(candidate[0], candidate[1:]...)
		if err := cmd.Start(); err != nil {
			continue
		}
		go func() { _ = cmd.Wait() }()
		return &execPlayback{cmd: cmd}, true
	}
	return nil, false
}
