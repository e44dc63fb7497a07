//go:build !darwin && !linux

package keepawake

// wakeCommand has no inhibitor on unsupported platforms
func wakeCommand() []string {
	return nil
}
