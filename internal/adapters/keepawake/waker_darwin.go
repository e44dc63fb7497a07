//go:build darwin

package keepawake

// wakeCommand keeps the display awake on macOS
func wakeCommand() []string {
	return []string{"caffeinate", "-d"}
}
