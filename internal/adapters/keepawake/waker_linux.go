//go:build linux

package keepawake

// wakeCommand inhibits idle on Linux desktops running systemd
func wakeCommand() []string {
	return []string{"systemd-inhibit", "--what=idle", "--who=fitick", "--why=interval timer session", "sleep", "infinity"}
}
