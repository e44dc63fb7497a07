package services

import (
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"fitick/internal/config"
	"fitick/internal/logging"
	"fitick/internal/ports"
)

// CapabilityService implements ports.CapabilityProvider with a live read of
// the settings file: each effect call observes the current preferences, not
// the snapshot taken at session start. A mod-time check keeps the per-call
// cost to a stat.
type CapabilityService struct {
	settingsPath string

	mu       sync.Mutex
	cached   *config.Settings
	loadedAt time.Time

	audioProbe   func() bool
	hapticsProbe func() bool
	audioOnce    sync.Once
	audioOK      bool
	hapticsOnce  sync.Once
	hapticsOK    bool
}

// Verify interface compliance at compile time
var _ ports.CapabilityProvider = (*CapabilityService)(nil)

// NewCapabilityService creates a capability provider reading settingsPath
func NewCapabilityService(settingsPath string) *CapabilityService {
	return &CapabilityService{
		settingsPath: settingsPath,
		audioProbe:   probeAudio,
		hapticsProbe: probeHaptics,
	}
}

// current returns fresh settings, reloading when the file changed on disk
func (c *CapabilityService) current() *config.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(c.settingsPath)
	if err == nil && c.cached != nil && !info.ModTime().After(c.loadedAt) {
		return c.cached
	}

	settings, loadErr := config.LoadSettingsFromFile(c.settingsPath)
	if loadErr != nil {
		logging.Logger.Warn("Failed to reload settings, keeping previous snapshot", "error", loadErr)
		if c.cached != nil {
			return c.cached
		}
		settings = &config.Settings{}
	}

	c.cached = settings
	if err == nil {
		c.loadedAt = info.ModTime()
	} else {
		c.loadedAt = time.Now()
	}
	return settings
}

func (c *CapabilityService) SoundEnabled() bool {
	return c.current().EffectiveSoundEnabled()
}

func (c *CapabilityService) VoiceEnabled() bool {
	return c.current().EffectiveVoiceEnabled()
}

func (c *CapabilityService) VibrationEnabled() bool {
	return c.current().EffectiveVibrationEnabled()
}

func (c *CapabilityService) Volume() int {
	return c.current().EffectiveVolume()
}

// HasAudioCapability probes once per process for a usable audio player
func (c *CapabilityService) HasAudioCapability() bool {
	c.audioOnce.Do(func() { c.audioOK = c.audioProbe() })
	return c.audioOK
}

// HasHapticsCapability probes once per process for haptic (bell) output
func (c *CapabilityService) HasHapticsCapability() bool {
	c.hapticsOnce.Do(func() { c.hapticsOK = c.hapticsProbe() })
	return c.hapticsOK
}

// probeAudio checks for a platform audio player on PATH
func probeAudio() bool {
	var players []string
	switch runtime.GOOS {
	case "darwin":
		players = []string{"afplay", "say"}
	case "linux":
		players = []string{"paplay", "aplay", "espeak", "spd-say"}
	case "windows":
		players = []string{"powershell"}
	default:
		return false
	}

	for _, player := range players {
		if _, err := exec.LookPath(player); err == nil {
			return true
		}
	}
	return false
}

// probeHaptics reports whether stdout is a terminal that can carry bell pulses
func probeHaptics() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
