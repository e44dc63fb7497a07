package cmd

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fitick/internal/config"
	"fitick/internal/lockfile"
	"fitick/internal/logging"
	"fitick/internal/ui"
)

// StartCmd runs a countdown session in the terminal
type StartCmd struct {
	Work  string `help:"Work interval as M:SS or plain seconds (overrides settings)" short:"w"`
	Rest  string `help:"Rest interval as M:SS or plain seconds (overrides settings)" short:"r"`
	Sets  int    `help:"Number of sets (overrides settings)" short:"s"`
	Title string `help:"Workout title (overrides settings)"`

	Volume      int  `help:"Cue volume 0-100 (overrides settings)" default:"-1"`
	NoSound     bool `help:"Disable sound cues for this session"`
	NoVoice     bool `help:"Disable voice cues for this session"`
	NoVibration bool `help:"Disable haptic pulses for this session"`
	KeepAwake   bool `help:"Keep the display awake during the session (overrides settings)"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	cfg := config.NewSessionConfig(cli.settings)

	if s.Work != "" {
		seconds, err := parseInterval(s.Work)
		if err != nil {
			return fmt.Errorf("invalid --work value: %w", err)
		}
		cfg.WorkSeconds = seconds
	}
	if s.Rest != "" {
		seconds, err := parseInterval(s.Rest)
		if err != nil {
			return fmt.Errorf("invalid --rest value: %w", err)
		}
		cfg.RestSeconds = seconds
	}
	if s.Sets != 0 {
		cfg.TotalSets = s.Sets
	}
	if s.Title != "" {
		cfg.Title = s.Title
	}
	if s.Volume >= 0 {
		cfg.Volume = s.Volume
	}
	if s.NoSound {
		cfg.SoundEnabled = false
	}
	if s.NoVoice {
		cfg.VoiceEnabled = false
	}
	if s.NoVibration {
		cfg.VibrationEnabled = false
	}
	if s.KeepAwake {
		cfg.KeepScreenOn = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// One session per machine: the audio channel and the wake inhibitor
	// are process-wide resources
	lock, err := lockfile.Acquire()
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.Logger.Warn("Failed to release session lock", "error", err)
		}
	}()

	if cfg.KeepScreenOn {
		if err := cli.Container.Waker.Acquire(); err != nil {
			logging.Logger.Warn("Failed to inhibit display sleep", "error", err)
		}
		defer func() {
			if err := cli.Container.Waker.Release(); err != nil {
				logging.Logger.Warn("Failed to release display inhibitor", "error", err)
			}
		}()
	}

	dispatcher := cli.Container.NewDispatcher()
	defer func() {
		if err := dispatcher.Close(); err != nil {
			logging.Logger.Warn("Failed to drain effects", "error", err)
		}
	}()

	logging.Logger.Info("Starting workout session",
		"work_seconds", cfg.WorkSeconds,
		"rest_seconds", cfg.RestSeconds,
		"sets", cfg.TotalSets)

	model := ui.NewTimerModel(cfg, dispatcher, cli.Container.Recorder)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run timer: %w", err)
	}
	return nil
}

// parseInterval parses "M:SS" or plain seconds into a second count
func parseInterval(value string) (int, error) {
	if minutes, seconds, found := strings.Cut(value, ":"); found {
		m, err := strconv.Atoi(minutes)
		if err != nil {
			return 0, fmt.Errorf("bad minutes in %q", value)
		}
		s, err := strconv.Atoi(seconds)
		if err != nil || s < 0 || s > 59 {
			return 0, fmt.Errorf("bad seconds in %q", value)
		}
		if m < 0 {
			return 0, fmt.Errorf("negative minutes in %q", value)
		}
		return m*60 + s, nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("expected M:SS or seconds, got %q", value)
	}
	return seconds, nil
}
