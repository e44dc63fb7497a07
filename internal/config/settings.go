package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default timer values, matching the out-of-the-box workout
// (20 seconds work, 10 seconds rest, 8 sets).
const (
	DefaultWorkMinutes  = 0
	DefaultWorkSeconds  = 20
	DefaultRestMinutes  = 0
	DefaultRestSeconds  = 10
	DefaultSets         = 8
	DefaultVolume       = 80
	DefaultMaxRecords   = 4
	DefaultWorkoutTitle = "Work"
)

// TimePair is a minutes/seconds pair as edited in the settings UI
type TimePair struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Settings represents the structure of ~/.fitick/settings.json
type Settings struct {
	DBPath      string `json:"db_path,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	MaxRecords  *int   `json:"max_records,omitempty"`

	// Timer defaults
	WorkTime     *TimePair `json:"work_time,omitempty"`
	RestTime     *TimePair `json:"rest_time,omitempty"`
	Sets         *int      `json:"sets,omitempty"`
	KeepScreenOn *bool     `json:"keep_screen_on,omitempty"`
	Title        string    `json:"title,omitempty"`

	// Audio and haptic preferences
	SoundEnabled     *bool `json:"sound_enabled,omitempty"`
	VoiceEnabled     *bool `json:"voice_enabled,omitempty"`
	VibrationEnabled *bool `json:"vibration_enabled,omitempty"`
	Volume           *int  `json:"volume,omitempty"`
}

// SettingsPath returns the path of the settings file, honoring the
// FITICK_HOME override used by tests and the SSH server
func SettingsPath() (string, error) {
	if home := os.Getenv("FITICK_HOME"); home != "" {
		return filepath.Join(home, "settings.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fitick", "settings.json"), nil
}

// LoadSettings loads settings from ~/.fitick/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFromFile(path)
}

// LoadSettingsFromFile loads settings from an explicit path
func LoadSettingsFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = expandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings writes settings to ~/.fitick/settings.json
func SaveSettings(settings *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Effective value accessors apply defaults for unset fields.

func (s *Settings) EffectiveWorkTime() TimePair {
	if s.WorkTime != nil {
		return *s.WorkTime
	}
	return TimePair{Minutes: DefaultWorkMinutes, Seconds: DefaultWorkSeconds}
}

func (s *Settings) EffectiveRestTime() TimePair {
	if s.RestTime != nil {
		return *s.RestTime
	}
	return TimePair{Minutes: DefaultRestMinutes, Seconds: DefaultRestSeconds}
}

func (s *Settings) EffectiveSets() int {
	if s.Sets != nil {
		return *s.Sets
	}
	return DefaultSets
}

func (s *Settings) EffectiveKeepScreenOn() bool {
	if s.KeepScreenOn != nil {
		return *s.KeepScreenOn
	}
	return true
}

func (s *Settings) EffectiveTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return DefaultWorkoutTitle
}

func (s *Settings) EffectiveSoundEnabled() bool {
	if s.SoundEnabled != nil {
		return *s.SoundEnabled
	}
	return true
}

func (s *Settings) EffectiveVoiceEnabled() bool {
	if s.VoiceEnabled != nil {
		return *s.VoiceEnabled
	}
	return true
}

func (s *Settings) EffectiveVibrationEnabled() bool {
	if s.VibrationEnabled != nil {
		return *s.VibrationEnabled
	}
	return true
}

// EffectiveVolume clamps the configured volume to [0,100]
func (s *Settings) EffectiveVolume() int {
	if s.Volume == nil {
		return DefaultVolume
	}
	v := *s.Volume
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (s *Settings) EffectiveMaxRecords() int {
	if s.MaxRecords != nil && *s.MaxRecords > 0 {
		return *s.MaxRecords
	}
	return DefaultMaxRecords
}

// GetDBPath returns the workout history database path, honoring the
// FITICK_HOME override used by tests and the SSH server
func GetDBPath(settings *Settings) string {
	if settings != nil && settings.DBPath != "" {
		return settings.DBPath
	}
	if home := os.Getenv("FITICK_HOME"); home != "" {
		return filepath.Join(home, "history.db")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(homeDir, ".fitick", "history.db")
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
