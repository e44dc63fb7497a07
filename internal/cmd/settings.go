package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"fitick/internal/config"
	"fitick/internal/domain"
	"fitick/internal/logging"
)

// SettingsCmd shows or edits the timer settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show the settings file location and effective values (default)" default:"1"`
	Edit SettingsEditCmd `cmd:"edit" help:"Edit settings interactively"`
}

// SettingsShowCmd displays the effective configuration
type SettingsShowCmd struct {
	Format string `help:"Output format" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	path, err := config.SettingsPath()
	if err != nil {
		return err
	}
	settings := cli.settings

	work := settings.EffectiveWorkTime()
	rest := settings.EffectiveRestTime()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file":     path,
			"work_time":         fmt.Sprintf("%d:%02d", work.Minutes, work.Seconds),
			"rest_time":         fmt.Sprintf("%d:%02d", rest.Minutes, rest.Seconds),
			"sets":              settings.EffectiveSets(),
			"title":             settings.EffectiveTitle(),
			"sound_enabled":     settings.EffectiveSoundEnabled(),
			"voice_enabled":     settings.EffectiveVoiceEnabled(),
			"vibration_enabled": settings.EffectiveVibrationEnabled(),
			"volume":            settings.EffectiveVolume(),
			"keep_screen_on":    settings.EffectiveKeepScreenOn(),
			"max_records":       settings.EffectiveMaxRecords(),
			"db_path":           config.GetDBPath(settings),
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", path)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "work_time\t%d:%02d\n", work.Minutes, work.Seconds)
	fmt.Fprintf(w, "rest_time\t%d:%02d\n", rest.Minutes, rest.Seconds)
	fmt.Fprintf(w, "sets\t%d\n", settings.EffectiveSets())
	fmt.Fprintf(w, "title\t%s\n", settings.EffectiveTitle())
	fmt.Fprintf(w, "sound_enabled\t%t\n", settings.EffectiveSoundEnabled())
	fmt.Fprintf(w, "voice_enabled\t%t\n", settings.EffectiveVoiceEnabled())
	fmt.Fprintf(w, "vibration_enabled\t%t\n", settings.EffectiveVibrationEnabled())
	fmt.Fprintf(w, "volume\t%d\n", settings.EffectiveVolume())
	fmt.Fprintf(w, "keep_screen_on\t%t\n", settings.EffectiveKeepScreenOn())
	fmt.Fprintf(w, "max_records\t%d\n", settings.EffectiveMaxRecords())
	fmt.Fprintf(w, "db_path\t%s\n", config.GetDBPath(settings))
	w.Flush()

	fmt.Println()
	fmt.Println("Edit with 'fitick settings edit', or change the file directly.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsEditCmd edits the stored settings through a form
type SettingsEditCmd struct{}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	settings := cli.settings

	workTime := settings.EffectiveWorkTime()
	restTime := settings.EffectiveRestTime()
	work := fmt.Sprintf("%d:%02d", workTime.Minutes, workTime.Seconds)
	rest := fmt.Sprintf("%d:%02d", restTime.Minutes, restTime.Seconds)
	sets := strconv.Itoa(settings.EffectiveSets())
	title := settings.EffectiveTitle()
	volume := strconv.Itoa(settings.EffectiveVolume())
	sound := settings.EffectiveSoundEnabled()
	voice := settings.EffectiveVoiceEnabled()
	vibration := settings.EffectiveVibrationEnabled()
	keepAwake := settings.EffectiveKeepScreenOn()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work interval").
				Description("M:SS or plain seconds").
				Value(&work).
				Validate(validateInterval),
			huh.NewInput().
				Title("Rest interval").
				Description("M:SS or plain seconds").
				Value(&rest).
				Validate(validateInterval),
			huh.NewInput().
				Title("Sets").
				Value(&sets).
				Validate(validateSets),
			huh.NewInput().
				Title("Workout title").
				Value(&title),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Sound cues").Value(&sound),
			huh.NewConfirm().Title("Voice cues").Value(&voice),
			huh.NewConfirm().Title("Haptic pulses").Value(&vibration),
			huh.NewConfirm().Title("Keep screen on").Value(&keepAwake),
			huh.NewInput().
				Title("Volume").
				Description("0-100").
				Value(&volume).
				Validate(validateVolume),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("settings edit cancelled: %w", err)
	}

	workSeconds, _ := parseInterval(work)
	restSeconds, _ := parseInterval(rest)
	setsValue, _ := strconv.Atoi(sets)
	volumeValue, _ := strconv.Atoi(volume)

	workPair := pairFromSeconds(workSeconds)
	restPair := pairFromSeconds(restSeconds)
	settings.WorkTime = &workPair
	settings.RestTime = &restPair
	settings.Sets = &setsValue
	settings.Title = title
	settings.SoundEnabled = &sound
	settings.VoiceEnabled = &voice
	settings.VibrationEnabled = &vibration
	settings.KeepScreenOn = &keepAwake
	settings.Volume = &volumeValue

	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	logging.Logger.Info("Settings saved",
		"work_seconds", workSeconds,
		"rest_seconds", restSeconds,
		"sets", setsValue)
	fmt.Println("Settings saved.")
	return nil
}

func pairFromSeconds(seconds int) config.TimePair {
	duration := domain.FromSeconds(seconds)
	return config.TimePair{Minutes: duration.Minutes, Seconds: duration.Seconds}
}

func validateInterval(value string) error {
	seconds, err := parseInterval(value)
	if err != nil {
		return err
	}
	if seconds == 0 {
		return fmt.Errorf("interval must be at least one second")
	}
	return nil
}

func validateSets(value string) error {
	sets, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected a number")
	}
	if sets < domain.MinSets || sets > domain.MaxSets {
		return fmt.Errorf("sets must be between %d and %d", domain.MinSets, domain.MaxSets)
	}
	return nil
}

func validateVolume(value string) error {
	volume, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected a number")
	}
	if volume < 0 || volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	return nil
}
