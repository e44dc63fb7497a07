package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"fitick/internal/config"
	"fitick/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Start     StartCmd     `cmd:"" help:"Start an interval workout (default)" default:"1"`
	History   HistoryCmd   `cmd:"history" help:"Browse and manage workout history"`
	Stats     StatsCmd     `cmd:"stats" help:"Show aggregate workout totals"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show or edit timer settings"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a notification cue (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FITICK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FITICK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export debug settings so child processes append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FITICK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FITICK_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FITICK_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container after logging is initialized so the gorm logger
	// bridge never sees a nil logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
