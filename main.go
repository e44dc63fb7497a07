package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"fitick/internal/cmd"
	"fitick/internal/config"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "Interval training timer for the terminal"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("fitick %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	// Load settings from ~/.fitick/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("fitick"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
