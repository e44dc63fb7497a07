package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"fitick/internal/domain"
	"fitick/internal/logging"
	"fitick/internal/ui"
)

// HistoryCmd manages the workout history
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"Browse workout history interactively (default)" default:"1"`
	Del    HistoryDelCmd    `cmd:"del" help:"Delete a workout record by ID"`
	Clear  HistoryClearCmd  `cmd:"clear" help:"Remove all workout records"`
	Export HistoryExportCmd `cmd:"export" help:"Export workout history to YAML or JSON"`
}

// HistoryListCmd opens the interactive history browser
type HistoryListCmd struct{}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	model := ui.NewHistoryModel(cli.Container.Recorder)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history browser: %w", err)
	}
	return nil
}

// HistoryDelCmd deletes a single record
type HistoryDelCmd struct {
	ID string `arg:"" help:"ID of the record to delete"`
}

// Run executes the del command
func (h *HistoryDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Deleting workout record", "id", h.ID)
	if err := cli.Container.Recorder.Delete(context.Background(), h.ID); err != nil {
		return err
	}
	fmt.Printf("Record '%s' deleted\n", h.ID)
	return nil
}

// HistoryClearCmd removes the whole history
type HistoryClearCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

// Run executes the clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	records, err := cli.Container.Recorder.History(context.Background())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("History is already empty")
		return nil
	}

	if !h.Force {
		fmt.Printf("WARNING: this will delete all %d workout records\n", len(records))
		fmt.Print("Continue? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.Recorder.Clear(context.Background()); err != nil {
		return err
	}
	logging.Logger.Info("Workout history cleared", "records", len(records))
	fmt.Printf("Removed %d records\n", len(records))
	return nil
}

// HistoryExportCmd writes the history to a file or stdout
type HistoryExportCmd struct {
	Format string `help:"Output format" enum:"yaml,json" default:"yaml"`
	Output string `help:"Output file (stdout when omitted)" short:"o"`
}

// exportRecord is the export shape, with the timestamp expanded to RFC 3339
type exportRecord struct {
	ID              string `yaml:"id" json:"id"`
	Title           string `yaml:"title" json:"title"`
	CompletedAt     string `yaml:"completed_at" json:"completed_at"`
	DurationSeconds int    `yaml:"duration_seconds" json:"duration_seconds"`
	Sets            int    `yaml:"sets" json:"sets"`
	WorkSeconds     int    `yaml:"work_seconds" json:"work_seconds"`
	RestSeconds     int    `yaml:"rest_seconds" json:"rest_seconds"`
}

// Run executes the export command
func (h *HistoryExportCmd) Run(cli *CLI) error {
	records, err := cli.Container.Recorder.History(context.Background())
	if err != nil {
		return err
	}

	export := make([]exportRecord, 0, len(records))
	for _, record := range records {
		export = append(export, exportRecord{
			ID:              record.ID,
			Title:           record.Title,
			CompletedAt:     time.UnixMilli(record.Timestamp).Format(time.RFC3339),
			DurationSeconds: record.DurationSeconds,
			Sets:            record.Sets,
			WorkSeconds:     record.WorkSeconds,
			RestSeconds:     record.RestSeconds,
		})
	}

	var data []byte
	switch h.Format {
	case "json":
		data, err = json.MarshalIndent(export, "", "  ")
	default:
		data, err = yaml.Marshal(export)
	}
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if h.Output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(h.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported %d records to %s\n", len(export), h.Output)
	return nil
}

// totalsLine renders the one-line aggregate used by stats and exports
func totalsLine(stats domain.HistoryStats) string {
	return fmt.Sprintf("%d workouts, %s total",
		stats.TotalWorkouts, domain.FormatLong(stats.TotalTimeSeconds))
}
