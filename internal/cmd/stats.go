package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitick/internal/domain"
)

// StatsCmd shows aggregate workout totals
type StatsCmd struct {
	Format string `help:"Output format" enum:"table,plain" default:"table"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	records, err := cli.Container.Recorder.History(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load workout history: %w", err)
	}

	stats := domain.TotalStats(records)

	if s.Format == "plain" {
		fmt.Println(totalsLine(stats))
		return nil
	}

	fmt.Println("Workout Stats")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No workouts recorded yet.")
		return nil
	}

	fmt.Printf("Workouts    %d\n", stats.TotalWorkouts)
	fmt.Printf("Total time  %s\n", domain.FormatLong(stats.TotalTimeSeconds))
	fmt.Println()

	fmt.Println("Recent")
	fmt.Println(strings.Repeat("─", 45))
	for _, record := range records {
		date := domain.FormatDateLabel(time.UnixMilli(record.Timestamp), time.Now())
		fmt.Printf("%-16s %-20s %s\n",
			record.Title, date, domain.FormatCompact(record.DurationSeconds))
	}

	return nil
}
