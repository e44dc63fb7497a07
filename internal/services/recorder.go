package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitick/internal/domain"
	"fitick/internal/logging"
	"fitick/internal/ports"
)

// historyKey is the blob key holding the full record list
const historyKey = "workout_records"

// Recorder persists completed workouts. The whole history lives behind a
// single key as one JSON array, newest first, capped at maxRecords.
type Recorder struct {
	store      ports.KeyValueStore
	maxRecords int

	now   func() time.Time
	newID func() string
}

// NewRecorder creates a recorder capped at maxRecords entries
func NewRecorder(store ports.KeyValueStore, maxRecords int) *Recorder {
	return &Recorder{
		store:      store,
		maxRecords: maxRecords,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// RecordCompletion builds a record for a finished workout and prepends it to
// the history, truncating to the cap. elapsed is wall-clock time including
// pauses, which is what the user experienced.
func (r *Recorder) RecordCompletion(ctx context.Context, cfg domain.SessionConfig, elapsed time.Duration) (domain.WorkoutRecord, error) {
	now := r.now()
	record := domain.WorkoutRecord{
		ID:              r.newID(),
		Title:           domain.FormatWorkoutTitle(cfg.WorkSeconds, cfg.RestSeconds, cfg.TotalSets),
		DateLabel:       domain.FormatDateLabel(now, now),
		DurationSeconds: int(elapsed.Seconds()),
		Sets:            cfg.TotalSets,
		WorkSeconds:     cfg.WorkSeconds,
		RestSeconds:     cfg.RestSeconds,
		Timestamp:       now.UnixMilli(),
	}

	records, err := r.History(ctx)
	if err != nil {
		// A corrupt or unreadable history must not lose the new record
		logging.Logger.Warn("Failed to load history, starting a fresh list", "error", err)
		records = nil
	}

	records = append([]domain.WorkoutRecord{record}, records...)
	if len(records) > r.maxRecords {
		records = records[:r.maxRecords]
	}

	if err := r.save(ctx, records); err != nil {
		return domain.WorkoutRecord{}, fmt.Errorf("failed to save workout record: %w", err)
	}
	return record, nil
}

// History returns the stored records, newest first
func (r *Recorder) History(ctx context.Context) ([]domain.WorkoutRecord, error) {
	blob, found, err := r.store.Get(ctx, historyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout history: %w", err)
	}
	if !found || blob == "" {
		return nil, nil
	}

	var records []domain.WorkoutRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("failed to decode workout history: %w", err)
	}
	return records, nil
}

// Delete removes the record with the given ID. Unknown IDs are an error so
// the caller can tell the user nothing was deleted.
func (r *Recorder) Delete(ctx context.Context, id string) error {
	records, err := r.History(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("no workout record with id %q", id)
	}
	return r.save(ctx, kept)
}

// Clear removes the whole history
func (r *Recorder) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, historyKey); err != nil {
		return fmt.Errorf("failed to clear workout history: %w", err)
	}
	return nil
}

// Stats folds the stored history into aggregate totals
func (r *Recorder) Stats(ctx context.Context) (domain.HistoryStats, error) {
	records, err := r.History(ctx)
	if err != nil {
		return domain.HistoryStats{}, err
	}
	return domain.TotalStats(records), nil
}

func (r *Recorder) save(ctx context.Context, records []domain.WorkoutRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode workout history: %w", err)
	}
	return r.store.Set(ctx, historyKey, string(blob))
}
