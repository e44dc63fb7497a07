package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fitick/internal/adapters/storage"
	"fitick/internal/domain"
	"fitick/internal/services"
	"fitick/test/integration/harness"
)

// seedHistory writes completed workouts straight into the test database,
// the same way a finished session would
func seedHistory(t *testing.T, env *harness.TestEnvironment, count int) []domain.WorkoutRecord {
	t.Helper()

	store, err := storage.NewSQLiteKVStore(env.DBPath())
	require.NoError(t, err)
	defer store.Close()

	recorder := services.NewRecorder(store, 100)

	cfg := domain.SessionConfig{
		WorkSeconds: 45,
		RestSeconds: 15,
		TotalSets:   8,
		Title:       "Work",
	}

	records := make([]domain.WorkoutRecord, 0, count)
	for i := 0; i < count; i++ {
		record, err := recorder.RecordCompletion(context.Background(), cfg, 8*time.Minute)
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}
