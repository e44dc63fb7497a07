package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"fitick/internal/logging"
	"fitick/internal/ports"
)

// SQLiteKVStore implements ports.KeyValueStore using GORM
type SQLiteKVStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*SQLiteKVStore)(nil)

// gormLogger wraps the fitick logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FITICK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteKVStore opens (creating if needed) the blob store at dbPath
func NewSQLiteKVStore(dbPath string) (*SQLiteKVStore, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&KVEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteKVStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteKVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ports.KeyValueStore.Get
func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntryModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return entry.Value, true, nil
}

// Set implements ports.KeyValueStore.Set (upsert)
func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	entry := KVEntryModel{Key: key, Value: value}

	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).
			Create(&entry).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Remove implements ports.KeyValueStore.Remove. Removing an absent key is
// not an error.
func (s *SQLiteKVStore) Remove(ctx context.Context, key string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVEntryModel{}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
