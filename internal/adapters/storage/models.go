package storage

import "time"

// KVEntryModel is the GORM model for the kv_entries table. The workout
// history lives here as one JSON blob under a fixed key.
type KVEntryModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (KVEntryModel) TableName() string { return "kv_entries" }
