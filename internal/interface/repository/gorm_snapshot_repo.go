package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personalityai-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// GormSnapshotStore implements the SnapshotStore interface on an embedded
// SQLite database, one row per key
type GormSnapshotStore struct {
	db *gorm.DB
}

// NewGormSnapshotStore creates a new GORM-backed snapshot store
func NewGormSnapshotStore(db *gorm.DB) (repository.SnapshotStore, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshots table: %w", err)
	}
	return &GormSnapshotStore{db: db}, nil
}

// Load reads the full document stored under key
func (s *GormSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Save upserts the document stored under key
func (s *GormSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	row := snapshotRow{Key: key, Value: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
