package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tutorhub/internal/model"
)

// snapshotRecord is the single-row table the document is stored in. The
// blob keeps the same JSON layout as the file backend, so switching
// backends never changes the stored shape.
type snapshotRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Data      []byte    `gorm:"type:longblob;not null"`
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// MySQLStore keeps the snapshot as a one-row blob table through GORM.
type MySQLStore struct {
	db *gorm.DB
}

var _ Store = (*MySQLStore)(nil)

// NewMySQLStore connects, migrates the snapshots table and returns the store.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

// Load reads and decodes the single row. An empty table is not an error.
func (s *MySQLStore) Load(ctx context.Context) (*model.Snapshot, error) {
	var rec snapshotRecord
	err := s.db.WithContext(ctx).First(&rec, 1).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save upserts the single row with the serialized snapshot.
func (s *MySQLStore) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	rec := snapshotRecord{ID: 1, Data: data}
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
