package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoSnapshot is returned by Load when no document exists under the key.
var ErrNoSnapshot = errors.New("snapshot not found")

// SnapshotStore keeps one JSON document per record set, keyed the same way
// the ledgers name their sets. The ledgers treat it as best-effort: the
// in-memory state stays authoritative even when a save fails.
type SnapshotStore struct {
	db *gorm.DB
}

type snapshotModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Document  []byte    `gorm:"column:document"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotModel) TableName() string { return "snapshots" }

func NewSnapshotStore(db *gorm.DB) (*SnapshotStore, error) {
	if err := db.AutoMigrate(&snapshotModel{}); err != nil {
		return nil, err
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Load(ctx context.Context, key string, v any) error {
	var m snapshotModel
	tx := s.db.WithContext(ctx).First(&m, "key = ?", key)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return ErrNoSnapshot
		}
		return tx.Error
	}
	return json.Unmarshal(m.Document, v)
}

func (s *SnapshotStore) Save(ctx context.Context, key string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m := snapshotModel{Key: key, Document: doc, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&m).Error
}
