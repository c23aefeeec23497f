package blob

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type blobRow struct {
	Key  string `gorm:"primaryKey;column:key"`
	Data []byte `gorm:"column:data"`
}

func (blobRow) TableName() string { return "blobs" }

// SQLiteStore keeps blobs in a single key/value table. The schema is
// migrated on open.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("migrate blobs table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var row blobRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, fmt.Errorf("load blob %s: %w", key, err)
	}
	return row.Data, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, data []byte) error {
	err := s.db.WithContext(ctx).Save(&blobRow{Key: key, Data: data}).Error
	if err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
