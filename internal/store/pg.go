package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/suitter-labs/suitter-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a PostgreSQL-backed KVStore
func NewPGStore(db *gorm.DB) KVStore {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables used by the PostgreSQL store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.IndexBucket{}); err != nil {
		return fmt.Errorf("failed to migrate index buckets: %w", err)
	}
	return nil
}

// ConfigureConnectionPool applies pool settings to the underlying *sql.DB.
// Zero values fall back to 20 open / 5 idle connections, 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Get retrieves a bucket's raw value
func (s *pgStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row schema.IndexBucket
	err := s.db.WithContext(ctx).Where("bucket = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get bucket %s: %w", key, err)
	}

	return string(row.ObjectIDs), true, nil
}

// Set upserts a bucket's raw value
func (s *pgStore) Set(ctx context.Context, key string, value string) error {
	row := schema.IndexBucket{
		Bucket:    key,
		ObjectIDs: datatypes.JSON(value),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bucket"}},
			DoUpdates: clause.AssignmentColumns([]string{"object_ids", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set bucket %s: %w", key, err)
	}

	return nil
}

// Keys lists bucket names with the given prefix
func (s *pgStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&schema.IndexBucket{}).
		Where("bucket LIKE ?", likePrefix(prefix)).
		Order("bucket").
		Pluck("bucket", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	return keys, nil
}

// DeletePrefix deletes every bucket with the given prefix
func (s *pgStore) DeletePrefix(ctx context.Context, prefix string) error {
	err := s.db.WithContext(ctx).
		Where("bucket LIKE ?", likePrefix(prefix)).
		Delete(&schema.IndexBucket{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete buckets: %w", err)
	}

	return nil
}

// likePrefix escapes LIKE wildcards; bucket names contain underscores
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
