package schema

import (
	"time"

	"gorm.io/datatypes"
)

// IndexBucket stores one bucket of the local secondary index.
// ObjectIDs holds a JSON array of object id strings in insertion order.
type IndexBucket struct {
	Bucket    string         `gorm:"primaryKey;type:text"`
	ObjectIDs datatypes.JSON `gorm:"column:object_ids;type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (IndexBucket) TableName() string {
	return "index_buckets"
}
