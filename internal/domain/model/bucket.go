package model

import "time"

type Bucket struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BucketPolicy is applied once when a bucket is created.
type BucketPolicy struct {
	Public           bool
	AllowedMimeTypes []string
	FileSizeLimit    int64
}

const DefaultBucketSizeLimit = 50 * 1024 * 1024

func DefaultBucketPolicy() BucketPolicy {
	return BucketPolicy{
		Public:           true,
		AllowedMimeTypes: []string{"image/*", "video/*"},
		FileSizeLimit:    DefaultBucketSizeLimit,
	}
}
