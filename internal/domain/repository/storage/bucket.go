package storage

import (
	"context"

	"hotelmedia/internal/domain/model"
)

type BucketLister interface {
	ListBuckets(ctx context.Context) ([]model.Bucket, error)
}

type BucketCreator interface {
	CreateBucket(ctx context.Context, name string, policy model.BucketPolicy) error
}
