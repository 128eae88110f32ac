package usecase

import (
	"context"

	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/storage"
)

type BucketEnsurer struct {
	lister  storage.BucketLister
	creator storage.BucketCreator
	policy  model.BucketPolicy
}

func NewBucketEnsurer(lister storage.BucketLister, creator storage.BucketCreator) *BucketEnsurer {
	return &BucketEnsurer{
		lister:  lister,
		creator: creator,
		policy:  model.DefaultBucketPolicy(),
	}
}

// EnsureBucketExists creates name with the fixed media policy unless it is already there.
// Losing a creation race to another caller counts as success.
func (e *BucketEnsurer) EnsureBucketExists(ctx context.Context, name string) error {
	buckets, err := e.lister.ListBuckets(ctx)
	if err != nil {
		return asPermission(err, "listing buckets")
	}

	for _, b := range buckets {
		if b.Name == name {
			return nil
		}
	}

	err = e.creator.CreateBucket(ctx, name, e.policy)
	if err == nil || isAlreadyExists(err) {
		return nil
	}

	return asPermission(err, "creating bucket "+name)
}
