package abstraction

import "context"

type BucketEnsurer interface {
	EnsureBucketExists(ctx context.Context, name string) error
}
