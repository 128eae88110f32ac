package storage

import (
	"context"
	"io"

	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SortColumn string

const (
	SortByName      SortColumn = "name"
	SortByCreatedAt SortColumn = "created_at"
)

type ListOptions struct {
	Limit     int
	Offset    int
	SortBy    SortColumn
	Order     SortOrder
	Recursive bool
}

type UploadOptions struct {
	ContentType  string
	CacheControl string
	Upsert       bool
}

type Lister interface {
	List(ctx context.Context, bucket, prefix string, opts ListOptions) ([]model.Object, error)
}

type Uploader interface {
	Upload(ctx context.Context, bucket, name string, body io.Reader, size int64,
		opts UploadOptions) (entity.UploadResult, error)
}

type Mover interface {
	Move(ctx context.Context, bucket, oldName, newName string) error
}

type Remover interface {
	Remove(ctx context.Context, bucket string, names ...string) error
}

type URLResolver interface {
	PublicURL(bucket, name string) string
	// ObjectName recovers the object name from a public URL of bucket.
	ObjectName(bucket, url string) (string, bool)
}
