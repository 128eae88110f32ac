package abstraction

import (
	"context"

	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
)

type MediaManager interface {
	FetchMedia(ctx context.Context) ([]model.MediaItem, error)
	Upload(ctx context.Context, file entity.File, owner string) (entity.UploadResult, error)
	Delete(ctx context.Context, bucket, name, owner string) error
	Rename(ctx context.Context, bucket, oldName, newName, owner string) (bool, error)
}
