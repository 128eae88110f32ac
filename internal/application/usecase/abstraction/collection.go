package abstraction

import (
	"context"

	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
)

type MediaCollection interface {
	MaxFiles() int
	Get(ctx context.Context, ref model.CollectionRef) (*model.MediaCollection, error)
	AddFiles(ctx context.Context, ref model.CollectionRef, t model.MediaType, files []entity.File,
		owner string) (entity.BatchResult, error)
	AddURL(ctx context.Context, ref model.CollectionRef, t model.MediaType, raw, owner string) ([]string, error)
	Delete(ctx context.Context, ref model.CollectionRef, t model.MediaType, target, owner string) ([]string, error)
}
