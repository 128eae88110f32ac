package database

import (
	"context"

	"hotelmedia/internal/domain/model"
)

type CollectionRetriever interface {
	// GetCollection returns an empty collection when ref has none stored yet.
	GetCollection(ctx context.Context, ref model.CollectionRef) (*model.MediaCollection, error)
}

type CollectionWriter interface {
	// ReplaceList stores urls as the complete list of type t for ref.
	ReplaceList(ctx context.Context, ref model.CollectionRef, t model.MediaType, urls []string) error
}
