package database

import (
	"context"
	"errors"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelmedia/internal/domain/model"
)

type CollectionStore struct {
	db *Database
}

func NewCollectionStore(db *Database) *CollectionStore {
	return &CollectionStore{db: db}
}

func (s *CollectionStore) GetCollection(ctx context.Context, ref model.CollectionRef) (*model.MediaCollection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.collection(CollectionsCollection)

	var c model.MediaCollection
	err := coll.FindOne(ctx, bson.M{"_id": ref.Key()}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.NewMediaCollection(ref), nil
	}
	if err != nil {
		logger.Error("failed to retrieve media collection", "key", ref.Key(), "err", err)

		return nil, err
	}

	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Videos == nil {
		c.Videos = []string{}
	}

	return &c, nil
}

func (s *CollectionStore) ReplaceList(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	urls []string,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	field := "images"
	if t == model.MediaVideo {
		field = "videos"
	}

	if urls == nil {
		urls = []string{}
	}

	coll := s.db.collection(CollectionsCollection)
	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": ref.Key()},
		bson.M{
			"$set": bson.M{field: urls, "updated_at": time.Now().UTC()},
			"$setOnInsert": bson.M{
				"kind":      ref.Kind,
				"entity_id": ref.EntityID,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Error("failed to write media collection", "key", ref.Key(), "field", field, "err", err)

		return err
	}

	return nil
}
