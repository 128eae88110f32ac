package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionsCollection = "media_collections"
	RoomsCollection       = "rooms"
	BookingsCollection    = "booking_requests"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

// Connect pings the server and creates the validated collections on first start.
func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	for _, initFn := range []func(*Database) error{initCollectionsCollection, initBookingsCollection} {
		if err := initFn(db); err != nil {
			_ = client.Disconnect(context.Background())

			return nil, err
		}
	}

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func exists(ctx context.Context, db *Database, name string) (bool, error) {
	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}

	return len(collections) > 0, nil
}

func initCollectionsCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	ok, err := exists(ctx, db, CollectionsCollection)
	if err != nil || ok {
		return err
	}

	urls := bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "kind", "entity_id"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string"},
				"kind":       bson.M{"enum": []string{"service", "gallery"}},
				"entity_id":  bson.M{"bsonType": "string", "minLength": 1},
				"images":     urls,
				"videos":     urls,
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, CollectionsCollection, collOpts); err != nil {
		return err
	}

	_, err = db.collection(CollectionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "kind", Value: 1}, {Key: "entity_id", Value: 1}},
	})

	return err
}

func initBookingsCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	ok, err := exists(ctx, db, BookingsCollection)
	if err != nil || ok {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "checkin", "checkout", "guests", "created_at"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string"},
				"checkin":    bson.M{"bsonType": "date"},
				"checkout":   bson.M{"bsonType": "date"},
				"guests":     bson.M{"bsonType": []string{"int", "long"}, "minimum": 1, "maximum": 10},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, BookingsCollection, collOpts); err != nil {
		return err
	}

	_, err = db.collection(BookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
