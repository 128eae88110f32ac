package database

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelmedia/internal/domain/model"
)

type RoomLister struct {
	db *Database
}

func NewRoomLister(db *Database) *RoomLister {
	return &RoomLister{db: db}
}

// ListRooms returns every room ordered by title.
func (l *RoomLister) ListRooms(ctx context.Context) ([]model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.collection(RoomsCollection)

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		logger.Error("failed to retrieve rooms", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []model.Room{}
	if err = cursor.All(ctx, &rooms); err != nil {
		logger.Error("failed to decode rooms", "err", err)

		return nil, err
	}

	return rooms, nil
}

type BookingWriter struct {
	db *Database
}

func NewBookingWriter(db *Database) *BookingWriter {
	return &BookingWriter{db: db}
}

func (w *BookingWriter) WriteBookingRequest(ctx context.Context, req *model.BookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	_, err := w.db.collection(BookingsCollection).InsertOne(ctx, req)

	return err
}
