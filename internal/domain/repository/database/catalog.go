package database

import (
	"context"

	"hotelmedia/internal/domain/model"
)

type RoomLister interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
}

type BookingWriter interface {
	WriteBookingRequest(ctx context.Context, req *model.BookingRequest) error
}
