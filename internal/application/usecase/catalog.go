package usecase

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"

	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/database"
)

const (
	MinGuests = 1
	MaxGuests = 10

	dateLayout = "2006-01-02"
)

type Catalog struct {
	rooms    database.RoomLister
	bookings database.BookingWriter
	now      func() time.Time
}

func NewCatalog(rooms database.RoomLister, bookings database.BookingWriter) *Catalog {
	return &Catalog{
		rooms:    rooms,
		bookings: bookings,
		now:      time.Now,
	}
}

func (c *Catalog) ListRooms(ctx context.Context) ([]model.Room, error) {
	return c.rooms.ListRooms(ctx)
}

// CheckAvailability records the request and returns the rooms that take the party.
func (c *Catalog) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) ([]model.Room, error) {
	checkin, err := time.Parse(dateLayout, req.Checkin)
	if err != nil {
		return nil, ErrInvalidDates
	}

	checkout, err := time.Parse(dateLayout, req.Checkout)
	if err != nil {
		return nil, ErrInvalidDates
	}

	now := c.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if checkin.Before(today) {
		return nil, ErrCheckinInPast
	}

	if checkout.Before(checkin) {
		return nil, ErrCheckoutBeforeCheckin
	}

	if req.Guests < MinGuests || req.Guests > MaxGuests {
		return nil, ErrGuestCountOutOfBounds
	}

	if err := c.bookings.WriteBookingRequest(ctx, &model.BookingRequest{
		ID:        uuid.NewString(),
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    req.Guests,
		CreatedAt: now,
	}); err != nil {
		logger.Error("failed to record booking request", "err", err)

		return nil, err
	}

	rooms, err := c.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	fitting := make([]model.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Fits(req.Guests) {
			fitting = append(fitting, r)
		}
	}

	return fitting, nil
}
