package abstraction

import (
	"context"

	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/model"
)

type Catalog interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) ([]model.Room, error)
}
