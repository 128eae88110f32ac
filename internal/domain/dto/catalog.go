package dto

import "hotelmedia/internal/domain/model"

type AvailabilityRequest struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Guests   int    `json:"guests"`
}

type RoomsResponse struct {
	Notice *Notice      `json:"notice,omitempty"`
	Rooms  []model.Room `json:"rooms"`
}
