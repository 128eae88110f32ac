package model

import "time"

type Room struct {
	ID          string  `bson:"_id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Capacity    int     `bson:"capacity" json:"capacity"`
}

// Fits reports whether the room takes guests. A zero capacity means unknown.
func (r Room) Fits(guests int) bool {
	return r.Capacity == 0 || r.Capacity >= guests
}

type BookingRequest struct {
	ID        string    `bson:"_id"`
	Checkin   time.Time `bson:"checkin"`
	Checkout  time.Time `bson:"checkout"`
	Guests    int       `bson:"guests"`
	CreatedAt time.Time `bson:"created_at"`
}
