package domain

import "fmt"

type RoomType string

const (
	Single RoomType = "Single"
	Double RoomType = "Double"
	Suite  RoomType = "Suite"
)

func (t RoomType) String() string {
	return string(t)
}

// Room is a bookable unit of the hotel, keyed by its room number. Occupancy
// is mutated only by check-in and check-out.
type Room struct {
	number   string
	roomType RoomType
	rate     float64
	occupied bool
}

// NewRoom creates a vacant room. The nightly rate must not be negative.
func NewRoom(number string, roomType RoomType, rate float64) (*Room, error) {
	if rate < 0 {
		return nil, fmt.Errorf("room %s: nightly rate must not be negative: %w", number, ErrValidation)
	}
	return &Room{
		number:   number,
		roomType: roomType,
		rate:     rate,
	}, nil
}

func (r *Room) Number() string {
	return r.number
}

func (r *Room) RoomType() RoomType {
	return r.roomType
}

// Rate returns the price per night.
func (r *Room) Rate() float64 {
	return r.rate
}

func (r *Room) IsOccupied() bool {
	return r.occupied
}

func (r *Room) String() string {
	status := "Available"
	if r.occupied {
		status = "Occupied"
	}
	return fmt.Sprintf("Room %s - Type: %s, Price: $%.2f/night, Status: %s",
		r.number, r.roomType, r.rate, status)
}
