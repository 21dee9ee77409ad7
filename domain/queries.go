package domain

import hotel "github.com/paulvitic/hotel-go"

// Query filters.

// AvailableRooms lists rooms free for the requested stay. Dates are
// YYYY-MM-DD.
type AvailableRooms struct {
	CheckIn  string
	CheckOut string
}

type AllReservations struct{}

type ReservationOfID struct {
	ReservationID string
}

type GuestsInHouse struct{}

type InvoiceOf struct {
	ReservationID string
}

type RecentActivity struct {
	Limit int
}

// InHouseGuest is a line of the in-house guests board.
type InHouseGuest struct {
	GuestID       string `json:"guest_id"`
	Name          string `json:"name"`
	RoomNumber    string `json:"room_number"`
	ReservationID string `json:"reservation_id"`
}

// InHouseBoard is the read model of guests currently checked in. It is only
// mutated by check-in and check-out events.
type InHouseBoard interface {
	hotel.View
	InHouse() []InHouseGuest
}
