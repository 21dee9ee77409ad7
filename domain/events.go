package domain

// Event bodies raised by the Hotel aggregate.

type RoomAdded struct {
	RoomNumber string
	RoomType   string
	Rate       float64
}

type GuestRegistered struct {
	GuestID string
	Name    string
}

type ReservationMade struct {
	ReservationID string
	GuestID       string
	RoomNumber    string
	CheckIn       string
	CheckOut      string
	Nights        int
	TotalCharges  float64
}

type GuestCheckedIn struct {
	ReservationID string
	GuestID       string
	RoomNumber    string
}

type GuestCheckedOut struct {
	ReservationID string
	GuestID       string
	RoomNumber    string
	TotalCharges  float64
}

type ServiceCharged struct {
	ReservationID string
	Service       string
	Price         float64
}

type StateRestored struct {
	Rooms        int
	Guests       int
	Reservations int
}
