package domain

// Commands handled by the front desk service.

type AddRoom struct {
	RoomNumber string
	RoomType   string
	Rate       float64
}

// RegisterGuest registers a guest. When GuestID is empty one is generated.
type RegisterGuest struct {
	GuestID string
	Name    string
	Email   string
	Phone   string
}

// MakeReservation books a room for a guest. Dates are YYYY-MM-DD.
type MakeReservation struct {
	GuestID    string
	RoomNumber string
	CheckIn    string
	CheckOut   string
}

type CheckInGuest struct {
	ReservationID string
}

type CheckOutGuest struct {
	ReservationID string
}

type AddServiceCharge struct {
	ReservationID string
	Service       string
	Price         float64
}

// Commands handled by the billing service.

type IssueInvoice struct {
	ReservationID string
}

// Commands handled by the persistence service.

type SaveState struct {
	Path string
}

type LoadState struct {
	Path string
}
