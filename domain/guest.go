package domain

import "fmt"

// Guest is a registered hotel guest, keyed by guest ID. Immutable after
// registration.
type Guest struct {
	guestID string
	name    string
	email   string
	phone   string
}

func NewGuest(guestID, name, email, phone string) *Guest {
	return &Guest{
		guestID: guestID,
		name:    name,
		email:   email,
		phone:   phone,
	}
}

func (g *Guest) GuestID() string {
	return g.guestID
}

func (g *Guest) Name() string {
	return g.name
}

func (g *Guest) Email() string {
	return g.email
}

func (g *Guest) Phone() string {
	return g.phone
}

func (g *Guest) String() string {
	return fmt.Sprintf("Guest %s: %s, Email: %s, Phone: %s", g.guestID, g.name, g.email, g.phone)
}
