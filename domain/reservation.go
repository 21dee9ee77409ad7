package domain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ServiceCharge is a single extra charged to a reservation, such as breakfast
// or spa. On the wire it is a [name, price] pair.
type ServiceCharge struct {
	Name  string
	Price float64
}

func (c ServiceCharge) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Name, c.Price})
}

func (c *ServiceCharge) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("service charge must be a [name, price] pair, got %d elements", len(pair))
	}
	name, ok := pair[0].(string)
	if !ok {
		return fmt.Errorf("service charge name must be a string, got %T", pair[0])
	}
	price, ok := pair[1].(float64)
	if !ok {
		return fmt.Errorf("service charge price must be a number, got %T", pair[1])
	}
	c.Name = name
	c.Price = price
	return nil
}

// Reservation books a room for a guest over a stay period. It references its
// guest and room by identity; it does not own their lifecycle. The state
// machine is strictly Created, then CheckedIn, then CheckedOut.
type Reservation struct {
	reservationID string
	guest         *Guest
	room          *Room
	stay          StayPeriod
	checkedIn     bool
	checkedOut    bool
	services      []ServiceCharge
	totalCharges  float64
}

func newReservation(reservationID string, guest *Guest, room *Room, stay StayPeriod) *Reservation {
	return &Reservation{
		reservationID: reservationID,
		guest:         guest,
		room:          room,
		stay:          stay,
		services:      make([]ServiceCharge, 0),
		totalCharges:  room.Rate() * float64(stay.Nights()),
	}
}

func (r *Reservation) ReservationID() string {
	return r.reservationID
}

func (r *Reservation) Guest() *Guest {
	return r.guest
}

func (r *Reservation) Room() *Room {
	return r.room
}

func (r *Reservation) Stay() StayPeriod {
	return r.stay
}

func (r *Reservation) IsCheckedIn() bool {
	return r.checkedIn
}

func (r *Reservation) IsCheckedOut() bool {
	return r.checkedOut
}

// Services returns the ordered extras charged so far.
func (r *Reservation) Services() []ServiceCharge {
	services := make([]ServiceCharge, len(r.services))
	copy(services, r.services)
	return services
}

func (r *Reservation) TotalCharges() float64 {
	return r.totalCharges
}

// addService appends an extra and bumps the running total. There is no state
// restriction: extras can be charged before check-in and after check-out.
func (r *Reservation) addService(name string, price float64) {
	r.services = append(r.services, ServiceCharge{Name: name, Price: price})
	r.totalCharges += price
}

// calculateTotalCharges recomputes the total from the room rate and the
// accumulated service charges.
func (r *Reservation) calculateTotalCharges() float64 {
	total := r.room.Rate() * float64(r.stay.Nights())
	for _, s := range r.services {
		total += s.Price
	}
	return total
}

func (r *Reservation) String() string {
	checkedIn := "Not checked in"
	if r.checkedIn {
		checkedIn = "Checked in"
	}
	checkedOut := "Not checked out"
	if r.checkedOut {
		checkedOut = "Checked out"
	}
	return fmt.Sprintf("Reservation %s: %s in Room %s\nCheck-in: %s, Check-out: %s\nStatus: %s, %s\nTotal Charges: $%.2f",
		r.reservationID, r.guest.Name(), r.room.Number(),
		r.stay.CheckIn().Format(DateLayout), r.stay.CheckOut().Format(DateLayout),
		checkedIn, checkedOut, r.totalCharges)
}
