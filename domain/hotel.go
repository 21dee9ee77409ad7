package domain

import (
	"fmt"
	"sync"

	hotel "github.com/paulvitic/hotel-go"
)

// Hotel is the aggregate root owning all rooms, guests and reservations. All
// mutating operations are read-modify-write atomic under one mutex, and a
// failed operation leaves the state untouched. Registries iterate in
// insertion order.
type Hotel struct {
	hotel.Aggregate
	mu sync.RWMutex

	name              string
	rooms             map[string]*Room
	roomNumbers       []string
	guests            map[string]*Guest
	guestIDs          []string
	reservations      map[string]*Reservation
	reservationIDs    []string
	nextReservationID int
}

func NewHotel(name string) *Hotel {
	return &Hotel{
		Aggregate:         hotel.NewAggregate(hotel.NewID(name), Hotel{}),
		name:              name,
		rooms:             make(map[string]*Room),
		guests:            make(map[string]*Guest),
		reservations:      make(map[string]*Reservation),
		nextReservationID: 1,
	}
}

func (h *Hotel) Name() string {
	return h.name
}

// AddRoom registers a room under its number.
func (h *Hotel) AddRoom(room *Room) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.rooms[room.Number()]; exists {
		return fmt.Errorf("room %s already exists: %w", room.Number(), ErrDuplicateKey)
	}
	h.rooms[room.Number()] = room
	h.roomNumbers = append(h.roomNumbers, room.Number())

	h.RaiseEvent(h.AggregateType(), h.ID(), RoomAdded{
		RoomNumber: room.Number(),
		RoomType:   room.RoomType().String(),
		Rate:       room.Rate(),
	})
	return nil
}

// RegisterGuest registers a guest under their ID.
func (h *Hotel) RegisterGuest(guest *Guest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.guests[guest.GuestID()]; exists {
		return fmt.Errorf("guest %s already exists: %w", guest.GuestID(), ErrDuplicateKey)
	}
	h.guests[guest.GuestID()] = guest
	h.guestIDs = append(h.guestIDs, guest.GuestID())

	h.RaiseEvent(h.AggregateType(), h.ID(), GuestRegistered{
		GuestID: guest.GuestID(),
		Name:    guest.Name(),
	})
	return nil
}

// MakeReservation books a room for a guest over the stay. A room marked
// occupied blocks any new reservation regardless of the requested dates, and
// the stay must not overlap an existing reservation on the same room under
// half-open interval semantics. Reservation IDs are assigned sequentially as
// RES-{n}.
func (h *Hotel) MakeReservation(guestID, roomNumber string, stay StayPeriod) (*Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	guest, ok := h.guests[guestID]
	if !ok {
		return nil, fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
	}
	room, ok := h.rooms[roomNumber]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", roomNumber, ErrNotFound)
	}

	if room.IsOccupied() {
		return nil, fmt.Errorf("room %s is already occupied: %w", roomNumber, ErrConflict)
	}

	for _, id := range h.reservationIDs {
		existing := h.reservations[id]
		if existing.Room().Number() != roomNumber {
			continue
		}
		if stay.Overlaps(existing.Stay()) {
			return nil, fmt.Errorf("room %s is not available for %s: %w", roomNumber, stay, ErrConflict)
		}
	}

	reservationID := fmt.Sprintf("RES-%d", h.nextReservationID)
	h.nextReservationID++

	reservation := newReservation(reservationID, guest, room, stay)
	h.reservations[reservationID] = reservation
	h.reservationIDs = append(h.reservationIDs, reservationID)

	h.RaiseEvent(h.AggregateType(), h.ID(), ReservationMade{
		ReservationID: reservationID,
		GuestID:       guestID,
		RoomNumber:    roomNumber,
		CheckIn:       stay.CheckIn().Format(DateLayout),
		CheckOut:      stay.CheckOut().Format(DateLayout),
		Nights:        stay.Nights(),
		TotalCharges:  reservation.TotalCharges(),
	})
	return reservation, nil
}

// CheckIn marks the reservation as checked in and the room as occupied.
func (h *Hotel) CheckIn(reservationID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	reservation, ok := h.reservations[reservationID]
	if !ok {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	if reservation.checkedIn {
		return fmt.Errorf("reservation %s is already checked in: %w", reservationID, ErrInvalidState)
	}

	reservation.checkedIn = true
	reservation.room.occupied = true

	h.RaiseEvent(h.AggregateType(), h.ID(), GuestCheckedIn{
		ReservationID: reservationID,
		GuestID:       reservation.Guest().GuestID(),
		RoomNumber:    reservation.Room().Number(),
	})
	return nil
}

// CheckOut marks the reservation as checked out, frees the room and
// recomputes the total from the room rate and accumulated services.
func (h *Hotel) CheckOut(reservationID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	reservation, ok := h.reservations[reservationID]
	if !ok {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	if !reservation.checkedIn {
		return fmt.Errorf("reservation %s is not checked in: %w", reservationID, ErrInvalidState)
	}
	if reservation.checkedOut {
		return fmt.Errorf("reservation %s is already checked out: %w", reservationID, ErrInvalidState)
	}

	reservation.checkedOut = true
	reservation.room.occupied = false
	reservation.totalCharges = reservation.calculateTotalCharges()

	h.RaiseEvent(h.AggregateType(), h.ID(), GuestCheckedOut{
		ReservationID: reservationID,
		GuestID:       reservation.Guest().GuestID(),
		RoomNumber:    reservation.Room().Number(),
		TotalCharges:  reservation.totalCharges,
	})
	return nil
}

// AddService charges an extra to the reservation. Callable in any reservation
// state.
func (h *Hotel) AddService(reservationID, name string, price float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	reservation, ok := h.reservations[reservationID]
	if !ok {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	reservation.addService(name, price)

	h.RaiseEvent(h.AggregateType(), h.ID(), ServiceCharged{
		ReservationID: reservationID,
		Service:       name,
		Price:         price,
	})
	return nil
}

// AvailableRooms lists rooms that are not occupied and have no reservation
// overlapping the requested stay, in registration order.
func (h *Hotel) AvailableRooms(stay StayPeriod) []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	available := make([]*Room, 0, len(h.roomNumbers))
	for _, number := range h.roomNumbers {
		room := h.rooms[number]
		if room.IsOccupied() {
			continue
		}
		if h.hasOverlap(number, stay) {
			continue
		}
		available = append(available, room)
	}
	return available
}

func (h *Hotel) hasOverlap(roomNumber string, stay StayPeriod) bool {
	for _, id := range h.reservationIDs {
		reservation := h.reservations[id]
		if reservation.Room().Number() == roomNumber && stay.Overlaps(reservation.Stay()) {
			return true
		}
	}
	return false
}

// Reservation resolves a reservation by ID.
func (h *Hotel) Reservation(reservationID string) (*Reservation, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	reservation, ok := h.reservations[reservationID]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	return reservation, nil
}

// Guest resolves a guest by ID.
func (h *Hotel) Guest(guestID string) (*Guest, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	guest, ok := h.guests[guestID]
	if !ok {
		return nil, fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
	}
	return guest, nil
}

// Reservations lists all reservations in creation order.
func (h *Hotel) Reservations() []*Reservation {
	h.mu.RLock()
	defer h.mu.RUnlock()

	reservations := make([]*Reservation, 0, len(h.reservationIDs))
	for _, id := range h.reservationIDs {
		reservations = append(reservations, h.reservations[id])
	}
	return reservations
}

// Rooms lists all rooms in registration order.
func (h *Hotel) Rooms() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rooms := make([]*Room, 0, len(h.roomNumbers))
	for _, number := range h.roomNumbers {
		rooms = append(rooms, h.rooms[number])
	}
	return rooms
}

// Guests lists all guests in registration order.
func (h *Hotel) Guests() []*Guest {
	h.mu.RLock()
	defer h.mu.RUnlock()

	guests := make([]*Guest, 0, len(h.guestIDs))
	for _, id := range h.guestIDs {
		guests = append(guests, h.guests[id])
	}
	return guests
}
