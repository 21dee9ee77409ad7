package domain

import "fmt"

// Snapshot is the full persistent state of a Hotel. Rooms, guests and
// reservations are flattened; reservations reference their guest and room by
// id only.
type Snapshot struct {
	Name              string              `json:"name"`
	NextReservationID int                 `json:"next_reservation_id"`
	Rooms             []RoomRecord        `json:"rooms"`
	Guests            []GuestRecord       `json:"guests"`
	Reservations      []ReservationRecord `json:"reservations"`
}

type RoomRecord struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsOccupied    bool    `json:"is_occupied"`
}

type GuestRecord struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ReservationRecord struct {
	ReservationID string          `json:"reservation_id"`
	GuestID       string          `json:"guest_id"`
	RoomNumber    string          `json:"room_number"`
	CheckInDate   string          `json:"check_in_date"`
	CheckOutDate  string          `json:"check_out_date"`
	IsCheckedIn   bool            `json:"is_checked_in"`
	IsCheckedOut  bool            `json:"is_checked_out"`
	ServicesUsed  []ServiceCharge `json:"services_used"`
	TotalCharges  float64         `json:"total_charges"`
}

// Snapshot captures the current state for persistence.
func (h *Hotel) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	snap := Snapshot{
		Name:              h.name,
		NextReservationID: h.nextReservationID,
		Rooms:             make([]RoomRecord, 0, len(h.roomNumbers)),
		Guests:            make([]GuestRecord, 0, len(h.guestIDs)),
		Reservations:      make([]ReservationRecord, 0, len(h.reservationIDs)),
	}

	for _, number := range h.roomNumbers {
		room := h.rooms[number]
		snap.Rooms = append(snap.Rooms, RoomRecord{
			RoomNumber:    room.Number(),
			RoomType:      room.RoomType().String(),
			PricePerNight: room.Rate(),
			IsOccupied:    room.IsOccupied(),
		})
	}

	for _, id := range h.guestIDs {
		guest := h.guests[id]
		snap.Guests = append(snap.Guests, GuestRecord{
			GuestID: guest.GuestID(),
			Name:    guest.Name(),
			Email:   guest.Email(),
			Phone:   guest.Phone(),
		})
	}

	for _, id := range h.reservationIDs {
		reservation := h.reservations[id]
		snap.Reservations = append(snap.Reservations, ReservationRecord{
			ReservationID: reservation.ReservationID(),
			GuestID:       reservation.Guest().GuestID(),
			RoomNumber:    reservation.Room().Number(),
			CheckInDate:   reservation.Stay().CheckIn().Format(DateLayout),
			CheckOutDate:  reservation.Stay().CheckOut().Format(DateLayout),
			IsCheckedIn:   reservation.IsCheckedIn(),
			IsCheckedOut:  reservation.IsCheckedOut(),
			ServicesUsed:  reservation.Services(),
			TotalCharges:  reservation.TotalCharges(),
		})
	}

	return snap
}

// Restore replaces the aggregate state with the snapshot's. Rooms and guests
// are rebuilt first, then every reservation is re-linked to its guest and
// room by id; a dangling reference fails the whole restore and leaves the
// previous state in place.
func (h *Hotel) Restore(snap Snapshot) error {
	restored, err := restore(snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.name = restored.name
	h.rooms = restored.rooms
	h.roomNumbers = restored.roomNumbers
	h.guests = restored.guests
	h.guestIDs = restored.guestIDs
	h.reservations = restored.reservations
	h.reservationIDs = restored.reservationIDs
	h.nextReservationID = restored.nextReservationID
	h.mu.Unlock()

	h.RaiseEvent(h.AggregateType(), h.ID(), StateRestored{
		Rooms:        len(snap.Rooms),
		Guests:       len(snap.Guests),
		Reservations: len(snap.Reservations),
	})
	return nil
}

// HotelFromSnapshot builds a fresh aggregate from a snapshot.
func HotelFromSnapshot(snap Snapshot) (*Hotel, error) {
	restored, err := restore(snap)
	if err != nil {
		return nil, err
	}
	h := NewHotel(restored.name)
	h.rooms = restored.rooms
	h.roomNumbers = restored.roomNumbers
	h.guests = restored.guests
	h.guestIDs = restored.guestIDs
	h.reservations = restored.reservations
	h.reservationIDs = restored.reservationIDs
	h.nextReservationID = restored.nextReservationID
	return h, nil
}

type restoredState struct {
	name              string
	rooms             map[string]*Room
	roomNumbers       []string
	guests            map[string]*Guest
	guestIDs          []string
	reservations      map[string]*Reservation
	reservationIDs    []string
	nextReservationID int
}

func restore(snap Snapshot) (*restoredState, error) {
	state := &restoredState{
		name:              snap.Name,
		rooms:             make(map[string]*Room),
		guests:            make(map[string]*Guest),
		reservations:      make(map[string]*Reservation),
		nextReservationID: snap.NextReservationID,
	}

	for _, record := range snap.Rooms {
		room, err := NewRoom(record.RoomNumber, RoomType(record.RoomType), record.PricePerNight)
		if err != nil {
			return nil, err
		}
		room.occupied = record.IsOccupied
		state.rooms[room.Number()] = room
		state.roomNumbers = append(state.roomNumbers, room.Number())
	}

	for _, record := range snap.Guests {
		guest := NewGuest(record.GuestID, record.Name, record.Email, record.Phone)
		state.guests[guest.GuestID()] = guest
		state.guestIDs = append(state.guestIDs, guest.GuestID())
	}

	for _, record := range snap.Reservations {
		guest, ok := state.guests[record.GuestID]
		if !ok {
			return nil, fmt.Errorf("reservation %s references unknown guest %s: %w",
				record.ReservationID, record.GuestID, ErrNotFound)
		}
		room, ok := state.rooms[record.RoomNumber]
		if !ok {
			return nil, fmt.Errorf("reservation %s references unknown room %s: %w",
				record.ReservationID, record.RoomNumber, ErrNotFound)
		}
		stay, err := ParseStayPeriod(record.CheckInDate, record.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("reservation %s: %w", record.ReservationID, err)
		}

		reservation := newReservation(record.ReservationID, guest, room, stay)
		reservation.checkedIn = record.IsCheckedIn
		reservation.checkedOut = record.IsCheckedOut
		reservation.services = append(reservation.services, record.ServicesUsed...)
		reservation.totalCharges = record.TotalCharges

		state.reservations[reservation.ReservationID()] = reservation
		state.reservationIDs = append(state.reservationIDs, reservation.ReservationID())
	}

	return state, nil
}
