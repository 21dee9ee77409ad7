package adapter

import (
	"sync"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// inHouseBoard projects check-in and check-out events onto the list of guests
// currently in the hotel.
type inHouseBoard struct {
	hotel.View
	h *domain.Hotel

	mu    sync.RWMutex
	store map[string]domain.InHouseGuest
	order []string
}

func InHouseBoard(h *domain.Hotel) domain.InHouseBoard {
	return &inHouseBoard{
		View:  hotel.NewView(domain.GuestCheckedIn{}, domain.GuestCheckedOut{}, domain.StateRestored{}),
		h:     h,
		store: make(map[string]domain.InHouseGuest),
	}
}

func (b *inHouseBoard) MutateWhen(event hotel.Event) error {
	switch event.Type() {
	case hotel.EventType(domain.GuestCheckedIn{}):
		body, err := hotel.MapEventBody(event, domain.GuestCheckedIn{})
		if err != nil {
			return err
		}
		return b.add(body)
	case hotel.EventType(domain.GuestCheckedOut{}):
		body, err := hotel.MapEventBody(event, domain.GuestCheckedOut{})
		if err != nil {
			return err
		}
		b.remove(body.ReservationID)
		return nil
	case hotel.EventType(domain.StateRestored{}):
		b.rebuild()
		return nil
	default:
		return nil
	}
}

// rebuild replaces the projection with the checked-in reservations of the
// restored state, dropping entries that predate the restore.
func (b *inHouseBoard) rebuild() {
	reservations := b.h.Reservations()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.store = make(map[string]domain.InHouseGuest)
	b.order = nil
	for _, reservation := range reservations {
		if !reservation.IsCheckedIn() || reservation.IsCheckedOut() {
			continue
		}
		b.order = append(b.order, reservation.ReservationID())
		b.store[reservation.ReservationID()] = domain.InHouseGuest{
			GuestID:       reservation.Guest().GuestID(),
			Name:          reservation.Guest().Name(),
			RoomNumber:    reservation.Room().Number(),
			ReservationID: reservation.ReservationID(),
		}
	}
}

func (b *inHouseBoard) add(checkIn domain.GuestCheckedIn) error {
	name := checkIn.GuestID
	if guest, err := b.h.Guest(checkIn.GuestID); err == nil {
		name = guest.Name()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.store[checkIn.ReservationID]; !ok {
		b.order = append(b.order, checkIn.ReservationID)
	}
	b.store[checkIn.ReservationID] = domain.InHouseGuest{
		GuestID:       checkIn.GuestID,
		Name:          name,
		RoomNumber:    checkIn.RoomNumber,
		ReservationID: checkIn.ReservationID,
	}
	return nil
}

func (b *inHouseBoard) remove(reservationID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.store[reservationID]; !ok {
		return
	}
	delete(b.store, reservationID)
	for i, id := range b.order {
		if id == reservationID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// InHouse lists in-house guests in check-in order.
func (b *inHouseBoard) InHouse() []domain.InHouseGuest {
	b.mu.RLock()
	defer b.mu.RUnlock()

	guests := make([]domain.InHouseGuest, 0, len(b.order))
	for _, id := range b.order {
		guests = append(guests, b.store[id])
	}
	return guests
}
