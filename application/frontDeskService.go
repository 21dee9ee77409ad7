package application

import (
	"context"
	"fmt"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// StateStore persists and restores the full hotel state. Implemented by the
// file adapter.
type StateStore interface {
	Write(path string, snap domain.Snapshot) error
	Read(path string) (domain.Snapshot, error)
}

// frontDeskService executes the catalog, reservation and persistence commands
// against the hotel aggregate.
type frontDeskService struct {
	hotel.CommandService
}

func (s *frontDeskService) addRoom(h *domain.Hotel, cmd domain.AddRoom) error {
	room, err := domain.NewRoom(cmd.RoomNumber, domain.RoomType(cmd.RoomType), cmd.Rate)
	if err != nil {
		return err
	}
	return h.AddRoom(room)
}

func (s *frontDeskService) registerGuest(h *domain.Hotel, cmd domain.RegisterGuest) error {
	guestID := cmd.GuestID
	if guestID == "" {
		guestID = hotel.GenerateUUID().String()
	}
	return h.RegisterGuest(domain.NewGuest(guestID, cmd.Name, cmd.Email, cmd.Phone))
}

func (s *frontDeskService) makeReservation(h *domain.Hotel, cmd domain.MakeReservation) error {
	stay, err := domain.ParseStayPeriod(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return err
	}
	_, err = h.MakeReservation(cmd.GuestID, cmd.RoomNumber, stay)
	return err
}

func (s *frontDeskService) saveState(h *domain.Hotel, store StateStore, cmd domain.SaveState) error {
	return store.Write(cmd.Path, h.Snapshot())
}

func (s *frontDeskService) loadState(h *domain.Hotel, store StateStore, cmd domain.LoadState) error {
	snap, err := store.Read(cmd.Path)
	if err != nil {
		return err
	}
	return h.Restore(snap)
}

func frontDeskExecutor(service *frontDeskService, h *domain.Hotel, store StateStore) hotel.CommandExecutor {
	return func(ctx context.Context, cmd hotel.Command) error {
		var err error

		switch body := cmd.Body().(type) {
		case domain.AddRoom:
			err = service.addRoom(h, body)
		case domain.RegisterGuest:
			err = service.registerGuest(h, body)
		case domain.MakeReservation:
			err = service.makeReservation(h, body)
		case domain.CheckInGuest:
			err = h.CheckIn(body.ReservationID)
		case domain.CheckOutGuest:
			err = h.CheckOut(body.ReservationID)
		case domain.AddServiceCharge:
			err = h.AddService(body.ReservationID, body.Service, body.Price)
		case domain.SaveState:
			err = service.saveState(h, store, body)
		case domain.LoadState:
			err = service.loadState(h, store, body)
		default:
			err = fmt.Errorf("front desk does not handle %s", cmd.Type())
		}

		if err != nil {
			return err
		}
		return service.DispatchFrom(ctx, h)
	}
}

// FrontDeskService creates the command service for the hotel aggregate.
func FrontDeskService(h *domain.Hotel, store StateStore) hotel.CommandService {
	service := &frontDeskService{}
	service.CommandService = hotel.NewCommandService(
		frontDeskExecutor(service, h, store),
		domain.AddRoom{},
		domain.RegisterGuest{},
		domain.MakeReservation{},
		domain.CheckInGuest{},
		domain.CheckOutGuest{},
		domain.AddServiceCharge{},
		domain.SaveState{},
		domain.LoadState{},
	)
	return service
}
