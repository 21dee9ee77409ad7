package application

import (
	"context"
	"fmt"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// DeskQueryService answers the front desk queries: availability, reservation
// listings, the in-house board and recent activity.
func DeskQueryService(h *domain.Hotel, board domain.InHouseBoard, log hotel.EventLog) hotel.QueryService {
	executor := func(ctx context.Context, query hotel.Query) (hotel.QueryResponse, error) {
		switch filter := query.Filter().(type) {
		case domain.AvailableRooms:
			stay, err := domain.ParseStayPeriod(filter.CheckIn, filter.CheckOut)
			if err != nil {
				return nil, err
			}
			return hotel.NewQueryResponse(roomRecords(h.AvailableRooms(stay))), nil

		case domain.AllReservations:
			return hotel.NewQueryResponse(reservationRecords(h.Reservations())), nil

		case domain.ReservationOfID:
			reservation, err := h.Reservation(filter.ReservationID)
			if err != nil {
				return nil, err
			}
			return hotel.NewQueryResponse(reservationRecord(reservation)), nil

		case domain.GuestsInHouse:
			return hotel.NewQueryResponse(board.InHouse()), nil

		case domain.RecentActivity:
			return hotel.NewQueryResponse(activity(log.Recent(filter.Limit))), nil

		default:
			return nil, fmt.Errorf("front desk does not answer %s", query.Type())
		}
	}
	return hotel.NewQueryService(executor,
		domain.AvailableRooms{},
		domain.AllReservations{},
		domain.ReservationOfID{},
		domain.GuestsInHouse{},
		domain.RecentActivity{},
	)
}

func roomRecords(rooms []*domain.Room) []domain.RoomRecord {
	records := make([]domain.RoomRecord, 0, len(rooms))
	for _, room := range rooms {
		records = append(records, domain.RoomRecord{
			RoomNumber:    room.Number(),
			RoomType:      room.RoomType().String(),
			PricePerNight: room.Rate(),
			IsOccupied:    room.IsOccupied(),
		})
	}
	return records
}

func reservationRecord(r *domain.Reservation) domain.ReservationRecord {
	return domain.ReservationRecord{
		ReservationID: r.ReservationID(),
		GuestID:       r.Guest().GuestID(),
		RoomNumber:    r.Room().Number(),
		CheckInDate:   r.Stay().CheckIn().Format(domain.DateLayout),
		CheckOutDate:  r.Stay().CheckOut().Format(domain.DateLayout),
		IsCheckedIn:   r.IsCheckedIn(),
		IsCheckedOut:  r.IsCheckedOut(),
		ServicesUsed:  r.Services(),
		TotalCharges:  r.TotalCharges(),
	}
}

func reservationRecords(reservations []*domain.Reservation) []domain.ReservationRecord {
	records := make([]domain.ReservationRecord, 0, len(reservations))
	for _, reservation := range reservations {
		records = append(records, reservationRecord(reservation))
	}
	return records
}

func activity(events []hotel.Event) []string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf("%s %s %v",
			event.TimeStamp().Format("2006-01-02 15:04:05"), shortEventType(event), event.Body()))
	}
	return lines
}

func shortEventType(event hotel.Event) string {
	eventType := event.Type()
	for i := len(eventType) - 1; i >= 0; i-- {
		if eventType[i] == '.' {
			return eventType[i+1:]
		}
	}
	return eventType
}
