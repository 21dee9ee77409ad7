package adapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
	hotelhttp "github.com/paulvitic/hotel-go/http"
)

// HTTP endpoints of the front desk. Each one translates the request into a
// command or query and dispatches it through the context's buses.

func RoomsEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		var body domain.AddRoom
		if err := decodeBody(from, &body); err != nil {
			return nil, err
		}
		return hotel.NewCommand(body), nil
	}
	return hotelhttp.NewCommandEndpoint("/rooms", []string{http.MethodPost}, translator)
}

func GuestsEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		var body domain.RegisterGuest
		if err := decodeBody(from, &body); err != nil {
			return nil, err
		}
		return hotel.NewCommand(body), nil
	}
	return hotelhttp.NewCommandEndpoint("/guests", []string{http.MethodPost}, translator)
}

func ReservationsEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		var body domain.MakeReservation
		if err := decodeBody(from, &body); err != nil {
			return nil, err
		}
		return hotel.NewCommand(body), nil
	}
	return hotelhttp.NewCommandEndpoint("/reservations", []string{http.MethodPost}, translator)
}

func CheckInEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		return hotel.NewCommand(domain.CheckInGuest{ReservationID: mux.Vars(from)["id"]}), nil
	}
	return hotelhttp.NewCommandEndpoint("/reservations/{id}/check-in",
		[]string{http.MethodPost}, translator)
}

func CheckOutEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		return hotel.NewCommand(domain.CheckOutGuest{ReservationID: mux.Vars(from)["id"]}), nil
	}
	return hotelhttp.NewCommandEndpoint("/reservations/{id}/check-out",
		[]string{http.MethodPost}, translator)
}

func ServicesEndpoint() *hotelhttp.CommandEndpoint {
	translator := func(from *http.Request) (hotel.Command, error) {
		var body domain.AddServiceCharge
		if err := decodeBody(from, &body); err != nil {
			return nil, err
		}
		body.ReservationID = mux.Vars(from)["id"]
		return hotel.NewCommand(body), nil
	}
	return hotelhttp.NewCommandEndpoint("/reservations/{id}/services",
		[]string{http.MethodPost}, translator)
}

func AvailabilityEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		checkIn := from.URL.Query().Get("check_in")
		checkOut := from.URL.Query().Get("check_out")
		if checkIn == "" || checkOut == "" {
			return nil, fmt.Errorf("check_in and check_out query parameters are required")
		}
		return hotel.NewQuery(domain.AvailableRooms{CheckIn: checkIn, CheckOut: checkOut}), nil
	}
	return hotelhttp.NewQueryEndpoint("/rooms/available", translator)
}

func ReservationListEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		return hotel.NewQuery(domain.AllReservations{}), nil
	}
	return hotelhttp.NewQueryEndpoint("/reservations", translator)
}

func ReservationEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		return hotel.NewQuery(domain.ReservationOfID{ReservationID: mux.Vars(from)["id"]}), nil
	}
	return hotelhttp.NewQueryEndpoint("/reservations/{id}", translator)
}

func InHouseEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		return hotel.NewQuery(domain.GuestsInHouse{}), nil
	}
	return hotelhttp.NewQueryEndpoint("/guests/in-house", translator)
}

func InvoiceEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		return hotel.NewQuery(domain.InvoiceOf{ReservationID: mux.Vars(from)["id"]}), nil
	}
	return hotelhttp.NewQueryEndpoint("/reservations/{id}/invoice", translator)
}

func ActivityEndpoint() *hotelhttp.QueryEndpoint {
	translator := func(from *http.Request) (hotel.Query, error) {
		limit := 10
		if raw := from.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid limit %q", raw)
			}
			limit = parsed
		}
		return hotel.NewQuery(domain.RecentActivity{Limit: limit}), nil
	}
	return hotelhttp.NewQueryEndpoint("/activity", translator)
}

func decodeBody(from *http.Request, into any) error {
	defer from.Body.Close()
	if err := json.NewDecoder(from.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}
