package domain

import (
	"fmt"

	hotel "github.com/paulvitic/hotel-go"
)

// invoicing issues an invoice for every stay that checks out.
type invoicing struct {
	hotel.Policy
}

func Invoicing() hotel.Policy {
	return &invoicing{hotel.NewPolicy(GuestCheckedOut{})}
}

func (p *invoicing) When(event hotel.Event) (hotel.Command, error) {
	switch event.Type() {
	case hotel.EventType(GuestCheckedOut{}):
		body, err := hotel.MapEventBody(event, GuestCheckedOut{})
		if err != nil {
			return nil, err
		}
		return hotel.NewCommand(IssueInvoice{ReservationID: body.ReservationID}), nil
	default:
		return nil, fmt.Errorf("invoicing policy does not handle %s", event.Type())
	}
}
