package application

import (
	"context"
	"fmt"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// Billing issues and keeps the invoices of checked-out stays. Invoices are
// issued by the invoicing policy reacting to check-out events.
type Billing struct {
	h        *domain.Hotel
	invoices hotel.Repository[domain.Invoice]
}

func NewBilling(h *domain.Hotel, invoices hotel.Repository[domain.Invoice]) *Billing {
	return &Billing{h: h, invoices: invoices}
}

// Invoice returns the issued invoice of a reservation.
func (b *Billing) Invoice(reservationID string) (domain.Invoice, error) {
	invoice, err := b.invoices.Load(hotel.NewID(reservationID))
	if err != nil {
		return domain.Invoice{}, err
	}
	return *invoice, nil
}

func (b *Billing) issue(reservationID string) error {
	invoice, err := b.h.BuildInvoice(reservationID)
	if err != nil {
		return err
	}
	return b.invoices.Save(&invoice)
}

// CommandService handles invoice issuing.
func (b *Billing) CommandService() hotel.CommandService {
	executor := func(ctx context.Context, cmd hotel.Command) error {
		switch body := cmd.Body().(type) {
		case domain.IssueInvoice:
			return b.issue(body.ReservationID)
		default:
			return fmt.Errorf("billing does not handle %s", cmd.Type())
		}
	}
	return hotel.NewCommandService(executor, domain.IssueInvoice{})
}

// QueryService answers invoice lookups.
func (b *Billing) QueryService() hotel.QueryService {
	executor := func(ctx context.Context, query hotel.Query) (hotel.QueryResponse, error) {
		switch filter := query.Filter().(type) {
		case domain.InvoiceOf:
			invoice, err := b.Invoice(filter.ReservationID)
			if err != nil {
				return nil, err
			}
			return hotel.NewQueryResponse(invoice), nil
		default:
			return nil, fmt.Errorf("billing does not answer %s", query.Type())
		}
	}
	return hotel.NewQueryService(executor, domain.InvoiceOf{})
}
