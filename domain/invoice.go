package domain

import (
	"fmt"
	"strings"
)

// InvoiceLine is one charged item on an invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is the itemized bill of a reservation: the room charges followed by
// every service charge, in the order they were added.
type Invoice struct {
	ReservationID string        `json:"reservation_id"`
	GuestName     string        `json:"guest_name"`
	RoomNumber    string        `json:"room_number"`
	Nights        int           `json:"nights"`
	Lines         []InvoiceLine `json:"lines"`
	Total         float64       `json:"total"`
}

// BuildInvoice renders the itemized bill of a reservation.
func (h *Hotel) BuildInvoice(reservationID string) (Invoice, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	reservation, ok := h.reservations[reservationID]
	if !ok {
		return Invoice{}, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	nights := reservation.Stay().Nights()
	lines := []InvoiceLine{{
		Description: fmt.Sprintf("Room %s (%d nights at $%.2f)",
			reservation.Room().Number(), nights, reservation.Room().Rate()),
		Amount: reservation.Room().Rate() * float64(nights),
	}}
	for _, service := range reservation.services {
		lines = append(lines, InvoiceLine{Description: service.Name, Amount: service.Price})
	}

	return Invoice{
		ReservationID: reservationID,
		GuestName:     reservation.Guest().Name(),
		RoomNumber:    reservation.Room().Number(),
		Nights:        nights,
		Lines:         lines,
		Total:         reservation.calculateTotalCharges(),
	}, nil
}

func (i Invoice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice for %s - %s\n", i.ReservationID, i.GuestName)
	for _, line := range i.Lines {
		fmt.Fprintf(&b, "  %-40s $%8.2f\n", line.Description, line.Amount)
	}
	fmt.Fprintf(&b, "  %-40s $%8.2f", "Total", i.Total)
	return b.String()
}
