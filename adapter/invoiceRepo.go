package adapter

import (
	"fmt"
	"sync"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// invoiceRepo keeps issued invoices in memory, keyed by reservation ID.
type invoiceRepo struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
}

func InvoiceRepo() hotel.Repository[domain.Invoice] {
	return &invoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *invoiceRepo) Save(invoice *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invoices[invoice.ReservationID] = invoice
	return nil
}

func (r *invoiceRepo) Load(id hotel.ID) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.invoices[id.String()]
	if !ok {
		return nil, fmt.Errorf("no invoice issued for reservation %s: %w",
			id, domain.ErrNotFound)
	}
	return invoice, nil
}

func (r *invoiceRepo) Delete(id hotel.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.invoices, id.String())
	return nil
}
