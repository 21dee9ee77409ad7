package adapter

import (
	"testing"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepo_SaveAndLoad(t *testing.T) {
	repo := InvoiceRepo()
	invoice := &domain.Invoice{ReservationID: "RES-1", GuestName: "John Doe", Total: 215}

	require.NoError(t, repo.Save(invoice))

	loaded, err := repo.Load(hotel.NewID("RES-1"))
	require.NoError(t, err)
	assert.Equal(t, invoice, loaded)
}

func TestInvoiceRepo_LoadMissing(t *testing.T) {
	_, err := InvoiceRepo().Load(hotel.NewID("RES-9"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceRepo_Delete(t *testing.T) {
	repo := InvoiceRepo()
	require.NoError(t, repo.Save(&domain.Invoice{ReservationID: "RES-1"}))
	require.NoError(t, repo.Delete(hotel.NewID("RES-1")))

	_, err := repo.Load(hotel.NewID("RES-1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
