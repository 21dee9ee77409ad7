package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulvitic/hotel-go/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedHotel(t *testing.T) *domain.Hotel {
	t.Helper()
	h := domain.NewHotel("Grand Hotel")

	room, err := domain.NewRoom("101", domain.Single, 100)
	require.NoError(t, err)
	require.NoError(t, h.AddRoom(room))
	require.NoError(t, h.RegisterGuest(
		domain.NewGuest("G001", "John Doe", "john@example.com", "555-0101")))

	stay, err := domain.ParseStayPeriod("2026-09-01", "2026-09-03")
	require.NoError(t, err)
	_, err = h.MakeReservation("G001", "101", stay)
	require.NoError(t, err)

	h.Events()
	return h
}

func TestFileStore_RoundTrip(t *testing.T) {
	h := populatedHotel(t)
	store := FileStore()
	path := filepath.Join(t.TempDir(), "hotel_data.json")

	require.NoError(t, store.Write(path, h.Snapshot()))

	snap, err := store.Read(path)
	require.NoError(t, err)

	restored, err := domain.HotelFromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, "Grand Hotel", restored.Name())
	assert.Len(t, restored.Rooms(), 1)
	assert.Len(t, restored.Guests(), 1)

	reservation, err := restored.Reservation("RES-1")
	require.NoError(t, err)
	assert.Equal(t, "G001", reservation.Guest().GuestID())
}

func TestFileStore_CreatesDataDirectory(t *testing.T) {
	h := populatedHotel(t)
	store := FileStore()
	path := filepath.Join(t.TempDir(), "data", "nested", "hotel_data.json")

	require.NoError(t, store.Write(path, h.Snapshot()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_ReadMissingFile(t *testing.T) {
	_, err := FileStore().Read(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFileStore_ReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := FileStore().Read(path)
	assert.Error(t, err)
}
