package adapter

import (
	"context"
	"testing"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkedInHotel(t *testing.T) (*domain.Hotel, domain.InHouseBoard) {
	t.Helper()
	h := populatedHotel(t)
	board := InHouseBoard(h)

	eventBus := hotel.NewEventBus(hotel.NewCommandBus())
	require.NoError(t, eventBus.RegisterView(board))

	require.NoError(t, h.CheckIn("RES-1"))
	require.NoError(t, eventBus.DispatchFrom(context.Background(), h))
	return h, board
}

func TestInHouseBoard_CheckInAddsGuest(t *testing.T) {
	_, board := checkedInHotel(t)

	guests := board.InHouse()
	require.Len(t, guests, 1)
	assert.Equal(t, "G001", guests[0].GuestID)
	assert.Equal(t, "John Doe", guests[0].Name)
	assert.Equal(t, "101", guests[0].RoomNumber)
	assert.Equal(t, "RES-1", guests[0].ReservationID)
}

func TestInHouseBoard_CheckOutRemovesGuest(t *testing.T) {
	h, board := checkedInHotel(t)

	eventBus := hotel.NewEventBus(hotel.NewCommandBus())
	require.NoError(t, eventBus.RegisterView(board))

	require.NoError(t, h.CheckOut("RES-1"))
	require.NoError(t, eventBus.DispatchFrom(context.Background(), h))

	assert.Empty(t, board.InHouse())
}

func TestInHouseBoard_RestoreRebuildsBoard(t *testing.T) {
	h, _ := checkedInHotel(t)
	snap := h.Snapshot()

	other := domain.NewHotel("Grand Hotel")
	board := InHouseBoard(other)
	eventBus := hotel.NewEventBus(hotel.NewCommandBus())
	require.NoError(t, eventBus.RegisterView(board))

	require.NoError(t, other.Restore(snap))
	require.NoError(t, eventBus.DispatchFrom(context.Background(), other))

	guests := board.InHouse()
	require.Len(t, guests, 1)
	assert.Equal(t, "John Doe", guests[0].Name)
	assert.Equal(t, "101", guests[0].RoomNumber)
	assert.Equal(t, "RES-1", guests[0].ReservationID)
}

func TestInHouseBoard_RestoreClearsStaleEntries(t *testing.T) {
	h, board := checkedInHotel(t)
	require.Len(t, board.InHouse(), 1)

	empty := domain.NewHotel("Grand Hotel").Snapshot()

	eventBus := hotel.NewEventBus(hotel.NewCommandBus())
	require.NoError(t, eventBus.RegisterView(board))

	require.NoError(t, h.Restore(empty))
	require.NoError(t, eventBus.DispatchFrom(context.Background(), h))

	assert.Empty(t, board.InHouse())
}

func TestInHouseBoard_IgnoresOtherEvents(t *testing.T) {
	h := populatedHotel(t)
	board := InHouseBoard(h)

	producer := hotel.NewEventProducer()
	producer.RaiseEvent("domain.Hotel", hotel.NewID("Grand Hotel"),
		domain.RoomAdded{RoomNumber: "102", RoomType: "Double", Rate: 149.99})

	for _, event := range producer.Events() {
		require.NoError(t, board.MutateWhen(event))
	}
	assert.Empty(t, board.InHouse())
}
