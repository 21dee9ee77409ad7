package application

import (
	"context"
	"fmt"
	"sync"
	"testing"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps snapshots in memory, keyed by path.
type memoryStore struct {
	snapshots map[string]domain.Snapshot
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: make(map[string]domain.Snapshot)}
}

func (s *memoryStore) Write(path string, snap domain.Snapshot) error {
	s.snapshots[path] = snap
	return nil
}

func (s *memoryStore) Read(path string) (domain.Snapshot, error) {
	snap, ok := s.snapshots[path]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("no snapshot at %s: %w", path, domain.ErrNotFound)
	}
	return snap, nil
}

func newFrontDesk(t *testing.T) (*domain.Hotel, hotel.CommandBus, *memoryStore) {
	t.Helper()
	h := domain.NewHotel("Grand Hotel")
	store := newMemoryStore()

	commandBus := hotel.NewCommandBus()
	eventBus := hotel.NewEventBus(commandBus)
	service := FrontDeskService(h, store).WithEventBus(eventBus)
	require.NoError(t, commandBus.RegisterService(service))
	return h, commandBus, store
}

func dispatch(t *testing.T, bus hotel.CommandBus, body any) error {
	t.Helper()
	return bus.Dispatch(context.Background(), hotel.NewCommand(body))
}

func TestFrontDesk_AddRoom(t *testing.T) {
	h, bus, _ := newFrontDesk(t)

	require.NoError(t, dispatch(t, bus, domain.AddRoom{
		RoomNumber: "101", RoomType: "Single", Rate: 99.99}))

	rooms := h.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Number())
}

func TestFrontDesk_AddRoomInvalidRate(t *testing.T) {
	_, bus, _ := newFrontDesk(t)
	err := dispatch(t, bus, domain.AddRoom{RoomNumber: "101", RoomType: "Single", Rate: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFrontDesk_RegisterGuestGeneratesID(t *testing.T) {
	h, bus, _ := newFrontDesk(t)

	require.NoError(t, dispatch(t, bus, domain.RegisterGuest{
		Name: "John Doe", Email: "john@example.com", Phone: "555-0101"}))

	guests := h.Guests()
	require.Len(t, guests, 1)
	assert.NotEmpty(t, guests[0].GuestID())
}

func TestFrontDesk_ReservationLifecycle(t *testing.T) {
	h, bus, _ := newFrontDesk(t)

	require.NoError(t, dispatch(t, bus, domain.AddRoom{
		RoomNumber: "101", RoomType: "Single", Rate: 100}))
	require.NoError(t, dispatch(t, bus, domain.RegisterGuest{
		GuestID: "G001", Name: "John Doe", Email: "john@example.com", Phone: "555-0101"}))

	require.NoError(t, dispatch(t, bus, domain.MakeReservation{
		GuestID: "G001", RoomNumber: "101",
		CheckIn: "2026-09-01", CheckOut: "2026-09-03"}))

	reservation, err := h.Reservation("RES-1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, reservation.TotalCharges())

	require.NoError(t, dispatch(t, bus, domain.CheckInGuest{ReservationID: "RES-1"}))
	require.NoError(t, dispatch(t, bus, domain.AddServiceCharge{
		ReservationID: "RES-1", Service: "Breakfast", Price: 15}))
	require.NoError(t, dispatch(t, bus, domain.CheckOutGuest{ReservationID: "RES-1"}))

	assert.Equal(t, 215.0, reservation.TotalCharges())
	assert.True(t, reservation.IsCheckedOut())
}

func TestFrontDesk_ConcurrentDispatches(t *testing.T) {
	h, bus, _ := newFrontDesk(t)

	const rooms = 20
	var wg sync.WaitGroup
	for i := 0; i < rooms; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, dispatch(t, bus, domain.AddRoom{
				RoomNumber: fmt.Sprintf("%d", 100+n), RoomType: "Single", Rate: 100}))
		}(i)
	}
	wg.Wait()

	assert.Len(t, h.Rooms(), rooms)
	assert.Empty(t, h.Events())
}

func TestFrontDesk_MakeReservationBadDate(t *testing.T) {
	_, bus, _ := newFrontDesk(t)
	err := dispatch(t, bus, domain.MakeReservation{
		GuestID: "G001", RoomNumber: "101",
		CheckIn: "not-a-date", CheckOut: "2026-09-03"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFrontDesk_SaveAndLoadState(t *testing.T) {
	_, bus, store := newFrontDesk(t)

	require.NoError(t, dispatch(t, bus, domain.AddRoom{
		RoomNumber: "101", RoomType: "Single", Rate: 100}))
	require.NoError(t, dispatch(t, bus, domain.RegisterGuest{
		GuestID: "G001", Name: "John Doe", Email: "john@example.com", Phone: "555-0101"}))
	require.NoError(t, dispatch(t, bus, domain.MakeReservation{
		GuestID: "G001", RoomNumber: "101",
		CheckIn: "2026-09-01", CheckOut: "2026-09-03"}))

	require.NoError(t, dispatch(t, bus, domain.SaveState{Path: "state.json"}))

	other := domain.NewHotel("Grand Hotel")
	otherBus := hotel.NewCommandBus()
	require.NoError(t, otherBus.RegisterService(FrontDeskService(other, store)))
	require.NoError(t, dispatch(t, otherBus, domain.LoadState{Path: "state.json"}))

	assert.Len(t, other.Rooms(), 1)
	assert.Len(t, other.Guests(), 1)
	reservation, err := other.Reservation("RES-1")
	require.NoError(t, err)
	assert.Equal(t, "G001", reservation.Guest().GuestID())
}

func TestFrontDesk_LoadStateMissingFile(t *testing.T) {
	_, bus, _ := newFrontDesk(t)
	err := dispatch(t, bus, domain.LoadState{Path: "missing.json"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFrontDesk_UnknownCommand(t *testing.T) {
	_, bus, _ := newFrontDesk(t)
	err := dispatch(t, bus, domain.IssueInvoice{ReservationID: "RES-1"})
	assert.Error(t, err)
}
