package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doTestThing struct {
	Name string
}

func commandTestBus(t *testing.T, executor hotel.CommandExecutor) hotel.CommandBus {
	t.Helper()
	bus := hotel.NewCommandBus()
	require.NoError(t, bus.RegisterService(hotel.NewCommandService(executor, doTestThing{})))
	return bus
}

func TestCommandEndpoint_Accepted(t *testing.T) {
	var dispatched []hotel.Command
	endpoint := NewCommandEndpoint("/things", []string{http.MethodPost},
		func(from *http.Request) (hotel.Command, error) {
			return hotel.NewCommand(doTestThing{Name: "first"}), nil
		})
	endpoint.RegisterCommandBus(commandTestBus(t, func(ctx context.Context, cmd hotel.Command) error {
		dispatched = append(dispatched, cmd)
		return nil
	}))

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodPost, "/things", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	require.Len(t, dispatched, 1)
	assert.Equal(t, doTestThing{Name: "first"}, dispatched[0].Body())
}

func TestCommandEndpoint_TranslatorError(t *testing.T) {
	endpoint := NewCommandEndpoint("/things", []string{http.MethodPost},
		func(from *http.Request) (hotel.Command, error) {
			return nil, errors.New("bad request body")
		})

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommandEndpoint_DispatchError(t *testing.T) {
	endpoint := NewCommandEndpoint("/things", []string{http.MethodPost},
		func(from *http.Request) (hotel.Command, error) {
			return hotel.NewCommand(doTestThing{}), nil
		})
	endpoint.RegisterCommandBus(commandTestBus(t, func(context.Context, hotel.Command) error {
		return errors.New("boom")
	}))

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
