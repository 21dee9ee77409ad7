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

type listTestThings struct{}

func queryTestBus(t *testing.T, executor hotel.QueryExecutor) hotel.QueryBus {
	t.Helper()
	bus := hotel.NewQueryBus()
	require.NoError(t, bus.RegisterService(hotel.NewQueryService(executor, listTestThings{})))
	return bus
}

func TestQueryEndpoint_EncodesItems(t *testing.T) {
	endpoint := NewQueryEndpoint("/things",
		func(from *http.Request) (hotel.Query, error) {
			return hotel.NewQuery(listTestThings{}), nil
		})
	endpoint.RegisterQueryBus(queryTestBus(t,
		func(ctx context.Context, query hotel.Query) (hotel.QueryResponse, error) {
			return hotel.NewQueryResponse([]string{"first", "second"}), nil
		}))

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodGet, "/things", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `["first","second"]`, rr.Body.String())
}

func TestQueryEndpoint_TranslatorError(t *testing.T) {
	endpoint := NewQueryEndpoint("/things",
		func(from *http.Request) (hotel.Query, error) {
			return nil, errors.New("missing parameter")
		})

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodGet, "/things", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQueryEndpoint_DispatchError(t *testing.T) {
	endpoint := NewQueryEndpoint("/things",
		func(from *http.Request) (hotel.Query, error) {
			return hotel.NewQuery(listTestThings{}), nil
		})
	endpoint.RegisterQueryBus(queryTestBus(t,
		func(ctx context.Context, query hotel.Query) (hotel.QueryResponse, error) {
			return nil, errors.New("boom")
		}))

	rr := httptest.NewRecorder()
	endpoint.Handler()(rr, httptest.NewRequest(http.MethodGet, "/things", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
