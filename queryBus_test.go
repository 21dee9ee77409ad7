package hotel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listThings struct {
	Prefix string
}

func TestQueryBus_Dispatch(t *testing.T) {
	bus := NewQueryBus()

	service := NewQueryService(func(ctx context.Context, query Query) (QueryResponse, error) {
		filter := query.Filter().(listThings)
		return NewQueryResponse([]string{filter.Prefix + "-1", filter.Prefix + "-2"}), nil
	}, listThings{})
	require.NoError(t, bus.RegisterService(service))

	response, err := bus.Dispatch(context.Background(), NewQuery(listThings{Prefix: "thing"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"thing-1", "thing-2"}, response.Items())
}

func TestQueryBus_UnregisteredQuery(t *testing.T) {
	_, err := NewQueryBus().Dispatch(context.Background(), NewQuery(listThings{}))
	assert.Error(t, err)
}

func TestQueryBus_DuplicateService(t *testing.T) {
	bus := NewQueryBus()
	executor := func(context.Context, Query) (QueryResponse, error) { return nil, nil }
	assert.NoError(t, bus.RegisterService(NewQueryService(executor, listThings{})))
	assert.Error(t, bus.RegisterService(NewQueryService(executor, listThings{})))
}
