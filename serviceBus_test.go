package hotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testMessage struct{}

func (t *testMessage) Type() string {
	return "test"
}

func TestNewServiceBus(t *testing.T) {
	bus := NewServiceBus()
	assert.NotNil(t, bus)
	assert.Empty(t, bus.Handlers())
}

func TestServiceBus_Register(t *testing.T) {
	bus := NewServiceBus()

	handler := func(context.Context, Payload) (any, error) { return nil, nil }
	assert.NoError(t, bus.Register("test1", handler))
	assert.NoError(t, bus.Register("test2", handler))
	assert.Len(t, bus.Handlers(), 2)
}

func TestServiceBus_InvalidRegistration(t *testing.T) {
	bus := NewServiceBus()
	handler := func(context.Context, Payload) (any, error) { return nil, nil }
	assert.NoError(t, bus.Register("test", handler))
	assert.Error(t, bus.Register("test", handler))
}

func TestServiceBus_RegisterIfAbsent(t *testing.T) {
	bus := NewServiceBus()

	first := func(context.Context, Payload) (any, error) { return "first", nil }
	second := func(context.Context, Payload) (any, error) { return "second", nil }

	assert.True(t, bus.RegisterIfAbsent("test", first))
	assert.False(t, bus.RegisterIfAbsent("test", second))
	assert.Len(t, bus.Handlers(), 1)

	res, err := bus.Dispatch(context.Background(), &testMessage{})
	assert.NoError(t, err)
	assert.Equal(t, "first", res)
}

func TestServiceBus_Dispatch(t *testing.T) {
	bus := NewServiceBus()

	calls := make([]string, 0)

	handler := func(context.Context, Payload) (any, error) {
		calls = append(calls, "handler")
		return "result", nil
	}
	assert.NoError(t, bus.Register("test", handler))

	bus.Use(func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg Payload) (any, error) {
			calls = append(calls, "middleware")
			return next(ctx, msg)
		}
	})

	res, err := bus.Dispatch(context.Background(), &testMessage{})
	assert.NoError(t, err)
	assert.Equal(t, "result", res)
	assert.Equal(t, []string{"middleware", "handler"}, calls)
}

func TestServiceBus_DispatchUnregistered(t *testing.T) {
	bus := NewServiceBus()
	_, err := bus.Dispatch(context.Background(), &testMessage{})
	assert.Error(t, err)
}

func TestServiceBus_DispatchHandlerError(t *testing.T) {
	bus := NewServiceBus()
	boom := errors.New("boom")
	assert.NoError(t, bus.Register("test", func(context.Context, Payload) (any, error) {
		return nil, boom
	}))

	_, err := bus.Dispatch(context.Background(), &testMessage{})
	assert.ErrorIs(t, err, boom)
}
