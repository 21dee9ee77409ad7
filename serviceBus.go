package hotel

import (
	"context"
	"fmt"
	"sync"
)

// Payload is any message that can be dispatched through a service bus.
type Payload interface {
	Type() string
}

// HandlerFunc executes a dispatched payload.
type HandlerFunc func(context.Context, Payload) (any, error)

// MiddlewareFunc wraps a HandlerFunc with cross-cutting behavior.
type MiddlewareFunc func(h HandlerFunc) HandlerFunc

// ServiceBus routes payloads to their registered handlers through a
// middleware chain.
type ServiceBus interface {
	// Register assigns a handler to a payload type. Only one handler per
	// payload type is allowed.
	Register(to string, handler HandlerFunc) error
	// RegisterIfAbsent assigns a handler to a payload type unless one is
	// already registered. It reports whether the handler was registered.
	RegisterIfAbsent(to string, handler HandlerFunc) bool
	// Handlers returns all registered handlers.
	Handlers() map[string]HandlerFunc
	// Use appends middleware to the chain.
	Use(...MiddlewareFunc)
	// Dispatch sends a payload to its registered handler.
	Dispatch(context.Context, Payload) (any, error)
}

type serviceBus struct {
	mu         sync.RWMutex
	handlers   map[string]HandlerFunc
	middleware []MiddlewareFunc
}

func NewServiceBus() ServiceBus {
	return &serviceBus{
		handlers:   make(map[string]HandlerFunc),
		middleware: make([]MiddlewareFunc, 0),
	}
}

func (b *serviceBus) Register(to string, handler HandlerFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.handlers[to]; ok {
		return fmt.Errorf("handler already registered for %s", to)
	}
	b.handlers[to] = handler
	return nil
}

func (b *serviceBus) RegisterIfAbsent(to string, handler HandlerFunc) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.handlers[to]; ok {
		return false
	}
	b.handlers[to] = handler
	return true
}

func (b *serviceBus) Handlers() map[string]HandlerFunc {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := make(map[string]HandlerFunc, len(b.handlers))
	for k, v := range b.handlers {
		handlers[k] = v
	}
	return handlers
}

func (b *serviceBus) Use(middleware ...MiddlewareFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.middleware = append(b.middleware, middleware...)
}

func (b *serviceBus) Dispatch(ctx context.Context, msg Payload) (any, error) {
	if msg == nil {
		return nil, fmt.Errorf("cannot dispatch nil payload")
	}

	b.mu.RLock()
	handler, ok := b.handlers[msg.Type()]
	middleware := b.middleware
	b.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("handler not found for %s", msg.Type())
	}

	return applyMiddleware(handler, middleware...)(ctx, msg)
}

func applyMiddleware(h HandlerFunc, middleware ...MiddlewareFunc) HandlerFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
