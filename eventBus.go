package hotel

import (
	"context"
	"errors"
)

// EventBus fans domain events out to the views and policies subscribed to
// them. Commands produced by policies are sent back through the command bus.
type EventBus interface {
	Dispatch(ctx context.Context, event Event) error
	DispatchFrom(ctx context.Context, producer EventProducer) error
	Use(middleware MiddlewareFunc)
	RegisterView(view View) error
	RegisterPolicy(policy Policy) error
}

type eventBus struct {
	serviceBus ServiceBus
	commandBus CommandBus
	views      map[string][]View
	policies   map[string][]Policy
}

func NewEventBus(commandBus CommandBus) EventBus {
	return &eventBus{
		serviceBus: NewServiceBus(),
		commandBus: commandBus,
		views:      make(map[string][]View),
		policies:   make(map[string][]Policy),
	}
}

func (b *eventBus) handler() HandlerFunc {
	return func(ctx context.Context, msg Payload) (any, error) {
		event, ok := msg.(Event)
		if !ok {
			return nil, errors.New("event bus handler expects an Event")
		}
		return nil, errors.Join(
			b.dispatchToViews(event),
			b.dispatchToPolicies(ctx, event),
		)
	}
}

// Dispatch routes an event through the middleware chain to its subscribed
// views and policies. Events nothing subscribes to still pass through the
// middleware, so the event log sees every event.
func (b *eventBus) Dispatch(ctx context.Context, event Event) error {
	b.subscribe(event.Type())
	_, err := b.serviceBus.Dispatch(ctx, event)
	return err
}

func (b *eventBus) DispatchFrom(ctx context.Context, producer EventProducer) error {
	var errs []error
	for _, ev := range producer.Events() {
		if err := b.Dispatch(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *eventBus) Use(middleware MiddlewareFunc) {
	b.serviceBus.Use(middleware)
}

func (b *eventBus) RegisterView(view View) error {
	for _, eventType := range view.SubscribedTo() {
		b.views[eventType] = append(b.views[eventType], view)
		b.subscribe(eventType)
	}
	return nil
}

func (b *eventBus) RegisterPolicy(policy Policy) error {
	for _, eventType := range policy.SubscribedTo() {
		b.policies[eventType] = append(b.policies[eventType], policy)
		b.subscribe(eventType)
	}
	return nil
}

// subscribe is idempotent per event type: views, policies and unsubscribed
// events of the same type share one service bus handler.
func (b *eventBus) subscribe(eventType string) {
	b.serviceBus.RegisterIfAbsent(eventType, b.handler())
}

func (b *eventBus) dispatchToViews(event Event) error {
	var errs []error
	for _, view := range b.views[event.Type()] {
		if err := view.MutateWhen(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *eventBus) dispatchToPolicies(ctx context.Context, event Event) error {
	var errs []error
	for _, policy := range b.policies[event.Type()] {
		cmd, err := policy.When(event)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if cmd != nil {
			if err := b.commandBus.Dispatch(ctx, cmd); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
