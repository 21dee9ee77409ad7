package hotel

import (
	"context"
	"sync"
)

// EventLog keeps the history of dispatched domain events.
type EventLog interface {
	// EventsOf retrieves all events recorded for an aggregate.
	EventsOf(aggregateType string, aggregateID string) ([]Event, error)
	// EventsOfType retrieves all events of a specific type.
	EventsOfType(eventType string) ([]Event, error)
	// Recent returns up to n most recent events, newest last.
	Recent(n int) []Event
	// Append adds an event to the log.
	Append(event Event) error
	// Middleware records every event passing through an event bus.
	Middleware() MiddlewareFunc
}

type inMemoryEventLog struct {
	mu sync.RWMutex
	// aggregateType:aggregateID -> events
	aggregateEvents map[string][]Event
	typeEvents      map[string][]Event
	allEvents       []Event
}

func NewInMemoryEventLog() EventLog {
	return &inMemoryEventLog{
		aggregateEvents: make(map[string][]Event),
		typeEvents:      make(map[string][]Event),
		allEvents:       make([]Event, 0),
	}
}

func (l *inMemoryEventLog) Append(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := event.AggregateType() + ":" + event.AggregateID().String()
	l.aggregateEvents[key] = append(l.aggregateEvents[key], event)
	l.typeEvents[event.Type()] = append(l.typeEvents[event.Type()], event)
	l.allEvents = append(l.allEvents, event)
	return nil
}

func (l *inMemoryEventLog) EventsOf(aggregateType, aggregateID string) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := l.aggregateEvents[aggregateType+":"+aggregateID]
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

func (l *inMemoryEventLog) EventsOfType(eventType string) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := l.typeEvents[eventType]
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

func (l *inMemoryEventLog) Recent(n int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || n > len(l.allEvents) {
		n = len(l.allEvents)
	}
	result := make([]Event, n)
	copy(result, l.allEvents[len(l.allEvents)-n:])
	return result
}

func (l *inMemoryEventLog) Middleware() MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg Payload) (any, error) {
			if event, ok := msg.(Event); ok {
				if err := l.Append(event); err != nil {
					return nil, err
				}
			}
			return next(ctx, msg)
		}
	}
}
