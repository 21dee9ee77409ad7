package hotel

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is a fact about a state change of an aggregate.
type Event interface {
	Payload
	EventID() string
	AggregateType() string
	AggregateID() ID
	TimeStamp() time.Time
	Body() any
	ToJsonString() (string, error)
}

type event struct {
	eventID       string
	aggregateType string
	aggregateID   ID
	eventType     string
	timeStamp     time.Time
	body          any
}

func (e *event) EventID() string {
	return e.eventID
}

func (e *event) AggregateType() string {
	return e.aggregateType
}

func (e *event) AggregateID() ID {
	return e.aggregateID
}

func (e *event) Type() string {
	return e.eventType
}

func (e *event) TimeStamp() time.Time {
	return e.timeStamp
}

func (e *event) Body() any {
	return e.body
}

func (e *event) ToJsonString() (string, error) {
	data, err := json.Marshal(map[string]any{
		"event_id":       e.eventID,
		"aggregate_type": e.aggregateType,
		"aggregate_id":   e.aggregateID.String(),
		"event_type":     e.eventType,
		"time_stamp":     e.timeStamp.Format(time.RFC3339),
		"body":           e.body,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EventType derives the fully qualified event type name from a payload body.
func EventType(body any) string {
	return reflect.TypeOf(body).PkgPath() + "." + reflect.TypeOf(body).Name()
}

// MapEventBody converts an event body into the given payload type through JSON.
// Useful when the event crossed a serialization boundary and its body is no
// longer the original struct.
func MapEventBody[T any](e Event, into T) (T, error) {
	raw, err := json.Marshal(e.Body())
	if err != nil {
		return into, fmt.Errorf("failed to marshal event body: %w", err)
	}
	if err := json.Unmarshal(raw, &into); err != nil {
		return into, fmt.Errorf("failed to unmarshal event body: %w", err)
	}
	return into, nil
}

// EventProducer collects events raised by an aggregate until they are drained
// for dispatch.
type EventProducer interface {
	RaiseEvent(aggregateType string, aggregateID ID, body any)
	Events() []Event
}

// eventProducer carries its own lock: events are raised inside the
// aggregate's critical section but drained after it, possibly from another
// goroutine.
type eventProducer struct {
	mu     sync.Mutex
	events []Event
}

func NewEventProducer() EventProducer {
	return &eventProducer{events: make([]Event, 0)}
}

func (ep *eventProducer) RaiseEvent(aggregateType string, aggregateID ID, body any) {
	ep.mu.Lock()
	defer ep.mu.Unlock()

	ep.events = append(ep.events, &event{
		eventID:       uuid.New().String(),
		aggregateType: aggregateType,
		aggregateID:   aggregateID,
		eventType:     EventType(body),
		timeStamp:     time.Now(),
		body:          body,
	})
}

// Events drains and returns the events raised since the last call.
func (ep *eventProducer) Events() []Event {
	ep.mu.Lock()
	defer ep.mu.Unlock()

	drained := ep.events
	ep.events = make([]Event, 0)
	return drained
}
