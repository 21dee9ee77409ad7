package hotel

import "reflect"

// Aggregate is the root of a consistency boundary. It is an Entity that also
// records the domain events raised by its state changes.
type Aggregate interface {
	Entity
	EventProducer
	AggregateType() string
}

type aggregate struct {
	Entity
	EventProducer
	aggType string
}

func (a *aggregate) AggregateType() string {
	return a.aggType
}

// NewAggregate creates the base of an aggregate root. The aggregate type name
// is derived from the concrete type given as the second argument.
func NewAggregate[T any](id ID, aggregateType T) Aggregate {
	return &aggregate{
		Entity:        NewEntity(id),
		EventProducer: NewEventProducer(),
		aggType:       reflect.TypeOf(aggregateType).PkgPath() + "." + reflect.TypeOf(aggregateType).Name(),
	}
}
