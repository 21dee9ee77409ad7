package hotel

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// ID identifies an entity within its aggregate.
type ID interface {
	Equals(other any) bool
	String() string
}

// Value is an immutable value object wrapper.
type Value[T any] interface {
	Equals(other any) bool
	String() string
	Value() T
}

type valueBase[T any] struct {
	value T
}

// NewValue creates a new Value with the given underlying value.
func NewValue[T any](value T) Value[T] {
	return &valueBase[T]{value: value}
}

func (v *valueBase[T]) Equals(other any) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(Value[T]); ok {
		return reflect.DeepEqual(v.value, o.Value())
	}
	return false
}

func (v *valueBase[T]) Value() T {
	return v.value
}

func (v *valueBase[T]) String() string {
	return fmt.Sprint(v.value)
}

type entityId[T any] struct {
	Value[T]
}

// NewID creates an ID from a string or integer value.
func NewID(value any) ID {
	switch v := value.(type) {
	case string:
		return &entityId[string]{NewValue(v)}
	case int:
		return &entityId[int]{NewValue(v)}
	default:
		panic(fmt.Sprintf("unsupported ID type %T", value))
	}
}

func (e *entityId[T]) Equals(other any) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(ID); ok {
		return e.Value.String() == o.String()
	}
	return false
}

// GenerateUUID returns a random string ID.
func GenerateUUID() ID {
	return NewID(uuid.New().String())
}

// Entity is an identified domain object.
type Entity interface {
	ID() ID
	Equals(other any) bool
}

type entity struct {
	id ID
}

// NewEntity creates an Entity with the given ID.
func NewEntity(id ID) Entity {
	return &entity{id: id}
}

func (e *entity) ID() ID {
	return e.id
}

func (e *entity) Equals(other any) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(Entity); ok {
		return e.ID().Equals(o.ID())
	}
	return false
}
