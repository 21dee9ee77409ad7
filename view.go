package hotel

// View is a read-only projection of the domain state. It is only mutated by
// the domain events it subscribes to.
type View interface {
	SubscribedTo() []string
	MutateWhen(Event) error
}

type view struct {
	subscribedToEvents []string
}

// NewView creates the base of a View subscribed to the event types of the
// given bodies.
func NewView(subscribedTo ...any) View {
	var eventTypes []string
	for _, body := range subscribedTo {
		eventTypes = append(eventTypes, EventType(body))
	}
	return &view{subscribedToEvents: eventTypes}
}

func (v *view) SubscribedTo() []string {
	return v.subscribedToEvents
}

func (v *view) MutateWhen(Event) error {
	panic("implement me")
}
