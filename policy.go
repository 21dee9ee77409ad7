package hotel

// Policy converts a domain event into a follow-up command. It implements
// logic of the form: when this happens, then do that.
type Policy interface {
	SubscribedTo() []string
	When(event Event) (Command, error)
}

type policy struct {
	subscribedToEvents []string
}

// NewPolicy creates the base of a Policy subscribed to the event types of the
// given bodies.
func NewPolicy(subscribedTo ...any) Policy {
	var eventTypes []string
	for _, body := range subscribedTo {
		eventTypes = append(eventTypes, EventType(body))
	}
	return &policy{subscribedToEvents: eventTypes}
}

func (p *policy) SubscribedTo() []string {
	return p.subscribedToEvents
}

func (p *policy) When(Event) (Command, error) {
	panic("implement me")
}
