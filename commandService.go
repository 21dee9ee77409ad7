package hotel

import "context"

// CommandExecutor runs a command against the domain model.
type CommandExecutor func(context.Context, Command) error

// CommandService handles a set of command types and dispatches the domain
// events their execution raises.
type CommandService interface {
	SubscribedTo() []string
	Executor() CommandExecutor
	WithEventBus(bus EventBus) CommandService
	DispatchFrom(ctx context.Context, producer EventProducer) error
}

type commandService struct {
	subscribedTo []string
	executor     CommandExecutor
	eventBus     EventBus
}

// NewCommandService creates a CommandService subscribed to the command types
// of the given bodies.
func NewCommandService(executor CommandExecutor, subscribedTo ...any) CommandService {
	var cmdTypes []string
	for _, c := range subscribedTo {
		cmdTypes = append(cmdTypes, CommandType(c))
	}
	return &commandService{
		subscribedTo: cmdTypes,
		executor:     executor,
	}
}

func (s *commandService) WithEventBus(bus EventBus) CommandService {
	s.eventBus = bus
	return s
}

func (s *commandService) SubscribedTo() []string {
	return s.subscribedTo
}

func (s *commandService) Executor() CommandExecutor {
	return s.executor
}

// DispatchFrom drains the producer's events into the event bus.
func (s *commandService) DispatchFrom(ctx context.Context, producer EventProducer) error {
	if s.eventBus == nil {
		return nil
	}
	return s.eventBus.DispatchFrom(ctx, producer)
}
