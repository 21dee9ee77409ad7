package hotel

import (
	"context"
	"errors"
	"fmt"
)

// CommandBus routes commands to their registered command services.
type CommandBus interface {
	RegisterService(service CommandService) error
	Dispatch(ctx context.Context, command Command) error
	Use(middleware MiddlewareFunc)
}

type commandBus struct {
	serviceBus ServiceBus
}

func NewCommandBus() CommandBus {
	return &commandBus{serviceBus: NewServiceBus()}
}

func (c *commandBus) RegisterService(service CommandService) error {
	var errs []error
	for _, cmdType := range service.SubscribedTo() {
		handler := func(ctx context.Context, msg Payload) (any, error) {
			return nil, service.Executor()(ctx, msg.(Command))
		}
		if err := c.serviceBus.Register(cmdType, handler); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *commandBus) Dispatch(ctx context.Context, command Command) error {
	if command == nil {
		return fmt.Errorf("cannot dispatch nil command")
	}
	_, err := c.serviceBus.Dispatch(ctx, command)
	return err
}

func (c *commandBus) Use(middleware MiddlewareFunc) {
	c.serviceBus.Use(middleware)
}
