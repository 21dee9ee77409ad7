package application

import (
	"context"
	"fmt"

	hotel "github.com/paulvitic/hotel-go"
	hotelhttp "github.com/paulvitic/hotel-go/http"
)

// Context wires the services, views, policies and endpoints of one bounded
// context around shared command, query and event buses.
type Context struct {
	name             string
	eventBus         hotel.EventBus
	commandBus       hotel.CommandBus
	queryBus         hotel.QueryBus
	eventLog         hotel.EventLog
	queryEndpoints   map[string]*hotelhttp.QueryEndpoint
	commandEndpoints map[string]*hotelhttp.CommandEndpoint
}

func NewContext(name string) *Context {
	if name == "" {
		name = "default"
	}

	logger := hotel.NewLogger()
	commandBus := hotel.NewCommandBus()
	commandBus.Use(dispatchLogging(logger, "command"))
	queryBus := hotel.NewQueryBus()
	queryBus.Use(dispatchLogging(logger, "query"))

	eventBus := hotel.NewEventBus(commandBus)
	eventLog := hotel.NewInMemoryEventLog()
	eventBus.Use(eventLog.Middleware())

	return &Context{
		name:             name,
		eventBus:         eventBus,
		commandBus:       commandBus,
		queryBus:         queryBus,
		eventLog:         eventLog,
		queryEndpoints:   make(map[string]*hotelhttp.QueryEndpoint),
		commandEndpoints: make(map[string]*hotelhttp.CommandEndpoint),
	}
}

// dispatchLogging logs every payload passing through a bus, with its outcome.
func dispatchLogging(logger *hotel.Logger, kind string) hotel.MiddlewareFunc {
	return func(next hotel.HandlerFunc) hotel.HandlerFunc {
		return func(ctx context.Context, msg hotel.Payload) (any, error) {
			res, err := next(ctx, msg)
			if err != nil {
				logger.Warn("%s %s failed: %v", kind, msg.Type(), err)
				return res, err
			}
			logger.Info("%s %s handled", kind, msg.Type())
			return res, nil
		}
	}
}

func (c *Context) Name() string {
	return c.name
}

func (c *Context) CommandBus() hotel.CommandBus {
	return c.commandBus
}

func (c *Context) QueryBus() hotel.QueryBus {
	return c.queryBus
}

func (c *Context) EventLog() hotel.EventLog {
	return c.eventLog
}

func (c *Context) RegisterPolicy(policy hotel.Policy) *Context {
	if err := c.eventBus.RegisterPolicy(policy); err != nil {
		panic(err)
	}
	return c
}

func (c *Context) RegisterView(view hotel.View) *Context {
	if err := c.eventBus.RegisterView(view); err != nil {
		panic(err)
	}
	return c
}

func (c *Context) RegisterCommandService(service hotel.CommandService) *Context {
	if err := c.commandBus.RegisterService(service.WithEventBus(c.eventBus)); err != nil {
		panic(err)
	}
	return c
}

func (c *Context) RegisterQueryService(service hotel.QueryService) *Context {
	if err := c.queryBus.RegisterService(service); err != nil {
		panic(err)
	}
	return c
}

func (c *Context) RegisterCommandEndpoint(endpoint *hotelhttp.CommandEndpoint) *Context {
	if _, ok := c.commandEndpoints[endpoint.Path()]; ok {
		panic(fmt.Sprintf("endpoint %s already registered", endpoint.Path()))
	}
	endpoint.RegisterCommandBus(c.commandBus)
	c.commandEndpoints[endpoint.Path()] = endpoint
	return c
}

func (c *Context) RegisterQueryEndpoint(endpoint *hotelhttp.QueryEndpoint) *Context {
	if _, ok := c.queryEndpoints[endpoint.Path()]; ok {
		panic(fmt.Sprintf("endpoint %s already registered", endpoint.Path()))
	}
	endpoint.RegisterQueryBus(c.queryBus)
	c.queryEndpoints[endpoint.Path()] = endpoint
	return c
}
