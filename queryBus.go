package hotel

import (
	"context"
	"errors"
	"fmt"
)

// QueryBus routes queries to their registered query services.
type QueryBus interface {
	RegisterService(service QueryService) error
	Dispatch(ctx context.Context, query Query) (QueryResponse, error)
	Use(middleware MiddlewareFunc)
}

type queryBus struct {
	serviceBus ServiceBus
}

func NewQueryBus() QueryBus {
	return &queryBus{serviceBus: NewServiceBus()}
}

func (q *queryBus) RegisterService(service QueryService) error {
	var errs []error
	for _, queryType := range service.SubscribedTo() {
		handler := func(ctx context.Context, msg Payload) (any, error) {
			return service.Executor()(ctx, msg.(Query))
		}
		if err := q.serviceBus.Register(queryType, handler); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (q *queryBus) Dispatch(ctx context.Context, query Query) (QueryResponse, error) {
	res, err := q.serviceBus.Dispatch(ctx, query)
	if err != nil {
		return nil, err
	}

	response, ok := res.(QueryResponse)
	if !ok {
		return nil, fmt.Errorf("query %s did not produce a QueryResponse", query.Type())
	}
	return response, nil
}

func (q *queryBus) Use(middleware MiddlewareFunc) {
	q.serviceBus.Use(middleware)
}
