package hotel

import "context"

// QueryExecutor answers a query from the domain model or a view.
type QueryExecutor func(context.Context, Query) (QueryResponse, error)

type QueryService interface {
	SubscribedTo() []string
	Executor() QueryExecutor
}

type queryService struct {
	subscribedTo []string
	executor     QueryExecutor
}

// NewQueryService creates a QueryService subscribed to the query types of the
// given filters.
func NewQueryService(executor QueryExecutor, subscribedTo ...any) QueryService {
	var queryTypes []string
	for _, q := range subscribedTo {
		queryTypes = append(queryTypes, QueryType(q))
	}
	return &queryService{
		subscribedTo: queryTypes,
		executor:     executor,
	}
}

func (s *queryService) SubscribedTo() []string {
	return s.subscribedTo
}

func (s *queryService) Executor() QueryExecutor {
	return s.executor
}
