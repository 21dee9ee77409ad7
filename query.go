package hotel

import "reflect"

type Query interface {
	Type() string
	Filter() any
}

type query struct {
	filter any
}

func NewQuery(filter any) Query {
	return &query{filter}
}

func (q *query) Type() string {
	return QueryType(q.filter)
}

func (q *query) Filter() any {
	return q.filter
}

func QueryType(filter any) string {
	return reflect.TypeOf(filter).PkgPath() + "." + reflect.TypeOf(filter).Name()
}

// QueryResponse carries the items produced by a query service.
type QueryResponse interface {
	Items() any
}

type queryResponse struct {
	items any
}

func NewQueryResponse(items any) QueryResponse {
	return &queryResponse{items}
}

func (qr *queryResponse) Items() any {
	return qr.items
}
