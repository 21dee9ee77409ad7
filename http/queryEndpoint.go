package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	hotel "github.com/paulvitic/hotel-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type QueryEndpoint struct {
	*EndpointBase
	logger     *hotel.Logger
	translator QueryTranslator
	queryBus   hotel.QueryBus
}

func NewQueryEndpoint(path string, translator QueryTranslator) *QueryEndpoint {
	return &QueryEndpoint{
		EndpointBase: NewEndpoint(path, []string{http.MethodGet}),
		logger:       hotel.NewLogger(),
		translator:   translator,
	}
}

func (e *QueryEndpoint) RegisterQueryBus(bus hotel.QueryBus) {
	if e.queryBus != nil {
		e.logger.Warn("query bus already set for endpoint %s", e.path)
	}
	e.queryBus = bus
}

func (e *QueryEndpoint) Handler() func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		query, err := e.translator(request)
		if err != nil {
			e.logger.Error("translating query: %v", err)
			http.Error(writer, err.Error(), http.StatusBadRequest)
			return
		}
		if query == nil {
			e.logger.Error("query translator returned nil query")
			http.Error(writer, "internal server error", http.StatusInternalServerError)
			return
		}

		response, err := e.queryBus.Dispatch(request.Context(), query)
		if err != nil {
			e.logger.Error("dispatching %s: %v", query.Type(), err)
			http.Error(writer, err.Error(), statusFor(err))
			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(writer).Encode(response.Items()); err != nil {
			e.logger.Error("encoding response: %v", err)
		}
	}
}
