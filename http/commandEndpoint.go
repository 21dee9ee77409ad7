package http

import (
	"net/http"

	hotel "github.com/paulvitic/hotel-go"
)

type CommandEndpoint struct {
	*EndpointBase
	logger     *hotel.Logger
	translator CommandTranslator
	commandBus hotel.CommandBus
}

func NewCommandEndpoint(path string, methods []string, translator CommandTranslator) *CommandEndpoint {
	return &CommandEndpoint{
		EndpointBase: NewEndpoint(path, methods),
		logger:       hotel.NewLogger(),
		translator:   translator,
	}
}

func (e *CommandEndpoint) RegisterCommandBus(bus hotel.CommandBus) {
	if e.commandBus != nil {
		e.logger.Warn("command bus already set for endpoint %s", e.path)
	}
	e.commandBus = bus
}

func (e *CommandEndpoint) Handler() func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		command, err := e.translator(request)
		if err != nil {
			e.logger.Error("translating command: %v", err)
			http.Error(writer, err.Error(), http.StatusBadRequest)
			return
		}
		if command == nil {
			e.logger.Error("command translator returned nil command")
			http.Error(writer, "internal server error", http.StatusInternalServerError)
			return
		}

		if err := e.commandBus.Dispatch(request.Context(), command); err != nil {
			e.logger.Error("dispatching %s: %v", command.Type(), err)
			http.Error(writer, err.Error(), statusFor(err))
			return
		}
		writer.WriteHeader(http.StatusAccepted)
	}
}
