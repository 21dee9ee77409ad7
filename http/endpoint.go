package http

import (
	"errors"
	"net/http"

	"github.com/paulvitic/hotel-go/domain"
)

// Endpoint is an HTTP route backed by a command or query bus.
type Endpoint interface {
	Path() string
	Methods() []string
	Handler() func(http.ResponseWriter, *http.Request)
}

type EndpointBase struct {
	path    string
	methods []string
}

func NewEndpoint(path string, methods []string) *EndpointBase {
	return &EndpointBase{
		path:    path,
		methods: methods,
	}
}

func (e *EndpointBase) Path() string {
	return e.path
}

func (e *EndpointBase) Methods() []string {
	return e.methods
}

// statusFor maps the domain error kinds onto HTTP status codes. Unrecognized
// errors stay internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
