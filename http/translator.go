package http

import (
	"net/http"

	hotel "github.com/paulvitic/hotel-go"
)

// CommandTranslator builds a command from an HTTP request.
type CommandTranslator func(from *http.Request) (hotel.Command, error)

// QueryTranslator builds a query from an HTTP request.
type QueryTranslator func(from *http.Request) (hotel.Query, error)
