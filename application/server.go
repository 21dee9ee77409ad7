package application

import (
	"os"
	"os/signal"
	"syscall"

	hotel "github.com/paulvitic/hotel-go"
	hotelhttp "github.com/paulvitic/hotel-go/http"
)

// Configuration is the application server configuration loaded from
// configs/properties.json.
type Configuration struct {
	HotelName string `json:"hotelName"`
	HttpPort  string `json:"httpPort"`
	DataFile  string `json:"dataFile"`
}

// Server exposes the registered contexts' endpoints over HTTP and blocks
// until an interrupt signal arrives.
type Server struct {
	logger     *hotel.Logger
	contexts   map[string]*Context
	httpServer hotelhttp.Server
}

func NewServer(addr string) *Server {
	if addr == "" {
		addr = ":8080"
	}
	return &Server{
		logger:     hotel.NewLogger(),
		contexts:   make(map[string]*Context),
		httpServer: hotelhttp.NewServer(addr),
	}
}

func (s *Server) WithContext(context *Context) *Server {
	s.logger.Info("AppServer: registering %s context", context.name)
	if s.contexts[context.name] != nil {
		s.logger.Warn("AppServer: context %s already exists", context.name)
		return s
	}
	s.contexts[context.name] = context
	return s
}

// Start registers all endpoints, serves HTTP and waits for SIGINT/SIGTERM.
func (s *Server) Start() error {
	s.registerHttpEndpoints()

	errs := make(chan error, 1)
	go func() {
		if err := s.httpServer.Start(); err != nil {
			errs <- err
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-sigs:
		s.logger.Info("AppServer: shutting down")
		return s.httpServer.Stop()
	}
}

func (s *Server) registerHttpEndpoints() {
	s.logger.Info("AppServer: registering http endpoints")
	for _, context := range s.contexts {
		for _, endpoint := range context.queryEndpoints {
			s.httpServer.RegisterEndpoint(endpoint)
		}
		for _, endpoint := range context.commandEndpoints {
			s.httpServer.RegisterEndpoint(endpoint)
		}
	}
}
