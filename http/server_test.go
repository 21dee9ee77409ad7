package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockEndpoint struct {
	path    string
	methods []string
	handler func(w http.ResponseWriter, r *http.Request)
}

func (m *mockEndpoint) Path() string {
	return m.path
}

func (m *mockEndpoint) Methods() []string {
	return m.methods
}

func (m *mockEndpoint) Handler() func(w http.ResponseWriter, r *http.Request) {
	return m.handler
}

func TestServer_RegisterEndpoint(t *testing.T) {
	s := NewServer(":0")

	endpoint := &mockEndpoint{
		path:    "/test",
		methods: []string{http.MethodGet},
		handler: func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte("test passed"))
			assert.NoError(t, err)
		},
	}
	s.RegisterEndpoint(endpoint)

	rr := httptest.NewRecorder()
	s.(*server).router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test passed", rr.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := NewServer(":0")
	s.RegisterEndpoint(&mockEndpoint{
		path:    "/test",
		methods: []string{http.MethodPost},
		handler: func(w http.ResponseWriter, r *http.Request) {},
	})

	rr := httptest.NewRecorder()
	s.(*server).router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestServer_Stop(t *testing.T) {
	s := NewServer(":0")
	assert.NoError(t, s.Stop())
}
