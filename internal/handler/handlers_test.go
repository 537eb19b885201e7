package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:  config.App{Name: "airtasker"},
		CORS: config.CORS{Origin: "*"},
	}
}

// TestNewHandlers_OnlyHTTP verifies that without a gRPC address only the HTTP
// handler is initialised.
func TestNewHandlers_OnlyHTTP(t *testing.T) {
	h, err := NewHandlers(newTestConfig(), newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.Nil(t, h.GRPC, "expected gRPC handler to be nil")
}

// TestNewHandlers_WithGRPC verifies that a configured gRPC address enables the
// gRPC health handler next to the HTTP one.
func TestNewHandlers_WithGRPC(t *testing.T) {
	cfg := newTestConfig()
	cfg.Server.GRPCAddress = ":9090"

	h, err := NewHandlers(cfg, newTestLogger())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_NoConfig verifies that a nil configuration is rejected.
func TestNewHandlers_NoConfig(t *testing.T) {
	h, err := NewHandlers(nil, newTestLogger())

	require.ErrorIs(t, err, errNoConfigProvided)
	assert.Nil(t, h)
}

// TestNewHandlers_DispatcherUsesConfig verifies that the app name and CORS
// origin reach the responses.
func TestNewHandlers_DispatcherUsesConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.App.Name = "greeter"
	cfg.CORS.Origin = "https://example.com"

	h, err := NewHandlers(cfg, newTestLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "greeter!\n", rec.Body.String())
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := newTestConfig()
	cfg.Server.GRPCAddress = ":9090"

	h1, err1 := NewHandlers(cfg, newTestLogger())
	h2, err2 := NewHandlers(cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
