package router_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/equitrack/dashboard/internal/config"
	"github.com/equitrack/dashboard/internal/dashboard"
	"github.com/equitrack/dashboard/internal/router"
	"github.com/equitrack/dashboard/internal/sandbox"
	"github.com/equitrack/dashboard/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func service(t *testing.T) *dashboard.Service {
	client, _ := test.Ledger(t, sandbox.EnvelopeBare, time.Now())
	return dashboard.New(client, zerolog.Nop())
}

func routes(t *testing.T, cfg *config.Config) []string {
	r, teardown, err := router.Config(cfg)
	defer teardown()
	require.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(cfg, dashboard.New(nil, zerolog.Nop()), r.Group("/"))

	var paths []string
	for _, route := range r.Routes() {
		paths = append(paths, route.Path)
	}

	return paths
}

func TestPprofOn(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "true")

	assert.Contains(t, routes(t, config.FromEnv()), "/debug/pprof/")
}

func TestPprofOff(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "")

	for _, path := range routes(t, config.FromEnv()) {
		assert.NotContains(t, path, "pprof", "pprof routes are registered erroneously! Route: %s", path)
	}
}

func TestRoutes(t *testing.T) {
	paths := routes(t, config.FromEnv())

	for _, path := range []string{"/", "/healthz", "/version", "/metrics", "/docs/*any", "/v1", "/v1/overview", "/v1/wallets/:id/deposit"} {
		assert.Contains(t, paths, path)
	}
}

func TestInvalidURL(t *testing.T) {
	cfg := config.FromEnv()
	cfg.APIURL = ":no scheme"

	_, teardown, err := router.Config(cfg)
	defer teardown()
	assert.NotNil(t, err)
}

func TestTeardownAllowsReconfiguration(t *testing.T) {
	_, teardown, err := router.Config(config.FromEnv())
	require.Nil(t, err)
	teardown()

	_, teardown, err = router.Config(config.FromEnv())
	defer teardown()
	assert.Nil(t, err, "metrics must be unregistered by the teardown")
}

// TestCorsSetting checks that the CORS headers are set for allowed origins.
func TestCorsSetting(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")

	r := test.Request(t, service(t), http.MethodGet, "http://example.com/version", nil, map[string]string{"Origin": "http://localhost:3000"})
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	assert.Equal(t, "http://localhost:3000", r.Header().Get("Access-Control-Allow-Origin"))

	r = test.Request(t, service(t), http.MethodGet, "http://example.com/version", nil, map[string]string{"Origin": "https://evil.example.com"})
	test.AssertHTTPStatus(t, &r, http.StatusForbidden)
}

func TestGetVersion(t *testing.T) {
	r := test.Request(t, service(t), http.MethodGet, "http://example.com/version", nil)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response router.VersionResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "0.0.0", response.Data.Version)
}

func TestOptionsVersion(t *testing.T) {
	r := test.Request(t, service(t), http.MethodOptions, "http://example.com/version", nil)
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
}

func TestMethodNotAllowed(t *testing.T) {
	r := test.Request(t, service(t), http.MethodPost, "http://example.com/version", nil)
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
	assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), "not allowed")
}

func TestHealthz(t *testing.T) {
	r := test.Request(t, service(t), http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
}

func TestMetrics(t *testing.T) {
	s := service(t)

	// Produce at least one observation for the request metrics
	r := test.Request(t, s, http.MethodGet, "http://example.com/version", nil)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	r = test.Request(t, s, http.MethodGet, "http://example.com/metrics", nil)
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	assert.True(t, strings.Contains(r.Body.String(), "go_goroutines"))
}
