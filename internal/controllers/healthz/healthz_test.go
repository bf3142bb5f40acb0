package healthz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/equitrack/dashboard/internal/controllers/healthz"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type checker struct {
	err error
}

func (c checker) Health(_ context.Context) error {
	return c.err
}

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/healthz", func(_ *gin.Context) {
		healthz.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/healthz", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Healthy", nil, http.StatusNoContent},
		{"Ledger down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			_, r := gin.CreateTestContext(recorder)

			healthz.Controller{Checker: checker{tt.err}}.RegisterRoutes(r.Group("/healthz"))

			req, _ := http.NewRequest(http.MethodGet, "https://example.com/healthz", nil)
			r.ServeHTTP(recorder, req)

			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
