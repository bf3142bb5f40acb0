package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/equitrack/dashboard/internal/httputil"
	"github.com/equitrack/dashboard/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddlewareContextSet(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	u, _ := url.Parse("https://equitrack.example.com:8081/api")

	r.GET("/wallets", func(_ *gin.Context) {
		router.URLMiddleware(u)(c)
		c.String(http.StatusOK, c.GetString(httputil.ContextURL))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/wallets", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://equitrack.example.com:8081/api", w.Body.String())
}

func TestURLMiddlewareEmptyURL(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/wallets", func(_ *gin.Context) {
		router.URLMiddleware(&url.URL{})(c)
		c.String(http.StatusOK, c.GetString(httputil.ContextURL))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/wallets", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "", w.Body.String())
}
