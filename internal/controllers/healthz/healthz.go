package healthz

import (
	"context"
	"net/http"

	"github.com/equitrack/dashboard/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Checker checks the health of a dependency.
type Checker interface {
	Health(ctx context.Context) error
}

// Controller reports the health of the dashboard.
type Controller struct {
	Checker Checker
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if the ledger is not reachable, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	httputil.HTTPError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.Checker.Health(c.Request.Context()); err != nil {
		log.Warn().Err(err).Msg("ledger health check failed")
		httputil.NewError(c, http.StatusServiceUnavailable, err)
		return
	}

	c.Status(http.StatusNoContent)
}
