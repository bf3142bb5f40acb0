package httputil

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// InternalError logs an unexpected error with the request ID and responds
// with a generic message referencing it.
func InternalError(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
}

// NewError creates an HTTPError instance and returns it.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}
	c.AbortWithStatusJSON(status, e)
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the amount must be greater than zero"`
}
