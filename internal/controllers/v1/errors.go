package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/equitrack/dashboard/internal/dashboard"
	"github.com/equitrack/dashboard/internal/httputil"
	"github.com/equitrack/dashboard/internal/ledgerclient"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
)

var (
	errLimitInvalid = errors.New("the limit query parameter must be a positive number")
	errNoSession    = errors.New("the Authorization header must contain a bearer token and the X-Profile-ID header must be set")
)

// status returns the HTTP status for an error of the dashboard or the ledger.
//
// Client errors of the ledger are passed through, all other ledger and
// transport failures are reported as bad gateway.
func status(err error) int {
	var apiErr *ledgerclient.APIError

	switch {
	case errors.Is(err, session.ErrNoToken),
		errors.Is(err, session.ErrNoProfileID),
		errors.Is(err, ledgerclient.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, dashboard.ErrWalletNotFound):
		return http.StatusNotFound

	case errors.Is(err, aggregate.ErrInvalidAmount),
		errors.Is(err, ledgerclient.ErrInvalidAmount),
		errors.Is(err, dashboard.ErrInvalidKind),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, errLimitInvalid):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.As(err, &apiErr):
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status
		}
	}

	return http.StatusBadGateway
}
