// Package v1 serves the derived dashboard views.
package v1

import (
	"net/http"

	"github.com/equitrack/dashboard/internal/dashboard"
	"github.com/equitrack/dashboard/internal/httputil"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

const contextSession = "session"

// Controller serves the v1 API.
type Controller struct {
	Service *dashboard.Service
}

type Links struct {
	Overview string `json:"overview" example:"https://example.com/api/v1/overview"` // URL of the overview
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes"`   // URL of the income page
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of the expense page
	Wallets  string `json:"wallets" example:"https://example.com/api/v1/wallets"`   // URL of the wallet page
	Budgets  string `json:"budgets" example:"https://example.com/api/v1/budgets"`   // URL of the budget page
	Activity string `json:"activity" example:"https://example.com/api/v1/activity"` // URL of the activity feed
}

type LinksResponse struct {
	Links Links `json:"links"` // Links for the v1 API
}

// RegisterRoutes registers all v1 routes with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	r.OPTIONS("/overview", httputil.OptionsGet)
	r.OPTIONS("/incomes", httputil.OptionsGet)
	r.OPTIONS("/expenses", httputil.OptionsGet)
	r.OPTIONS("/wallets", httputil.OptionsGet)
	r.OPTIONS("/wallets/:id/deposit", httputil.OptionsPost)
	r.OPTIONS("/wallets/:id/withdraw", httputil.OptionsPost)
	r.OPTIONS("/budgets", httputil.OptionsGet)
	r.OPTIONS("/activity", httputil.OptionsGet)

	authenticated := r.Group("", Session)
	{
		authenticated.GET("/overview", co.GetOverview)
		authenticated.GET("/incomes", co.GetIncomes)
		authenticated.GET("/expenses", co.GetExpenses)
		authenticated.GET("/wallets", co.GetWallets)
		authenticated.POST("/wallets/:id/deposit", co.Deposit)
		authenticated.POST("/wallets/:id/withdraw", co.Withdraw)
		authenticated.GET("/budgets", co.GetBudgets)
		authenticated.GET("/activity", co.GetActivity)
	}
}

// Session reads the session from the Authorization and X-Profile-ID
// headers and rejects requests without one.
func Session(c *gin.Context) {
	s := session.FromAuthorization(c.GetHeader("Authorization"), c.GetHeader("X-Profile-ID"))
	if err := s.Validate(); err != nil {
		httputil.NewError(c, http.StatusUnauthorized, errNoSession)
		return
	}

	c.Set(contextSession, s)
}

func sessionOf(c *gin.Context) session.Session {
	s, _ := c.MustGet(contextSession).(session.Session)
	return s
}

// respond writes data or, if err is set, the error with the matching status.
func respond[T any](c *gin.Context, data T, err error) {
	if err != nil {
		e := err.Error()
		c.JSON(status(err), Response[T]{Error: &e})
		return
	}

	c.JSON(http.StatusOK, Response[T]{Data: &data})
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	LinksResponse
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(httputil.ContextURL) + "/v1"

	c.JSON(http.StatusOK, LinksResponse{
		Links: Links{
			Overview: url + "/overview",
			Incomes:  url + "/incomes",
			Expenses: url + "/expenses",
			Wallets:  url + "/wallets",
			Budgets:  url + "/budgets",
			Activity: url + "/activity",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
