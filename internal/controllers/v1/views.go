package v1

import (
	"github.com/equitrack/dashboard/internal/dashboard"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/gin-gonic/gin"
)

// @Summary		Get overview
// @Description	Returns the totals, the finance overview shares and the latest activity
// @Tags			Overview
// @Produce		json
// @Success		200				{object}	Response[dashboard.Overview]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.Overview]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Router			/v1/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	overview, err := co.Service.Overview(c.Request.Context(), sessionOf(c))
	respond(c, overview, err)
}

// @Summary		Get incomes
// @Description	Returns all incomes with their monthly series and category breakdown
// @Tags			Transactions
// @Produce		json
// @Success		200				{object}	Response[dashboard.TransactionPage]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.TransactionPage]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Param			category		query		string	false	"Glob the category name must match"
// @Router			/v1/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	co.transactions(c, ledger.Income)
}

// @Summary		Get expenses
// @Description	Returns all expenses with their monthly series and category breakdown
// @Tags			Transactions
// @Produce		json
// @Success		200				{object}	Response[dashboard.TransactionPage]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.TransactionPage]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Param			category		query		string	false	"Glob the category name must match"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	co.transactions(c, ledger.Expense)
}

func (co Controller) transactions(c *gin.Context, kind ledger.Kind) {
	page, err := co.Service.Transactions(c.Request.Context(), sessionOf(c), kind, c.Query("category"))
	respond(c, page, err)
}

// @Summary		Get budgets
// @Description	Returns the progress of all budgets in their current period
// @Tags			Budgets
// @Produce		json
// @Success		200				{object}	Response[dashboard.BudgetPage]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.BudgetPage]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	page, err := co.Service.Budgets(c.Request.Context(), sessionOf(c))
	respond(c, page, err)
}

// @Summary		Get activity
// @Description	Returns the merged feed of incomes, expenses and wallet activity, newest first
// @Tags			Activity
// @Produce		json
// @Success		200				{object}	Response[dashboard.Activity]
// @Failure		400				{object}	Response[dashboard.Activity]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.Activity]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Param			limit			query		int		false	"Maximum number of entries"
// @Router			/v1/activity [get]
func (co Controller) GetActivity(c *gin.Context) {
	var query QueryActivity
	if err := c.ShouldBindQuery(&query); err != nil || (c.Query("limit") != "" && query.Limit < 1) {
		respond(c, dashboard.Activity{}, errLimitInvalid)
		return
	}

	activity, err := co.Service.Activity(c.Request.Context(), sessionOf(c), query.Limit)
	respond(c, activity, err)
}
