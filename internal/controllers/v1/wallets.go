package v1

import (
	"context"

	"github.com/equitrack/dashboard/internal/dashboard"
	"github.com/equitrack/dashboard/internal/httputil"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @Summary		Get wallets
// @Description	Returns the active wallets, their total balance and its reconciliation with the ledger
// @Tags			Wallets
// @Produce		json
// @Success		200				{object}	Response[dashboard.WalletPage]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		502				{object}	Response[dashboard.WalletPage]
// @Param			Authorization	header		string	true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string	true	"Profile ID of the ledger session"
// @Router			/v1/wallets [get]
func (co Controller) GetWallets(c *gin.Context) {
	page, err := co.Service.Wallets(c.Request.Context(), sessionOf(c))
	respond(c, page, err)
}

// @Summary		Deposit
// @Description	Deposits an amount into a wallet and returns the wallets afterwards
// @Tags			Wallets
// @Produce		json
// @Success		200				{object}	Response[dashboard.Mutation]
// @Failure		400				{object}	Response[dashboard.Mutation]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		404				{object}	Response[dashboard.Mutation]
// @Failure		502				{object}	Response[dashboard.Mutation]
// @Param			Authorization	header		string				true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string				true	"Profile ID of the ledger session"
// @Param			id				path		string				true	"ID of the wallet"
// @Param			mutation		body		MutationEditable	true	"Amount"
// @Router			/v1/wallets/{id}/deposit [post]
func (co Controller) Deposit(c *gin.Context) {
	co.mutate(c, co.Service.Deposit)
}

// @Summary		Withdraw
// @Description	Withdraws an amount from a wallet and returns the wallets afterwards
// @Tags			Wallets
// @Produce		json
// @Success		200				{object}	Response[dashboard.Mutation]
// @Failure		400				{object}	Response[dashboard.Mutation]
// @Failure		401				{object}	httputil.HTTPError
// @Failure		404				{object}	Response[dashboard.Mutation]
// @Failure		502				{object}	Response[dashboard.Mutation]
// @Param			Authorization	header		string				true	"Bearer token of the ledger session"
// @Param			X-Profile-ID	header		string				true	"Profile ID of the ledger session"
// @Param			id				path		string				true	"ID of the wallet"
// @Param			mutation		body		MutationEditable	true	"Amount"
// @Router			/v1/wallets/{id}/withdraw [post]
func (co Controller) Withdraw(c *gin.Context) {
	co.mutate(c, co.Service.Withdraw)
}

type mutation func(ctx context.Context, s session.Session, walletID ledger.ID, amount decimal.Decimal) (dashboard.Mutation, error)

func (co Controller) mutate(c *gin.Context, fn mutation) {
	var editable MutationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respond(c, dashboard.Mutation{}, err)
		return
	}

	result, err := fn(c.Request.Context(), sessionOf(c), ledger.ID(c.Param("id")), editable.Amount)
	respond(c, result, err)
}
