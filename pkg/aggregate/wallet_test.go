package aggregate_test

import (
	"errors"
	"testing"

	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallets() []ledger.Wallet {
	return []ledger.Wallet{
		{ID: "1", Balance: decimal.NewFromInt(500), Active: true},
		{ID: "2", Balance: decimal.NewFromInt(300), Active: false},
		{ID: "3", Balance: decimal.NewFromInt(200), Active: true},
	}
}

func TestTotalBalance(t *testing.T) {
	assert.True(t, decimal.NewFromInt(700).Equal(aggregate.TotalBalance(wallets())))
	assert.True(t, aggregate.TotalBalance(nil).IsZero())
}

func TestActiveWallets(t *testing.T) {
	active := aggregate.ActiveWallets(wallets())
	require.Len(t, active, 2)
	assert.Equal(t, ledger.ID("3"), active[1].ID)
}

func TestReconcile(t *testing.T) {
	r, err := aggregate.Reconcile(wallets(), decimal.RequireFromString("700.001"))
	require.Nil(t, err)
	assert.True(t, r.Reconciled)
	assert.True(t, r.Difference.IsZero())

	r, err = aggregate.Reconcile(wallets(), decimal.NewFromInt(1000))
	assert.True(t, errors.Is(err, aggregate.ErrBalanceMismatch))
	assert.False(t, r.Reconciled)
	assert.True(t, decimal.NewFromInt(-300).Equal(r.Difference))
	assert.True(t, decimal.NewFromInt(700).Equal(r.Computed))
}

func TestExpectedBalance(t *testing.T) {
	before := ledger.Wallet{ID: "1", Balance: decimal.NewFromInt(100), Active: true}

	after, err := aggregate.ExpectedBalance(before, aggregate.Deposit, decimal.NewFromInt(50))
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(after))

	after, err = aggregate.ExpectedBalance(before, aggregate.Withdraw, decimal.NewFromInt(30))
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(after))

	_, err = aggregate.ExpectedBalance(before, aggregate.Deposit, decimal.Zero)
	assert.True(t, errors.Is(err, aggregate.ErrInvalidAmount))

	_, err = aggregate.ExpectedBalance(before, aggregate.Operation("transfer"), decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, aggregate.ErrUnknownOperation))
}

func TestVerifyMutation(t *testing.T) {
	before := ledger.Wallet{ID: "1", Balance: decimal.NewFromInt(100), Active: true}

	err := aggregate.VerifyMutation(before, aggregate.Deposit, decimal.NewFromInt(50), ledger.Wallet{ID: "1", Balance: decimal.NewFromInt(150)})
	assert.Nil(t, err)

	err = aggregate.VerifyMutation(before, aggregate.Deposit, decimal.NewFromInt(50), ledger.Wallet{ID: "1", Balance: decimal.NewFromInt(170)})
	assert.True(t, errors.Is(err, aggregate.ErrUnexpectedBalance))
}
