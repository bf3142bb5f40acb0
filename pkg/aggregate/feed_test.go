package aggregate_test

import (
	"testing"

	"github.com/equitrack/dashboard/internal/types"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entries []aggregate.ActivityEntry) []ledger.ID {
	result := make([]ledger.ID, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.ID)
	}
	return result
}

func TestComposeFeed(t *testing.T) {
	expense := tx("1", "40", types.NewDate(2025, 1, 10))

	income := tx("2", "1000", types.NewDate(2025, 1, 12))
	income.Type = ledger.Income

	deposit := ledger.Activity{ID: "3", Type: "DEPOSIT", Amount: decimal.NewFromInt(250), Date: types.NewDate(2025, 1, 12)}

	feed := aggregate.ComposeFeed(5,
		aggregate.TransactionEntries([]ledger.Transaction{expense}),
		aggregate.TransactionEntries([]ledger.Transaction{income}),
		aggregate.WalletEntries([]ledger.Activity{deposit}),
	)

	assert.Equal(t, []ledger.ID{"2", "3", "1"}, ids(feed))

	assert.Equal(t, ledger.ActivityIncome, feed[0].DisplayType)
	assert.Equal(t, "incomes", feed[0].Source)
	assert.True(t, feed[0].Inflow)

	assert.Equal(t, ledger.ActivityDeposit, feed[1].DisplayType)
	assert.Equal(t, aggregate.WalletActivitySource, feed[1].Source)
	assert.Equal(t, "Money In", feed[1].Name)

	assert.Equal(t, ledger.ActivityExpense, feed[2].DisplayType)
	assert.False(t, feed[2].Inflow)
}

func TestComposeFeedDeduplicates(t *testing.T) {
	a := tx("1", "10", types.NewDate(2025, 1, 1))
	b := tx("1", "10", types.NewDate(2025, 1, 1))
	b.Name = "duplicate"

	income := tx("1", "10", types.NewDate(2025, 1, 1))
	income.Type = ledger.Income

	feed := aggregate.ComposeFeed(10,
		aggregate.TransactionEntries([]ledger.Transaction{a}),
		aggregate.TransactionEntries([]ledger.Transaction{b, income}),
	)

	require.Len(t, feed, 2, "same ID from different collections is kept")
	assert.Equal(t, "", feed[0].Name, "first occurrence wins")
	assert.Equal(t, "incomes", feed[1].Source)
}

func TestTransactionEntriesSkipsUnknownKind(t *testing.T) {
	untyped := tx("1", "10", types.NewDate(2025, 1, 1))
	untyped.Type = ""

	entries := aggregate.TransactionEntries([]ledger.Transaction{untyped, tx("2", "10", types.NewDate(2025, 1, 1))})

	require.Len(t, entries, 1)
	assert.Equal(t, ledger.ID("2"), entries[0].ID)
	assert.Equal(t, "expenses", entries[0].Source)
}

func TestComposeFeedTruncates(t *testing.T) {
	transactions := make([]ledger.Transaction, 0)
	for day := 1; day <= 8; day++ {
		transactions = append(transactions, tx(string(rune('a'+day)), "1", types.NewDate(2025, 1, day)))
	}

	feed := aggregate.ComposeFeed(0, aggregate.TransactionEntries(transactions))
	require.Len(t, feed, aggregate.DefaultFeedLimit)
	assert.Equal(t, types.NewDate(2025, 1, 8), feed[0].Date)

	feed = aggregate.ComposeFeed(3, aggregate.TransactionEntries(transactions))
	assert.Len(t, feed, 3)
}

func TestComposeFeedEmpty(t *testing.T) {
	feed := aggregate.ComposeFeed(5)
	assert.NotNil(t, feed)
	assert.Len(t, feed, 0)
}

func TestWalletEntries(t *testing.T) {
	wallet := &ledger.Wallet{ID: "9", WalletType: "Cash"}

	entries := aggregate.WalletEntries([]ledger.Activity{
		{ID: "1", Type: "withdraw", Amount: decimal.NewFromInt(-20), Description: "ATM", Wallet: wallet},
		{ID: "2", Type: "TRANSFER_IN", Amount: decimal.NewFromInt(30)},
		{ID: "3", Type: "REFUND", Amount: decimal.NewFromInt(5)},
		{ID: "4", Type: "", Amount: decimal.NewFromInt(-5)},
	})

	require.Len(t, entries, 4)

	assert.Equal(t, ledger.ActivityWithdraw, entries[0].DisplayType)
	assert.Equal(t, "ATM", entries[0].Name)
	assert.True(t, decimal.NewFromInt(20).Equal(entries[0].Amount))
	assert.Equal(t, wallet, entries[0].Wallet)
	assert.Equal(t, ledger.Expense, entries[0].Type)

	assert.Equal(t, ledger.ActivityTransferIn, entries[1].DisplayType)
	assert.True(t, entries[1].Inflow)

	assert.Equal(t, ledger.ActivityDeposit, entries[2].DisplayType, "unknown types resolve by sign")
	assert.Equal(t, ledger.ActivityWithdraw, entries[3].DisplayType)
	assert.Equal(t, "Money Out", entries[3].Name)
}
