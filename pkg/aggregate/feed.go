package aggregate

import (
	"strings"

	"github.com/equitrack/dashboard/pkg/ledger"
	"golang.org/x/exp/slices"
)

// DefaultFeedLimit is the number of entries compact widgets show.
const DefaultFeedLimit = 5

// WalletActivitySource is the source collection of wallet activity entries.
const WalletActivitySource = "wallet-activity"

// ActivityEntry is one entry of the merged activity feed.
type ActivityEntry struct {
	ledger.Transaction
	Source      string              `json:"source" example:"incomes"` // Collection the entry was fetched from
	Wallet      *ledger.Wallet      `json:"wallet,omitempty"`
	DisplayType ledger.ActivityType `json:"displayType" example:"INCOME"`
	Inflow      bool                `json:"inflow" example:"true"`
}

// TransactionEntries converts income or expense transactions to feed entries.
//
// Transactions of unknown kind are left out: without a kind there is no
// source collection and no direction to show.
func TransactionEntries(transactions []ledger.Transaction) []ActivityEntry {
	result := make([]ActivityEntry, 0, len(transactions))
	for _, t := range transactions {
		if t.Type != ledger.Income && t.Type != ledger.Expense {
			continue
		}

		displayType := ledger.ActivityExpense
		if t.Type == ledger.Income {
			displayType = ledger.ActivityIncome
		}

		t.Amount = t.Amount.Abs()
		result = append(result, ActivityEntry{
			Transaction: t,
			Source:      t.Type.Collection(),
			DisplayType: displayType,
			Inflow:      displayType.Inflow(),
		})
	}

	return result
}

// WalletEntries converts wallet activity to feed entries.
//
// Types the wallet ledger does not document are resolved by the sign of the
// amount: positive amounts are deposits, everything else a withdrawal.
func WalletEntries(activities []ledger.Activity) []ActivityEntry {
	result := make([]ActivityEntry, 0, len(activities))
	for _, a := range activities {
		displayType, ok := ledger.ParseActivityType(a.Type)
		if !ok {
			displayType = ledger.ActivityWithdraw
			if a.Amount.IsPositive() {
				displayType = ledger.ActivityDeposit
			}
		}

		name := strings.TrimSpace(a.Description)
		if name == "" {
			name = "Money Out"
			if displayType.Inflow() {
				name = "Money In"
			}
		}

		kind := ledger.Expense
		if displayType.Inflow() {
			kind = ledger.Income
		}

		result = append(result, ActivityEntry{
			Transaction: ledger.Transaction{
				ID:     a.ID,
				Name:   name,
				Amount: a.Amount.Abs(),
				Date:   a.Date,
				Type:   kind,
			},
			Source:      WalletActivitySource,
			Wallet:      a.Wallet,
			DisplayType: displayType,
			Inflow:      displayType.Inflow(),
		})
	}

	return result
}

type feedKey struct {
	source string
	id     ledger.ID
}

// ComposeFeed merges feed entries into one list ordered from newest to oldest.
//
// Sources are passed in fetch order. An entry that appears more than once
// with the same source and ID is kept at its first occurrence. Entries with
// the same date keep their fetch order. The result has at most limit entries,
// a limit below one selects DefaultFeedLimit.
func ComposeFeed(limit int, sources ...[]ActivityEntry) []ActivityEntry {
	if limit < 1 {
		limit = DefaultFeedLimit
	}

	seen := make(map[feedKey]struct{})
	result := make([]ActivityEntry, 0)

	for _, source := range sources {
		for _, e := range source {
			key := feedKey{source: e.Source, id: e.ID}
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			result = append(result, e)
		}
	}

	slices.SortStableFunc(result, func(a, b ActivityEntry) int {
		return b.Date.Compare(a.Date)
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result
}
