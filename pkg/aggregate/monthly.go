package aggregate

import (
	"github.com/equitrack/dashboard/internal/types"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthlyPoint is the sum of one calendar month.
type MonthlyPoint struct {
	Label string          `json:"label" example:"Jan 2025"`
	Value decimal.Decimal `json:"value" example:"2842.50"`
}

// MonthlySeries is a chronologically ordered list of monthly sums.
type MonthlySeries struct {
	Points  []MonthlyPoint `json:"points"`
	Skipped int            `json:"skipped" example:"0"` // Number of transactions without a usable date
}

// Monthly groups transactions by their UTC calendar month and sums them.
//
// The transactions are expected to be of one kind. Months are ordered
// chronologically, not by label. Transactions without a date cannot be
// placed in a month and are counted in Skipped instead. Monthly sums are
// exact, rounding is left to display so the series adds up to Sum.
func Monthly(transactions []ledger.Transaction) MonthlySeries {
	sums := make(map[int]decimal.Decimal)
	months := make(map[int]types.Month)
	skipped := 0

	for _, t := range transactions {
		if t.Date.IsZero() {
			skipped++
			continue
		}

		month := t.Date.Month()
		key := month.Ordinal()

		months[key] = month
		sums[key] = sums[key].Add(amountOf(t))
	}

	keys := make([]int, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	points := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, MonthlyPoint{
			Label: months[key].Label(),
			Value: sums[key],
		})
	}

	return MonthlySeries{
		Points:  points,
		Skipped: skipped,
	}
}

// Sum returns the sum of all transaction amounts.
func Sum(transactions []ledger.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(amountOf(t))
	}

	return sum
}

// amountOf returns what a transaction contributes to a sum. Transaction
// amounts are never negative, a negative one is bad data and contributes
// zero like a non-numeric one.
func amountOf(t ledger.Transaction) decimal.Decimal {
	if t.Amount.IsNegative() {
		return decimal.Zero
	}

	return t.Amount
}
