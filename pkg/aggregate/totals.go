package aggregate

import (
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// Totals are the sums shown in page headers.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"6200"`
	Expense decimal.Decimal `json:"expense" example:"4100.55"`
	Net     decimal.Decimal `json:"net" example:"2099.45"`
}

// CalculateTotals sums incomes and expenses.
func CalculateTotals(incomes, expenses []ledger.Transaction) Totals {
	income := Sum(incomes)
	expense := Sum(expenses)

	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
