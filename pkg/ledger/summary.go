package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Summary is the response of the dashboard endpoint.
type Summary struct {
	TotalBalance       decimal.Decimal `json:"totalBalance" example:"4231.20"`
	TotalIncome        decimal.Decimal `json:"totalIncome" example:"6200"`
	TotalExpense       decimal.Decimal `json:"totalExpense" example:"1968.80"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
	Recent5Expenses    []Transaction   `json:"recent5Expenses"`
	Recent5Incomes     []Transaction   `json:"recent5Incomes"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Missing lists decode to empty slices, never nil. Single records that
// cannot be decoded are dropped.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var wire struct {
		TotalBalance       json.RawMessage   `json:"totalBalance"`
		TotalIncome        json.RawMessage   `json:"totalIncome"`
		TotalExpense       json.RawMessage   `json:"totalExpense"`
		RecentTransactions []json.RawMessage `json:"recentTransactions"`
		Recent5Expenses    []json.RawMessage `json:"recent5Expenses"`
		Recent5Incomes     []json.RawMessage `json:"recent5Incomes"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.TotalBalance, _ = ParseAmount(wire.TotalBalance)
	s.TotalIncome, _ = ParseAmount(wire.TotalIncome)
	s.TotalExpense, _ = ParseAmount(wire.TotalExpense)
	s.RecentTransactions = decodeTransactions(wire.RecentTransactions, "")
	s.Recent5Expenses = decodeTransactions(wire.Recent5Expenses, Expense)
	s.Recent5Incomes = decodeTransactions(wire.Recent5Incomes, Income)

	return nil
}

// decodeTransactions decodes every record that can be decoded and sets
// the kind on records that do not carry one.
func decodeTransactions(raw []json.RawMessage, kind Kind) []Transaction {
	result := make([]Transaction, 0, len(raw))
	for _, r := range raw {
		var t Transaction
		if err := json.Unmarshal(r, &t); err != nil {
			continue
		}

		if t.Type == "" {
			t.Type = kind
		}
		result = append(result, t)
	}

	return result
}
