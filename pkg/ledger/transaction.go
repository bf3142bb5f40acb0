package ledger

import (
	"encoding/json"

	"github.com/equitrack/dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense ledger entry.
type Transaction struct {
	ID         ID              `json:"id" example:"42"`
	Name       string          `json:"name" example:"Salary"`
	Amount     decimal.Decimal `json:"amount" example:"2500.00"`
	Date       types.Date      `json:"date" example:"2025-01-12"`
	Type       Kind            `json:"type" example:"income"`
	CategoryID *ID             `json:"categoryId" example:"7"`
	Category   string          `json:"category,omitempty" example:"Work"` // Display name, if the backend sends it inline
	Icon       *string         `json:"icon" example:"💼"`

	// InvalidAmount is set when the amount sent by the backend was not
	// numeric or negative. Amount is zero in that case.
	InvalidAmount bool `json:"-"`
}

type transactionWire struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	Amount       json.RawMessage `json:"amount"`
	Date         json.RawMessage `json:"date"`
	Type         string          `json:"type"`
	CategoryID   *ID             `json:"categoryId"`
	Category     json.RawMessage `json:"category"`
	CategoryName string          `json:"categoryName"`
	Icon         *string         `json:"icon"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Malformed and negative amounts decode to zero and set InvalidAmount,
// malformed dates decode to the zero date. Only a payload that is not an
// object at all returns an error.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	amount, ok := ParseAmount(w.Amount)
	if amount.IsNegative() {
		amount, ok = decimal.Zero, false
	}

	var date types.Date
	_ = date.UnmarshalJSON(w.Date)

	kind, _ := ParseKind(w.Type)

	*t = Transaction{
		ID:            w.ID,
		Name:          w.Name,
		Amount:        amount,
		Date:          date,
		Type:          kind,
		CategoryID:    w.CategoryID,
		Category:      categoryName(w.Category, w.CategoryName),
		Icon:          w.Icon,
		InvalidAmount: !ok,
	}

	return nil
}

// categoryName reads the inline category name, which is either a plain
// string or an embedded category object.
func categoryName(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil && name != "" {
		return name
	}

	var c struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &c); err == nil && c.Name != "" {
		return c.Name
	}

	return fallback
}

// FilterKind returns the transactions of the given kind.
func FilterKind(transactions []Transaction, kind Kind) []Transaction {
	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == kind {
			result = append(result, t)
		}
	}

	return result
}
