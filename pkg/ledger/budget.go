package ledger

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Period is the recurring window a budget limit applies to.
type Period string

const (
	Daily   Period = "DAILY"
	Weekly  Period = "WEEKLY"
	Monthly Period = "MONTHLY"
	Yearly  Period = "YEARLY"
)

// ParsePeriod parses a period case-insensitively.
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(strings.ToUpper(strings.TrimSpace(s))); p {
	case Daily, Weekly, Monthly, Yearly:
		return p, true
	}

	return "", false
}

// Budget is a spending limit scoped to one category and period.
//
// Only the limit and the period are persisted upstream, spending
// progress is derived locally.
type Budget struct {
	ID           ID              `json:"id" example:"11"`
	CategoryID   ID              `json:"categoryId" example:"7"`
	CategoryName string          `json:"categoryName,omitempty" example:"Groceries"`
	LimitAmount  decimal.Decimal `json:"limitAmount" example:"1000"`
	Period       Period          `json:"period" example:"MONTHLY"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Unknown or missing periods decode to Monthly, the default period of
// the backend. The category may be referenced by ID or embedded.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID           ID              `json:"id"`
		CategoryID   *ID             `json:"categoryId"`
		Category     json.RawMessage `json:"category"`
		CategoryName string          `json:"categoryName"`
		LimitAmount  json.RawMessage `json:"limitAmount"`
		Period       string          `json:"period"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	limit, _ := ParseAmount(wire.LimitAmount)

	period, ok := ParsePeriod(wire.Period)
	if !ok {
		period = Monthly
	}

	var embedded struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}
	if len(wire.Category) > 0 {
		_ = json.Unmarshal(wire.Category, &embedded)
	}

	categoryID := embedded.ID
	if wire.CategoryID != nil {
		categoryID = *wire.CategoryID
	}

	name := wire.CategoryName
	if name == "" {
		name = embedded.Name
	}

	*b = Budget{
		ID:           wire.ID,
		CategoryID:   categoryID,
		CategoryName: name,
		LimitAmount:  limit,
		Period:       period,
	}

	return nil
}
