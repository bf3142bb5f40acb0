package ledger

import (
	"encoding/json"
	"strings"

	"github.com/equitrack/dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// ActivityType is the resolved display type of an activity feed entry.
type ActivityType string

const (
	ActivityDeposit     ActivityType = "DEPOSIT"
	ActivityWithdraw    ActivityType = "WITHDRAW"
	ActivityTransferIn  ActivityType = "TRANSFER_IN"
	ActivityTransferOut ActivityType = "TRANSFER_OUT"
	ActivityIncome      ActivityType = "INCOME"
	ActivityExpense     ActivityType = "EXPENSE"
)

// Inflow reports whether money enters a wallet with this activity.
func (a ActivityType) Inflow() bool {
	switch a {
	case ActivityDeposit, ActivityTransferIn, ActivityIncome:
		return true
	}

	return false
}

// ParseActivityType parses the activity types known to the wallet ledger.
func ParseActivityType(s string) (ActivityType, bool) {
	switch a := ActivityType(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActivityDeposit, ActivityWithdraw, ActivityTransferIn, ActivityTransferOut, ActivityIncome, ActivityExpense:
		return a, true
	}

	return "", false
}

// Activity is a wallet ledger event as returned by the transaction
// history endpoint.
type Activity struct {
	ID          ID              `json:"id" example:"901"`
	Type        string          `json:"type" example:"DEPOSIT"` // Raw type as sent by the backend
	Amount      decimal.Decimal `json:"amount" example:"250"`
	Date        types.Date      `json:"date" example:"2025-01-12"`
	Description string          `json:"description,omitempty" example:"Top up"`
	Wallet      *Wallet         `json:"wallet,omitempty"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// The date is read from "createdAt", falling back to "date".
func (a *Activity) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID          ID              `json:"id"`
		Type        string          `json:"type"`
		Amount      json.RawMessage `json:"amount"`
		CreatedAt   json.RawMessage `json:"createdAt"`
		Date        json.RawMessage `json:"date"`
		Description string          `json:"description"`
		Wallet      *Wallet         `json:"wallet"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	amount, _ := ParseAmount(wire.Amount)

	var date types.Date
	if err := date.UnmarshalJSON(wire.CreatedAt); err != nil || date.IsZero() {
		date = types.Date{}
		_ = date.UnmarshalJSON(wire.Date)
	}

	*a = Activity{
		ID:          wire.ID,
		Type:        wire.Type,
		Amount:      amount,
		Date:        date,
		Description: wire.Description,
		Wallet:      wire.Wallet,
	}

	return nil
}
