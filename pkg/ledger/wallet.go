package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when the backend does not send a currency.
const DefaultCurrency = "PHP"

// Wallet is a named money container.
//
// The balance is authoritative on the external ledger and only mirrored here.
type Wallet struct {
	ID         ID              `json:"id" example:"3"`
	WalletType string          `json:"walletType" example:"GCash"`
	Balance    decimal.Decimal `json:"balance" example:"1520.75"`
	Currency   string          `json:"currency" example:"PHP"`
	Active     bool            `json:"active" example:"true"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// A wallet without an active flag is considered active, the flag is only
// sent by endpoints that also return deactivated wallets. Both "active"
// and "isActive" are accepted.
func (w *Wallet) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID         ID              `json:"id"`
		WalletType string          `json:"walletType"`
		Balance    json.RawMessage `json:"balance"`
		Currency   string          `json:"currency"`
		Active     *bool           `json:"active"`
		IsActive   *bool           `json:"isActive"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	balance, _ := ParseAmount(wire.Balance)

	active := true
	if wire.Active != nil {
		active = *wire.Active
	} else if wire.IsActive != nil {
		active = *wire.IsActive
	}

	currency := wire.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	*w = Wallet{
		ID:         wire.ID,
		WalletType: wire.WalletType,
		Balance:    balance,
		Currency:   currency,
		Active:     active,
	}

	return nil
}

// TotalBalance is the response of the total balance endpoint.
type TotalBalance struct {
	TotalBalance decimal.Decimal `json:"totalBalance" example:"4231.20"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *TotalBalance) UnmarshalJSON(data []byte) error {
	var wire struct {
		TotalBalance json.RawMessage `json:"totalBalance"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	t.TotalBalance, _ = ParseAmount(wire.TotalBalance)
	return nil
}
