// Package ledger contains the canonical record shapes read from the external
// ledger API.
//
// Records are decoded tolerantly: a malformed field degrades to its zero
// value instead of failing the whole payload, since the backend evolves
// independently of the dashboard.
package ledger

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the kind of a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a kind case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, true
	case Expense:
		return Expense, true
	}

	return "", false
}

// Collection returns the name of the API collection records of this kind
// are served from, e.g. "incomes".
func (k Kind) Collection() string {
	return string(k) + "s"
}

// ID identifies a record. The backend may send numeric or string IDs,
// both are stored as strings.
type ID string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String returns the ID as string.
func (id ID) String() string {
	return string(id)
}

// ParseAmount reads a monetary amount from a raw JSON value.
//
// Numbers and numeric strings are accepted. Anything else, including null,
// NaN and infinities, yields zero and ok == false.
func ParseAmount(raw json.RawMessage) (amount decimal.Decimal, ok bool) {
	value := strings.TrimSpace(string(raw))
	if value == "" || value == "null" {
		return decimal.Zero, false
	}

	if strings.HasPrefix(value, `"`) {
		unquoted, err := strconv.Unquote(value)
		if err != nil {
			return decimal.Zero, false
		}
		value = strings.TrimSpace(unquoted)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}
