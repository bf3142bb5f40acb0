// Package aggregate derives the numbers the dashboard renders from fetched
// ledger records.
//
// Every function is pure: it reads its arguments and returns fresh values.
// Bad data degrades to zero contributions or fallback buckets, only caller
// contract violations are returned as errors.
package aggregate

import "errors"

var (
	ErrInvalidBudgetLimit = errors.New("budget limit must be greater than zero")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrUnknownOperation   = errors.New("unknown wallet operation")
	ErrBalanceMismatch    = errors.New("sum of active wallet balances does not match the reported total balance")
	ErrUnexpectedBalance  = errors.New("wallet balance after the operation is not the expected balance")
)
