package v1

import "github.com/shopspring/decimal"

// Response is the envelope of all v1 responses. Exactly one of Data and
// Error is set.
type Response[T any] struct {
	Data  *T      `json:"data"`                                                           // Data of the response
	Error *string `json:"error,omitempty" example:"the amount must be greater than zero"` // The error, if any occurred
}

type QueryActivity struct {
	Limit int `form:"limit" example:"10"` // Maximum number of entries
}

// MutationEditable is the body of deposits and withdrawals.
type MutationEditable struct {
	Amount decimal.Decimal `json:"amount" example:"100.50"` // Amount to deposit or withdraw, must be greater than zero
}
