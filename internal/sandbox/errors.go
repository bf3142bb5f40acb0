package sandbox

import (
	"errors"
)

var (
	ErrGeneral                = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound       = errors.New("there is no")
	ErrInvalidAmount          = errors.New("amount must be greater than 0")
	ErrInsufficientFunds      = errors.New("insufficient balance in the wallet")
	ErrWalletInactive         = errors.New("the wallet is deactivated")
	ErrCategoryNameNotUnique  = errors.New("the category name must be unique for the profile and type")
	ErrUnauthorized           = errors.New("a bearer token is required")
	ErrForbidden              = errors.New("the token does not grant access to this profile")
	ErrInvalidTransactionKind = errors.New("the type must be income or expense")
)
