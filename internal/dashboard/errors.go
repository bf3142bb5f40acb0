package dashboard

import "errors"

var (
	ErrInvalidKind    = errors.New("transaction kind must be income or expense")
	ErrWalletNotFound = errors.New("there is no active wallet with this ID")
)
