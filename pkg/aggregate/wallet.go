package aggregate

import (
	"fmt"

	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// ActiveWallets returns the wallets that are active.
func ActiveWallets(wallets []ledger.Wallet) []ledger.Wallet {
	result := make([]ledger.Wallet, 0, len(wallets))
	for _, w := range wallets {
		if w.Active {
			result = append(result, w)
		}
	}

	return result
}

// TotalBalance sums the balances of all active wallets.
func TotalBalance(wallets []ledger.Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		if w.Active {
			total = total.Add(w.Balance)
		}
	}

	return total
}

// Reconciliation compares the computed total balance with the one the
// ledger reports.
type Reconciliation struct {
	Computed   decimal.Decimal `json:"computed" example:"700"`
	Reported   decimal.Decimal `json:"reported" example:"700"`
	Difference decimal.Decimal `json:"difference" example:"0"` // Computed minus reported
	Reconciled bool            `json:"reconciled" example:"true"`
}

// Reconcile sums the active wallets and compares the sum with the
// reported total, both rounded to cents.
//
// A difference is returned as ErrBalanceMismatch. The reconciliation is
// returned in either case and nothing is corrected.
func Reconcile(wallets []ledger.Wallet, reported decimal.Decimal) (Reconciliation, error) {
	computed := TotalBalance(wallets).Round(2)
	reported = reported.Round(2)

	r := Reconciliation{
		Computed:   computed,
		Reported:   reported,
		Difference: computed.Sub(reported),
		Reconciled: computed.Equal(reported),
	}

	if !r.Reconciled {
		return r, fmt.Errorf("%w: computed %s, reported %s", ErrBalanceMismatch, computed, reported)
	}

	return r, nil
}

// Operation is a mutation of a wallet balance.
type Operation string

const (
	Deposit  Operation = "deposit"
	Withdraw Operation = "withdraw"
)

// ExpectedBalance returns the balance a wallet should have after the operation.
func ExpectedBalance(before ledger.Wallet, op Operation, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	switch op {
	case Deposit:
		return before.Balance.Add(amount), nil
	case Withdraw:
		return before.Balance.Sub(amount), nil
	}

	return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// VerifyMutation checks that the wallet returned by the ledger after an
// operation has the expected balance.
//
// Concurrent mutations from other clients make a drift possible, so
// ErrUnexpectedBalance is something to report, not to correct: the
// ledger's balance stays authoritative.
func VerifyMutation(before ledger.Wallet, op Operation, amount decimal.Decimal, after ledger.Wallet) error {
	expected, err := ExpectedBalance(before, op, amount)
	if err != nil {
		return err
	}

	if !expected.Equal(after.Balance) {
		return fmt.Errorf("%w: wallet %s expected %s, ledger reports %s", ErrUnexpectedBalance, after.ID, expected, after.Balance)
	}

	return nil
}
