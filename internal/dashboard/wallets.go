package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/equitrack/dashboard/internal/format"
	"github.com/equitrack/dashboard/internal/metrics"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// WalletPage lists the active wallets and their total balance.
type WalletPage struct {
	Wallets             []ledger.Wallet           `json:"wallets"`
	TotalBalance        decimal.Decimal           `json:"totalBalance" example:"25850.75"` // Sum of the active wallets
	TotalBalanceDisplay string                    `json:"totalBalanceDisplay" example:"25,850.75"`
	ReportedDisplay     string                    `json:"reportedDisplay" example:"25,850.75"` // Total reported by the ledger, empty if it could not be loaded
	Reconciliation      *aggregate.Reconciliation `json:"reconciliation,omitempty"`           // Missing if the ledger total could not be loaded
	Errors              []string                  `json:"errors"`
}

// Wallets builds the wallet page.
//
// The total is always computed from the wallets. The total the ledger
// reports is only compared against it, a difference is reported in Errors
// and counted, but never corrected.
func (s *Service) Wallets(ctx context.Context, sess session.Session) (WalletPage, error) {
	if err := sess.Validate(); err != nil {
		return WalletPage{}, err
	}

	wallets := []ledger.Wallet{}
	var reported *decimal.Decimal

	f := s.fetcher(ctx, "wallets")
	f.fetch("wallets", func(ctx context.Context) error {
		result, err := s.ledger.ActiveWallets(ctx, sess)
		if err == nil {
			wallets = result
		}
		return err
	})
	f.fetch("total balance", func(ctx context.Context) error {
		result, err := s.ledger.TotalBalance(ctx, sess)
		if err == nil {
			reported = &result
		}
		return err
	})

	errs, err := f.wait()
	if err != nil {
		return WalletPage{}, err
	}

	total := aggregate.TotalBalance(wallets)
	page := WalletPage{
		Wallets:             aggregate.ActiveWallets(wallets),
		TotalBalance:        total,
		TotalBalanceDisplay: format.Amount(total),
		ReportedDisplay:     format.OptionalAmount(reported),
		Errors:              errs,
	}

	// Without the wallets there is nothing to reconcile
	if reported == nil || len(errs) > 0 {
		return page, nil
	}

	reconciliation, err := aggregate.Reconcile(wallets, *reported)
	page.Reconciliation = &reconciliation

	if errors.Is(err, aggregate.ErrBalanceMismatch) {
		metrics.BalanceMismatches.Inc()
		s.logger.Error().
			Str("profile", sess.ProfileID.String()).
			Str("computed", reconciliation.Computed.String()).
			Str("reported", reconciliation.Reported.String()).
			Msg("total balance does not match the active wallets")
		page.Errors = append(page.Errors, fmt.Sprintf("total balance: %s", err))
	}

	return page, nil
}

// Mutation is the result of a deposit or withdrawal.
type Mutation struct {
	Operation aggregate.Operation `json:"operation" example:"deposit"`
	Amount    decimal.Decimal     `json:"amount" example:"100"`
	Wallet    ledger.Wallet       `json:"wallet"`                  // The mutated wallet as returned by the ledger
	Expected  decimal.Decimal     `json:"expected" example:"1600"` // Balance the wallet should have after the operation
	Verified  bool                `json:"verified" example:"true"` // Whether the ledger balance matches the expected balance
	Wallets   WalletPage          `json:"wallets"`                 // Wallet page fetched after the operation
}

// Deposit adds amount to a wallet.
func (s *Service) Deposit(ctx context.Context, sess session.Session, walletID ledger.ID, amount decimal.Decimal) (Mutation, error) {
	return s.mutate(ctx, sess, aggregate.Deposit, walletID, amount)
}

// Withdraw takes amount out of a wallet.
func (s *Service) Withdraw(ctx context.Context, sess session.Session, walletID ledger.ID, amount decimal.Decimal) (Mutation, error) {
	return s.mutate(ctx, sess, aggregate.Withdraw, walletID, amount)
}

// mutate runs an operation and re-fetches the wallets afterwards.
//
// The balance returned by the ledger is checked against the balance before
// the operation. A drift is logged and reported in Verified, the totals are
// always derived from the freshly fetched wallets.
func (s *Service) mutate(ctx context.Context, sess session.Session, op aggregate.Operation, walletID ledger.ID, amount decimal.Decimal) (Mutation, error) {
	if err := sess.Validate(); err != nil {
		return Mutation{}, err
	}

	if !amount.IsPositive() {
		return Mutation{}, fmt.Errorf("%w: %s", aggregate.ErrInvalidAmount, amount)
	}

	wallets, err := s.ledger.ActiveWallets(ctx, sess)
	if err != nil {
		return Mutation{}, err
	}

	var before *ledger.Wallet
	for i := range wallets {
		if wallets[i].ID == walletID {
			before = &wallets[i]
			break
		}
	}

	if before == nil {
		return Mutation{}, fmt.Errorf("%w: %s", ErrWalletNotFound, walletID)
	}

	expected, err := aggregate.ExpectedBalance(*before, op, amount)
	if err != nil {
		return Mutation{}, err
	}

	var after ledger.Wallet
	switch op {
	case aggregate.Deposit:
		after, err = s.ledger.Deposit(ctx, sess, walletID, amount)
	case aggregate.Withdraw:
		after, err = s.ledger.Withdraw(ctx, sess, walletID, amount)
	}
	if err != nil {
		return Mutation{}, err
	}

	verified := true
	if err := aggregate.VerifyMutation(*before, op, amount, after); err != nil {
		verified = false
		s.logger.Warn().Err(err).Str("operation", string(op)).Str("wallet", walletID.String()).Msg("unexpected wallet balance after the operation")
	}

	page, err := s.Wallets(ctx, sess)
	if err != nil {
		return Mutation{}, err
	}

	return Mutation{
		Operation: op,
		Amount:    amount,
		Wallet:    after,
		Expected:  expected,
		Verified:  verified,
		Wallets:   page,
	}, nil
}
