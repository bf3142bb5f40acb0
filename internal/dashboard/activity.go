package dashboard

import (
	"context"

	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
)

// Activity is the merged feed of incomes, expenses and wallet activity.
type Activity struct {
	Entries []aggregate.ActivityEntry `json:"entries"`
	Totals  aggregate.Totals          `json:"totals"` // Totals of all incomes and expenses the feed was merged from
	Errors  []string                  `json:"errors"`
}

// Activity builds the activity feed with at most limit entries. A limit
// below one selects the configured feed limit.
func (s *Service) Activity(ctx context.Context, sess session.Session, limit int) (Activity, error) {
	if err := sess.Validate(); err != nil {
		return Activity{}, err
	}

	if limit < 1 {
		limit = s.feedLimit
	}

	incomes := []ledger.Transaction{}
	expenses := []ledger.Transaction{}
	activities := []ledger.Activity{}

	f := s.fetcher(ctx, "activity")
	f.fetch("incomes", func(ctx context.Context) error {
		result, err := s.ledger.Transactions(ctx, sess, ledger.Income)
		if err == nil {
			incomes = result
		}
		return err
	})
	f.fetch("expenses", func(ctx context.Context) error {
		result, err := s.ledger.Transactions(ctx, sess, ledger.Expense)
		if err == nil {
			expenses = result
		}
		return err
	})
	f.fetch("wallet activity", func(ctx context.Context) error {
		result, err := s.ledger.Activities(ctx, sess)
		if err == nil {
			activities = result
		}
		return err
	})

	errs, err := f.wait()
	if err != nil {
		return Activity{}, err
	}

	return Activity{
		Entries: aggregate.ComposeFeed(limit,
			aggregate.TransactionEntries(incomes),
			aggregate.TransactionEntries(expenses),
			aggregate.WalletEntries(activities),
		),
		Totals: aggregate.CalculateTotals(incomes, expenses),
		Errors: errs,
	}, nil
}
