package dashboard

import (
	"context"

	"github.com/equitrack/dashboard/internal/format"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// BudgetView is the progress of one budget with its progress bar fill.
type BudgetView struct {
	aggregate.BudgetProgress
	Icon *string         `json:"icon,omitempty" example:"🛒"`
	Bar  decimal.Decimal `json:"bar" example:"75"` // Percentage used, clamped to [0, 100]
}

// BudgetPage lists the progress of all budgets in their current period.
type BudgetPage struct {
	Budgets []BudgetView `json:"budgets"`
	Errors  []string     `json:"errors"`
}

// Budgets builds the budget page.
//
// Spending is derived from the expenses in each budget's period containing
// the current time. Budgets with an invalid limit are left out and reported
// in Errors.
func (s *Service) Budgets(ctx context.Context, sess session.Session) (BudgetPage, error) {
	if err := sess.Validate(); err != nil {
		return BudgetPage{}, err
	}

	budgets := []ledger.Budget{}
	expenses := []ledger.Transaction{}
	categories := []ledger.Category{}

	f := s.fetcher(ctx, "budgets")
	f.fetch("budgets", func(ctx context.Context) error {
		result, err := s.ledger.Budgets(ctx, sess)
		if err == nil {
			budgets = result
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
	f.fetch("categories", func(ctx context.Context) error {
		result, err := s.ledger.Categories(ctx, sess, ledger.Expense)
		if err == nil {
			categories = result
		}
		return err
	})

	errs, err := f.wait()
	if err != nil {
		return BudgetPage{}, err
	}

	progress, err := aggregate.CalculateBudgets(budgets, expenses, s.now())
	if err != nil {
		s.logger.Warn().Err(err).Msg("budgets could not be calculated")
		for _, e := range unjoin(err) {
			errs = append(errs, "budget: "+e.Error())
		}
	}

	index := ledger.IndexCategories(categories)
	views := make([]BudgetView, 0, len(progress))
	for _, p := range progress {
		view := BudgetView{
			BudgetProgress: p,
			Bar:            format.ClampPercent(p.PercentageUsed),
		}

		if category, ok := index[p.CategoryID]; ok {
			view.Icon = category.Icon
			if view.CategoryName == "" {
				view.CategoryName = category.Name
			}
		}

		views = append(views, view)
	}

	return BudgetPage{Budgets: views, Errors: errs}, nil
}

// unjoin returns the errors joined with errors.Join.
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

