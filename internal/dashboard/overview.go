package dashboard

import (
	"context"

	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// Share names of the finance overview.
const (
	ShareBalance = "Total Balance"
	ShareIncome  = "Total Income"
	ShareExpense = "Total Expense"
)

// Overview is the landing page: totals, their shares and the latest activity.
type Overview struct {
	TotalBalance   decimal.Decimal           `json:"totalBalance" example:"25850.75"`
	TotalIncome    decimal.Decimal           `json:"totalIncome" example:"68500"`
	TotalExpense   decimal.Decimal           `json:"totalExpense" example:"28705.65"`
	Shares         []aggregate.Share         `json:"shares"`
	HasData        bool                      `json:"hasData" example:"true"` // false if there is nothing to chart
	RecentIncomes  []ledger.Transaction      `json:"recentIncomes"`
	RecentExpenses []ledger.Transaction      `json:"recentExpenses"`
	Recent         []aggregate.ActivityEntry `json:"recent"`
	Errors         []string                  `json:"errors"` // Sections that could not be loaded
}

// Overview builds the landing page.
//
// The feed merges the latest transactions of the dashboard summary with the
// wallet activity. Ledgers that only send the mixed recent transactions get
// the recent incomes and expenses split from them.
func (s *Service) Overview(ctx context.Context, sess session.Session) (Overview, error) {
	if err := sess.Validate(); err != nil {
		return Overview{}, err
	}

	summary := ledger.Summary{
		RecentTransactions: []ledger.Transaction{},
		Recent5Expenses:    []ledger.Transaction{},
		Recent5Incomes:     []ledger.Transaction{},
	}
	activities := []ledger.Activity{}

	f := s.fetcher(ctx, "overview")
	f.fetch("summary", func(ctx context.Context) error {
		result, err := s.ledger.Dashboard(ctx, sess)
		if err == nil {
			summary = result
		}
		return err
	})
	f.fetch("activity", func(ctx context.Context) error {
		result, err := s.ledger.Activities(ctx, sess)
		if err == nil {
			activities = result
		}
		return err
	})

	errs, err := f.wait()
	if err != nil {
		return Overview{}, err
	}

	recentIncomes := summary.Recent5Incomes
	if len(recentIncomes) == 0 {
		recentIncomes = ledger.FilterKind(summary.RecentTransactions, ledger.Income)
	}

	recentExpenses := summary.Recent5Expenses
	if len(recentExpenses) == 0 {
		recentExpenses = ledger.FilterKind(summary.RecentTransactions, ledger.Expense)
	}

	shares := aggregate.Shares(
		aggregate.Share{Name: ShareBalance, Value: summary.TotalBalance},
		aggregate.Share{Name: ShareIncome, Value: summary.TotalIncome},
		aggregate.Share{Name: ShareExpense, Value: summary.TotalExpense},
	)

	return Overview{
		TotalBalance:   summary.TotalBalance,
		TotalIncome:    summary.TotalIncome,
		TotalExpense:   summary.TotalExpense,
		Shares:         shares,
		HasData:        aggregate.HasData(shares),
		RecentIncomes:  recentIncomes,
		RecentExpenses: recentExpenses,
		Recent: aggregate.ComposeFeed(s.feedLimit,
			aggregate.TransactionEntries(summary.RecentTransactions),
			aggregate.TransactionEntries(recentIncomes),
			aggregate.TransactionEntries(recentExpenses),
			aggregate.WalletEntries(activities),
		),
		Errors: errs,
	}, nil
}
