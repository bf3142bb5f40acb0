package dashboard

import (
	"context"
	"fmt"

	"github.com/equitrack/dashboard/internal/format"
	"github.com/equitrack/dashboard/internal/session"
	"github.com/equitrack/dashboard/pkg/aggregate"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// CategoryShare is a category slice with its chart label.
type CategoryShare struct {
	aggregate.CategorySlice
	Label    string `json:"label" example:"Groceries"`
	Labelled bool   `json:"labelled" example:"true"` // Whether the slice is large enough for an inline label
}

// TransactionPage is the page of all incomes or all expenses.
type TransactionPage struct {
	Kind           ledger.Kind             `json:"kind" example:"expense"`
	Category       string                  `json:"category,omitempty" example:"Food*"` // Glob the transactions are filtered with
	Transactions   []ledger.Transaction    `json:"transactions"`
	Total          decimal.Decimal         `json:"total" example:"28705.65"`
	TotalDisplay   string                  `json:"totalDisplay" example:"28,705.65"`
	Monthly        aggregate.MonthlySeries `json:"monthly"`
	Categories     []CategoryShare         `json:"categories"`
	InvalidAmounts int                     `json:"invalidAmounts" example:"0"` // Transactions whose amount was not numeric
	Errors         []string                `json:"errors"`
}

// Transactions builds the page of one kind of transactions.
//
// If pattern is not empty, only transactions whose category name matches
// the glob are included.
func (s *Service) Transactions(ctx context.Context, sess session.Session, kind ledger.Kind, pattern string) (TransactionPage, error) {
	if err := sess.Validate(); err != nil {
		return TransactionPage{}, err
	}

	if _, ok := ledger.ParseKind(string(kind)); !ok {
		return TransactionPage{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	transactions := []ledger.Transaction{}
	categories := []ledger.Category{}

	f := s.fetcher(ctx, kind.Collection())
	f.fetch(kind.Collection(), func(ctx context.Context) error {
		result, err := s.ledger.Transactions(ctx, sess, kind)
		if err == nil {
			transactions = result
		}
		return err
	})
	f.fetch("categories", func(ctx context.Context) error {
		result, err := s.ledger.Categories(ctx, sess, kind)
		if err == nil {
			categories = result
		}
		return err
	})

	errs, err := f.wait()
	if err != nil {
		return TransactionPage{}, err
	}

	index := ledger.IndexCategories(categories)
	transactions = ledger.FilterCategory(transactions, index, pattern)

	invalid := 0
	for _, t := range transactions {
		if t.InvalidAmount {
			invalid++
		}
	}

	monthly := aggregate.Monthly(transactions)
	if monthly.Skipped > 0 {
		s.logger.Warn().Int("skipped", monthly.Skipped).Str("kind", string(kind)).Msg("transactions without a date are not part of the monthly series")
	}

	breakdown := aggregate.CategoryBreakdown(transactions, index)
	shares := make([]CategoryShare, 0, len(breakdown))
	for _, slice := range breakdown {
		shares = append(shares, CategoryShare{
			CategorySlice: slice,
			Label:         format.Title(slice.Name),
			Labelled:      slice.Labelled(s.minShare),
		})
	}

	total := aggregate.Sum(transactions).Round(2)

	return TransactionPage{
		Kind:           kind,
		Category:       pattern,
		Transactions:   transactions,
		Total:          total,
		TotalDisplay:   format.Amount(total),
		Monthly:        monthly,
		Categories:     shares,
		InvalidAmounts: invalid,
		Errors:         errs,
	}, nil
}
