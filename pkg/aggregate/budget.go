package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/equitrack/dashboard/internal/types"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
)

// Status classifies how much of a budget is used.
type Status string

const (
	OnTrack    Status = "on track"
	NearLimit  Status = "near limit"
	OverBudget Status = "over budget"
)

// NearLimitThreshold is the percentage from which a budget is near its limit.
var NearLimitThreshold = decimal.NewFromInt(80)

// StatusOf classifies a used percentage.
func StatusOf(percentageUsed decimal.Decimal) Status {
	switch {
	case percentageUsed.GreaterThanOrEqual(hundred):
		return OverBudget
	case percentageUsed.GreaterThanOrEqual(NearLimitThreshold):
		return NearLimit
	default:
		return OnTrack
	}
}

// Window is a range of calendar dates. Start is inclusive, End exclusive.
type Window struct {
	Start types.Date `json:"start" example:"2025-01-01"`
	End   types.Date `json:"end" example:"2025-02-01"`
}

// Contains reports whether the date is in the window.
func (w Window) Contains(d types.Date) bool {
	return !d.Before(w.Start) && d.Before(w.End)
}

// PeriodWindow returns the window of the period that contains asOf.
//
// Days and months are UTC calendar days and months, weeks start on Monday.
func PeriodWindow(period ledger.Period, asOf time.Time) Window {
	day := types.DateOf(asOf)
	t := day.Time()

	switch period {
	case ledger.Daily:
		return Window{Start: day, End: types.DateOf(t.AddDate(0, 0, 1))}
	case ledger.Weekly:
		offset := (int(t.Weekday()) + 6) % 7
		start := t.AddDate(0, 0, -offset)
		return Window{Start: types.DateOf(start), End: types.DateOf(start.AddDate(0, 0, 7))}
	case ledger.Yearly:
		start := types.NewDate(t.Year(), time.January, 1)
		return Window{Start: start, End: types.NewDate(t.Year()+1, time.January, 1)}
	default:
		month := day.Month()
		return Window{Start: types.DateOf(time.Time(month)), End: types.DateOf(time.Time(month.AddDate(0, 1)))}
	}
}

// BudgetProgress is a budget with its derived spending figures.
//
// None of the derived fields are persisted.
type BudgetProgress struct {
	ledger.Budget
	CurrentSpending decimal.Decimal `json:"currentSpending" example:"750"`
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"75"`   // Not clamped, can exceed 100
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"250"` // Negative when over budget
	Status          Status          `json:"status" example:"on track"`
	Window          Window          `json:"window"`
}

// Progress computes the progress of a budget for an amount spent.
//
// The budget limit must be positive, otherwise ErrInvalidBudgetLimit is
// returned.
func Progress(budget ledger.Budget, spending decimal.Decimal) (BudgetProgress, error) {
	if !budget.LimitAmount.IsPositive() {
		return BudgetProgress{}, fmt.Errorf("%w: budget %s has limit %s", ErrInvalidBudgetLimit, budget.ID, budget.LimitAmount)
	}

	percentage := spending.Div(budget.LimitAmount).Mul(hundred)

	return BudgetProgress{
		Budget:          budget,
		CurrentSpending: spending,
		PercentageUsed:  percentage,
		RemainingAmount: budget.LimitAmount.Sub(spending),
		Status:          StatusOf(percentage),
	}, nil
}

// BudgetSpending sums the spending that counts against a budget: all
// transactions of the budget's category, except incomes, that fall into
// the window.
func BudgetSpending(budget ledger.Budget, transactions []ledger.Transaction, window Window) decimal.Decimal {
	spending := decimal.Zero
	for _, t := range transactions {
		if t.Type == ledger.Income || t.CategoryID == nil || *t.CategoryID != budget.CategoryID {
			continue
		}

		if !window.Contains(t.Date) {
			continue
		}

		spending = spending.Add(amountOf(t))
	}

	return spending
}

// CalculateBudget computes the progress of a budget in the period
// containing asOf.
func CalculateBudget(budget ledger.Budget, transactions []ledger.Transaction, asOf time.Time) (BudgetProgress, error) {
	window := PeriodWindow(budget.Period, asOf)

	progress, err := Progress(budget, BudgetSpending(budget, transactions, window))
	if err != nil {
		return BudgetProgress{}, err
	}

	progress.Window = window
	return progress, nil
}

// CalculateBudgets computes the progress of all budgets.
//
// Budgets that cannot be calculated are left out of the result, their
// errors are joined into the returned error.
func CalculateBudgets(budgets []ledger.Budget, transactions []ledger.Transaction, asOf time.Time) ([]BudgetProgress, error) {
	result := make([]BudgetProgress, 0, len(budgets))

	var errs []error
	for _, b := range budgets {
		progress, err := CalculateBudget(b, transactions, asOf)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = append(result, progress)
	}

	return result, errors.Join(errs...)
}
