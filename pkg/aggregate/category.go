package aggregate

import (
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultMinLabelShare is the share in percent below which charts do not
// label a slice inline.
var DefaultMinLabelShare = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// CategorySlice is the sum and share of one category.
type CategorySlice struct {
	CategoryID ledger.ID       `json:"categoryId,omitempty" example:"7"`
	Name       string          `json:"name" example:"Groceries"`
	Icon       *string         `json:"icon,omitempty" example:"🛒"`
	Value      decimal.Decimal `json:"value" example:"412.30"`
	Percentage decimal.Decimal `json:"percentage" example:"38.2"`
}

// Labelled reports whether the slice is large enough to be labelled inline.
func (s CategorySlice) Labelled(minShare decimal.Decimal) bool {
	return s.Percentage.GreaterThanOrEqual(minShare)
}

// CategoryBreakdown sums transactions per category and computes each
// category's share of the total.
//
// Categories are resolved with categories.Resolve, unresolvable ones are
// collected in a single Uncategorized slice. The result is ordered by
// descending value, equal values keep the order in which their category was
// first seen. If the total is zero, every percentage is zero.
func CategoryBreakdown(transactions []ledger.Transaction, categories ledger.Categories) []CategorySlice {
	index := make(map[string]int)
	result := make([]CategorySlice, 0)

	for _, t := range transactions {
		category, ok := categories.Resolve(t)

		key := "name:" + category.Name
		if ok && category.ID != "" {
			key = "id:" + string(category.ID)
		}

		i, exists := index[key]
		if !exists {
			i = len(result)
			index[key] = i
			result = append(result, CategorySlice{
				CategoryID: category.ID,
				Name:       category.Name,
				Icon:       category.Icon,
				Value:      decimal.Zero,
			})
		}

		result[i].Value = result[i].Value.Add(amountOf(t))
	}

	total := decimal.Zero
	for _, s := range result {
		total = total.Add(s.Value)
	}

	for i := range result {
		result[i].Percentage = percentOf(result[i].Value, total)
		result[i].Value = result[i].Value.Round(2)
	}

	slices.SortStableFunc(result, func(a, b CategorySlice) int {
		return b.Value.Cmp(a.Value)
	})

	return result
}

// Share is one named value of a pie chart.
type Share struct {
	Name       string          `json:"name" example:"Total Income"`
	Value      decimal.Decimal `json:"value" example:"6200"`
	Percentage decimal.Decimal `json:"percentage" example:"52.1"`
}

// Shares computes the percentage of each value of the total of all positive
// values, keeping the input order. Negative values get a share of zero.
func Shares(values ...Share) []Share {
	total := decimal.Zero
	for _, v := range values {
		if v.Value.IsPositive() {
			total = total.Add(v.Value)
		}
	}

	result := make([]Share, 0, len(values))
	for _, v := range values {
		v.Percentage = decimal.Zero
		if v.Value.IsPositive() {
			v.Percentage = percentOf(v.Value, total)
		}
		result = append(result, v)
	}

	return result
}

// HasData reports whether any share has a positive value.
func HasData(shares []Share) bool {
	for _, s := range shares {
		if s.Value.IsPositive() {
			return true
		}
	}

	return false
}

// percentOf returns part / total * 100 rounded to four places, or zero if
// the total is zero.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred).Round(4)
}
