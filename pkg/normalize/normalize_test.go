package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/equitrack/dashboard/internal/types"
	"github.com/equitrack/dashboard/pkg/ledger"
	"github.com/equitrack/dashboard/pkg/normalize"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incomes = `[
	{"id": 1, "name": "Salary", "amount": 2500, "date": "2025-01-05", "categoryId": 1},
	{"id": 2, "name": "Freelance", "amount": "300.50", "date": "2025-01-12"},
	{"id": 3, "name": "Dividends", "amount": 42.1, "date": "2025-02-01", "type": "income"}
]`

func normalizer() *normalize.Normalizer {
	return normalize.New(zerolog.Nop())
}

func TestTransactionsEnvelopes(t *testing.T) {
	bodies := map[string]string{
		"data":       `{"data": ` + incomes + `}`,
		"collection": `{"incomes": ` + incomes + `}`,
		"bare":       incomes,
	}

	var results [][]ledger.Transaction
	for name, body := range bodies {
		got := normalizer().Transactions([]byte(body), ledger.Income)
		require.Len(t, got, 3, name)
		results = append(results, got)
	}

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[1], results[2])

	first := results[0][0]
	assert.Equal(t, ledger.ID("1"), first.ID)
	assert.Equal(t, ledger.Income, first.Type, "kind is taken from the collection")
	assert.Equal(t, types.NewDate(2025, 1, 5), first.Date)
	assert.True(t, decimal.RequireFromString("300.50").Equal(results[0][1].Amount))
}

func TestExtractStrategyNames(t *testing.T) {
	n := normalizer()

	_, strategy := n.Extract([]byte(`{"data": []}`), "incomes")
	assert.Equal(t, "data", strategy)

	_, strategy = n.Extract([]byte(`{"incomes": []}`), "incomes")
	assert.Equal(t, "collection", strategy)

	_, strategy = n.Extract([]byte(`[]`), "incomes")
	assert.Equal(t, "bare", strategy)

	_, strategy = n.Extract([]byte(`{"expenses": []}`), "incomes")
	assert.Equal(t, "none", strategy)
}

func TestExtractPriority(t *testing.T) {
	// data wins over the collection key
	raw, strategy := normalizer().Extract([]byte(`{"data": [1], "incomes": [1, 2]}`), "incomes")
	assert.Equal(t, "data", strategy)
	assert.Len(t, raw, 1)
}

func TestExtractSkipsNonArrayMembers(t *testing.T) {
	// a data member that is not an array does not match
	raw, strategy := normalizer().Extract([]byte(`{"data": {"total": 3}, "incomes": [1, 2]}`), "incomes")
	assert.Equal(t, "collection", strategy)
	assert.Len(t, raw, 2)

	_, strategy = normalizer().Extract([]byte(`{"data": null}`), "incomes")
	assert.Equal(t, "none", strategy)
}

func TestMalformedResponsesAreEmpty(t *testing.T) {
	bodies := []string{
		``,
		`null`,
		`"error"`,
		`42`,
		`{"message": "Internal error"}`,
		`{"data": "nope"}`,
		`[{"id": 1}`,
		`<html>Bad gateway</html>`,
	}

	for _, body := range bodies {
		got := normalizer().Transactions([]byte(body), ledger.Expense)
		assert.NotNil(t, got, body)
		assert.Len(t, got, 0, body)
	}
}

func TestUndecodableRecordsAreSkipped(t *testing.T) {
	got := normalizer().Transactions([]byte(`[{"id": 1, "amount": 5}, "garbage", 12, {"id": 2, "amount": "x"}]`), ledger.Expense)
	require.Len(t, got, 2)

	assert.Equal(t, ledger.ID("1"), got[0].ID)
	assert.Equal(t, ledger.ID("2"), got[1].ID)
	assert.True(t, got[1].InvalidAmount)
	assert.True(t, got[1].Amount.IsZero())
}

func TestTypedHelpers(t *testing.T) {
	n := normalizer()

	wallets := n.Wallets([]byte(`{"wallets": [{"id": 1, "balance": 10}]}`))
	require.Len(t, wallets, 1)
	assert.True(t, wallets[0].Active)

	categories := n.Categories([]byte(`[{"id": 1, "name": "Food", "type": "expense"}]`))
	require.Len(t, categories, 1)
	assert.Equal(t, ledger.Expense, categories[0].Type)

	budgets := n.Budgets([]byte(`{"data": [{"id": 1, "categoryId": 1, "limitAmount": 100}]}`))
	require.Len(t, budgets, 1)
	assert.Equal(t, ledger.Monthly, budgets[0].Period)

	activities := n.Activities([]byte(`[{"id": 1, "type": "DEPOSIT", "amount": 5, "createdAt": "2025-01-01T10:00:00"}]`))
	require.Len(t, activities, 1)
}

func TestCustomStrategies(t *testing.T) {
	items := normalize.Strategy{
		Name: "items",
		Match: func(s normalize.Shape, _ string) bool {
			_, ok := s.Object["items"]
			return ok
		},
		Extract: func(s normalize.Shape, _ string) json.RawMessage {
			return s.Object["items"]
		},
	}

	n := normalizer().WithStrategies([]normalize.Strategy{items})

	raw, strategy := n.Extract([]byte(`{"items": [1, 2, 3]}`), "incomes")
	assert.Equal(t, "items", strategy)
	assert.Len(t, raw, 3)

	// The default table is not used by the copy
	_, strategy = n.Extract([]byte(`[1]`), "incomes")
	assert.Equal(t, "none", strategy)

	// and the original is unchanged
	_, strategy = normalizer().Extract([]byte(`[1]`), "incomes")
	assert.Equal(t, "bare", strategy)
}

func TestParseShape(t *testing.T) {
	assert.NotNil(t, normalize.ParseShape([]byte(` [1] `)).Array)
	assert.NotNil(t, normalize.ParseShape([]byte(`{"a": 1}`)).Object)

	empty := normalize.ParseShape([]byte(`true`))
	assert.Nil(t, empty.Array)
	assert.Nil(t, empty.Object)
}

func TestUnwrap(t *testing.T) {
	assert.JSONEq(t, `{"id": 1}`, string(normalize.Unwrap([]byte(`{"data": {"id": 1}}`))))
	assert.JSONEq(t, `{"id": 1}`, string(normalize.Unwrap([]byte(`{"id": 1}`))))
	assert.JSONEq(t, `{"data": [1]}`, string(normalize.Unwrap([]byte(`{"data": [1]}`))))
}
