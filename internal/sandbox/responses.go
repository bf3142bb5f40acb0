package sandbox

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// The response types mirror the payloads of the production ledger.

type categoryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
	Icon *string `json:"icon"`
}

func newCategoryResponse(c Category) categoryResponse {
	return categoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
		Type: c.Type,
		Icon: c.Icon,
	}
}

type transactionResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	CategoryID   *string         `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Icon         *string         `json:"icon"`
}

func transactionResponses(transactions []Transaction) []transactionResponse {
	result := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		r := transactionResponse{
			ID:     t.ID.String(),
			Name:   t.Name,
			Amount: t.Amount,
			Date:   t.Date.UTC().Format(dateLayout),
			Type:   t.Type,
			Icon:   t.Icon,
		}

		if t.CategoryID != nil {
			id := t.CategoryID.String()
			r.CategoryID = &id
		}

		if t.Category != nil {
			r.CategoryName = t.Category.Name
		}

		result = append(result, r)
	}

	return result
}

type walletResponse struct {
	ID         string          `json:"id"`
	WalletType string          `json:"walletType"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   string          `json:"currency"`
	Active     bool            `json:"active"`
}

func newWalletResponse(w Wallet) walletResponse {
	return walletResponse{
		ID:         w.ID.String(),
		WalletType: w.WalletType,
		Balance:    w.Balance,
		Currency:   w.Currency,
		Active:     w.Active,
	}
}

type budgetResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	Category    *budgetCategory `json:"category,omitempty"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	Period      string          `json:"period"`
}

type budgetCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newBudgetResponse(b Budget) budgetResponse {
	r := budgetResponse{
		ID:          b.ID.String(),
		CategoryID:  b.CategoryID.String(),
		LimitAmount: b.LimitAmount,
		Period:      b.Period,
	}

	if b.Category.Name != "" {
		r.Category = &budgetCategory{ID: b.Category.ID.String(), Name: b.Category.Name}
	}

	return r
}

type activityResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"createdAt"`
	Description string          `json:"description,omitempty"`
	Wallet      *walletResponse `json:"wallet,omitempty"`
}

func newActivityResponse(a WalletActivity) activityResponse {
	r := activityResponse{
		ID:          a.ID.String(),
		Type:        a.Type,
		Amount:      a.Amount,
		CreatedAt:   a.CreatedAt.UTC().Format("2006-01-02T15:04:05"),
		Description: a.Description,
	}

	if a.Wallet.ID == a.WalletID {
		w := newWalletResponse(a.Wallet)
		r.Wallet = &w
	}

	return r
}

type dashboardResponse struct {
	TotalBalance       decimal.Decimal       `json:"totalBalance"`
	TotalIncome        decimal.Decimal       `json:"totalIncome"`
	TotalExpense       decimal.Decimal       `json:"totalExpense"`
	RecentTransactions []transactionResponse `json:"recentTransactions"`
	Recent5Expenses    []transactionResponse `json:"recent5Expenses"`
	Recent5Incomes     []transactionResponse `json:"recent5Incomes"`
}

// sortByDateDesc orders transactions from newest to oldest.
func sortByDateDesc(transactions []Transaction) {
	slices.SortStableFunc(transactions, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
}
