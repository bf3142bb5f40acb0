package sandbox

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixture is the content of a sandbox ledger for one profile.
//
// Records reference each other by ID, so set the IDs of categories and
// wallets that other records point to. ProfileID is set on every record.
type Fixture struct {
	ProfileID    string
	Categories   []Category
	Wallets      []Wallet
	Transactions []Transaction
	Budgets      []Budget
	Activities   []WalletActivity
}

// Seed writes a fixture in one database transaction.
func Seed(db *gorm.DB, f Fixture) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range f.Categories {
			f.Categories[i].ProfileID = f.ProfileID
			if err := tx.Create(&f.Categories[i]).Error; err != nil {
				return err
			}
		}

		for i := range f.Wallets {
			f.Wallets[i].ProfileID = f.ProfileID
			if f.Wallets[i].Currency == "" {
				f.Wallets[i].Currency = "PHP"
			}
			if err := tx.Create(&f.Wallets[i]).Error; err != nil {
				return err
			}
		}

		for i := range f.Transactions {
			f.Transactions[i].ProfileID = f.ProfileID
			if err := tx.Omit("Category").Create(&f.Transactions[i]).Error; err != nil {
				return err
			}
		}

		for i := range f.Budgets {
			f.Budgets[i].ProfileID = f.ProfileID
			if err := tx.Omit("Category").Create(&f.Budgets[i]).Error; err != nil {
				return err
			}
		}

		for i := range f.Activities {
			f.Activities[i].ProfileID = f.ProfileID
			if err := tx.Omit("Wallet").Create(&f.Activities[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DemoFixture returns a small ledger with two months of data before now.
func DemoFixture(profileID string, now time.Time) Fixture {
	salary, freelance := uuid.New(), uuid.New()
	groceries, rent, transport := uuid.New(), uuid.New(), uuid.New()
	cash, bank := uuid.New(), uuid.New()

	icon := func(s string) *string { return &s }
	id := func(u uuid.UUID) *uuid.UUID { return &u }

	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := month.AddDate(0, -1, 0)

	return Fixture{
		ProfileID: profileID,
		Categories: []Category{
			{DefaultModel: DefaultModel{ID: salary}, Name: "Salary", Type: "income", Icon: icon("💼")},
			{DefaultModel: DefaultModel{ID: freelance}, Name: "Freelance", Type: "income", Icon: icon("💻")},
			{DefaultModel: DefaultModel{ID: groceries}, Name: "Groceries", Type: "expense", Icon: icon("🛒")},
			{DefaultModel: DefaultModel{ID: rent}, Name: "Rent", Type: "expense", Icon: icon("🏠")},
			{DefaultModel: DefaultModel{ID: transport}, Name: "Transport", Type: "expense", Icon: icon("🚌")},
		},
		Wallets: []Wallet{
			{DefaultModel: DefaultModel{ID: cash}, WalletType: "Cash", Balance: decimal.NewFromInt(1500), Active: true},
			{DefaultModel: DefaultModel{ID: bank}, WalletType: "Bank", Balance: decimal.RequireFromString("24350.75"), Active: true},
			{WalletType: "Old Savings", Balance: decimal.NewFromInt(300), Active: false},
		},
		Transactions: []Transaction{
			{Name: "Salary", Type: "income", Amount: decimal.NewFromInt(32000), Date: last.AddDate(0, 0, 14), CategoryID: id(salary)},
			{Name: "Logo design", Type: "income", Amount: decimal.NewFromInt(4500), Date: last.AddDate(0, 0, 20), CategoryID: id(freelance)},
			{Name: "Salary", Type: "income", Amount: decimal.NewFromInt(32000), Date: month, CategoryID: id(salary)},
			{Name: "Rent", Type: "expense", Amount: decimal.NewFromInt(12000), Date: last.AddDate(0, 0, 1), CategoryID: id(rent)},
			{Name: "Supermarket", Type: "expense", Amount: decimal.RequireFromString("2315.40"), Date: last.AddDate(0, 0, 9), CategoryID: id(groceries)},
			{Name: "Bus card", Type: "expense", Amount: decimal.NewFromInt(500), Date: last.AddDate(0, 0, 12), CategoryID: id(transport)},
			{Name: "Rent", Type: "expense", Amount: decimal.NewFromInt(12000), Date: month, CategoryID: id(rent)},
			{Name: "Market", Type: "expense", Amount: decimal.RequireFromString("1890.25"), Date: month, CategoryID: id(groceries)},
		},
		Budgets: []Budget{
			{CategoryID: groceries, LimitAmount: decimal.NewFromInt(5000), Period: "MONTHLY"},
			{CategoryID: transport, LimitAmount: decimal.NewFromInt(250), Period: "WEEKLY"},
			{CategoryID: rent, LimitAmount: decimal.NewFromInt(150000), Period: "YEARLY"},
		},
		Activities: []WalletActivity{
			{WalletID: bank, Type: ActivityDeposit, Amount: decimal.NewFromInt(32000), Description: "Payroll", DefaultModel: DefaultModel{CreatedAt: month}},
			{WalletID: cash, Type: ActivityWithdraw, Amount: decimal.NewFromInt(500), Description: "ATM", DefaultModel: DefaultModel{CreatedAt: month.Add(2 * time.Hour)}},
		},
	}
}
