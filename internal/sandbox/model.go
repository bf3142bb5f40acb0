package sandbox

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all sandbox records.
type DefaultModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate generates a UUID for the record unless one is set.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// Category classifies transactions of one profile.
type Category struct {
	DefaultModel
	ProfileID string  `gorm:"uniqueIndex:category_name_unique"`
	Type      string  `gorm:"uniqueIndex:category_name_unique"`
	Name      string  `gorm:"uniqueIndex:category_name_unique"`
	Icon      *string
}

// Transaction is an income or expense.
type Transaction struct {
	DefaultModel
	ProfileID  string          `gorm:"index"`
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time
	Type       string
	CategoryID *uuid.UUID
	Category   *Category
	Icon       *string
}

// Wallet holds money. Its balance can never become negative.
type Wallet struct {
	DefaultModel
	ProfileID  string          `gorm:"index"`
	WalletType string
	Balance    decimal.Decimal `gorm:"type:DECIMAL(20,8);check:balance_not_negative,balance >= 0"`
	Currency   string
	Active     bool
}

// Budget limits the spending of one category per period.
type Budget struct {
	DefaultModel
	ProfileID   string `gorm:"index"`
	CategoryID  uuid.UUID
	Category    Category
	LimitAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period      string
}

// WalletActivity records a change of a wallet balance.
type WalletActivity struct {
	DefaultModel
	ProfileID   string `gorm:"index"`
	WalletID    uuid.UUID
	Wallet      Wallet
	Type        string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
}
