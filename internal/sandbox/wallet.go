package sandbox

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Activity types recorded for wallet mutations.
const (
	ActivityDeposit  = "DEPOSIT"
	ActivityWithdraw = "WITHDRAW"
)

// Mutate deposits into or withdraws from a wallet of the profile and records
// the activity. The wallet with its new balance is returned.
//
// Withdrawals that would make the balance negative fail with
// ErrInsufficientFunds. The balance_not_negative constraint guards the
// column as well.
func Mutate(db *gorm.DB, profileID string, walletID uuid.UUID, activity string, amount decimal.Decimal) (Wallet, error) {
	if !amount.IsPositive() {
		return Wallet{}, fmt.Errorf("%w, got %s", ErrInvalidAmount, amount)
	}

	var wallet Wallet
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND profile_id = ?", walletID, profileID).First(&wallet).Error
		if err != nil {
			return err
		}

		if !wallet.Active {
			return ErrWalletInactive
		}

		balance := wallet.Balance.Add(amount)
		description := "Deposit"
		if activity == ActivityWithdraw {
			balance = wallet.Balance.Sub(amount)
			description = "Withdrawal"
		}

		if balance.IsNegative() {
			return fmt.Errorf("%w: balance is %s", ErrInsufficientFunds, wallet.Balance)
		}

		err = tx.Model(&wallet).Update("balance", balance).Error
		if err != nil {
			return err
		}
		wallet.Balance = balance

		return tx.Create(&WalletActivity{
			ProfileID:   profileID,
			WalletID:    wallet.ID,
			Type:        activity,
			Amount:      amount,
			Description: description,
		}).Error
	})
	if err != nil {
		return Wallet{}, err
	}

	return wallet, nil
}
