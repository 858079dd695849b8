package l1_service

import (
	"fmt"
	"time"

	"stablefolio/internal/domain"
)

// ApplyInvestment credits amount to the matching allocation and to the total,
// then records a performance snapshot.
func ApplyInvestment(account *domain.PortfolioAccount, assetID string, amount uint64, now time.Time) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	entry := account.FindAllocation(assetID)
	if entry == nil {
		return fmt.Errorf("%w: %s is not allocated", domain.ErrInvalidTokenMint, assetID)
	}

	newAmount, err := domain.CheckedAdd(entry.CurrentAmount, amount)
	if err != nil {
		return fmt.Errorf("%w: investing %d into %s", domain.ErrMathOverflow, amount, entry.Symbol)
	}
	newTotal, err := domain.CheckedAdd(account.TotalValue, amount)
	if err != nil {
		return fmt.Errorf("%w: investing %d into %s", domain.ErrMathOverflow, amount, entry.Symbol)
	}

	entry.CurrentAmount = newAmount
	account.TotalValue = newTotal
	account.UpdatedAt = now
	account.AppendSnapshot(now)
	return nil
}

// ApplyWithdrawal debits amount from the matching allocation and the total,
// then records a performance snapshot.
func ApplyWithdrawal(account *domain.PortfolioAccount, assetID string, amount uint64, now time.Time) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	entry := account.FindAllocation(assetID)
	if entry == nil {
		return fmt.Errorf("%w: %s is not allocated", domain.ErrInvalidTokenMint, assetID)
	}
	if amount > entry.CurrentAmount {
		return fmt.Errorf("%w: %s holds %d, requested %d", domain.ErrInsufficientBalance, entry.Symbol, entry.CurrentAmount, amount)
	}

	entry.CurrentAmount -= amount
	account.TotalValue -= amount
	account.UpdatedAt = now
	account.AppendSnapshot(now)
	return nil
}
