package l1_service

import (
	"fmt"
	"time"

	"stablefolio/internal/domain"
)

// ApplyYieldUpdates records externally supplied yield estimates. The batch is
// all-or-nothing: one unknown symbol or out-of-range value rejects every
// update in the call.
func ApplyYieldUpdates(account *domain.PortfolioAccount, updates []domain.YieldUpdate, now time.Time) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: empty yield update batch", domain.ErrInvalidAmount)
	}
	if len(updates) > maxYieldUpdatesPerBatch {
		return fmt.Errorf("%w: at most %d yield updates per batch", domain.ErrAllocationOverflow, maxYieldUpdatesPerBatch)
	}

	for _, update := range updates {
		if err := validateSymbol(update.Symbol); err != nil {
			return err
		}
		if update.NewAPYBps > domain.MaxAPYBps {
			return fmt.Errorf("%w: apy %d bps above %d ceiling", domain.ErrInvalidAmount, update.NewAPYBps, domain.MaxAPYBps)
		}
		entry := account.FindAllocationBySymbol(update.Symbol)
		if entry == nil {
			return fmt.Errorf("%w: symbol %q is not allocated", domain.ErrInvalidTokenMint, update.Symbol)
		}
		entry.APYBps = update.NewAPYBps
		entry.LastYieldUpdate = now
	}

	account.UpdatedAt = now
	return nil
}
