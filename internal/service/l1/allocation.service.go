package l1_service

import (
	"fmt"
	"time"

	"stablefolio/internal/domain"
)

// yield updates arrive in batches from the client; cap matches the original
// account sizing
const maxYieldUpdatesPerBatch = 20

func validateSymbol(symbol string) error {
	if len(symbol) == 0 || len(symbol) > domain.MaxSymbolLength {
		return fmt.Errorf("%w: symbol %q must be 1-%d chars", domain.ErrInvalidTokenSymbol, symbol, domain.MaxSymbolLength)
	}
	return nil
}

type AllocationChangeInput struct {
	AssetID             string
	Symbol              string
	TargetPercentageBps uint32
	Now                 time.Time
}

// ApplyAllocationChange adds a new allocation entry or edits an existing one
// in place. Amount and yield fields of an existing entry are untouched. The
// caller persists or discards the whole account, so a failed call never
// reaches storage.
func ApplyAllocationChange(account *domain.PortfolioAccount, in AllocationChangeInput) error {
	if in.AssetID == "" {
		return fmt.Errorf("%w: empty asset id", domain.ErrInvalidTokenMint)
	}
	if err := validateSymbol(in.Symbol); err != nil {
		return err
	}
	if in.TargetPercentageBps > domain.FullAllocationBps {
		return fmt.Errorf("%w: target %d bps exceeds %d", domain.ErrInvalidAllocationPercentage, in.TargetPercentageBps, domain.FullAllocationBps)
	}

	if existing := account.FindAllocation(in.AssetID); existing != nil {
		existing.Symbol = in.Symbol
		existing.TargetPercentageBps = in.TargetPercentageBps
	} else {
		if len(account.Allocations) >= domain.MaxAllocations {
			return fmt.Errorf("%w: portfolio holds at most %d allocations", domain.ErrAllocationOverflow, domain.MaxAllocations)
		}
		account.Allocations = append(account.Allocations, domain.AllocationEntry{
			AssetID:             in.AssetID,
			Symbol:              in.Symbol,
			TargetPercentageBps: in.TargetPercentageBps,
		})
	}

	if sum := account.TargetPercentageSum(); sum > domain.FullAllocationBps {
		return fmt.Errorf("%w: targets sum to %d bps", domain.ErrAllocationOverflow, sum)
	}

	account.UpdatedAt = in.Now
	return nil
}

// BuildInitialAllocations validates initialization params and produces the
// starting allocation table, every amount at zero.
func BuildInitialAllocations(params []domain.AllocationParams) ([]domain.AllocationEntry, error) {
	if len(params) > domain.MaxAllocations {
		return nil, fmt.Errorf("%w: portfolio holds at most %d allocations", domain.ErrAllocationOverflow, domain.MaxAllocations)
	}

	var sum uint64
	entries := []domain.AllocationEntry{}
	for _, p := range params {
		if p.AssetID == "" {
			return nil, fmt.Errorf("%w: empty asset id", domain.ErrInvalidTokenMint)
		}
		if err := validateSymbol(p.Symbol); err != nil {
			return nil, err
		}
		if p.TargetPercentageBps > domain.FullAllocationBps {
			return nil, fmt.Errorf("%w: target %d bps exceeds %d", domain.ErrInvalidAllocationPercentage, p.TargetPercentageBps, domain.FullAllocationBps)
		}
		for _, e := range entries {
			if e.AssetID == p.AssetID {
				return nil, fmt.Errorf("%w: duplicate asset %s", domain.ErrInvalidTokenMint, p.AssetID)
			}
		}
		sum += uint64(p.TargetPercentageBps)
		entries = append(entries, domain.AllocationEntry{
			AssetID:             p.AssetID,
			Symbol:              p.Symbol,
			TargetPercentageBps: p.TargetPercentageBps,
		})
	}
	if sum > domain.FullAllocationBps {
		return nil, fmt.Errorf("%w: targets sum to %d bps", domain.ErrAllocationOverflow, sum)
	}

	return entries, nil
}
