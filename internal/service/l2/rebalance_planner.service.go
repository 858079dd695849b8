package l2_service

import (
	"fmt"

	"stablefolio/internal/domain"
)

type ComputeRebalancePlanInput struct {
	Portfolio *domain.PortfolioAccount
	Targets   []domain.AllocationTarget
	// every planned swap converts to or from this asset
	SettlementAsset string
}

// ComputeRebalancePlan derives the swap list that moves held amounts toward
// the requested targets. Targets are a full re-specification: an asset held
// today but absent from the request is planned down to zero. Desired amounts
// are floored, so sell legs can exceed buy legs by rounding dust that stays
// in the settlement asset.
func ComputeRebalancePlan(in ComputeRebalancePlanInput) ([]domain.PlannedSwap, error) {
	if err := ValidateFullTargets(in.Targets); err != nil {
		return nil, err
	}

	targetByAsset := map[string]uint32{}
	for _, t := range in.Targets {
		targetByAsset[t.AssetID] = t.TargetPercentageBps
	}

	total := in.Portfolio.TotalValue
	swaps := []domain.PlannedSwap{}

	// held assets first, in table order, then requested assets the table has
	// never seen. keeps the plan deterministic for a given account state.
	planned := map[string]bool{}
	for _, entry := range in.Portfolio.Allocations {
		planned[entry.AssetID] = true
		if entry.AssetID == in.SettlementAsset {
			continue
		}
		desired := domain.MulDivBps(total, targetByAsset[entry.AssetID])
		if swap := swapFor(entry.AssetID, entry.CurrentAmount, desired, in.SettlementAsset); swap != nil {
			swaps = append(swaps, *swap)
		}
	}
	for _, target := range in.Targets {
		if planned[target.AssetID] || target.AssetID == in.SettlementAsset {
			continue
		}
		desired := domain.MulDivBps(total, target.TargetPercentageBps)
		if swap := swapFor(target.AssetID, 0, desired, in.SettlementAsset); swap != nil {
			swaps = append(swaps, *swap)
		}
	}

	return swaps, nil
}

func swapFor(assetID string, current, desired uint64, settlementAsset string) *domain.PlannedSwap {
	switch {
	case current > desired:
		return &domain.PlannedSwap{
			Side:      domain.SwapSideSell,
			FromAsset: assetID,
			ToAsset:   settlementAsset,
			Amount:    current - desired,
		}
	case current < desired:
		return &domain.PlannedSwap{
			Side:      domain.SwapSideBuy,
			FromAsset: settlementAsset,
			ToAsset:   assetID,
			Amount:    desired - current,
		}
	default:
		return nil
	}
}

// ValidateFullTargets requires a complete specification: unique assets whose
// percentages sum to exactly 10000 bps.
func ValidateFullTargets(targets []domain.AllocationTarget) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no targets supplied", domain.ErrInvalidAllocationPercentage)
	}
	if len(targets) > domain.MaxAllocations {
		return fmt.Errorf("%w: at most %d targets", domain.ErrAllocationOverflow, domain.MaxAllocations)
	}

	var sum uint64
	seen := map[string]bool{}
	for _, t := range targets {
		if t.AssetID == "" {
			return fmt.Errorf("%w: empty asset id", domain.ErrInvalidTokenMint)
		}
		if seen[t.AssetID] {
			return fmt.Errorf("%w: duplicate asset %s", domain.ErrInvalidTokenMint, t.AssetID)
		}
		seen[t.AssetID] = true
		if t.TargetPercentageBps > domain.FullAllocationBps {
			return fmt.Errorf("%w: target %d bps exceeds %d", domain.ErrInvalidAllocationPercentage, t.TargetPercentageBps, domain.FullAllocationBps)
		}
		sum += uint64(t.TargetPercentageBps)
	}
	if sum != domain.FullAllocationBps {
		return fmt.Errorf("%w: targets sum to %d bps, want %d", domain.ErrInvalidAllocationPercentage, sum, domain.FullAllocationBps)
	}

	return nil
}
