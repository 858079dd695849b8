package l2_service

import (
	"fmt"
	"time"

	"stablefolio/internal/domain"
)

type RebalanceStartInput struct {
	Portfolio    *domain.PortfolioAccount
	Targets      []domain.AllocationTarget
	Now          time.Time
	Cooldown     time.Duration
	ThresholdBps uint32
}

// ValidateRebalanceStart gates a rebalance attempt. Reentrancy is checked
// first, then the cooldown. Targets drifted past the threshold override the
// cooldown; targets matching the stored table with nothing drifted are
// rejected outright.
func ValidateRebalanceStart(in RebalanceStartInput) error {
	p := in.Portfolio
	if p.IsRebalancing {
		return domain.ErrRebalanceInProgress
	}

	needs := p.NeedsRebalancing(in.Targets, in.ThresholdBps)
	if !p.LastRebalance.IsZero() && in.Now.Sub(p.LastRebalance) < in.Cooldown && !needs {
		return fmt.Errorf("%w: last rebalance at %s", domain.ErrRebalanceTooFrequent, p.LastRebalance.UTC().Format(time.RFC3339))
	}
	if !needs && targetsEqualStored(p, in.Targets) {
		return domain.ErrNoRebalanceNeeded
	}

	return nil
}

// targetsEqualStored compares the requested targets against the stored table,
// treating assets absent from either side as zero.
func targetsEqualStored(p *domain.PortfolioAccount, targets []domain.AllocationTarget) bool {
	requested := map[string]uint32{}
	for _, t := range targets {
		requested[t.AssetID] = t.TargetPercentageBps
	}
	for _, entry := range p.Allocations {
		if entry.TargetPercentageBps != requested[entry.AssetID] {
			return false
		}
		delete(requested, entry.AssetID)
	}
	for _, bps := range requested {
		if bps != 0 {
			return false
		}
	}
	return true
}

// ApplyRebalanceCompletion rewrites the stored targets to the requested ones,
// zeroing held assets left out of the request and admitting requested assets
// the table has never held. Completion timestamps the rebalance and records a
// snapshot.
func ApplyRebalanceCompletion(account *domain.PortfolioAccount, targets []domain.AllocationTarget, now time.Time) error {
	requested := map[string]uint32{}
	for _, t := range targets {
		requested[t.AssetID] = t.TargetPercentageBps
	}

	for i := range account.Allocations {
		account.Allocations[i].TargetPercentageBps = requested[account.Allocations[i].AssetID]
		delete(requested, account.Allocations[i].AssetID)
	}
	for _, t := range targets {
		bps, ok := requested[t.AssetID]
		if !ok || bps == 0 {
			continue
		}
		if len(account.Allocations) >= domain.MaxAllocations {
			return fmt.Errorf("%w: portfolio holds at most %d allocations", domain.ErrAllocationOverflow, domain.MaxAllocations)
		}
		account.Allocations = append(account.Allocations, domain.AllocationEntry{
			AssetID:             t.AssetID,
			Symbol:              placeholderSymbol(t.AssetID),
			TargetPercentageBps: bps,
		})
	}

	account.IsRebalancing = false
	account.LastRebalance = now
	account.UpdatedAt = now
	account.AppendSnapshot(now)
	return nil
}

// assets admitted through a rebalance have no client-supplied symbol; derive
// a stable placeholder the owner can rename later
func placeholderSymbol(assetID string) string {
	return fmt.Sprintf("ASSET-%.8s", assetID)
}
