package l3_service

import (
	"fmt"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/domain"
	"stablefolio/internal/util"

	"github.com/google/uuid"
)

// amounts are stored as numeric and must round-trip exactly; a non-integer
// or negative value in storage is corruption, not user error

func accountFromModels(portfolio model.Portfolio, allocations []model.PortfolioAllocation, snapshots []model.PerformanceSnapshot) (*domain.PortfolioAccount, error) {
	totalValue, err := util.Uint64FromDecimal(portfolio.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("failed to read total value: %w", err)
	}

	account := &domain.PortfolioAccount{
		ID:             portfolio.PortfolioID,
		Owner:          portfolio.Owner,
		DerivationSeed: portfolio.DerivationSeed,
		TotalValue:     totalValue,
		IsRebalancing:  portfolio.IsRebalancing,
		CreatedAt:      portfolio.CreatedAt,
		UpdatedAt:      portfolio.ModifiedAt,
	}
	if portfolio.LastRebalance != nil {
		account.LastRebalance = *portfolio.LastRebalance
	}

	for _, a := range allocations {
		amount, err := util.Uint64FromDecimal(a.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to read amount for %s: %w", a.Symbol, err)
		}
		entry := domain.AllocationEntry{
			AssetID:             a.AssetID,
			Symbol:              a.Symbol,
			TargetPercentageBps: uint32(a.TargetPercentage),
			CurrentAmount:       amount,
			APYBps:              uint32(a.Apy),
		}
		if a.LastYieldUpdate != nil {
			entry.LastYieldUpdate = *a.LastYieldUpdate
		}
		account.Allocations = append(account.Allocations, entry)
	}

	for _, s := range snapshots {
		value, err := util.Uint64FromDecimal(s.TotalValue)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot value: %w", err)
		}
		account.PerformanceHistory = append(account.PerformanceHistory, domain.PerformanceSnapshot{
			Timestamp:     s.SnapshotAt,
			TotalValue:    value,
			GrowthRateBps: s.GrowthRate,
		})
	}

	return account, nil
}

func portfolioModel(account *domain.PortfolioAccount) model.Portfolio {
	out := model.Portfolio{
		PortfolioID:    account.ID,
		Owner:          account.Owner,
		DerivationSeed: account.DerivationSeed,
		TotalValue:     util.DecimalFromUint64(account.TotalValue),
		IsRebalancing:  account.IsRebalancing,
	}
	if !account.LastRebalance.IsZero() {
		out.LastRebalance = util.TimePointer(account.LastRebalance)
	}
	return out
}

func allocationModels(account *domain.PortfolioAccount) []model.PortfolioAllocation {
	out := []model.PortfolioAllocation{}
	for _, e := range account.Allocations {
		m := model.PortfolioAllocation{
			PortfolioID:      account.ID,
			AssetID:          e.AssetID,
			Symbol:           e.Symbol,
			TargetPercentage: int32(e.TargetPercentageBps),
			CurrentAmount:    util.DecimalFromUint64(e.CurrentAmount),
			Apy:              int32(e.APYBps),
		}
		if !e.LastYieldUpdate.IsZero() {
			m.LastYieldUpdate = util.TimePointer(e.LastYieldUpdate)
		}
		out = append(out, m)
	}
	return out
}

func snapshotModel(portfolioID uuid.UUID, s domain.PerformanceSnapshot) model.PerformanceSnapshot {
	return model.PerformanceSnapshot{
		PortfolioID: portfolioID,
		SnapshotAt:  s.Timestamp,
		TotalValue:  util.DecimalFromUint64(s.TotalValue),
		GrowthRate:  s.GrowthRateBps,
	}
}

func swapModels(runID uuid.UUID, swaps []domain.PlannedSwap) []model.PlannedSwap {
	out := []model.PlannedSwap{}
	for _, s := range swaps {
		out = append(out, model.PlannedSwap{
			RebalancerRunID: runID,
			Side:            model.SwapOrderSide(s.Side),
			FromAsset:       s.FromAsset,
			ToAsset:         s.ToAsset,
			Amount:          util.DecimalFromUint64(s.Amount),
		})
	}
	return out
}
