package l2_service

import (
	"testing"
	"time"

	"stablefolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestValidateRebalanceStart(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	driftedTargets := []domain.AllocationTarget{
		{AssetID: "mint-a", TargetPercentageBps: 2000},
		{AssetID: "mint-b", TargetPercentageBps: 8000},
	}
	storedTargets := []domain.AllocationTarget{
		{AssetID: "mint-a", TargetPercentageBps: 5000},
		{AssetID: "mint-b", TargetPercentageBps: 5000},
	}

	balanced := func() *domain.PortfolioAccount {
		return plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000, CurrentAmount: 500_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 5000, CurrentAmount: 500_000},
		)
	}

	t.Run("rejects while a rebalance is in flight", func(t *testing.T) {
		account := balanced()
		account.IsRebalancing = true

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio:    account,
			Targets:      driftedTargets,
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.ErrorIs(t, err, domain.ErrRebalanceInProgress)
	})

	t.Run("rejects repeat within cooldown when nothing drifted", func(t *testing.T) {
		account := balanced()
		account.LastRebalance = now.Add(-time.Hour)

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio:    account,
			Targets:      storedTargets,
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.ErrorIs(t, err, domain.ErrRebalanceTooFrequent)
	})

	t.Run("drifted targets override the cooldown", func(t *testing.T) {
		account := balanced()
		account.LastRebalance = now.Add(-time.Hour)

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio:    account,
			Targets:      driftedTargets,
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.NoError(t, err)
	})

	t.Run("rejects a no-op once the cooldown elapses", func(t *testing.T) {
		account := balanced()
		account.LastRebalance = now.Add(-25 * time.Hour)

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio:    account,
			Targets:      storedTargets,
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.ErrorIs(t, err, domain.ErrNoRebalanceNeeded)
	})

	t.Run("allows changed targets after the cooldown even within threshold", func(t *testing.T) {
		account := balanced()
		account.LastRebalance = now.Add(-25 * time.Hour)

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 5200},
				{AssetID: "mint-b", TargetPercentageBps: 4800},
			},
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.NoError(t, err)
	})

	t.Run("allows the first rebalance ever", func(t *testing.T) {
		account := balanced()

		err := ValidateRebalanceStart(RebalanceStartInput{
			Portfolio:    account,
			Targets:      driftedTargets,
			Now:          now,
			Cooldown:     domain.DefaultRebalanceCooldown,
			ThresholdBps: domain.DefaultDriftThresholdBps,
		})
		require.NoError(t, err)
	})
}

func TestApplyRebalanceCompletion(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rewrites targets and timestamps the run", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000, CurrentAmount: 500_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 5000, CurrentAmount: 500_000},
		)
		account.IsRebalancing = true

		err := ApplyRebalanceCompletion(account, []domain.AllocationTarget{
			{AssetID: "mint-a", TargetPercentageBps: 7000},
			{AssetID: "mint-b", TargetPercentageBps: 3000},
		}, now)
		require.NoError(t, err)

		require.Equal(t, uint32(7000), account.Allocations[0].TargetPercentageBps)
		require.Equal(t, uint32(3000), account.Allocations[1].TargetPercentageBps)
		require.False(t, account.IsRebalancing)
		require.Equal(t, now, account.LastRebalance)
		require.Len(t, account.PerformanceHistory, 1)
	})

	t.Run("zeroes held assets left out of the request", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000, CurrentAmount: 500_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 5000, CurrentAmount: 500_000},
		)

		err := ApplyRebalanceCompletion(account, []domain.AllocationTarget{
			{AssetID: "mint-b", TargetPercentageBps: 10000},
		}, now)
		require.NoError(t, err)

		require.Equal(t, uint32(0), account.Allocations[0].TargetPercentageBps)
		require.Equal(t, uint32(10000), account.Allocations[1].TargetPercentageBps)
	})

	t.Run("admits a requested asset with a placeholder symbol", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 10000, CurrentAmount: 1_000_000},
		)

		err := ApplyRebalanceCompletion(account, []domain.AllocationTarget{
			{AssetID: "mint-a", TargetPercentageBps: 5000},
			{AssetID: "mint-brand-new", TargetPercentageBps: 5000},
		}, now)
		require.NoError(t, err)

		require.Len(t, account.Allocations, 2)
		require.Equal(t, "mint-brand-new", account.Allocations[1].AssetID)
		require.Equal(t, "ASSET-mint-bra", account.Allocations[1].Symbol)
		require.Equal(t, uint32(5000), account.Allocations[1].TargetPercentageBps)
		require.Equal(t, uint64(0), account.Allocations[1].CurrentAmount)
	})

	t.Run("rejects admitting past the allocation cap", func(t *testing.T) {
		entries := []domain.AllocationEntry{}
		targets := []domain.AllocationTarget{}
		for i := 0; i < domain.MaxAllocations; i++ {
			id := "mint-" + string(rune('a'+i))
			entries = append(entries, domain.AllocationEntry{AssetID: id, Symbol: "S" + string(rune('A'+i)), TargetPercentageBps: 1000})
			targets = append(targets, domain.AllocationTarget{AssetID: id, TargetPercentageBps: 900})
		}
		targets = append(targets, domain.AllocationTarget{AssetID: "mint-extra", TargetPercentageBps: 1000})
		account := plannerAccount(entries...)

		err := ApplyRebalanceCompletion(account, targets, now)
		require.ErrorIs(t, err, domain.ErrAllocationOverflow)
	})
}
