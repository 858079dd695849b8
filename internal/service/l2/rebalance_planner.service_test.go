package l2_service

import (
	"testing"
	"time"

	"stablefolio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const settlementMint = "mint-settlement"

func plannerAccount(entries ...domain.AllocationEntry) *domain.PortfolioAccount {
	account := domain.NewPortfolioAccount("owner-a", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	account.Allocations = entries
	for _, e := range entries {
		account.TotalValue += e.CurrentAmount
	}
	return account
}

func TestComputeRebalancePlan(t *testing.T) {
	t.Run("shifts an even split to 70/30", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000, CurrentAmount: 500_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 5000, CurrentAmount: 500_000},
		)

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 7000},
				{AssetID: "mint-b", TargetPercentageBps: 3000},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)

		expected := []domain.PlannedSwap{
			{Side: domain.SwapSideBuy, FromAsset: settlementMint, ToAsset: "mint-a", Amount: 200_000},
			{Side: domain.SwapSideSell, FromAsset: "mint-b", ToAsset: settlementMint, Amount: 200_000},
		}
		require.Empty(t, cmp.Diff(expected, swaps))
	})

	t.Run("funds an asset the portfolio has never held", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 10000, CurrentAmount: 1_000_000},
		)

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 5000},
				{AssetID: "mint-b", TargetPercentageBps: 5000},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)

		expected := []domain.PlannedSwap{
			{Side: domain.SwapSideSell, FromAsset: "mint-a", ToAsset: settlementMint, Amount: 500_000},
			{Side: domain.SwapSideBuy, FromAsset: settlementMint, ToAsset: "mint-b", Amount: 500_000},
		}
		require.Empty(t, cmp.Diff(expected, swaps))
	})

	t.Run("sells out an asset absent from the targets", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000, CurrentAmount: 400_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 5000, CurrentAmount: 600_000},
		)

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-b", TargetPercentageBps: 10000},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)

		expected := []domain.PlannedSwap{
			{Side: domain.SwapSideSell, FromAsset: "mint-a", ToAsset: settlementMint, Amount: 400_000},
			{Side: domain.SwapSideBuy, FromAsset: settlementMint, ToAsset: "mint-b", Amount: 400_000},
		}
		require.Empty(t, cmp.Diff(expected, swaps))
	})

	t.Run("floors desired amounts", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 10000, CurrentAmount: 1001},
		)

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 3333},
				{AssetID: "mint-b", TargetPercentageBps: 6667},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)

		// floor(1001*3333/10000)=333, floor(1001*6667/10000)=667; 1 unit of
		// dust stays in the settlement asset
		expected := []domain.PlannedSwap{
			{Side: domain.SwapSideSell, FromAsset: "mint-a", ToAsset: settlementMint, Amount: 668},
			{Side: domain.SwapSideBuy, FromAsset: settlementMint, ToAsset: "mint-b", Amount: 667},
		}
		require.Empty(t, cmp.Diff(expected, swaps))
	})

	t.Run("empty portfolio plans no swaps", func(t *testing.T) {
		account := plannerAccount()

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 10000},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)
		require.Empty(t, swaps)
	})

	t.Run("already balanced portfolio plans no swaps", func(t *testing.T) {
		account := plannerAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 6000, CurrentAmount: 600_000},
			domain.AllocationEntry{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 4000, CurrentAmount: 400_000},
		)

		swaps, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: account,
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 6000},
				{AssetID: "mint-b", TargetPercentageBps: 4000},
			},
			SettlementAsset: settlementMint,
		})
		require.NoError(t, err)
		require.Empty(t, swaps)
	})

	t.Run("rejects targets not summing to 10000", func(t *testing.T) {
		_, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: plannerAccount(),
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 9999},
			},
			SettlementAsset: settlementMint,
		})
		require.ErrorIs(t, err, domain.ErrInvalidAllocationPercentage)
	})

	t.Run("rejects duplicate target assets", func(t *testing.T) {
		_, err := ComputeRebalancePlan(ComputeRebalancePlanInput{
			Portfolio: plannerAccount(),
			Targets: []domain.AllocationTarget{
				{AssetID: "mint-a", TargetPercentageBps: 5000},
				{AssetID: "mint-a", TargetPercentageBps: 5000},
			},
			SettlementAsset: settlementMint,
		})
		require.ErrorIs(t, err, domain.ErrInvalidTokenMint)
	})
}
