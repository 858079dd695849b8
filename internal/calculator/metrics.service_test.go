package calculator

import (
	"testing"
	"time"

	"stablefolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("weights projected apy by held amounts", func(t *testing.T) {
		account := domain.NewPortfolioAccount("owner-a", now)
		account.Allocations = []domain.AllocationEntry{
			{AssetID: "mint-a", Symbol: "A", CurrentAmount: 750, APYBps: 400},
			{AssetID: "mint-b", Symbol: "B", CurrentAmount: 250, APYBps: 800},
		}
		account.TotalValue = 1000

		result, err := CalculateMetrics(account)
		require.NoError(t, err)

		// (400*750 + 800*250) / 1000 = 500
		require.Equal(t, "500", result.ProjectedAPYBps.String())
	})

	t.Run("empty portfolio projects zero", func(t *testing.T) {
		account := domain.NewPortfolioAccount("owner-a", now)

		result, err := CalculateMetrics(account)
		require.NoError(t, err)

		require.True(t, result.ProjectedAPYBps.IsZero())
		require.Zero(t, result.AverageGrowthBps)
		require.Zero(t, result.SnapshotCount)
	})

	t.Run("computes growth statistics from the history", func(t *testing.T) {
		account := domain.NewPortfolioAccount("owner-a", now)
		account.PerformanceHistory = []domain.PerformanceSnapshot{
			{Timestamp: now, TotalValue: 1000, GrowthRateBps: 0},
			{Timestamp: now.Add(time.Hour), TotalValue: 1100, GrowthRateBps: 1000},
			{Timestamp: now.Add(2 * time.Hour), TotalValue: 1133, GrowthRateBps: 300},
		}

		result, err := CalculateMetrics(account)
		require.NoError(t, err)

		require.Equal(t, 3, result.SnapshotCount)
		require.InDelta(t, 650.0, result.AverageGrowthBps, 0.0001)
		require.InDelta(t, 494.9747, result.GrowthStdevBps, 0.001)
	})

	t.Run("single snapshot yields no growth statistics", func(t *testing.T) {
		account := domain.NewPortfolioAccount("owner-a", now)
		account.PerformanceHistory = []domain.PerformanceSnapshot{
			{Timestamp: now, TotalValue: 1000},
		}

		result, err := CalculateMetrics(account)
		require.NoError(t, err)

		require.Equal(t, 1, result.SnapshotCount)
		require.Zero(t, result.AverageGrowthBps)
		require.Zero(t, result.GrowthStdevBps)
	})
}
