package l1_service

import (
	"testing"
	"time"

	"stablefolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestApplyYieldUpdates(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("updates every matched entry", func(t *testing.T) {
		account := testAccount(
			domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC", APYBps: 100},
			domain.AllocationEntry{AssetID: "mint-usdy", Symbol: "USDY", APYBps: 200},
		)

		err := ApplyYieldUpdates(account, []domain.YieldUpdate{
			{Symbol: "USDC", NewAPYBps: 450},
			{Symbol: "USDY", NewAPYBps: 520},
		}, now)
		require.NoError(t, err)

		require.Equal(t, uint32(450), account.Allocations[0].APYBps)
		require.Equal(t, now, account.Allocations[0].LastYieldUpdate)
		require.Equal(t, uint32(520), account.Allocations[1].APYBps)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		account := testAccount(domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC"})

		err := ApplyYieldUpdates(account, nil, now)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects batch with an unmatched symbol", func(t *testing.T) {
		account := testAccount(domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC", APYBps: 100})

		err := ApplyYieldUpdates(account, []domain.YieldUpdate{
			{Symbol: "NOPE", NewAPYBps: 450},
		}, now)
		require.ErrorIs(t, err, domain.ErrInvalidTokenMint)
	})

	t.Run("rejects apy above ceiling", func(t *testing.T) {
		account := testAccount(domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC"})

		err := ApplyYieldUpdates(account, []domain.YieldUpdate{
			{Symbol: "USDC", NewAPYBps: domain.MaxAPYBps + 1},
		}, now)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("accepts apy at the ceiling", func(t *testing.T) {
		account := testAccount(domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC"})

		err := ApplyYieldUpdates(account, []domain.YieldUpdate{
			{Symbol: "USDC", NewAPYBps: domain.MaxAPYBps},
		}, now)
		require.NoError(t, err)
		require.Equal(t, uint32(domain.MaxAPYBps), account.Allocations[0].APYBps)
	})
}
