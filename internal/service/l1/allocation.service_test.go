package l1_service

import (
	"strings"
	"testing"
	"time"

	"stablefolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func testAccount(entries ...domain.AllocationEntry) *domain.PortfolioAccount {
	account := domain.NewPortfolioAccount("owner-a", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	account.Allocations = entries
	for _, e := range entries {
		account.TotalValue += e.CurrentAmount
	}
	return account
}

func TestApplyAllocationChange(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("adds a new entry", func(t *testing.T) {
		account := testAccount(
			domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC", TargetPercentageBps: 5000},
		)

		err := ApplyAllocationChange(account, AllocationChangeInput{
			AssetID:             "mint-usdy",
			Symbol:              "USDY",
			TargetPercentageBps: 3000,
			Now:                 now,
		})
		require.NoError(t, err)

		require.Len(t, account.Allocations, 2)
		require.Equal(t, "USDY", account.Allocations[1].Symbol)
		require.Equal(t, uint32(3000), account.Allocations[1].TargetPercentageBps)
		require.Equal(t, uint64(0), account.Allocations[1].CurrentAmount)
		require.Equal(t, now, account.UpdatedAt)
	})

	t.Run("edits an existing entry without touching amounts", func(t *testing.T) {
		account := testAccount(
			domain.AllocationEntry{AssetID: "mint-usdc", Symbol: "USDC", TargetPercentageBps: 5000, CurrentAmount: 750, APYBps: 450},
		)

		err := ApplyAllocationChange(account, AllocationChangeInput{
			AssetID:             "mint-usdc",
			Symbol:              "USDC-R",
			TargetPercentageBps: 8000,
			Now:                 now,
		})
		require.NoError(t, err)

		require.Len(t, account.Allocations, 1)
		require.Equal(t, "USDC-R", account.Allocations[0].Symbol)
		require.Equal(t, uint32(8000), account.Allocations[0].TargetPercentageBps)
		require.Equal(t, uint64(750), account.Allocations[0].CurrentAmount)
		require.Equal(t, uint32(450), account.Allocations[0].APYBps)
	})

	t.Run("rejects empty and oversized symbols", func(t *testing.T) {
		account := testAccount()

		err := ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-a", Symbol: "", TargetPercentageBps: 100, Now: now})
		require.ErrorIs(t, err, domain.ErrInvalidTokenSymbol)

		err = ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-a", Symbol: strings.Repeat("x", 33), TargetPercentageBps: 100, Now: now})
		require.ErrorIs(t, err, domain.ErrInvalidTokenSymbol)

		err = ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-a", Symbol: strings.Repeat("x", 32), TargetPercentageBps: 100, Now: now})
		require.NoError(t, err)
	})

	t.Run("rejects target above 10000 bps", func(t *testing.T) {
		account := testAccount()

		err := ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 10001, Now: now})
		require.ErrorIs(t, err, domain.ErrInvalidAllocationPercentage)
	})

	t.Run("rejects eleventh entry", func(t *testing.T) {
		entries := []domain.AllocationEntry{}
		for i := 0; i < domain.MaxAllocations; i++ {
			entries = append(entries, domain.AllocationEntry{
				AssetID: "mint-" + string(rune('a'+i)),
				Symbol:  "S" + string(rune('A'+i)),
			})
		}
		account := testAccount(entries...)

		err := ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-k", Symbol: "SK", TargetPercentageBps: 100, Now: now})
		require.ErrorIs(t, err, domain.ErrAllocationOverflow)
	})

	t.Run("rejects sum above 10000 bps", func(t *testing.T) {
		account := testAccount(
			domain.AllocationEntry{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 6000},
		)

		err := ApplyAllocationChange(account, AllocationChangeInput{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 4001, Now: now})
		require.ErrorIs(t, err, domain.ErrAllocationOverflow)
	})
}

func TestBuildInitialAllocations(t *testing.T) {
	t.Run("builds entries with zero amounts", func(t *testing.T) {
		entries, err := BuildInitialAllocations([]domain.AllocationParams{
			{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 7000},
			{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 3000},
		})
		require.NoError(t, err)

		require.Len(t, entries, 2)
		require.Equal(t, uint64(0), entries[0].CurrentAmount)
		require.Equal(t, uint32(7000), entries[0].TargetPercentageBps)
	})

	t.Run("allows empty param list", func(t *testing.T) {
		entries, err := BuildInitialAllocations(nil)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("accepts a full table of ten entries at 1000 bps each", func(t *testing.T) {
		params := []domain.AllocationParams{}
		for i := 0; i < domain.MaxAllocations; i++ {
			params = append(params, domain.AllocationParams{
				AssetID:             "mint-" + string(rune('a'+i)),
				Symbol:              "S" + string(rune('A'+i)),
				TargetPercentageBps: 1000,
			})
		}

		entries, err := BuildInitialAllocations(params)
		require.NoError(t, err)
		require.Len(t, entries, domain.MaxAllocations)
	})

	t.Run("rejects an eleventh param", func(t *testing.T) {
		params := []domain.AllocationParams{}
		for i := 0; i < domain.MaxAllocations+1; i++ {
			params = append(params, domain.AllocationParams{
				AssetID: "mint-" + string(rune('a'+i)),
				Symbol:  "S" + string(rune('A'+i)),
			})
		}

		_, err := BuildInitialAllocations(params)
		require.ErrorIs(t, err, domain.ErrAllocationOverflow)
	})

	t.Run("rejects duplicate assets", func(t *testing.T) {
		_, err := BuildInitialAllocations([]domain.AllocationParams{
			{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 5000},
			{AssetID: "mint-a", Symbol: "A2", TargetPercentageBps: 5000},
		})
		require.ErrorIs(t, err, domain.ErrInvalidTokenMint)
	})

	t.Run("rejects sum above 10000 bps", func(t *testing.T) {
		_, err := BuildInitialAllocations([]domain.AllocationParams{
			{AssetID: "mint-a", Symbol: "A", TargetPercentageBps: 9000},
			{AssetID: "mint-b", Symbol: "B", TargetPercentageBps: 1001},
		})
		require.ErrorIs(t, err, domain.ErrAllocationOverflow)
	})
}
