package api

import (
	"strconv"
	"time"

	"stablefolio/internal/domain"
)

// amounts serialize as decimal strings; uint64 values can exceed what a
// javascript number holds

type allocationJson struct {
	AssetID             string     `json:"assetId"`
	Symbol              string     `json:"symbol"`
	TargetPercentageBps uint32     `json:"targetPercentageBps"`
	CurrentAmount       string     `json:"currentAmount"`
	ApyBps              uint32     `json:"apyBps"`
	LastYieldUpdate     *time.Time `json:"lastYieldUpdate,omitempty"`
}

type portfolioJson struct {
	PortfolioID   string           `json:"portfolioId"`
	Owner         string           `json:"owner"`
	TotalValue    string           `json:"totalValue"`
	IsRebalancing bool             `json:"isRebalancing"`
	LastRebalance *time.Time       `json:"lastRebalance,omitempty"`
	Allocations   []allocationJson `json:"allocations"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type snapshotJson struct {
	Timestamp     time.Time `json:"timestamp"`
	TotalValue    string    `json:"totalValue"`
	GrowthRateBps int32     `json:"growthRateBps"`
}

type swapJson struct {
	Side      string `json:"side"`
	FromAsset string `json:"fromAsset"`
	ToAsset   string `json:"toAsset"`
	Amount    string `json:"amount"`
}

type planJson struct {
	RunID       string     `json:"runId"`
	PortfolioID string     `json:"portfolioId"`
	TotalValue  string     `json:"totalValue"`
	Swaps       []swapJson `json:"swaps"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func portfolioToJson(account *domain.PortfolioAccount) portfolioJson {
	out := portfolioJson{
		PortfolioID:   account.ID.String(),
		Owner:         account.Owner,
		TotalValue:    strconv.FormatUint(account.TotalValue, 10),
		IsRebalancing: account.IsRebalancing,
		Allocations:   []allocationJson{},
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
	if !account.LastRebalance.IsZero() {
		t := account.LastRebalance
		out.LastRebalance = &t
	}
	for _, e := range account.Allocations {
		a := allocationJson{
			AssetID:             e.AssetID,
			Symbol:              e.Symbol,
			TargetPercentageBps: e.TargetPercentageBps,
			CurrentAmount:       strconv.FormatUint(e.CurrentAmount, 10),
			ApyBps:              e.APYBps,
		}
		if !e.LastYieldUpdate.IsZero() {
			t := e.LastYieldUpdate
			a.LastYieldUpdate = &t
		}
		out.Allocations = append(out.Allocations, a)
	}
	return out
}

func snapshotsToJson(snapshots []domain.PerformanceSnapshot) []snapshotJson {
	out := []snapshotJson{}
	for _, s := range snapshots {
		out = append(out, snapshotJson{
			Timestamp:     s.Timestamp,
			TotalValue:    strconv.FormatUint(s.TotalValue, 10),
			GrowthRateBps: s.GrowthRateBps,
		})
	}
	return out
}

func planToJson(plan *domain.RebalancePlan) planJson {
	out := planJson{
		RunID:       plan.RunID.String(),
		PortfolioID: plan.PortfolioID.String(),
		TotalValue:  strconv.FormatUint(plan.TotalValue, 10),
		Swaps:       []swapJson{},
		CreatedAt:   plan.CreatedAt,
	}
	for _, s := range plan.Swaps {
		out.Swaps = append(out.Swaps, swapJson{
			Side:      string(s.Side),
			FromAsset: s.FromAsset,
			ToAsset:   s.ToAsset,
			Amount:    strconv.FormatUint(s.Amount, 10),
		})
	}
	return out
}
