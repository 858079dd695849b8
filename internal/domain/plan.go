package domain

import (
	"time"

	"github.com/google/uuid"
)

type SwapSide string

const (
	SwapSideBuy  SwapSide = "BUY"
	SwapSideSell SwapSide = "SELL"
)

// AllocationTarget is one entry of a full target re-specification handed to
// the planner.
type AllocationTarget struct {
	AssetID             string
	TargetPercentageBps uint32
}

// PlannedSwap is an intended conversion against the settlement asset. The
// engine records these for the execution layer; it never executes them.
type PlannedSwap struct {
	Side      SwapSide
	FromAsset string
	ToAsset   string
	Amount    uint64
}

type RebalancePlan struct {
	RunID       uuid.UUID
	PortfolioID uuid.UUID
	TotalValue  uint64
	Swaps       []PlannedSwap
	CreatedAt   time.Time
}

type AllocationParams struct {
	AssetID             string
	Symbol              string
	TargetPercentageBps uint32
}

type YieldUpdate struct {
	Symbol    string
	NewAPYBps uint32
}
