package app

import (
	"context"
	"fmt"

	"stablefolio/internal/domain"
	"stablefolio/internal/logger"
	l3_service "stablefolio/internal/service/l3"
	"stablefolio/pkg/jupiter"
)

// QuoteClient is the slice of the aggregator API the rebalancer needs.
type QuoteClient interface {
	GetQuote(in jupiter.GetQuoteInput) (*jupiter.QuoteResponse, error)
}

type RebalancerHandler struct {
	PortfolioService   l3_service.PortfolioService
	QuoteClient        QuoteClient
	DefaultSlippageBps uint32
}

type QuotedSwap struct {
	Swap            domain.PlannedSwap
	QuotedOutAmount *uint64
}

type QuotePlanResponse struct {
	Plan  *domain.RebalancePlan
	Swaps []QuotedSwap
}

// QuotePlan computes a rebalance plan, prices each leg against the
// aggregator and records the quotes for audit. A leg that fails to quote is
// recorded without a priced amount; the plan itself is still returned.
func (h RebalancerHandler) QuotePlan(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*QuotePlanResponse, error) {
	log := logger.FromContext(ctx)

	plan, err := h.PortfolioService.PlanRebalance(ctx, caller, owner, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to plan rebalance: %w", err)
	}

	out := &QuotePlanResponse{Plan: plan}
	for _, swap := range plan.Swaps {
		quoted := QuotedSwap{Swap: swap}

		quote, err := h.QuoteClient.GetQuote(jupiter.GetQuoteInput{
			InputMint:   swap.FromAsset,
			OutputMint:  swap.ToAsset,
			Amount:      swap.Amount,
			SlippageBps: h.DefaultSlippageBps,
		})
		if err != nil {
			log.Warnf("failed to quote %s -> %s: %v", swap.FromAsset, swap.ToAsset, err)
		} else {
			outAmount, err := quote.OutAmountUint64()
			if err != nil {
				log.Warnf("discarding unparseable quote for %s -> %s: %v", swap.FromAsset, swap.ToAsset, err)
			} else {
				quoted.QuotedOutAmount = &outAmount
			}
		}

		_, err = h.PortfolioService.RecordQuote(ctx, caller, owner, l3_service.RecordQuoteInput{
			FromAsset:       swap.FromAsset,
			ToAsset:         swap.ToAsset,
			Amount:          swap.Amount,
			SlippageBps:     h.DefaultSlippageBps,
			QuotedOutAmount: quoted.QuotedOutAmount,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record quote: %w", err)
		}

		out.Swaps = append(out.Swaps, quoted)
	}

	return out, nil
}
