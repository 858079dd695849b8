package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/domain"
	l3_service "stablefolio/internal/service/l3"
	"stablefolio/pkg/jupiter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubPortfolioService struct {
	l3_service.PortfolioService

	plan    *domain.RebalancePlan
	planErr error

	recorded []l3_service.RecordQuoteInput
}

func (s *stubPortfolioService) PlanRebalance(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*domain.RebalancePlan, error) {
	if s.planErr != nil {
		return nil, s.planErr
	}
	return s.plan, nil
}

func (s *stubPortfolioService) RecordQuote(ctx context.Context, caller, owner string, in l3_service.RecordQuoteInput) (*model.SwapQuote, error) {
	s.recorded = append(s.recorded, in)
	return &model.SwapQuote{SwapQuoteID: uuid.New()}, nil
}

type stubQuoteClient struct {
	quotes map[string]*jupiter.QuoteResponse
	errs   map[string]error
}

func (c stubQuoteClient) GetQuote(in jupiter.GetQuoteInput) (*jupiter.QuoteResponse, error) {
	if err, ok := c.errs[in.InputMint]; ok {
		return nil, err
	}
	return c.quotes[in.InputMint], nil
}

func TestQuotePlan(t *testing.T) {
	plan := &domain.RebalancePlan{
		RunID:       uuid.New(),
		PortfolioID: uuid.New(),
		TotalValue:  1_000_000,
		Swaps: []domain.PlannedSwap{
			{Side: domain.SwapSideSell, FromAsset: "mint-b", ToAsset: "mint-settlement", Amount: 200_000},
			{Side: domain.SwapSideBuy, FromAsset: "mint-settlement", ToAsset: "mint-a", Amount: 200_000},
		},
		CreatedAt: time.Now().UTC(),
	}

	t.Run("prices every leg and records the quotes", func(t *testing.T) {
		service := &stubPortfolioService{plan: plan}
		handler := RebalancerHandler{
			PortfolioService: service,
			QuoteClient: stubQuoteClient{quotes: map[string]*jupiter.QuoteResponse{
				"mint-b":          {OutAmount: "199400"},
				"mint-settlement": {OutAmount: "199900"},
			}},
			DefaultSlippageBps: 50,
		}

		resp, err := handler.QuotePlan(context.Background(), "owner-a", "owner-a", nil)
		require.NoError(t, err)
		require.Equal(t, plan.RunID, resp.Plan.RunID)
		require.Len(t, resp.Swaps, 2)

		require.NotNil(t, resp.Swaps[0].QuotedOutAmount)
		require.Equal(t, uint64(199_400), *resp.Swaps[0].QuotedOutAmount)
		require.NotNil(t, resp.Swaps[1].QuotedOutAmount)
		require.Equal(t, uint64(199_900), *resp.Swaps[1].QuotedOutAmount)

		require.Len(t, service.recorded, 2)
		require.Equal(t, "mint-b", service.recorded[0].FromAsset)
		require.Equal(t, uint32(50), service.recorded[0].SlippageBps)
		require.NotNil(t, service.recorded[0].QuotedOutAmount)
	})

	t.Run("a failed quote still records the leg, unpriced", func(t *testing.T) {
		service := &stubPortfolioService{plan: plan}
		handler := RebalancerHandler{
			PortfolioService: service,
			QuoteClient: stubQuoteClient{
				quotes: map[string]*jupiter.QuoteResponse{
					"mint-settlement": {OutAmount: "199900"},
				},
				errs: map[string]error{"mint-b": errors.New("aggregator timeout")},
			},
			DefaultSlippageBps: 50,
		}

		resp, err := handler.QuotePlan(context.Background(), "owner-a", "owner-a", nil)
		require.NoError(t, err)
		require.Len(t, resp.Swaps, 2)
		require.Nil(t, resp.Swaps[0].QuotedOutAmount)
		require.NotNil(t, resp.Swaps[1].QuotedOutAmount)

		require.Len(t, service.recorded, 2)
		require.Nil(t, service.recorded[0].QuotedOutAmount)
	})

	t.Run("planner rejection surfaces unchanged", func(t *testing.T) {
		service := &stubPortfolioService{planErr: domain.ErrNoRebalanceNeeded}
		handler := RebalancerHandler{PortfolioService: service, QuoteClient: stubQuoteClient{}}

		_, err := handler.QuotePlan(context.Background(), "owner-a", "owner-a", nil)
		require.ErrorIs(t, err, domain.ErrNoRebalanceNeeded)
	})
}
