package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/db/models/postgres/public/table"
	"stablefolio/internal/domain"
	"stablefolio/internal/logger"
	"stablefolio/internal/repository"
	l1_service "stablefolio/internal/service/l1"
	l2_service "stablefolio/internal/service/l2"
	"stablefolio/internal/util"

	"github.com/go-jet/jet/v2/postgres"
)

type RecordQuoteInput struct {
	FromAsset       string
	ToAsset         string
	Amount          uint64
	SlippageBps     uint32
	QuotedOutAmount *uint64
}

// PortfolioService is the write path for portfolio records. Every mutation
// runs in one transaction holding a row lock on the portfolio, so concurrent
// operations against the same record are serialized and either fully apply
// or leave no trace.
type PortfolioService interface {
	Initialize(ctx context.Context, caller, owner string, allocations []domain.AllocationParams) (*domain.PortfolioAccount, error)
	Deposit(ctx context.Context, caller, owner string, amount uint64) (*domain.PortfolioAccount, error)
	Invest(ctx context.Context, caller, owner, assetID string, amount uint64) (*domain.PortfolioAccount, error)
	Withdraw(ctx context.Context, caller, owner, assetID string, amount uint64) (*domain.PortfolioAccount, error)
	AddOrUpdateAllocation(ctx context.Context, caller, owner string, params domain.AllocationParams) (*domain.PortfolioAccount, error)
	UpdateYields(ctx context.Context, caller, owner string, updates []domain.YieldUpdate) (*domain.PortfolioAccount, error)
	PlanRebalance(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*domain.RebalancePlan, error)
	Rebalance(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*domain.RebalancePlan, error)
	RecordQuote(ctx context.Context, caller, owner string, in RecordQuoteInput) (*model.SwapQuote, error)
	GetPortfolio(ctx context.Context, caller, owner string) (*domain.PortfolioAccount, error)
	GetPerformanceHistory(ctx context.Context, caller, owner string) ([]domain.PerformanceSnapshot, error)
}

type portfolioServiceHandler struct {
	Db                            *sql.DB
	PortfolioRepository           repository.PortfolioRepository
	PortfolioAllocationRepository repository.PortfolioAllocationRepository
	PerformanceSnapshotRepository repository.PerformanceSnapshotRepository
	RebalancerRunRepository       repository.RebalancerRunRepository
	SwapQuoteRepository           repository.SwapQuoteRepository

	SettlementAsset   string
	SettlementSymbol  string
	RebalanceCooldown time.Duration
	DriftThresholdBps uint32
}

func NewPortfolioService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	allocationRepository repository.PortfolioAllocationRepository,
	snapshotRepository repository.PerformanceSnapshotRepository,
	rebalancerRunRepository repository.RebalancerRunRepository,
	swapQuoteRepository repository.SwapQuoteRepository,
	settlementAsset string,
) PortfolioService {
	return &portfolioServiceHandler{
		Db:                            db,
		PortfolioRepository:           portfolioRepository,
		PortfolioAllocationRepository: allocationRepository,
		PerformanceSnapshotRepository: snapshotRepository,
		RebalancerRunRepository:       rebalancerRunRepository,
		SwapQuoteRepository:           swapQuoteRepository,
		SettlementAsset:               settlementAsset,
		SettlementSymbol:              "USDC",
		RebalanceCooldown:             domain.DefaultRebalanceCooldown,
		DriftThresholdBps:             domain.DefaultDriftThresholdBps,
	}
}

func (h *portfolioServiceHandler) authorize(caller, owner string) error {
	if caller != owner {
		return fmt.Errorf("%w: caller %q does not own this portfolio", domain.ErrUnauthorized, caller)
	}
	return nil
}

func (h *portfolioServiceHandler) loadAccountForUpdate(tx *sql.Tx, owner string) (*domain.PortfolioAccount, error) {
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, owner)
	if err != nil {
		return nil, err
	}
	allocations, err := h.PortfolioAllocationRepository.List(tx, portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}
	snapshots, err := h.PerformanceSnapshotRepository.List(portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}
	return accountFromModels(*portfolio, allocations, snapshots)
}

func (h *portfolioServiceHandler) persistAccount(tx *sql.Tx, account *domain.PortfolioAccount, snapshotTaken bool) error {
	derived, err := account.CalculateTotalValue()
	if err != nil {
		return err
	}
	if derived != account.TotalValue {
		return fmt.Errorf("total value %d does not match allocation sum %d", account.TotalValue, derived)
	}

	_, err = h.PortfolioRepository.Update(tx, portfolioModel(account), postgres.ColumnList{
		table.Portfolio.TotalValue,
		table.Portfolio.IsRebalancing,
		table.Portfolio.LastRebalance,
	})
	if err != nil {
		return err
	}

	err = h.PortfolioAllocationRepository.Replace(tx, account.ID, allocationModels(account))
	if err != nil {
		return err
	}

	if snapshotTaken && len(account.PerformanceHistory) > 0 {
		latest := account.PerformanceHistory[len(account.PerformanceHistory)-1]
		_, err = h.PerformanceSnapshotRepository.Add(tx, snapshotModel(account.ID, latest))
		if err != nil {
			return err
		}
		err = h.PerformanceSnapshotRepository.EvictOldest(tx, account.ID, domain.MaxPerformanceSnapshots)
		if err != nil {
			return err
		}
	}

	return nil
}

// mutateAccount wraps the lock-apply-persist cycle shared by every mutation.
// apply sees the freshest committed state and mutates it in memory; nothing
// is written unless apply succeeds.
func (h *portfolioServiceHandler) mutateAccount(owner string, snapshotTaken bool, apply func(tx *sql.Tx, account *domain.PortfolioAccount) error) (*domain.PortfolioAccount, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := h.loadAccountForUpdate(tx, owner)
	if err != nil {
		return nil, err
	}

	err = apply(tx, account)
	if err != nil {
		return nil, err
	}

	err = h.persistAccount(tx, account, snapshotTaken)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return account, nil
}

func (h *portfolioServiceHandler) Initialize(ctx context.Context, caller, owner string, allocations []domain.AllocationParams) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	entries, err := l1_service.BuildInitialAllocations(allocations)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = h.PortfolioRepository.GetForUpdate(tx, owner)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPortfolioExists, owner)
	} else if !errors.Is(err, domain.ErrPortfolioNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.NewPortfolioAccount(owner, now)
	account.Allocations = entries

	inserted, err := h.PortfolioRepository.Add(tx, portfolioModel(account))
	if err != nil {
		return nil, err
	}
	err = h.PortfolioAllocationRepository.Replace(tx, account.ID, allocationModels(account))
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	account.CreatedAt = inserted.CreatedAt
	account.UpdatedAt = inserted.ModifiedAt

	logger.FromContext(ctx).Infof("initialized portfolio %s for %s with %d allocations", account.ID, owner, len(entries))
	return account, nil
}

// Deposit credits the settlement asset, creating its allocation entry on
// first use. Sugar over Invest for the common funding path.
func (h *portfolioServiceHandler) Deposit(ctx context.Context, caller, owner string, amount uint64) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	return h.mutateAccount(owner, true, func(tx *sql.Tx, account *domain.PortfolioAccount) error {
		if account.FindAllocation(h.SettlementAsset) == nil {
			if len(account.Allocations) >= domain.MaxAllocations {
				return fmt.Errorf("%w: portfolio holds at most %d allocations", domain.ErrAllocationOverflow, domain.MaxAllocations)
			}
			account.Allocations = append(account.Allocations, domain.AllocationEntry{
				AssetID: h.SettlementAsset,
				Symbol:  h.SettlementSymbol,
			})
		}
		return l1_service.ApplyInvestment(account, h.SettlementAsset, amount, time.Now().UTC())
	})
}

func (h *portfolioServiceHandler) Invest(ctx context.Context, caller, owner, assetID string, amount uint64) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	return h.mutateAccount(owner, true, func(tx *sql.Tx, account *domain.PortfolioAccount) error {
		return l1_service.ApplyInvestment(account, assetID, amount, time.Now().UTC())
	})
}

func (h *portfolioServiceHandler) Withdraw(ctx context.Context, caller, owner, assetID string, amount uint64) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	return h.mutateAccount(owner, true, func(tx *sql.Tx, account *domain.PortfolioAccount) error {
		return l1_service.ApplyWithdrawal(account, assetID, amount, time.Now().UTC())
	})
}

func (h *portfolioServiceHandler) AddOrUpdateAllocation(ctx context.Context, caller, owner string, params domain.AllocationParams) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	return h.mutateAccount(owner, false, func(tx *sql.Tx, account *domain.PortfolioAccount) error {
		return l1_service.ApplyAllocationChange(account, l1_service.AllocationChangeInput{
			AssetID:             params.AssetID,
			Symbol:              params.Symbol,
			TargetPercentageBps: params.TargetPercentageBps,
			Now:                 time.Now().UTC(),
		})
	})
}

func (h *portfolioServiceHandler) UpdateYields(ctx context.Context, caller, owner string, updates []domain.YieldUpdate) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	return h.mutateAccount(owner, false, func(tx *sql.Tx, account *domain.PortfolioAccount) error {
		return l1_service.ApplyYieldUpdates(account, updates, time.Now().UTC())
	})
}

// PlanRebalance computes and records the swap list without mutating the
// portfolio. The cooldown does not apply to planning, but a request already
// within the drift threshold has nothing to plan.
func (h *portfolioServiceHandler) PlanRebalance(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*domain.RebalancePlan, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := h.loadAccountForUpdate(tx, owner)
	if err != nil {
		return nil, err
	}
	if account.IsRebalancing {
		return nil, domain.ErrRebalanceInProgress
	}
	if account.TotalValue > 0 && !account.NeedsRebalancing(targets, h.DriftThresholdBps) {
		return nil, domain.ErrNoRebalanceNeeded
	}

	swaps, err := l2_service.ComputeRebalancePlan(l2_service.ComputeRebalancePlanInput{
		Portfolio:       account,
		Targets:         targets,
		SettlementAsset: h.SettlementAsset,
	})
	if err != nil {
		return nil, err
	}

	run, err := h.recordRun(tx, account, swaps, false)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.RebalancePlan{
		RunID:       run.RebalancerRunID,
		PortfolioID: account.ID,
		TotalValue:  account.TotalValue,
		Swaps:       swaps,
		CreatedAt:   run.CreatedAt,
	}, nil
}

func (h *portfolioServiceHandler) Rebalance(ctx context.Context, caller, owner string, targets []domain.AllocationTarget) (*domain.RebalancePlan, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := h.loadAccountForUpdate(tx, owner)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = l2_service.ValidateRebalanceStart(l2_service.RebalanceStartInput{
		Portfolio:    account,
		Targets:      targets,
		Now:          now,
		Cooldown:     h.RebalanceCooldown,
		ThresholdBps: h.DriftThresholdBps,
	})
	if err != nil {
		return nil, err
	}

	swaps, err := l2_service.ComputeRebalancePlan(l2_service.ComputeRebalancePlanInput{
		Portfolio:       account,
		Targets:         targets,
		SettlementAsset: h.SettlementAsset,
	})
	if err != nil {
		return nil, err
	}

	err = l2_service.ApplyRebalanceCompletion(account, targets, now)
	if err != nil {
		return nil, err
	}

	err = h.persistAccount(tx, account, true)
	if err != nil {
		return nil, err
	}

	run, err := h.recordRun(tx, account, swaps, true)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Infof("rebalanced portfolio %s: %d swaps over %d total value", account.ID, len(swaps), account.TotalValue)
	return &domain.RebalancePlan{
		RunID:       run.RebalancerRunID,
		PortfolioID: account.ID,
		TotalValue:  account.TotalValue,
		Swaps:       swaps,
		CreatedAt:   run.CreatedAt,
	}, nil
}

func (h *portfolioServiceHandler) recordRun(tx *sql.Tx, account *domain.PortfolioAccount, swaps []domain.PlannedSwap, applied bool) (*model.RebalancerRun, error) {
	run, err := h.RebalancerRunRepository.Add(tx, model.RebalancerRun{
		PortfolioID: account.ID,
		TotalValue:  util.DecimalFromUint64(account.TotalValue),
		NumSwaps:    int32(len(swaps)),
		Applied:     applied,
	})
	if err != nil {
		return nil, err
	}
	err = h.RebalancerRunRepository.AddSwaps(tx, swapModels(run.RebalancerRunID, swaps))
	if err != nil {
		return nil, err
	}
	return run, nil
}

// RecordQuote persists an external price quote for audit. Quotes never touch
// portfolio state, so no lock is taken.
func (h *portfolioServiceHandler) RecordQuote(ctx context.Context, caller, owner string, in RecordQuoteInput) (*model.SwapQuote, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}
	if in.Amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	if in.FromAsset == "" || in.ToAsset == "" {
		return nil, fmt.Errorf("%w: quote assets must be set", domain.ErrInvalidTokenMint)
	}
	if in.SlippageBps > domain.FullAllocationBps {
		return nil, fmt.Errorf("%w: slippage %d bps exceeds %d", domain.ErrInvalidAmount, in.SlippageBps, domain.FullAllocationBps)
	}

	quote := model.SwapQuote{
		Owner:       owner,
		FromAsset:   in.FromAsset,
		ToAsset:     in.ToAsset,
		Amount:      util.DecimalFromUint64(in.Amount),
		SlippageBps: int32(in.SlippageBps),
	}
	if in.QuotedOutAmount != nil {
		quote.QuotedOutAmount = util.DecimalPointer(util.DecimalFromUint64(*in.QuotedOutAmount))
	}

	return h.SwapQuoteRepository.Add(nil, quote)
}

func (h *portfolioServiceHandler) GetPortfolio(ctx context.Context, caller, owner string) (*domain.PortfolioAccount, error) {
	if err := h.authorize(caller, owner); err != nil {
		return nil, err
	}

	portfolio, err := h.PortfolioRepository.Get(owner)
	if err != nil {
		return nil, err
	}
	allocations, err := h.PortfolioAllocationRepository.List(nil, portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}
	snapshots, err := h.PerformanceSnapshotRepository.List(portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}

	return accountFromModels(*portfolio, allocations, snapshots)
}

func (h *portfolioServiceHandler) GetPerformanceHistory(ctx context.Context, caller, owner string) ([]domain.PerformanceSnapshot, error) {
	account, err := h.GetPortfolio(ctx, caller, owner)
	if err != nil {
		return nil, err
	}
	return account.PerformanceHistory, nil
}
