package repository

import (
	"database/sql"
	"fmt"
	"time"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type RebalancerRunRepository interface {
	Add(tx *sql.Tx, run model.RebalancerRun) (*model.RebalancerRun, error)
	AddSwaps(tx *sql.Tx, swaps []model.PlannedSwap) error
	Get(id uuid.UUID) (*model.RebalancerRun, error)
	ListSwaps(runID uuid.UUID) ([]model.PlannedSwap, error)
}

type rebalancerRunRepositoryHandler struct {
	Db *sql.DB
}

func NewRebalancerRunRepository(db *sql.DB) RebalancerRunRepository {
	return rebalancerRunRepositoryHandler{Db: db}
}

func (h rebalancerRunRepositoryHandler) Add(tx *sql.Tx, run model.RebalancerRun) (*model.RebalancerRun, error) {
	run.CreatedAt = time.Now().UTC()
	run.ModifiedAt = time.Now().UTC()
	query := table.RebalancerRun.
		INSERT(table.RebalancerRun.MutableColumns).
		MODEL(run).
		RETURNING(table.RebalancerRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RebalancerRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rebalancer run: %w", err)
	}

	return &out, nil
}

func (h rebalancerRunRepositoryHandler) AddSwaps(tx *sql.Tx, swaps []model.PlannedSwap) error {
	if len(swaps) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range swaps {
		swaps[i].CreatedAt = now
	}

	query := table.PlannedSwap.
		INSERT(table.PlannedSwap.MutableColumns).
		MODELS(swaps)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert planned swaps: %w", err)
	}

	return nil
}

func (h rebalancerRunRepositoryHandler) Get(id uuid.UUID) (*model.RebalancerRun, error) {
	query := table.RebalancerRun.
		SELECT(table.RebalancerRun.AllColumns).
		WHERE(table.RebalancerRun.RebalancerRunID.EQ(postgres.UUID(id)))

	result := model.RebalancerRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get rebalancer run: %w", err)
	}

	return &result, nil
}

func (h rebalancerRunRepositoryHandler) ListSwaps(runID uuid.UUID) ([]model.PlannedSwap, error) {
	query := table.PlannedSwap.
		SELECT(table.PlannedSwap.AllColumns).
		WHERE(table.PlannedSwap.RebalancerRunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.PlannedSwap.CreatedAt.ASC())

	result := []model.PlannedSwap{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned swaps: %w", err)
	}

	return result, nil
}
