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

type PortfolioAllocationRepository interface {
	List(tx *sql.Tx, portfolioID uuid.UUID) ([]model.PortfolioAllocation, error)
	// Replace rewrites the whole allocation table for the portfolio. The
	// ordinal column preserves insertion order.
	Replace(tx *sql.Tx, portfolioID uuid.UUID, allocations []model.PortfolioAllocation) error
}

type portfolioAllocationRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioAllocationRepository(db *sql.DB) PortfolioAllocationRepository {
	return portfolioAllocationRepositoryHandler{Db: db}
}

func (h portfolioAllocationRepositoryHandler) List(tx *sql.Tx, portfolioID uuid.UUID) ([]model.PortfolioAllocation, error) {
	query := table.PortfolioAllocation.
		SELECT(table.PortfolioAllocation.AllColumns).
		WHERE(table.PortfolioAllocation.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.PortfolioAllocation.Ordinal.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.PortfolioAllocation{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	return result, nil
}

func (h portfolioAllocationRepositoryHandler) Replace(tx *sql.Tx, portfolioID uuid.UUID, allocations []model.PortfolioAllocation) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	deleteQuery := table.PortfolioAllocation.
		DELETE().
		WHERE(table.PortfolioAllocation.PortfolioID.EQ(postgres.UUID(portfolioID)))
	_, err := deleteQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to clear allocations: %w", err)
	}

	if len(allocations) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range allocations {
		allocations[i].PortfolioID = portfolioID
		allocations[i].Ordinal = int32(i)
		allocations[i].CreatedAt = now
		allocations[i].ModifiedAt = now
	}

	insertQuery := table.PortfolioAllocation.
		INSERT(table.PortfolioAllocation.MutableColumns).
		MODELS(allocations)
	_, err = insertQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert allocations: %w", err)
	}

	return nil
}
