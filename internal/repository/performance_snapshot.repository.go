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

type PerformanceSnapshotRepository interface {
	Add(tx *sql.Tx, snapshot model.PerformanceSnapshot) (*model.PerformanceSnapshot, error)
	List(portfolioID uuid.UUID) ([]model.PerformanceSnapshot, error)
	// EvictOldest drops everything but the newest keep rows (FIFO cap).
	EvictOldest(tx *sql.Tx, portfolioID uuid.UUID, keep int) error
}

type performanceSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewPerformanceSnapshotRepository(db *sql.DB) PerformanceSnapshotRepository {
	return performanceSnapshotRepositoryHandler{Db: db}
}

func (h performanceSnapshotRepositoryHandler) Add(tx *sql.Tx, snapshot model.PerformanceSnapshot) (*model.PerformanceSnapshot, error) {
	snapshot.CreatedAt = time.Now().UTC()
	query := table.PerformanceSnapshot.
		INSERT(table.PerformanceSnapshot.MutableColumns).
		MODEL(snapshot).
		RETURNING(table.PerformanceSnapshot.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PerformanceSnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert performance snapshot: %w", err)
	}

	return &out, nil
}

func (h performanceSnapshotRepositoryHandler) List(portfolioID uuid.UUID) ([]model.PerformanceSnapshot, error) {
	query := table.PerformanceSnapshot.
		SELECT(table.PerformanceSnapshot.AllColumns).
		WHERE(table.PerformanceSnapshot.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.PerformanceSnapshot.SnapshotAt.ASC())

	result := []model.PerformanceSnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance snapshots: %w", err)
	}

	return result, nil
}

func (h performanceSnapshotRepositoryHandler) EvictOldest(tx *sql.Tx, portfolioID uuid.UUID, keep int) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	newest := table.PerformanceSnapshot.
		SELECT(table.PerformanceSnapshot.PerformanceSnapshotID).
		WHERE(table.PerformanceSnapshot.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.PerformanceSnapshot.SnapshotAt.DESC()).
		LIMIT(int64(keep))

	query := table.PerformanceSnapshot.
		DELETE().
		WHERE(
			table.PerformanceSnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(table.PerformanceSnapshot.PerformanceSnapshotID.NOT_IN(newest)),
		)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to evict performance snapshots: %w", err)
	}

	return nil
}
