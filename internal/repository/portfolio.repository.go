package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/db/models/postgres/public/table"
	"stablefolio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PortfolioRepository interface {
	Add(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error)
	Get(owner string) (*model.Portfolio, error)
	// GetForUpdate locks the row for the duration of the transaction so
	// operations against the same record are totally ordered.
	GetForUpdate(tx *sql.Tx, owner string) (*model.Portfolio, error)
	Update(tx *sql.Tx, portfolio model.Portfolio, columns postgres.ColumnList) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error) {
	portfolio.CreatedAt = time.Now().UTC()
	portfolio.ModifiedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.AllColumns).
		MODEL(portfolio).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Get(owner string) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.Owner.EQ(postgres.String(owner)))

	result := model.Portfolio{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrPortfolioNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) GetForUpdate(tx *sql.Tx, owner string) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.Owner.EQ(postgres.String(owner))).
		FOR(postgres.UPDATE())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.Portfolio{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrPortfolioNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to lock portfolio: %w", err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) Update(tx *sql.Tx, portfolio model.Portfolio, columns postgres.ColumnList) (*model.Portfolio, error) {
	portfolio.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.Portfolio.ModifiedAt)
	query := table.Portfolio.
		UPDATE(columns).
		WHERE(
			table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolio.PortfolioID)),
		).
		MODEL(portfolio).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}

	return &out, nil
}
