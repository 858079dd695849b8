package repository

import (
	"database/sql"
	"fmt"
	"time"

	"stablefolio/internal/db/models/postgres/public/model"
	"stablefolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SwapQuoteRepository interface {
	Add(tx *sql.Tx, quote model.SwapQuote) (*model.SwapQuote, error)
	List(owner string) ([]model.SwapQuote, error)
}

type swapQuoteRepositoryHandler struct {
	Db *sql.DB
}

func NewSwapQuoteRepository(db *sql.DB) SwapQuoteRepository {
	return swapQuoteRepositoryHandler{Db: db}
}

func (h swapQuoteRepositoryHandler) Add(tx *sql.Tx, quote model.SwapQuote) (*model.SwapQuote, error) {
	quote.CreatedAt = time.Now().UTC()
	query := table.SwapQuote.
		INSERT(table.SwapQuote.MutableColumns).
		MODEL(quote).
		RETURNING(table.SwapQuote.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.SwapQuote{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert swap quote: %w", err)
	}

	return &out, nil
}

func (h swapQuoteRepositoryHandler) List(owner string) ([]model.SwapQuote, error) {
	query := table.SwapQuote.
		SELECT(table.SwapQuote.AllColumns).
		WHERE(table.SwapQuote.Owner.EQ(postgres.String(owner))).
		ORDER_BY(table.SwapQuote.CreatedAt.ASC())

	result := []model.SwapQuote{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list swap quotes: %w", err)
	}

	return result, nil
}
