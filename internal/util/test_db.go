package util

import (
	"database/sql"
	"fmt"
	"os"
)

// NewTestDb connects to the local test database. Tests that need it should
// skip when the connection fails.
func NewTestDb() (*sql.DB, error) {
	connStr := os.Getenv("TEST_DB_CONN")
	if connStr == "" {
		connStr = "user=postgres password=postgres host=localhost port=5432 dbname=stablefolio_test sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open test db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach test db: %w", err)
	}

	return db, nil
}
