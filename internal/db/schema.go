package db

import (
	"fmt"

	_ "embed"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/000001_init.up.sql
var schema string

// NewMemoryDB opens a throwaway in-memory database with the current
// schema applied. Used by tests; production goes through RunMigrations.
func NewMemoryDB() (*sqlx.DB, error) {
	sqlDB, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return sqlDB, nil
}
