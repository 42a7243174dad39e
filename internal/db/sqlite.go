// internal/db/sqlite.go
package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	DB *sqlx.DB
}

// NewSQLiteDB opens (and creates if missing) the local database file.
// The store is single-writer; one connection keeps sqlite's own locking
// from ever being contended.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(0)&_pragma=busy_timeout(5000)", path)
	sqlDB, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("[DB] Connected to SQLite at", path)
	return &SQLiteDB{DB: sqlDB}, nil
}

func (d *SQLiteDB) Close() {
	if d.DB != nil {
		d.DB.Close()
		log.Println("[DB] SQLite connection closed")
	}
}
