package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mikey/broker-monitor/internal/core"
	"go.uber.org/zap"
)

const createMySQLTable = `
	CREATE TABLE IF NOT EXISTS extractions (
		entry_key       VARCHAR(32) PRIMARY KEY,
		message         TEXT NOT NULL,
		sender          VARCHAR(255) NOT NULL DEFAULT '',
		name            VARCHAR(64) NOT NULL DEFAULT '',
		phone           VARCHAR(32) NOT NULL DEFAULT '',
		salary          TEXT NOT NULL,
		email           TEXT NOT NULL,
		extracted_count INT NOT NULL,
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// MySQLStore is a MySQL implementation of the ExtractionStore interface
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore connects to MySQL and creates the schema if needed
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	return newMySQLStore(db, logger)
}

// newMySQLStore finishes setup on an already opened handle
func newMySQLStore(db *sql.DB, logger *zap.Logger) (*MySQLStore, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	if _, err := db.Exec(createMySQLTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{db: db, logger: logger}, nil
}

// Save stores an entry under key
func (s *MySQLStore) Save(ctx context.Context, key string, entry core.StoreEntry) error {
	return insertEntry(ctx, s.db, key, entry)
}

// All returns every stored entry
func (s *MySQLStore) All(ctx context.Context) (map[string]core.StoreEntry, error) {
	return selectEntries(ctx, s.db)
}

// Stop closes the database connection
func (s *MySQLStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
