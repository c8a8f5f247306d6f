package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/broker-monitor/internal/core"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the ExtractionStore interface
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens the database at dbPath and creates the schema if needed
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS extractions (
			entry_key       TEXT PRIMARY KEY,
			message         TEXT NOT NULL,
			sender          TEXT NOT NULL DEFAULT '',
			name            TEXT NOT NULL DEFAULT '',
			phone           TEXT NOT NULL DEFAULT '',
			salary          TEXT NOT NULL DEFAULT '',
			email           TEXT NOT NULL DEFAULT '',
			extracted_count INTEGER NOT NULL CHECK (extracted_count > 0),
			created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	logger.Info("SQLite extraction store ready", zap.String("path", dbPath))

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save stores an entry under key
func (s *SQLiteStore) Save(ctx context.Context, key string, entry core.StoreEntry) error {
	return insertEntry(ctx, s.db, key, entry)
}

// All returns every stored entry
func (s *SQLiteStore) All(ctx context.Context) (map[string]core.StoreEntry, error) {
	return selectEntries(ctx, s.db)
}

// Stop closes the database connection
func (s *SQLiteStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
