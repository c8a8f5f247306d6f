package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mikey/broker-monitor/internal/core"
)

const insertEntrySQL = `
	INSERT INTO extractions (entry_key, message, sender, name, phone, salary, email, extracted_count)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const selectEntriesSQL = `
	SELECT entry_key, message, sender, name, phone, salary, email, extracted_count
	FROM extractions
`

// insertEntry writes one row; sqlite and mysql share the statement
func insertEntry(ctx context.Context, db *sql.DB, key string, entry core.StoreEntry) error {
	t := entry.Data.Tenant
	_, err := db.ExecContext(ctx, insertEntrySQL,
		key, entry.Message, entry.Sender, t.Name, t.Phone, t.Salary, t.Email, entry.Data.ExtractedCount)
	if err != nil {
		return fmt.Errorf("failed to insert extraction: %w", err)
	}
	return nil
}

// selectEntries reads every row back into the map shape the service returns
func selectEntries(ctx context.Context, db *sql.DB) (map[string]core.StoreEntry, error) {
	rows, err := db.QueryContext(ctx, selectEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query extractions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]core.StoreEntry)
	for rows.Next() {
		var (
			key   string
			entry core.StoreEntry
			t     core.Tenant
		)
		if err := rows.Scan(&key, &entry.Message, &entry.Sender, &t.Name, &t.Phone, &t.Salary, &t.Email, &entry.Data.ExtractedCount); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		entry.Data.Tenant = t
		out[key] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extractions: %w", err)
	}

	return out, nil
}
