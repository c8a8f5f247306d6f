package core

import (
	"context"
)

// ExtractionStore defines the interface for persisting extracted tenant data.
// Stores are append-only: entries are never updated or deleted.
type ExtractionStore interface {
	// Save stores an entry under the given timestamp key
	Save(ctx context.Context, key string, entry StoreEntry) error

	// All returns every stored entry keyed by timestamp
	All(ctx context.Context) (map[string]StoreEntry, error)
}

// GenerativeStatus reports whether the optional text-generation integration is usable
type GenerativeStatus interface {
	Available() bool
}
