package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mikey/broker-monitor/internal/core"
	"go.uber.org/zap"
)

// ErrDuplicateKey is returned when an entry already exists under the key being saved
var ErrDuplicateKey = errors.New("extraction key already stored")

// MemoryStore is an in-memory implementation of the ExtractionStore interface.
// Entries live for the lifetime of the process.
type MemoryStore struct {
	entries map[string]core.StoreEntry
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]core.StoreEntry),
		logger:  logger,
	}
}

// Save stores an entry under key
func (s *MemoryStore) Save(_ context.Context, key string, entry core.StoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		return ErrDuplicateKey
	}
	s.entries[key] = entry

	s.logger.Debug("Stored extraction", zap.String("key", key), zap.Int("entries", len(s.entries)))
	return nil
}

// All returns a copy of every stored entry
func (s *MemoryStore) All(_ context.Context) (map[string]core.StoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]core.StoreEntry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out, nil
}
