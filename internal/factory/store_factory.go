package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/broker-monitor/internal/adapters/store"
	"github.com/mikey/broker-monitor/internal/config"
	"github.com/mikey/broker-monitor/internal/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StoreFactory creates extraction stores based on configuration
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateExtractionStore creates an extraction store based on the configuration
func (f *StoreFactory) CreateExtractionStore() (core.ExtractionStore, error) {
	storeCfg := f.cfg.GetStore()

	switch storeCfg.Type {
	case "memory", "":
		return store.NewMemoryStore(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(storeCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return store.NewSQLiteStore(storeCfg.SQLitePath, f.logger)
	case "mysql":
		return store.NewMySQLStore(storeCfg.MySQLDSN, f.logger)
	case "redis":
		opts := &redis.Options{
			Addr:     storeCfg.Redis.Address,
			Password: storeCfg.Redis.Password,
			DB:       storeCfg.Redis.DB,
		}
		return store.NewRedisStore(context.Background(), opts, storeCfg.Redis.Key, f.logger)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeCfg.Type)
	}
}
