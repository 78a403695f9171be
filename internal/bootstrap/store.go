package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PetCalendar_Go/internal/config"
	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/database/cached"
	"github.com/osse101/PetCalendar_Go/internal/database/filestore"
	"github.com/osse101/PetCalendar_Go/internal/database/memory"
	"github.com/osse101/PetCalendar_Go/internal/database/postgres"
	"github.com/osse101/PetCalendar_Go/internal/database/redisstore"
)

// OpenDocuments connects the raw document backend selected by
// STORE_BACKEND. Postgres is migrated before it is returned.
func OpenDocuments(ctx context.Context, cfg *config.Config) (database.Documents, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memory.New(), nil

	case config.BackendFile:
		docs, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		return docs, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.PoolConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		return postgres.New(pool), nil

	case config.BackendRedis:
		docs, err := redisstore.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		return docs, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}
}

// OpenStore opens the configured backend and wraps it with the read cache
// when CACHE_SIZE is positive. The memory backend is never cached.
func OpenStore(ctx context.Context, cfg *config.Config) (*database.DocumentStore, error) {
	ctx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
	defer cancel()

	docs, err := OpenDocuments(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cacheSize := 0
	if cfg.StoreBackend != config.BackendMemory && cfg.CacheSize > 0 {
		cacheSize = cfg.CacheSize
		docs = cached.New(docs, cacheSize, cfg.CacheTTL)
	}

	slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "cache_size", cacheSize)
	return database.NewDocumentStore(docs), nil
}
