package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig describes the postgres pool behind the document store.
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// NewPoolConfig fills the idle and lifetime limits with the store defaults.
func NewPoolConfig(connString string, maxConns int) PoolConfig {
	return PoolConfig{
		ConnString:  connString,
		MaxConns:    maxConns,
		MaxIdleTime: DefaultMaxIdleTime,
		MaxLifetime: DefaultMaxLifetime,
	}
}

func (c PoolConfig) pgxConfig() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(c.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(max(c.MaxConns, DefaultMinConnections), math.MaxInt32)
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	if c.MaxIdleTime > 0 {
		config.MaxConnIdleTime = c.MaxIdleTime
	}
	if c.MaxLifetime > 0 {
		config.MaxConnLifetime = c.MaxLifetime
	}
	return config, nil
}

// NewPool connects to postgres and verifies the connection before returning.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := cfg.pgxConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)
	return pool, nil
}
