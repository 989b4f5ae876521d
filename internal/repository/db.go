package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DBConfig holds database connection pool configuration.
type DBConfig struct {
	MaxOpenConns    int32
	MaxIdleConns    int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultDBConfig returns sensible default database configuration. The
// importer is a short-lived batch process, so the pool stays small.
func DefaultDBConfig() *DBConfig {
	return &DBConfig{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// NewPool creates a new PostgreSQL connection pool with the provided
// configuration. It verifies connectivity by pinging the database.
func NewPool(ctx context.Context, connString string, config *DBConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	if config == nil {
		config = DefaultDBConfig()
	}

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = config.MaxOpenConns
	poolConfig.MinConns = config.MaxIdleConns
	poolConfig.MaxConnLifetime = config.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = config.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Int32("max_connections", config.MaxOpenConns).
		Msg("database connection pool created")

	return pool, nil
}
