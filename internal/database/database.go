// Package database manages the optional Postgres pool. The generation
// pipeline itself is stateless; the pool exists for deployments that point
// DATABASE_URL at a profile store, and the health endpoint reports its pool
// statistics either way.
package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Service reports the health of the database connection.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health(ctx context.Context) map[string]string

	// Close terminates the database connection.
	Close()
}

type service struct {
	pool *pgxpool.Pool
}

// New opens a connection pool for url. An empty url is not an error: the
// returned service reports "not configured" and every other method is a
// no-op, so the server runs fine without a database.
func New(ctx context.Context, url string) (Service, error) {
	if url == "" {
		log.Warn().Msg("DATABASE_URL not set, running without a database")
		return &service{}, nil
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &service{pool: pool}, nil
}

// Health checks the health of the database connection.
func (s *service) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)
	if s.pool == nil {
		stats["status"] = "not configured"
		return stats
	}

	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("database ping failed")
		return stats
	}

	poolStats := s.pool.Stat()
	stats["status"] = "up"
	stats["total_conns"] = strconv.Itoa(int(poolStats.TotalConns()))
	stats["idle_conns"] = strconv.Itoa(int(poolStats.IdleConns()))
	stats["acquired_conns"] = strconv.Itoa(int(poolStats.AcquiredConns()))
	stats["max_conns"] = strconv.Itoa(int(poolStats.MaxConns()))
	stats["acquire_count"] = strconv.FormatInt(poolStats.AcquireCount(), 10)
	stats["acquire_duration_ms"] = strconv.FormatInt(poolStats.AcquireDuration().Milliseconds(), 10)
	stats["empty_acquire_count"] = strconv.FormatInt(poolStats.EmptyAcquireCount(), 10)
	stats["canceled_acquire_count"] = strconv.FormatInt(poolStats.CanceledAcquireCount(), 10)

	if poolStats.AcquiredConns() > (poolStats.MaxConns() * 8 / 10) { // 80% capacity
		stats["message"] = "The database connection pool is experiencing heavy load."
	}
	if poolStats.EmptyAcquireCount() > 0 {
		stats["message"] = "The application has tried to acquire a connection from an empty pool. Consider increasing max connections."
	}

	return stats
}

// Close closes the database connection.
func (s *service) Close() {
	if s.pool == nil {
		return
	}
	log.Info().Msg("disconnected from database")
	s.pool.Close()
}
