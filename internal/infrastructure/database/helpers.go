package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close drains the pool and releases its connections. Safe to call more
// than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// PoolStats is a snapshot of the connection pool, for monitoring.
type PoolStats struct {
	AcquiredConns   int32
	IdleConns       int32
	TotalConns      int32
	MaxConns        int32
	AcquireCount    int64
	AcquireDuration time.Duration
	NewConnsCount   int64
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:   raw.AcquiredConns(),
		IdleConns:       raw.IdleConns(),
		TotalConns:      raw.TotalConns(),
		MaxConns:        raw.MaxConns(),
		AcquireCount:    raw.AcquireCount(),
		AcquireDuration: raw.AcquireDuration(),
		NewConnsCount:   raw.NewConnsCount(),
	}, nil
}
