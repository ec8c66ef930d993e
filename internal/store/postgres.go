package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// PostgresStore keeps the snapshot as one row keyed by SnapshotKey.
// The upsert is a single statement, so readers see either the old or the new row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects and makes sure the snapshot table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS shared_snapshots (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create shared_snapshots: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Save upserts the snapshot. Failures are logged and dropped.
func (s *PostgresStore) Save(ctx context.Context, snapshot weather.DailySuggestions) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("WARN: postgres store: encode snapshot: %v", err)
		return
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO shared_snapshots (key, payload, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET payload = $2, updated_at = NOW()`,
		SnapshotKey, payload,
	)
	if err != nil {
		log.Printf("WARN: postgres store: save snapshot: %v", err)
	}
}

// Load returns the stored snapshot; any failure means nothing stored.
func (s *PostgresStore) Load(ctx context.Context) (weather.DailySuggestions, bool) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM shared_snapshots WHERE key = $1`,
		SnapshotKey,
	).Scan(&payload)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("WARN: postgres store: load snapshot: %v", err)
		}
		return weather.DailySuggestions{}, false
	}
	return decodeSnapshot(payload)
}
