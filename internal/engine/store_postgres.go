package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the shared-deployment ProfileStore, selected when
// DATABASE_URL is configured. ON CONFLICT DO UPDATE in a single statement
// gives the same atomic last-write-wins semantics as the SQLite store.
type PostgresStore struct {
	pool   *pgxpool.Pool
	maxAge time.Duration
}

// ConnectPostgresStore creates a pgx pool and ensures the cache schema.
func ConnectPostgresStore(ctx context.Context, databaseURL string, maxAge time.Duration) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("postgres store: DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres store: parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("postgres store: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres store: ping: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS career_patterns (
		company    TEXT NOT NULL,
		role       TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (company, role)
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres store: init schema: %w", err)
	}

	slog.Info("cache: postgres store connected", slog.String("addr", config.ConnConfig.Host))
	return &PostgresStore{pool: pool, maxAge: maxAge}, nil
}

// Load returns the profile set stored for the literal (company, role) key.
func (s *PostgresStore) Load(ctx context.Context, company, role string) ([]SuccessProfile, bool, error) {
	var data []byte
	var createdAt time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT data, created_at FROM career_patterns WHERE company = $1 AND role = $2`,
		company, role,
	).Scan(&data, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("postgres store: load: %w", err)
	}

	if s.maxAge > 0 && time.Since(createdAt) > s.maxAge {
		return nil, false, nil
	}

	var profiles []SuccessProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, false, fmt.Errorf("postgres store: decode row: %w", err)
	}
	return profiles, true, nil
}

// Save stores/overwrites the profile set for the key with a fresh timestamp.
func (s *PostgresStore) Save(ctx context.Context, company, role string, profiles []SuccessProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("postgres store: encode profiles: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO career_patterns (company, role, data, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (company, role) DO UPDATE
		 SET data = EXCLUDED.data, created_at = EXCLUDED.created_at`,
		company, role, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("postgres store: save: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
