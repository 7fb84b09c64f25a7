package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the default durable ProfileStore, one file per deployment.
// A single INSERT OR REPLACE gives the atomic last-write-wins semantics the
// cache contract requires; readers never observe a torn row.
type SQLiteStore struct {
	db *sql.DB
	// maxAge treats rows older than this as absent on Load.
	// Zero means cached profile sets never expire.
	maxAge time.Duration
}

// OpenSQLiteStore opens (or creates) the cache database at path.
func OpenSQLiteStore(path string, maxAge time.Duration) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store: path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("sqlite store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initCacheSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: init schema: %w", err)
	}
	return &SQLiteStore{db: db, maxAge: maxAge}, nil
}

func initCacheSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS career_patterns (
		company    TEXT NOT NULL,
		role       TEXT NOT NULL,
		data       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (company, role)
	)`)
	return err
}

// Load returns the profile set stored for the literal (company, role) key.
func (s *SQLiteStore) Load(ctx context.Context, company, role string) ([]SuccessProfile, bool, error) {
	var data string
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT data, created_at FROM career_patterns WHERE company = ? AND role = ?`,
		company, role,
	).Scan(&data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlite store: load: %w", err)
	}

	if stale(createdAt, s.maxAge) {
		return nil, false, nil
	}

	var profiles []SuccessProfile
	if err := json.Unmarshal([]byte(data), &profiles); err != nil {
		return nil, false, fmt.Errorf("sqlite store: decode row: %w", err)
	}
	return profiles, true, nil
}

// Save stores/overwrites the profile set for the key with a fresh timestamp.
func (s *SQLiteStore) Save(ctx context.Context, company, role string, profiles []SuccessProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("sqlite store: encode profiles: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO career_patterns (company, role, data, created_at)
		 VALUES (?, ?, ?, ?)`,
		company, role, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("sqlite store: save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// stale reports whether a row created at createdAt has outlived maxAge.
// Unparseable timestamps count as stale so a corrupt row is re-acquired
// rather than served forever.
func stale(createdAt string, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return true
	}
	return time.Since(t) > maxAge
}
