// Package sqlitestore implements session.Store on a local SQLite file using
// the pure-Go modernc.org/sqlite driver.
package sqlitestore

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

	"github.com/katalvlaran/circuitlab/session"
)

// Store implements session.Store on SQLite.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlitestore: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("sqlitestore: %s: %w", p, err)
		}
	}

	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		circuit TEXT NOT NULL,
		state_json TEXT NOT NULL,
		version INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("sqlitestore: schema: %w", err)
	}

	return nil
}

// Save upserts the session row.
func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	state, err := json.Marshal(sess.State)
	if err != nil {
		return fmt.Errorf("sqlitestore: marshal %s: %w", sess.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, circuit, state_json, version, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   circuit = excluded.circuit,
		   state_json = excluded.state_json,
		   version = excluded.version,
		   updated_at = excluded.updated_at`,
		sess.ID, sess.Circuit, string(state), sess.Version, sess.Updated.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlitestore: save %s: %w", sess.ID, err)
	}

	return nil
}

// Load returns session.ErrNotFound when no row matches.
func (s *Store) Load(ctx context.Context, id string) (*session.Session, error) {
	var (
		sess    = session.Session{ID: id}
		state   string
		updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT circuit, state_json, version, updated_at FROM sessions WHERE id = ?`, id,
	).Scan(&sess.Circuit, &state, &sess.Version, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: load %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(state), &sess.State); err != nil {
		return nil, fmt.Errorf("sqlitestore: state %s: %w", id, err)
	}
	if sess.Updated, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("sqlitestore: updated_at %s: %w", id, err)
	}

	return &sess, nil
}

// Delete removes the row, if any.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlitestore: delete %s: %w", id, err)
	}

	return nil
}

// List returns the session IDs sorted ascending.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: list: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlitestore: list: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ session.Store = (*Store)(nil)
