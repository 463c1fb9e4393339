package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/snippetkit/registry"
	"github.com/randalmurphal/snippetkit/snippet"
)

const schema = `
CREATE TABLE IF NOT EXISTS node_templates (
	node_id    TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store reads and writes node-local templates.
type Store struct {
	db     *sql.DB
	owned  bool
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report discarded data. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens the SQLite database at dsn and creates the schema if needed.
// The returned Store owns the database and closes it in Close.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

// New creates a Store on an open database and creates the schema if
// needed. Close does not close db.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	s := &Store{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

// Close releases the database if the Store opened it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// Get returns the templates stored on a node. A node with nothing stored,
// or with data that does not decode, has no templates.
func (s *Store) Get(ctx context.Context, nodeID string) ([]snippet.Definition, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM node_templates WHERE node_id = ?", nodeID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get templates for node %s: %w", nodeID, err)
	}
	return s.decode(ctx, nodeID, data), nil
}

// Put replaces the templates stored on a node.
func (s *Store) Put(ctx context.Context, nodeID string, defs []snippet.Definition) error {
	if nodeID == "" {
		return ErrInvalidNodeID
	}
	data, err := registry.EncodeStored(defs)
	if err != nil {
		return fmt.Errorf("node %s: %w", nodeID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO node_templates (node_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(node_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		nodeID, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("put templates for node %s: %w", nodeID, err)
	}
	return nil
}

// Delete removes the templates stored on a node. Deleting a node with
// nothing stored is not an error.
func (s *Store) Delete(ctx context.Context, nodeID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM node_templates WHERE node_id = ?", nodeID); err != nil {
		return fmt.Errorf("delete templates for node %s: %w", nodeID, err)
	}
	return nil
}

// All returns every node's templates, keyed by node id. Rows that do not
// decode are skipped.
func (s *Store) All(ctx context.Context) (map[string][]snippet.Definition, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT node_id, data FROM node_templates ORDER BY node_id")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	all := make(map[string][]snippet.Definition)
	for rows.Next() {
		var nodeID, data string
		if err := rows.Scan(&nodeID, &data); err != nil {
			return nil, fmt.Errorf("scan templates: %w", err)
		}
		if defs := s.decode(ctx, nodeID, data); len(defs) > 0 {
			all[nodeID] = defs
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return all, nil
}

func (s *Store) decode(ctx context.Context, nodeID, data string) []snippet.Definition {
	defs := registry.DecodeStored(data)
	if defs == nil && data != "" {
		s.logger.WarnContext(ctx, "discarding malformed node templates",
			slog.String("node", nodeID),
			slog.Int("bytes", len(data)))
	}
	return defs
}
