// Package sqlite persists the state document as a single JSON blob in a
// SQLite key-value slot, implementing the storage.Persister interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/gurukul-app/backend/internal/metrics"
	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/storage"
)

// Ensure DocumentStore implements storage.Persister
var _ storage.Persister = (*DocumentStore)(nil)

// DocumentStore implements storage.Persister on a single-table SQLite slot.
// The whole document is one row keyed by models.SchemaKey; bumping the key
// abandons old state, which is how the schema is versioned.
type DocumentStore struct {
	db  *sql.DB
	key string
}

// New creates a DocumentStore backed by the given database path. Parent
// directories are created and the slot table is migrated automatically.
func New(dbPath string) (*DocumentStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DocumentStore{db: db, key: models.SchemaKey}, nil
}

// Close closes the database connection.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

// Load reads and decodes the document from the slot. An empty slot and a
// corrupt blob both come back as storage.ErrNotFound: corruption is
// recoverable by reseeding, never fatal.
func (s *DocumentStore) Load(ctx context.Context) (*models.Document, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM app_state WHERE key = ?", s.key,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document slot: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		slog.Warn("stored document is corrupt, treating as absent",
			"key", s.key,
			"error", err,
		)
		return nil, storage.ErrNotFound
	}

	return &doc, nil
}

// Save encodes the document and upserts it into the slot in one transaction,
// so readers never observe a partial write.
func (s *DocumentStore) Save(ctx context.Context, doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO app_state (key, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		s.key, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write document slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.DocumentBytes.Set(float64(len(body)))
	return nil
}
