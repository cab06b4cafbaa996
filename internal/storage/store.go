// Package storage provides abstractions for persisting the state document.
package storage

import (
	"context"
	"errors"

	"github.com/gurukul-app/backend/internal/models"
)

// ErrNotFound is returned by Load when the storage slot holds no document.
// A corrupt (non-deserializable) document is reported the same way: both are
// recoverable by seeding the default document.
var ErrNotFound = errors.New("no stored document")

// Persister stores and retrieves the whole state document under a fixed
// versioned key. This abstraction allows swapping the backing slot (SQLite
// file, plain file, remote KV) without changing the store layer.
type Persister interface {
	// Load retrieves the current document. Returns ErrNotFound when the slot
	// is empty or its contents cannot be decoded.
	Load(ctx context.Context) (*models.Document, error)

	// Save atomically replaces the stored document. Callers never observe a
	// partially written document.
	Save(ctx context.Context, doc *models.Document) error

	// Close releases any resources held by the persister.
	Close() error
}
