// Package memory is an in-memory storage.Persister, used by tests and
// ephemeral runs where durability does not matter.
package memory

import (
	"context"
	"sync"

	"github.com/gurukul-app/backend/internal/models"
	"github.com/gurukul-app/backend/internal/storage"
)

var _ storage.Persister = (*Persister)(nil)

// Persister keeps the document in process memory.
type Persister struct {
	mu  sync.Mutex
	doc *models.Document
}

// New creates an empty in-memory persister.
func New() *Persister {
	return &Persister{}
}

// Load returns the stored document, or storage.ErrNotFound if nothing has
// been saved yet.
func (p *Persister) Load(ctx context.Context) (*models.Document, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return nil, storage.ErrNotFound
	}
	doc := p.doc.Clone()
	return &doc, nil
}

// Save stores a deep copy of the document.
func (p *Persister) Save(ctx context.Context, doc *models.Document) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := doc.Clone()
	p.doc = &c
	return nil
}

// Close is a no-op.
func (p *Persister) Close() error { return nil }
