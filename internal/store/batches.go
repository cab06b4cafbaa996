package store

import (
	"context"

	"github.com/gurukul-app/backend/internal/models"
)

// BatchInput describes a batch to create or the new values for an update.
type BatchInput struct {
	Name   string `json:"name" validate:"required"`
	Class  string `json:"class"`
	Timing string `json:"timing"`
}

// CreateBatch adds a new batch to the catalog.
func (s *Store) CreateBatch(ctx context.Context, in BatchInput) (*models.Batch, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	var created models.Batch
	err := s.apply(ctx, "create_batch", func(doc models.Document) (models.Document, error) {
		created = models.Batch{
			ID:        s.newID(),
			Name:      in.Name,
			Class:     in.Class,
			Timing:    in.Timing,
			CreatedAt: s.now().Unix(),
		}
		doc.Batches = append(doc.Batches, created)
		return doc, nil
	})
	if err != nil && created.ID == "" {
		return nil, err
	}
	return &created, err
}

// UpdateBatch replaces a batch's name, class and timing. Unknown ids are a
// silent no-op.
func (s *Store) UpdateBatch(ctx context.Context, batchID string, in BatchInput) error {
	if err := s.checkInput(in); err != nil {
		return err
	}
	return s.apply(ctx, "update_batch", func(doc models.Document) (models.Document, error) {
		if b := doc.FindBatch(batchID); b != nil {
			b.Name = in.Name
			b.Class = in.Class
			b.Timing = in.Timing
		}
		return doc, nil
	})
}

// DeleteBatch removes a batch from the catalog. Users, homework and
// attendance pointing at it are left untouched; projections render the
// missing batch as "unknown".
func (s *Store) DeleteBatch(ctx context.Context, batchID string) error {
	return s.apply(ctx, "delete_batch", func(doc models.Document) (models.Document, error) {
		kept := doc.Batches[:0:0]
		for _, b := range doc.Batches {
			if b.ID != batchID {
				kept = append(kept, b)
			}
		}
		doc.Batches = kept
		return doc, nil
	})
}
