package store

import (
	"context"

	"github.com/gurukul-app/backend/internal/models"
)

// UpdatePaymentSettings replaces the payment details singleton in place.
func (s *Store) UpdatePaymentSettings(ctx context.Context, settings models.PaymentSettings) error {
	return s.apply(ctx, "update_payment_settings", func(doc models.Document) (models.Document, error) {
		doc.PaymentSettings = settings
		return doc, nil
	})
}

// AnnouncementInput describes a notice to post to a batch.
type AnnouncementInput struct {
	BatchID string `json:"batchId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// PostAnnouncement adds a batch-wide notice.
func (s *Store) PostAnnouncement(ctx context.Context, in AnnouncementInput) (*models.Announcement, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	var created models.Announcement
	err := s.apply(ctx, "post_announcement", func(doc models.Document) (models.Document, error) {
		created = models.Announcement{
			ID:      s.newID(),
			BatchID: in.BatchID,
			Title:   in.Title,
			Content: in.Content,
			Date:    s.now().Format("2 Jan 2006"),
		}
		doc.Announcements = append([]models.Announcement{created}, doc.Announcements...)
		return doc, nil
	})
	if err != nil && created.ID == "" {
		return nil, err
	}
	return &created, err
}

// DeleteAnnouncement removes a notice.
func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.apply(ctx, "delete_announcement", func(doc models.Document) (models.Document, error) {
		kept := doc.Announcements[:0:0]
		for _, a := range doc.Announcements {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		doc.Announcements = kept
		return doc, nil
	})
}
