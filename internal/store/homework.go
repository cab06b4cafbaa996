package store

import (
	"context"

	"github.com/gurukul-app/backend/internal/models"
)

// HomeworkInput describes an assignment to post.
type HomeworkInput struct {
	BatchID string `json:"batchId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	// ImageRef is an optional already-encoded image blob; the store treats
	// it as opaque.
	ImageRef string `json:"imageRef"`
}

// PostHomework prepends a new assignment for a batch. The homework list is
// kept most-recent-first in storage, so insertion position matters.
func (s *Store) PostHomework(ctx context.Context, in HomeworkInput) (*models.Homework, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	var created models.Homework
	err := s.apply(ctx, "post_homework", func(doc models.Document) (models.Document, error) {
		now := s.now()
		created = models.Homework{
			ID:        s.newID(),
			BatchID:   in.BatchID,
			Title:     in.Title,
			Content:   in.Content,
			ImageRef:  in.ImageRef,
			Date:      now.Format("2 Jan 2006"),
			CreatedAt: now.Unix(),
		}
		doc.Homework = append([]models.Homework{created}, doc.Homework...)
		return doc, nil
	})
	if err != nil && created.ID == "" {
		return nil, err
	}
	return &created, err
}

// DeleteHomework removes an assignment. Completions referencing it are left
// behind; dangling completions are tolerated like every other dangling
// reference.
func (s *Store) DeleteHomework(ctx context.Context, homeworkID string) error {
	return s.apply(ctx, "delete_homework", func(doc models.Document) (models.Document, error) {
		kept := doc.Homework[:0:0]
		for _, h := range doc.Homework {
			if h.ID != homeworkID {
				kept = append(kept, h)
			}
		}
		doc.Homework = kept
		return doc, nil
	})
}

// ConfirmCompletion marks an assignment done for a student. The check and the
// insert run as one unit inside the transform, so a second confirmation is a
// no-op that keeps the first timestamp.
func (s *Store) ConfirmCompletion(ctx context.Context, homeworkID, userID string) error {
	return s.apply(ctx, "confirm_completion", func(doc models.Document) (models.Document, error) {
		for _, c := range doc.HomeworkCompletions {
			if c.HomeworkID == homeworkID && c.UserID == userID {
				return doc, nil
			}
		}
		doc.HomeworkCompletions = append(doc.HomeworkCompletions, models.HomeworkCompletion{
			HomeworkID:  homeworkID,
			UserID:      userID,
			CompletedAt: s.now().Unix(),
		})
		return doc, nil
	})
}
