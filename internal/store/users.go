package store

import (
	"context"
	"math"

	"github.com/gurukul-app/backend/internal/models"
)

// ChangeBatch moves a student to another batch. Existing attendance keeps its
// denormalized batch id; history is not rewritten. Unknown user ids are a
// silent no-op.
func (s *Store) ChangeBatch(ctx context.Context, userID, batchID string) error {
	return s.apply(ctx, "change_batch", func(doc models.Document) (models.Document, error) {
		if u := doc.FindUser(userID); u != nil {
			u.BatchID = batchID
		}
		return doc, nil
	})
}

// SetMonthlyFee updates a student's fee. Negative or non-numeric input is
// coerced to zero rather than rejected; this is the documented tolerant-input
// policy for the field. Existing bills keep their snapshot amounts.
func (s *Store) SetMonthlyFee(ctx context.Context, userID string, fee float64) error {
	if fee < 0 || math.IsNaN(fee) || math.IsInf(fee, 0) {
		fee = 0
	}
	return s.apply(ctx, "set_monthly_fee", func(doc models.Document) (models.Document, error) {
		if u := doc.FindUser(userID); u != nil {
			u.MonthlyFee = fee
		}
		return doc, nil
	})
}
