package store

import (
	"context"
	"fmt"

	"github.com/gurukul-app/backend/internal/models"
)

// GenerateBills creates one UNPAID demand bill per given user id for the
// month/year period, snapshotting each user's current monthly fee into the
// bill amount. Later fee changes never touch generated bills. Bills are
// appended as-is: existing bills for the same user and period are neither
// merged nor replaced, so the caller filters recipients beforehand. A user id
// that no longer resolves still gets a bill with amount zero, mirroring the
// product behaviour.
func (s *Store) GenerateBills(ctx context.Context, userIDs []string, month, year string) error {
	if month == "" || year == "" {
		return fmt.Errorf("%w: month and year are required", ErrValidation)
	}

	return s.apply(ctx, "generate_bills", func(doc models.Document) (models.Document, error) {
		for _, uid := range userIDs {
			amount := 0.0
			if u := doc.FindUser(uid); u != nil {
				amount = u.MonthlyFee
			}
			doc.Bills = append(doc.Bills, models.DemandBill{
				ID:        s.newID(),
				UserID:    uid,
				Month:     month,
				Year:      year,
				Amount:    amount,
				DueDate:   fmt.Sprintf("%d %s %s", billDueDay, month, year),
				Status:    models.BillUnpaid,
				CreatedAt: s.now().Unix(),
			})
		}
		return doc, nil
	})
}

// ToggleBillStatus flips a bill between PAID and UNPAID. No other status is
// reachable. Unknown ids are a silent no-op.
func (s *Store) ToggleBillStatus(ctx context.Context, billID string) error {
	return s.apply(ctx, "toggle_bill_status", func(doc models.Document) (models.Document, error) {
		for i := range doc.Bills {
			if doc.Bills[i].ID == billID {
				if doc.Bills[i].Status == models.BillPaid {
					doc.Bills[i].Status = models.BillUnpaid
				} else {
					doc.Bills[i].Status = models.BillPaid
				}
				break
			}
		}
		return doc, nil
	})
}

// DeleteBill removes a bill unconditionally.
func (s *Store) DeleteBill(ctx context.Context, billID string) error {
	return s.apply(ctx, "delete_bill", func(doc models.Document) (models.Document, error) {
		kept := doc.Bills[:0:0]
		for _, b := range doc.Bills {
			if b.ID != billID {
				kept = append(kept, b)
			}
		}
		doc.Bills = kept
		return doc, nil
	})
}
