package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gurukul-app/backend/internal/models"
)

// dateLayout is the calendar-day format used on attendance records.
const dateLayout = "2006-01-02"

// MarkAttendance records a student's status for one calendar day, replacing
// any prior record for the same (user, date) pair: calling it twice with the
// same arguments yields one record, not two. The record denormalizes the
// user's current batch; a vanished user marks with an empty batch id.
//
// The date is not checked against the future or the user's batch membership;
// the consumer restricts which students are offered for a session.
func (s *Store) MarkAttendance(ctx context.Context, userID string, status models.AttendanceStatus, date string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown attendance status %q", ErrValidation, status)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrValidation, err)
	}

	return s.apply(ctx, "mark_attendance", func(doc models.Document) (models.Document, error) {
		batchID := ""
		if u := doc.FindUser(userID); u != nil {
			batchID = u.BatchID
		}

		kept := doc.Attendance[:0:0]
		for _, r := range doc.Attendance {
			if !(r.UserID == userID && r.Date == date) {
				kept = append(kept, r)
			}
		}
		kept = append(kept, models.AttendanceRecord{
			ID:        s.newID(),
			UserID:    userID,
			BatchID:   batchID,
			Date:      date,
			Status:    status,
			UpdatedAt: s.now().Unix(),
		})
		doc.Attendance = kept
		return doc, nil
	})
}
