// Package projection computes read-only derived views from a document
// snapshot. Nothing in this package mutates state; every function takes the
// document by value and returns fresh slices.
package projection

import (
	"sort"

	"github.com/gurukul-app/backend/internal/models"
)

// UnknownBatchName is rendered for references to a deleted batch.
const UnknownBatchName = "unknown"

// PendingUsers returns the admission queue: everyone still waiting for a
// decision.
func PendingUsers(doc models.Document) []models.User {
	var out []models.User
	for _, u := range doc.Users {
		if u.Status == models.StatusPending {
			out = append(out, u)
		}
	}
	return out
}

// ActiveStudents returns all approved students.
func ActiveStudents(doc models.Document) []models.User {
	var out []models.User
	for _, u := range doc.Users {
		if u.Status == models.StatusApproved && u.Role == models.RoleStudent {
			out = append(out, u)
		}
	}
	return out
}

// Teachers returns all teacher records.
func Teachers(doc models.Document) []models.User {
	var out []models.User
	for _, u := range doc.Users {
		if u.Role == models.RoleTeacher {
			out = append(out, u)
		}
	}
	return out
}

// Roster returns approved students filtered by batch. An empty batch id
// returns the full roster.
func Roster(doc models.Document, batchID string) []models.User {
	var out []models.User
	for _, u := range ActiveStudents(doc) {
		if batchID == "" || u.BatchID == batchID {
			out = append(out, u)
		}
	}
	return out
}

// BatchName resolves a batch id for display. Dangling references come back as
// UnknownBatchName; that is documented behaviour, not an error.
func BatchName(doc models.Document, batchID string) string {
	if b := doc.FindBatch(batchID); b != nil {
		return b.Name
	}
	return UnknownBatchName
}

// BillsForUser returns a student's bills, most recent first.
func BillsForUser(doc models.Document, userID string) []models.DemandBill {
	var out []models.DemandBill
	for _, b := range doc.Bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// UnpaidTotal sums the amounts of all UNPAID bills.
func UnpaidTotal(doc models.Document) float64 {
	total := 0.0
	for _, b := range doc.Bills {
		if b.Status == models.BillUnpaid {
			total += b.Amount
		}
	}
	return total
}

// BilledUserIDs reports which users already have a bill for the period, so
// the consumer can filter recipients before generating (duplicates are legal
// but usually unwanted).
func BilledUserIDs(doc models.Document, month, year string) map[string]bool {
	out := make(map[string]bool)
	for _, b := range doc.Bills {
		if b.Month == month && b.Year == year {
			out[b.UserID] = true
		}
	}
	return out
}

// HomeworkForBatch returns a batch's assignments, most recent first.
func HomeworkForBatch(doc models.Document, batchID string) []models.Homework {
	var out []models.Homework
	for _, h := range doc.Homework {
		if h.BatchID == batchID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// CompletionSet returns the homework ids a student has completed, mapped to
// the completion timestamp.
func CompletionSet(doc models.Document, userID string) map[string]int64 {
	out := make(map[string]int64)
	for _, c := range doc.HomeworkCompletions {
		if c.UserID == userID {
			out[c.HomeworkID] = c.CompletedAt
		}
	}
	return out
}

// CompletionsForHomework returns every completion recorded for an assignment,
// including completions whose student no longer exists.
func CompletionsForHomework(doc models.Document, homeworkID string) []models.HomeworkCompletion {
	var out []models.HomeworkCompletion
	for _, c := range doc.HomeworkCompletions {
		if c.HomeworkID == homeworkID {
			out = append(out, c)
		}
	}
	return out
}

// AnnouncementsForBatch returns a batch's notices in stored order.
func AnnouncementsForBatch(doc models.Document, batchID string) []models.Announcement {
	var out []models.Announcement
	for _, a := range doc.Announcements {
		if a.BatchID == batchID {
			out = append(out, a)
		}
	}
	return out
}
