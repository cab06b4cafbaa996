package projection

import (
	"testing"

	"github.com/gurukul-app/backend/internal/models"
)

func reviewDoc() models.Document {
	return models.Document{
		Users: []models.User{
			{ID: "u1", FullName: "Asha Patel", RollNumber: "SSC-101", Role: models.RoleStudent, Status: models.StatusApproved},
			{ID: "u2", FullName: "Vikram Rao", RollNumber: "SSC-102", Role: models.RoleStudent, Status: models.StatusApproved},
		},
		Attendance: []models.AttendanceRecord{
			{ID: "a1", UserID: "u1", Date: "2025-01-05", Status: models.AttendancePresent},
			{ID: "a2", UserID: "u1", Date: "2025-01-12", Status: models.AttendanceAbsent},
			{ID: "a3", UserID: "u1", Date: "2025-01-26", Status: models.AttendanceHoliday},
			{ID: "a4", UserID: "u1", Date: "2025-02-03", Status: models.AttendancePresent}, // outside window
			{ID: "a5", UserID: "u1", Date: "2024-01-08", Status: models.AttendancePresent}, // wrong year
			{ID: "a6", UserID: "u2", Date: "2025-01-05", Status: models.AttendancePresent},
			{ID: "a7", UserID: "u1", Date: "not-a-date", Status: models.AttendancePresent},
		},
	}
}

func TestReviewAttendance(t *testing.T) {
	doc := reviewDoc()

	t.Run("restricts to the queried month and year", func(t *testing.T) {
		out := ReviewAttendance(doc, ReviewQuery{Search: "asha", Month: "January", Year: "2025"})
		if len(out) != 1 {
			t.Fatalf("expected 1 matching student, got %d", len(out))
		}
		entry := out[0]
		if len(entry.Records) != 3 {
			t.Fatalf("expected 3 records in window, got %d", len(entry.Records))
		}
		if entry.Present != 1 || entry.Absent != 1 || entry.Holiday != 1 {
			t.Errorf("counts = P%d/A%d/H%d, want 1/1/1", entry.Present, entry.Absent, entry.Holiday)
		}
	})

	t.Run("records sorted by date descending", func(t *testing.T) {
		out := ReviewAttendance(doc, ReviewQuery{Search: "asha", Month: "January", Year: "2025"})
		records := out[0].Records
		for i := 1; i < len(records); i++ {
			if records[i-1].Date < records[i].Date {
				t.Fatalf("records not descending: %s before %s", records[i-1].Date, records[i].Date)
			}
		}
	})

	t.Run("matches roll number case-insensitively", func(t *testing.T) {
		out := ReviewAttendance(doc, ReviewQuery{Search: "ssc-102", Month: "January", Year: "2025"})
		if len(out) != 1 || out[0].Student.ID != "u2" {
			t.Fatalf("expected only u2, got %v", out)
		}
	})

	t.Run("empty search matches every approved student", func(t *testing.T) {
		out := ReviewAttendance(doc, ReviewQuery{Month: "January", Year: "2025"})
		if len(out) != 2 {
			t.Errorf("expected 2 students, got %d", len(out))
		}
	})

	t.Run("does not mutate the document", func(t *testing.T) {
		before := len(doc.Attendance)
		ReviewAttendance(doc, ReviewQuery{Month: "January", Year: "2025"})
		if len(doc.Attendance) != before {
			t.Error("projection mutated the attendance collection")
		}
	})
}

func TestAttendanceForUser(t *testing.T) {
	out := AttendanceForUser(reviewDoc(), "u1")
	if len(out) != 5 {
		t.Fatalf("expected 5 records, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Date < out[i].Date {
			t.Fatalf("records not descending: %s before %s", out[i-1].Date, out[i].Date)
		}
	}
}
