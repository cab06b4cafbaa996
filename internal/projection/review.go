package projection

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gurukul-app/backend/internal/models"
)

// ReviewQuery filters the attendance review.
type ReviewQuery struct {
	// Search matches case-insensitively as a substring of the full name or
	// the roll number. Empty matches everyone.
	Search string
	// Month is the English month name (e.g. "January").
	Month string
	// Year is the four-digit year as a string.
	Year string
}

// StudentAttendance is one student's attendance within the queried window.
type StudentAttendance struct {
	Student models.User               `json:"student"`
	Records []models.AttendanceRecord `json:"records"`
	Present int                       `json:"present"`
	Absent  int                       `json:"absent"`
	Holiday int                       `json:"holiday"`
}

// ReviewAttendance returns, per matching approved student, the records
// restricted to the queried month and year sorted by date descending, plus
// per-status counts within that window.
func ReviewAttendance(doc models.Document, q ReviewQuery) []StudentAttendance {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	var out []StudentAttendance
	for _, student := range ActiveStudents(doc) {
		if needle != "" &&
			!strings.Contains(strings.ToLower(student.FullName), needle) &&
			!strings.Contains(strings.ToLower(student.RollNumber), needle) {
			continue
		}

		entry := StudentAttendance{Student: student, Records: []models.AttendanceRecord{}}
		for _, r := range doc.Attendance {
			if r.UserID != student.ID || !inPeriod(r.Date, q.Month, q.Year) {
				continue
			}
			entry.Records = append(entry.Records, r)
			switch r.Status {
			case models.AttendancePresent:
				entry.Present++
			case models.AttendanceAbsent:
				entry.Absent++
			case models.AttendanceHoliday:
				entry.Holiday++
			}
		}
		sort.Slice(entry.Records, func(i, j int) bool {
			return entry.Records[i].Date > entry.Records[j].Date
		})
		out = append(out, entry)
	}
	return out
}

// AttendanceForUser returns a student's full attendance history, newest day
// first.
func AttendanceForUser(doc models.Document, userID string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range doc.Attendance {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// inPeriod reports whether a YYYY-MM-DD date falls in the named month and
// year. Unparsable dates never match.
func inPeriod(date, month, year string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return d.Month().String() == month && strconv.Itoa(d.Year()) == year
}
