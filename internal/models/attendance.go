package models

// AttendanceStatus is the status recorded for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceHoliday AttendanceStatus = "HOLIDAY"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHoliday:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one student's attendance for one calendar day.
//
// Invariant: at most one record exists per (UserID, Date) pair. Marking the
// same user and day again replaces the prior record.
type AttendanceRecord struct {
	ID string `json:"id"`

	UserID string `json:"userId"`

	// BatchID is a denormalized copy of the user's batch at mark time, so
	// later batch changes do not rewrite history.
	BatchID string `json:"batchId"`

	// Date is the calendar day in YYYY-MM-DD form, no time component.
	Date string `json:"date"`

	Status AttendanceStatus `json:"status"`

	// UpdatedAt is the Unix timestamp of the most recent mark for this day.
	UpdatedAt int64 `json:"updatedAt"`
}
