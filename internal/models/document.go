package models

import "time"

// SchemaKey names the storage slot the document is persisted under. Bumping
// the suffix abandons old documents: an unrecognized key reads as absent and
// the store falls back to DefaultDocument.
const SchemaKey = "gurukul_app_state_v4"

// Document is the single authoritative state of the whole application.
//
// Collections are unordered sets keyed by ID, except Homework which is kept
// most-recent-first (see Homework). Sort order everywhere else is a
// projection concern.
type Document struct {
	Users               []User               `json:"users"`
	Batches             []Batch              `json:"batches"`
	Homework            []Homework           `json:"homework"`
	HomeworkCompletions []HomeworkCompletion `json:"homeworkCompletions"`
	Announcements       []Announcement       `json:"announcements"`
	Attendance          []AttendanceRecord   `json:"attendance"`
	Bills               []DemandBill         `json:"bills"`
	PaymentSettings     PaymentSettings      `json:"paymentSettings"`
}

// DefaultDocument returns the seed state used when the storage slot is empty
// or unreadable: the fixed starter batch catalog, default payment settings
// and empty collections.
func DefaultDocument() Document {
	now := time.Now().Unix()
	return Document{
		Users: []User{},
		Batches: []Batch{
			{ID: "batch-morning", Name: "Morning Batch", Class: "Class 9-10", Timing: "6:30 AM - 8:00 AM", CreatedAt: now},
			{ID: "batch-evening", Name: "Evening Batch", Class: "Class 9-10", Timing: "4:00 PM - 6:00 PM", CreatedAt: now},
			{ID: "batch-spoken", Name: "Spoken English", Timing: "6:00 PM - 7:30 PM", CreatedAt: now},
		},
		Homework:            []Homework{},
		HomeworkCompletions: []HomeworkCompletion{},
		Announcements:       []Announcement{},
		Attendance:          []AttendanceRecord{},
		Bills:               []DemandBill{},
		PaymentSettings: PaymentSettings{
			UPIID: "thegurukul@upi",
			Phone: "9876543210",
		},
	}
}

// Clone returns a deep copy of the document. Transforms in the store operate
// on clones so a failed transform can never leave partial edits behind.
func (d Document) Clone() Document {
	c := d
	c.Users = append([]User(nil), d.Users...)
	c.Batches = append([]Batch(nil), d.Batches...)
	c.Homework = append([]Homework(nil), d.Homework...)
	c.HomeworkCompletions = append([]HomeworkCompletion(nil), d.HomeworkCompletions...)
	c.Announcements = append([]Announcement(nil), d.Announcements...)
	c.Attendance = append([]AttendanceRecord(nil), d.Attendance...)
	c.Bills = append([]DemandBill(nil), d.Bills...)
	return c
}

// FindUser returns the user with the given ID, or nil.
func (d Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindBatch returns the batch with the given ID, or nil.
func (d Document) FindBatch(id string) *Batch {
	for i := range d.Batches {
		if d.Batches[i].ID == id {
			return &d.Batches[i]
		}
	}
	return nil
}
