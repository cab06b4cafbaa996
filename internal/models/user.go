package models

// Role identifies what a user is allowed to do.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// ApprovalStatus is the admission-workflow state of a registrant.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
	// StatusInactive has no workflow transition; it is reachable only by a
	// direct administrative edit.
	StatusInactive ApprovalStatus = "INACTIVE"
)

// Valid returns true when the status is a supported value.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInactive:
		return true
	default:
		return false
	}
}

// User is a registrant: a student created via self-registration, or a
// teacher/admin record.
//
// RollNumber must be unique across all stored users when present.
// Password is stored as entered and compared verbatim at login; hardening
// the student credential scheme is explicitly out of scope for this product.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// FullName is the display name.
	FullName string `json:"fullName"`

	// RollNumber is the student's roll number (e.g. "SSC-101").
	RollNumber string `json:"rollNumber,omitempty"`

	// GuardianName is the parent/guardian display name.
	GuardianName string `json:"fatherName,omitempty"`

	// BatchID references the batch the student belongs to. May point at a
	// deleted batch.
	BatchID string `json:"batchId,omitempty"`

	// Password is the login credential, stored as entered.
	Password string `json:"password,omitempty"`

	Role   Role           `json:"role"`
	Status ApprovalStatus `json:"status"`

	// MonthlyFee is the fee snapshot source for demand bills. Never negative.
	MonthlyFee float64 `json:"monthlyFee"`

	// CreatedAt is the Unix timestamp when the user registered.
	CreatedAt int64 `json:"createdAt"`
}
