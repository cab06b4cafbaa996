package models

// Homework is an assignment posted to a batch. Every student whose BatchID
// matches sees it.
//
// The homework collection is stored most-recent-first: insertion order is a
// storage-level convention here, not just a query-time sort.
type Homework struct {
	ID      string `json:"id"`
	BatchID string `json:"batchId"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// ImageRef is an opaque already-encoded image blob (data URL). The core
	// never decodes it.
	ImageRef string `json:"imageUrl,omitempty"`

	// Date is the display date string shown to students.
	Date string `json:"date"`

	CreatedAt int64 `json:"createdAt"`
}

// HomeworkCompletion records that a student marked an assignment done.
//
// Invariant: at most one completion exists per (HomeworkID, UserID) pair, and
// CompletedAt keeps the timestamp of the first confirmation. Completions may
// outlive their homework; that is tolerated, matching the batch-deletion
// policy.
type HomeworkCompletion struct {
	HomeworkID  string `json:"homeworkId"`
	UserID      string `json:"userId"`
	CompletedAt int64  `json:"completedAt"`
}

// Announcement is a batch-wide notice. Same ownership rules as Homework.
type Announcement struct {
	ID      string `json:"id"`
	BatchID string `json:"batchId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}
