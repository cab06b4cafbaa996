package models

// Batch is a cohort of students sharing a class and timing.
//
// Batches own users, homework and attendance by reference only. Deleting a
// batch does not cascade; dependent rows keep their batchId and render as
// "unknown" in projections.
type Batch struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Class is an optional class label (e.g. "Class 10").
	Class string `json:"class,omitempty"`

	// Timing is a free-form schedule string (e.g. "4pm - 6pm").
	Timing string `json:"timing,omitempty"`

	CreatedAt int64 `json:"createdAt"`
}
