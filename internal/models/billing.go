package models

// BillStatus is the payment state of a demand bill.
type BillStatus string

const (
	BillPaid   BillStatus = "PAID"
	BillUnpaid BillStatus = "UNPAID"
)

// DemandBill is a monthly fee invoice for one student.
//
// Amount is a snapshot of the student's monthly fee taken at generation time,
// never a live reference: changing the fee later does not touch existing
// bills. Duplicate bills for the same user and period are possible by design;
// the caller filters recipients before generating.
type DemandBill struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	// Month is the English month name (e.g. "January").
	Month string `json:"month"`
	// Year is the four-digit year as a string.
	Year string `json:"year"`

	Amount float64 `json:"amount"`

	// DueDate is a display string, e.g. "10 January 2025".
	DueDate string `json:"dueDate"`

	Status    BillStatus `json:"status"`
	CreatedAt int64      `json:"createdAt"`
}

// PaymentSettings is the process-wide payment details singleton. It is
// mutated in place, never recreated.
type PaymentSettings struct {
	// QRCode is an opaque already-encoded image blob (data URL).
	QRCode   string `json:"qrCode"`
	UPIID    string `json:"upiId"`
	Phone    string `json:"phone"`
	BankInfo string `json:"bankInfo,omitempty"`
}
