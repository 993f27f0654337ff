package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSubmitted InvoiceStatus = "submitted"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a priced snapshot of a booking plus its payment ledger.
// TotalAmount is copied from the booking at creation time and does not
// track later booking edits.
type Invoice struct {
	ID          int64       `json:"id"`
	BookingID   int64       `json:"booking_id"`
	BookingType BookingType `json:"booking_type"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	InvoiceDate time.Time  `json:"invoice_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	TotalAmount       float64 `json:"total_amount"`
	PaidAmount        float64 `json:"paid_amount"`
	OutstandingAmount float64 `json:"outstanding_amount"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        InvoiceStatus `json:"status"`

	Payments []PaymentEntry `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentEntry is one ledger row. A zero PaidAmount marks a scheduled
// installment whose date feeds the invoice due date.
type PaymentEntry struct {
	ID        int64 `json:"id"`
	InvoiceID int64 `json:"invoice_id"`

	Date       time.Time `json:"date"`
	PaidAmount float64   `json:"paid_amount"`
	Method     string    `json:"method,omitempty"`
	Reference  string    `json:"reference,omitempty" gorm:"uniqueIndex:idx_payment_reference,where:reference <> ''"`
}
