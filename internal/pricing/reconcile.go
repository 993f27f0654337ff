package pricing

import (
	"time"

	"studiobooking/internal/domain"
)

// Reconciliation is the derived payment position of an invoice.
type Reconciliation struct {
	Paid        float64              `json:"paid_amount"`
	Outstanding float64              `json:"outstanding_amount"`
	Status      domain.PaymentStatus `json:"status"`
	// NextDue is the earliest scheduled installment (a ledger entry
	// with no paid amount); nil when every entry carries a payment.
	NextDue *time.Time `json:"due_date,omitempty"`
}

// ReconcilePayments folds the payment ledger against the invoice
// total. Only positive amounts count as payments; zero-amount rows are
// scheduled installments and feed the next due date.
func ReconcilePayments(totalAmount float64, entries []domain.PaymentEntry) Reconciliation {
	var r Reconciliation

	for _, e := range entries {
		if e.PaidAmount > 0 {
			r.Paid += e.PaidAmount
			continue
		}
		d := e.Date
		if r.NextDue == nil || d.Before(*r.NextDue) {
			r.NextDue = &d
		}
	}
	r.Paid = Round2(r.Paid)

	if totalAmount > 0 {
		r.Outstanding = Round2(totalAmount - r.Paid)
	}

	switch {
	case totalAmount <= 0 || r.Paid <= 0:
		r.Status = domain.PaymentUnpaid
	case r.Paid >= totalAmount:
		r.Status = domain.PaymentPaid
	default:
		r.Status = domain.PaymentPartiallyPaid
	}
	return r
}
