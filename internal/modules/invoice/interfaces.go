package invoice

import (
	"context"

	"studiobooking/internal/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	AddPayment(ctx context.Context, p *domain.PaymentEntry) error
	UpdateDerived(ctx context.Context, inv *domain.Invoice) error
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

// BookingReader is the slice of booking persistence invoicing needs:
// reading the source booking and linking the created invoice back.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetInvoiceID(ctx context.Context, bookingID int64, invoiceID *int64) error
}

// Notifier pushes payment events to connected staff, best-effort.
type Notifier interface {
	NotifyPaymentRecorded(ctx context.Context, invoiceID int64, paid, outstanding float64) error
}
