package invoice

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
	"studiobooking/internal/pricing"
	"studiobooking/internal/repository"
)

const (
	dateLayout     = "2006-01-02"
	defaultDueDays = 30
)

type Service struct {
	invoices InvoiceRepository
	bookings BookingReader
	notifs   Notifier
}

func NewService(invoices InvoiceRepository, bookings BookingReader, notifs Notifier) *Service {
	return &Service{
		invoices: invoices,
		bookings: bookings,
		notifs:   notifs,
	}
}

// CreateFromBooking snapshots a confirmed booking into an invoice.
// The invoice carries its own totals; later booking edits never reach
// it.
func (s *Service) CreateFromBooking(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingConfirmed && b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotBillable
	}
	if b.InvoiceID != nil {
		return nil, ErrInvoiceExists
	}

	total := b.TotalAmount
	if b.Type == domain.BookingTypePackage {
		total = b.TotalAmountPackage
	}

	due := time.Now().AddDate(0, 0, defaultDueDays)
	if req.DueDate != "" {
		parsed, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return nil, ErrValidation
		}
		due = parsed
	}

	inv := &domain.Invoice{
		BookingID:         b.ID,
		BookingType:       b.Type,
		CustomerName:      b.ClientName,
		CustomerPhone:     b.ClientPhone,
		InvoiceDate:       time.Now(),
		DueDate:           &due,
		TotalAmount:       total,
		OutstandingAmount: total,
		PaymentStatus:     domain.PaymentUnpaid,
		Status:            domain.InvoiceSubmitted,
	}
	if total <= 0 {
		inv.OutstandingAmount = 0
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	if err := s.bookings.SetInvoiceID(ctx, b.ID, &inv.ID); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.getInvoice(ctx, id)
}

func (s *Service) GetByBooking(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.invoices.List(ctx, limit, offset)
}

// AddPayment records money received and reconciles the invoice. A
// reference that was already used on another payment is rejected.
func (s *Service) AddPayment(ctx context.Context, invoiceID int64, req AddPaymentRequest) (*domain.Invoice, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return nil, ErrInvoiceCancelled
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrValidation
		}
		date = parsed
	}

	entry := &domain.PaymentEntry{
		InvoiceID:  inv.ID,
		Date:       date,
		PaidAmount: req.Amount,
		Method:     req.Method,
		Reference:  req.Reference,
	}
	if err := s.invoices.AddPayment(ctx, entry); err != nil {
		if repository.IsDuplicateReference(err) {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}

	return s.reconcile(ctx, inv.ID)
}

// ScheduleInstallment adds a zero-amount row carrying a future due
// date. The earliest unpaid installment becomes the invoice due date.
func (s *Service) ScheduleInstallment(ctx context.Context, invoiceID int64, req ScheduleInstallmentRequest) (*domain.Invoice, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return nil, ErrInvoiceCancelled
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	entry := &domain.PaymentEntry{
		InvoiceID: inv.ID,
		Date:      date,
		Method:    req.Method,
	}
	if err := s.invoices.AddPayment(ctx, entry); err != nil {
		return nil, err
	}

	return s.reconcile(ctx, inv.ID)
}

// MarkAsPaid settles the full outstanding amount in one payment.
func (s *Service) MarkAsPaid(ctx context.Context, invoiceID int64, method string) (*domain.Invoice, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return nil, ErrInvoiceCancelled
	}
	if inv.OutstandingAmount <= 0 {
		return nil, ErrNothingOutstanding
	}
	if method == "" {
		method = "cash"
	}

	entry := &domain.PaymentEntry{
		InvoiceID:  inv.ID,
		Date:       time.Now(),
		PaidAmount: inv.OutstandingAmount,
		Method:     method,
	}
	if err := s.invoices.AddPayment(ctx, entry); err != nil {
		return nil, err
	}

	return s.reconcile(ctx, inv.ID)
}

func (s *Service) CancelInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return inv, nil
	}

	if err := s.invoices.UpdateStatus(ctx, invoiceID, domain.InvoiceCancelled); err != nil {
		return nil, err
	}
	if err := s.bookings.SetInvoiceID(ctx, inv.BookingID, nil); err != nil {
		return nil, err
	}
	return s.getInvoice(ctx, invoiceID)
}

func (s *Service) getInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// reconcile rereads the payment ledger, rederives the paid and
// outstanding figures and persists them on the invoice header.
func (s *Service) reconcile(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	rec := pricing.ReconcilePayments(inv.TotalAmount, inv.Payments)
	inv.PaidAmount = rec.Paid
	inv.OutstandingAmount = rec.Outstanding
	inv.PaymentStatus = rec.Status
	if rec.NextDue != nil {
		inv.DueDate = rec.NextDue
	}

	if inv.Status != domain.InvoiceCancelled {
		inv.Status = domain.InvoiceSubmitted
		if inv.DueDate != nil && inv.DueDate.Before(time.Now()) && rec.Status != domain.PaymentPaid {
			inv.Status = domain.InvoiceOverdue
		}
	}

	if err := s.invoices.UpdateDerived(ctx, inv); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentRecorded(ctx, inv.ID, inv.PaidAmount, inv.OutstandingAmount)
	}
	return inv, nil
}
