package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).Preload("Payments").First(&inv, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).Preload("Payments").Where("booking_id = ?", bookingID).First(&inv)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	var rows []domain.Invoice
	tx := r.db.WithContext(ctx).
		Preload("Payments").
		Order("invoice_date DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// AddPayment appends one ledger row. IsDuplicateReference distinguishes
// the unique-reference violation from other storage failures.
func (r *InvoiceRepository) AddPayment(ctx context.Context, entry *domain.PaymentEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// UpdateDerived writes the reconciliation results back onto the invoice
// header.
func (r *InvoiceRepository) UpdateDerived(ctx context.Context, inv *domain.Invoice) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"paid_amount":        inv.PaidAmount,
			"outstanding_amount": inv.OutstandingAmount,
			"payment_status":     inv.PaymentStatus,
			"status":             inv.Status,
			"due_date":           inv.DueDate,
		}).Error
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// IsDuplicateReference reports whether err is the Postgres unique
// violation on the payment reference index.
func IsDuplicateReference(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
