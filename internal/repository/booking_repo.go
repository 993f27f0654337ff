package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("PackageServices").
		Preload("PackageDates").
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// Update persists the booking header and replaces its child rows. The
// whole aggregate is rewritten in one transaction: the booking editor
// recomputes every derived field on each edit, so partial updates buy
// nothing.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.BookingLineItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.BookingPackageService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.PackageBookingDate{}).Error; err != nil {
			return err
		}

		for i := range b.LineItems {
			b.LineItems[i].ID = 0
			b.LineItems[i].BookingID = b.ID
		}
		for i := range b.PackageServices {
			b.PackageServices[i].ID = 0
			b.PackageServices[i].BookingID = b.ID
		}
		for i := range b.PackageDates {
			b.PackageDates[i].ID = 0
			b.PackageDates[i].BookingID = b.ID
		}

		if len(b.LineItems) > 0 {
			if err := tx.Create(&b.LineItems).Error; err != nil {
				return err
			}
		}
		if len(b.PackageServices) > 0 {
			if err := tx.Create(&b.PackageServices).Error; err != nil {
				return err
			}
		}
		if len(b.PackageDates) > 0 {
			if err := tx.Create(&b.PackageDates).Error; err != nil {
				return err
			}
		}

		return tx.Omit("LineItems", "PackageServices", "PackageDates").Save(b).Error
	})
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("PackageServices").
		Preload("PackageDates").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              domain.BookingCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}

func (r *BookingRepository) SetInvoiceID(ctx context.Context, bookingID int64, invoiceID *int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("invoice_id", invoiceID).Error
}
