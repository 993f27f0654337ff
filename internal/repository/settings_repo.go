package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiobooking/internal/pricing"
)

// BookingSettings is the single-row studio configuration; environment
// defaults apply while the row is absent.
type BookingSettings struct {
	ID                   int64   `gorm:"primaryKey"`
	DepositPercentage    float64 `gorm:"column:deposit_percentage"`
	MinimumBookingAmount float64 `gorm:"column:minimum_booking_amount"`
}

func (BookingSettings) TableName() string { return "booking_settings" }

type SettingsRepository struct {
	db       *gorm.DB
	fallback pricing.DepositPolicy
}

func NewSettingsRepository(db *gorm.DB, fallback pricing.DepositPolicy) *SettingsRepository {
	return &SettingsRepository{db: db, fallback: fallback}
}

func (r *SettingsRepository) GetPricingPolicy(ctx context.Context) (pricing.DepositPolicy, error) {
	var row BookingSettings
	tx := r.db.WithContext(ctx).First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return r.fallback, nil
		}
		return pricing.DepositPolicy{}, tx.Error
	}
	return pricing.DepositPolicy{
		Percentage:           row.DepositPercentage,
		MinimumBookingAmount: row.MinimumBookingAmount,
	}, nil
}

func (r *SettingsRepository) SavePricingPolicy(ctx context.Context, p pricing.DepositPolicy) error {
	row := BookingSettings{
		ID:                   1,
		DepositPercentage:    p.Percentage,
		MinimumBookingAmount: p.MinimumBookingAmount,
	}
	return r.db.WithContext(ctx).Save(&row).Error
}
