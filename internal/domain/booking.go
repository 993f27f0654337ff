package domain

import "time"

type BookingType string

const (
	BookingTypeService BookingType = "service"
	BookingTypePackage BookingType = "package"
)

type BookingStatus string

const (
	BookingDraft     BookingStatus = "draft"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID   int64       `json:"id"`
	Type BookingType `json:"type" validate:"required"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`

	PhotographerID  *int64 `json:"photographer_id,omitempty"`
	PhotographerB2B bool   `json:"photographer_b2b"`

	// Service bookings: one scheduled slot plus priced line items.
	BookingDate      *time.Time        `json:"booking_date,omitempty"`
	StartTime        string            `json:"start_time,omitempty"`
	EndTime          string            `json:"end_time,omitempty"`
	TotalBookedHours float64           `json:"total_booked_hours"`
	LineItems        []BookingLineItem `json:"line_items,omitempty" gorm:"foreignKey:BookingID"`

	// Package bookings: a package reference, its own priced copy of the
	// package services, and the scheduled date entries consuming hours.
	PackageID       *int64                  `json:"package_id,omitempty"`
	PackageServices []BookingPackageService `json:"package_services,omitempty" gorm:"foreignKey:BookingID"`
	PackageDates    []PackageBookingDate    `json:"package_dates,omitempty" gorm:"foreignKey:BookingID"`

	BaseAmount         float64 `json:"base_amount"`
	TotalAmount        float64 `json:"total_amount"`
	BaseAmountPackage  float64 `json:"base_amount_package"`
	TotalAmountPackage float64 `json:"total_amount_package"`

	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`

	DepositPercentage float64 `json:"deposit_percentage"`
	DepositAmount     float64 `json:"deposit_amount"`

	Status             BookingStatus `json:"status"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string        `json:"cancellation_reason,omitempty" gorm:"type:text"`

	InvoiceID *int64 `json:"invoice_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// BookingLineItem is one priced service row of a service-type booking.
// Exactly one of Hours, Minutes or Count is used, according to the
// service's unit type; the unit fields are copied from the catalog at
// edit time so the row stays self-describing.
type BookingLineItem struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`
	ServiceID int64 `json:"service_id" validate:"required"`

	ServiceName  string          `json:"service_name"`
	UnitType     ServiceUnitType `json:"unit_type"`
	DurationUnit DurationUnit    `json:"duration_unit,omitempty"`

	Hours   float64 `json:"hours"`
	Minutes float64 `json:"minutes"`
	Count   float64 `json:"count"`

	BasePrice       float64 `json:"base_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	TotalAmount     float64 `json:"total_amount"`
}

// BookingPackageService is the booking's mutable copy of a package
// service entry with photographer pricing resolved.
type BookingPackageService struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`
	ServiceID int64 `json:"service_id"`

	ServiceName  string  `json:"service_name"`
	Quantity     float64 `json:"quantity"`
	BasePrice    float64 `json:"base_price"`
	PackagePrice float64 `json:"package_price"`
	Amount       float64 `json:"amount"`
	Required     bool    `json:"required"`
}

// PackageBookingDate is one scheduled slot consuming package hours.
// Times are clock values ("15:04"); an end at or before the start is a
// slot crossing midnight.
type PackageBookingDate struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`

	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Hours     float64   `json:"hours"`
}
