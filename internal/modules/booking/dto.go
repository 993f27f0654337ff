package booking

import "studiobooking/internal/domain"

type CreateBookingRequest struct {
	Type        domain.BookingType `json:"type" validate:"required,oneof=service package"`
	ClientName  string             `json:"client_name" validate:"required"`
	ClientPhone string             `json:"client_phone"`
	Notes       string             `json:"notes"`
}

type SetPhotographerRequest struct {
	PhotographerID int64 `json:"photographer_id" validate:"required,gt=0"`
	B2B            bool  `json:"b2b"`
}

// LineItemRequest carries the quantity in the field matching the
// service's unit type; the others stay zero.
type LineItemRequest struct {
	ServiceID int64   `json:"service_id" validate:"required,gt=0"`
	Hours     float64 `json:"hours" validate:"gte=0"`
	Minutes   float64 `json:"minutes" validate:"gte=0"`
	Count     float64 `json:"count" validate:"gte=0"`
}

type ScheduleRequest struct {
	Date      string `json:"date" validate:"required"`       // 2006-01-02
	StartTime string `json:"start_time" validate:"required"` // 15:04
	EndTime   string `json:"end_time" validate:"required"`
}

type SelectPackageRequest struct {
	PackageID int64 `json:"package_id" validate:"required,gt=0"`
}

type PackageDateRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}
