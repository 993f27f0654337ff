package domain

import "time"

type ServiceUnitType string

const (
	UnitDuration ServiceUnitType = "duration"
	UnitCount    ServiceUnitType = "count"
)

type DurationUnit string

const (
	DurationHour   DurationUnit = "hour"
	DurationMinute DurationUnit = "minute"
)

type Service struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name" validate:"required"`
	UnitType     ServiceUnitType `json:"unit_type" validate:"required"`
	DurationUnit DurationUnit    `json:"duration_unit,omitempty"`
	BasePrice    float64         `json:"base_price" validate:"required,gt=0"`

	// Flexible services keep their own quantity when the booking schedule
	// changes; non-flexible duration services follow the booked hours.
	Flexible bool `json:"flexible"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
