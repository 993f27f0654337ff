package domain

import "time"

// Package is a prepaid bundle of hours and services sold as one unit.
type Package struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name" validate:"required"`
	TotalHours float64 `json:"total_hours" validate:"required,gt=0"`

	// FinalPrice is the advertised package price; used as a fallback when a
	// package has no service entries.
	FinalPrice float64 `json:"final_price"`

	Services []PackageServiceEntry `json:"services,omitempty" gorm:"foreignKey:PackageID"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PackageServiceEntry struct {
	ID        int64 `json:"id"`
	PackageID int64 `json:"package_id"`
	ServiceID int64 `json:"service_id" validate:"required"`

	Quantity float64 `json:"quantity"`

	// PackagePrice is the package-specific unit price; zero means the
	// service's catalog price applies.
	PackagePrice float64 `json:"package_price"`
	Required     bool    `json:"required"`
}
