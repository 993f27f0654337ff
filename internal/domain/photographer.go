package domain

import "time"

type PhotographerStatus string

const (
	PhotographerActive   PhotographerStatus = "active"
	PhotographerInactive PhotographerStatus = "inactive"
)

type Photographer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// B2B gates all photographer discounting: when false no discount is
	// applied regardless of the percentage or per-service prices below.
	B2B                bool    `json:"b2b"`
	DiscountPercentage float64 `json:"discount_percentage"`

	Services []PhotographerService `json:"services,omitempty" gorm:"foreignKey:PhotographerID"`

	Status    PhotographerStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// PhotographerService is one row of the photographer's discount sheet.
type PhotographerService struct {
	ID             int64 `json:"id"`
	PhotographerID int64 `json:"photographer_id"`
	ServiceID      int64 `json:"service_id" validate:"required"`

	BasePrice float64 `json:"base_price"`

	// DiscountedPrice, when > 0, overrides the flat percentage for this
	// service.
	DiscountedPrice float64 `json:"discounted_price"`
	AllowDiscount   bool    `json:"allow_discount"`
	Active          bool    `json:"active"`
}
