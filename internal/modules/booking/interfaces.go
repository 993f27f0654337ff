package booking

import (
	"context"

	"studiobooking/internal/domain"
	"studiobooking/internal/pricing"
)

// BookingRepository is the persistence surface the editor needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
}

// CatalogReader resolves the reference data every recompute needs.
// Fetching happens before the pure pricing functions run.
type CatalogReader interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetServices(ctx context.Context, ids []int64) (map[int64]domain.Service, error)
	GetPackage(ctx context.Context, id int64) (*domain.Package, error)
	GetPhotographer(ctx context.Context, id int64) (*domain.Photographer, error)
}

// PolicyReader supplies the deposit policy.
type PolicyReader interface {
	GetPricingPolicy(ctx context.Context) (pricing.DepositPolicy, error)
}

// Notifier pushes booking events to connected staff. Delivery is
// best-effort; the editor never fails an edit over a lost notification.
type Notifier interface {
	NotifyBookingUpdated(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	NotifyHoursExhausted(ctx context.Context, bookingID int64, usedHours float64) error
}
