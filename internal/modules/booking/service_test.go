package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studiobooking/internal/domain"
	"studiobooking/internal/pricing"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) CancelWithReason(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockCatalog) GetServices(ctx context.Context, ids []int64) (map[int64]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Service), args.Error(1)
}

func (m *mockCatalog) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *mockCatalog) GetPhotographer(ctx context.Context, id int64) (*domain.Photographer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photographer), args.Error(1)
}

type mockPolicy struct {
	mock.Mock
}

func (m *mockPolicy) GetPricingPolicy(ctx context.Context) (pricing.DepositPolicy, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.DepositPolicy), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyBookingUpdated(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *mockNotifier) NotifyHoursExhausted(ctx context.Context, bookingID int64, usedHours float64) error {
	args := m.Called(ctx, bookingID, usedHours)
	return args.Error(0)
}

func newTestService() (*Service, *mockBookingRepo, *mockCatalog, *mockPolicy, *mockNotifier) {
	repo := new(mockBookingRepo)
	catalog := new(mockCatalog)
	policy := new(mockPolicy)
	notifs := new(mockNotifier)
	return NewService(repo, catalog, policy, notifs), repo, catalog, policy, notifs
}

func defaultPolicy() pricing.DepositPolicy {
	return pricing.DepositPolicy{Percentage: 30}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, _, policy, _ := newTestService()

	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		Type:       domain.BookingTypeService,
		ClientName: "Aigerim",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingDraft, b.Status)
	assert.Equal(t, float64(30), b.DepositPercentage)
	repo.AssertExpectations(t)
}

func TestGetBookingNotFound(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBooking(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddLineItemMergesDuplicateService(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	hourly := domain.Service{
		ID:           1,
		Name:         "Studio Hour",
		UnitType:     domain.UnitDuration,
		DurationUnit: domain.DurationHour,
		BasePrice:    5000,
	}

	existing := &domain.Booking{
		ID:     10,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
		LineItems: []domain.BookingLineItem{
			{ServiceID: 1, Hours: 2},
		},
	}

	repo.On("GetByID", mock.Anything, int64(10)).Return(existing, nil)
	catalog.On("GetService", mock.Anything, int64(1)).Return(&hourly, nil)
	catalog.On("GetServices", mock.Anything, []int64{1}).Return(map[int64]domain.Service{1: hourly}, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(10), domain.BookingDraft).Return(nil)

	b, err := svc.AddLineItem(context.Background(), 10, LineItemRequest{ServiceID: 1, Hours: 3})

	require.NoError(t, err)
	require.Len(t, b.LineItems, 1)
	assert.Equal(t, float64(5), b.LineItems[0].Hours)
	assert.Equal(t, float64(25000), b.LineItems[0].TotalAmount)
	assert.Equal(t, float64(25000), b.TotalAmount)
}

func TestAddLineItemWrongType(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{
		ID:     3,
		Type:   domain.BookingTypePackage,
		Status: domain.BookingDraft,
	}, nil)

	_, err := svc.AddLineItem(context.Background(), 3, LineItemRequest{ServiceID: 1, Hours: 1})
	assert.ErrorIs(t, err, ErrWrongBookingType)
}

func TestEditRejectedAfterConfirmation(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Booking{
		ID:     4,
		Type:   domain.BookingTypeService,
		Status: domain.BookingConfirmed,
	}, nil)

	_, err := svc.AddLineItem(context.Background(), 4, LineItemRequest{ServiceID: 1, Hours: 1})
	assert.ErrorIs(t, err, ErrNotEditable)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPhotographerAppliesB2BDiscount(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	hourly := domain.Service{
		ID:           1,
		UnitType:     domain.UnitDuration,
		DurationUnit: domain.DurationHour,
		BasePrice:    10000,
	}
	pid := int64(20)
	photographer := &domain.Photographer{
		ID:                 pid,
		B2B:                true,
		DiscountPercentage: 10,
		Services: []domain.PhotographerService{
			{ServiceID: 1, BasePrice: 10000, AllowDiscount: true, Active: true},
		},
	}

	b := &domain.Booking{
		ID:     11,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
		LineItems: []domain.BookingLineItem{
			{ServiceID: 1, Hours: 2, BasePrice: 10000, TotalAmount: 20000},
		},
	}

	repo.On("GetByID", mock.Anything, int64(11)).Return(b, nil)
	catalog.On("GetPhotographer", mock.Anything, pid).Return(photographer, nil)
	catalog.On("GetServices", mock.Anything, []int64{1}).Return(map[int64]domain.Service{1: hourly}, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(11), domain.BookingDraft).Return(nil)

	out, err := svc.SetPhotographer(context.Background(), 11, SetPhotographerRequest{PhotographerID: pid, B2B: true})

	require.NoError(t, err)
	assert.Equal(t, float64(9000), out.LineItems[0].DiscountedPrice)
	assert.Equal(t, float64(18000), out.LineItems[0].TotalAmount)
	assert.Equal(t, float64(20000), out.BaseAmount)
	assert.Equal(t, float64(18000), out.TotalAmount)
	assert.Equal(t, float64(5400), out.DepositAmount)
}

func TestScheduleCopiesHoursIntoHourlyItems(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	hourly := domain.Service{
		ID:           1,
		UnitType:     domain.UnitDuration,
		DurationUnit: domain.DurationHour,
		BasePrice:    4000,
	}
	flexible := domain.Service{
		ID:           2,
		UnitType:     domain.UnitDuration,
		DurationUnit: domain.DurationHour,
		BasePrice:    6000,
		Flexible:     true,
	}

	b := &domain.Booking{
		ID:     12,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
		LineItems: []domain.BookingLineItem{
			{ServiceID: 1, Hours: 1},
			{ServiceID: 2, Hours: 2},
		},
	}

	repo.On("GetByID", mock.Anything, int64(12)).Return(b, nil)
	catalog.On("GetServices", mock.Anything, []int64{1, 2}).
		Return(map[int64]domain.Service{1: hourly, 2: flexible}, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(12), domain.BookingDraft).Return(nil)

	// 22:00 to 02:00 wraps past midnight into four hours.
	out, err := svc.ScheduleService(context.Background(), 12, ScheduleRequest{
		Date:      "2026-03-14",
		StartTime: "22:00",
		EndTime:   "02:00",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(4), out.TotalBookedHours)
	assert.Equal(t, float64(4), out.LineItems[0].Hours)
	assert.Equal(t, float64(2), out.LineItems[1].Hours, "flexible service keeps its own quantity")
}

func TestScheduleRejectsBadClockTime(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(12)).Return(&domain.Booking{
		ID:     12,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
	}, nil)

	_, err := svc.ScheduleService(context.Background(), 12, ScheduleRequest{
		Date:      "2026-03-14",
		StartTime: "25:99",
		EndTime:   "02:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSelectPackagePopulatesRowsAndLedger(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	pkg := &domain.Package{
		ID:         5,
		TotalHours: 10,
		Services: []domain.PackageServiceEntry{
			{PackageID: 5, ServiceID: 1, Quantity: 2, PackagePrice: 3000},
		},
	}
	catalogSvc := domain.Service{ID: 1, Name: "Retouch", UnitType: domain.UnitCount, BasePrice: 4000}

	b := &domain.Booking{
		ID:     13,
		Type:   domain.BookingTypePackage,
		Status: domain.BookingDraft,
	}

	repo.On("GetByID", mock.Anything, int64(13)).Return(b, nil)
	catalog.On("GetPackage", mock.Anything, int64(5)).Return(pkg, nil)
	catalog.On("GetServices", mock.Anything, []int64{1}).Return(map[int64]domain.Service{1: catalogSvc}, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(13), domain.BookingDraft).Return(nil)

	out, err := svc.SelectPackage(context.Background(), 13, SelectPackageRequest{PackageID: 5})

	require.NoError(t, err)
	require.Len(t, out.PackageServices, 1)
	assert.Equal(t, float64(6000), out.PackageServices[0].Amount)
	assert.Equal(t, float64(0), out.UsedHours)
	assert.Equal(t, float64(10), out.RemainingHours)
}

func TestAddPackageDateRejectedWhenExhausted(t *testing.T) {
	svc, repo, catalog, _, notifs := newTestService()

	pkgID := int64(5)
	pkg := &domain.Package{ID: pkgID, TotalHours: 4}

	b := &domain.Booking{
		ID:        14,
		Type:      domain.BookingTypePackage,
		Status:    domain.BookingDraft,
		PackageID: &pkgID,
		PackageDates: []domain.PackageBookingDate{
			{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "14:00"},
		},
	}

	repo.On("GetByID", mock.Anything, int64(14)).Return(b, nil)
	catalog.On("GetPackage", mock.Anything, pkgID).Return(pkg, nil)
	notifs.On("NotifyHoursExhausted", mock.Anything, int64(14), float64(4)).Return(nil)

	_, err := svc.AddPackageDate(context.Background(), 14, PackageDateRequest{
		Date:      "2026-03-11",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.ErrorIs(t, err, ErrHoursExhausted)
	assert.Len(t, b.PackageDates, 1, "rejected entry must be discarded")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifs.AssertCalled(t, "NotifyHoursExhausted", mock.Anything, int64(14), float64(4))
}

func TestAddPackageDateCrossingIntoExhaustion(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	pkgID := int64(5)
	pkg := &domain.Package{ID: pkgID, TotalHours: 5}

	b := &domain.Booking{
		ID:        15,
		Type:      domain.BookingTypePackage,
		Status:    domain.BookingDraft,
		PackageID: &pkgID,
		PackageDates: []domain.PackageBookingDate{
			{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "13:00"},
		},
	}

	repo.On("GetByID", mock.Anything, int64(15)).Return(b, nil)
	catalog.On("GetPackage", mock.Anything, pkgID).Return(pkg, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(15), domain.BookingDraft).Return(nil)
	notifs.On("NotifyHoursExhausted", mock.Anything, int64(15), float64(5)).Return(nil)

	out, err := svc.AddPackageDate(context.Background(), 15, PackageDateRequest{
		Date:      "2026-03-11",
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(5), out.UsedHours)
	assert.Equal(t, float64(0), out.RemainingHours)
	notifs.AssertCalled(t, "NotifyHoursExhausted", mock.Anything, int64(15), float64(5))
}

func TestAddPackageDateWithoutPackage(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(16)).Return(&domain.Booking{
		ID:     16,
		Type:   domain.BookingTypePackage,
		Status: domain.BookingDraft,
	}, nil)

	_, err := svc.AddPackageDate(context.Background(), 16, PackageDateRequest{
		Date:      "2026-03-11",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	assert.ErrorIs(t, err, ErrNoPackageSelected)
}

func TestRemovePackageDateReactivatesLedger(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	pkgID := int64(5)
	pkg := &domain.Package{ID: pkgID, TotalHours: 4}

	b := &domain.Booking{
		ID:        17,
		Type:      domain.BookingTypePackage,
		Status:    domain.BookingDraft,
		PackageID: &pkgID,
		PackageDates: []domain.PackageBookingDate{
			{ID: 100, Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "12:00"},
			{ID: 101, Date: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "12:00"},
		},
	}

	repo.On("GetByID", mock.Anything, int64(17)).Return(b, nil)
	catalog.On("GetPackage", mock.Anything, pkgID).Return(pkg, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(17), domain.BookingDraft).Return(nil)

	out, err := svc.RemovePackageDate(context.Background(), 17, 101)

	require.NoError(t, err)
	assert.Equal(t, float64(2), out.UsedHours)
	assert.Equal(t, float64(2), out.RemainingHours)
	notifs.AssertNotCalled(t, "NotifyHoursExhausted", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPackageWithoutDates(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	pkgID := int64(5)
	repo.On("GetByID", mock.Anything, int64(18)).Return(&domain.Booking{
		ID:        18,
		Type:      domain.BookingTypePackage,
		Status:    domain.BookingDraft,
		PackageID: &pkgID,
	}, nil)

	_, err := svc.ConfirmBooking(context.Background(), 18)
	assert.ErrorIs(t, err, ErrNoBookingDates)
}

func TestConfirmServiceBooking(t *testing.T) {
	svc, repo, catalog, policy, notifs := newTestService()

	hourly := domain.Service{
		ID:           1,
		UnitType:     domain.UnitDuration,
		DurationUnit: domain.DurationHour,
		BasePrice:    5000,
	}

	b := &domain.Booking{
		ID:     19,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
		LineItems: []domain.BookingLineItem{
			{ServiceID: 1, Hours: 2},
		},
	}

	repo.On("GetByID", mock.Anything, int64(19)).Return(b, nil)
	catalog.On("GetServices", mock.Anything, []int64{1}).Return(map[int64]domain.Service{1: hourly}, nil)
	policy.On("GetPricingPolicy", mock.Anything).Return(defaultPolicy(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(19), domain.BookingConfirmed).Return(nil)

	out, err := svc.ConfirmBooking(context.Background(), 19)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, out.Status)
	assert.Equal(t, float64(10000), out.TotalAmount)
	assert.Equal(t, float64(3000), out.DepositAmount)
}

func TestConfirmTwice(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(19)).Return(&domain.Booking{
		ID:     19,
		Type:   domain.BookingTypeService,
		Status: domain.BookingConfirmed,
	}, nil)

	_, err := svc.ConfirmBooking(context.Background(), 19)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(20)).Return(&domain.Booking{
		ID:     20,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
	}, nil)

	_, err := svc.CompleteBooking(context.Background(), 20)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCancelCompletedBooking(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(21)).Return(&domain.Booking{
		ID:     21,
		Type:   domain.BookingTypeService,
		Status: domain.BookingCompleted,
	}, nil)

	_, err := svc.CancelBooking(context.Background(), 21, "client no-show")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	repo.AssertNotCalled(t, "CancelWithReason", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelDraftBooking(t *testing.T) {
	svc, repo, _, _, notifs := newTestService()

	repo.On("GetByID", mock.Anything, int64(22)).Return(&domain.Booking{
		ID:     22,
		Type:   domain.BookingTypeService,
		Status: domain.BookingDraft,
	}, nil).Once()
	repo.On("CancelWithReason", mock.Anything, int64(22), "client request").Return(nil)
	notifs.On("NotifyBookingUpdated", mock.Anything, int64(22), domain.BookingCancelled).Return(nil)
	repo.On("GetByID", mock.Anything, int64(22)).Return(&domain.Booking{
		ID:     22,
		Type:   domain.BookingTypeService,
		Status: domain.BookingCancelled,
	}, nil)

	out, err := svc.CancelBooking(context.Background(), 22, "client request")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, out.Status)
}

func TestDepositFrozenAfterDraft(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	// Recompute on a confirmed booking must not touch the deposit.
	b := &domain.Booking{
		ID:            23,
		Type:          domain.BookingTypeService,
		Status:        domain.BookingConfirmed,
		TotalAmount:   10000,
		DepositAmount: 3000,
	}

	_, err := svc.recompute(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, float64(3000), b.DepositAmount)
}
