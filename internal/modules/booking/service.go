package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
	"studiobooking/internal/pricing"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	catalog  CatalogReader
	policy   PolicyReader
	notifs   Notifier
}

func NewService(bookings BookingRepository, catalog CatalogReader, policy PolicyReader, notifs Notifier) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		policy:   policy,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	policy, err := s.policy.GetPricingPolicy(ctx)
	if err != nil {
		return nil, err
	}

	depositPct := policy.Percentage
	if depositPct <= 0 {
		depositPct = pricing.DefaultDepositPercentage
	}

	b := &domain.Booking{
		Type:              req.Type,
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		Notes:             req.Notes,
		Status:            domain.BookingDraft,
		DepositPercentage: depositPct,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.getBooking(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.bookings.List(ctx, limit, offset)
}

// SetPhotographer attaches a photographer and toggles B2B pricing;
// every priced row is recomputed, and for package bookings the package
// rows are repopulated so per-service discounted prices take effect.
func (s *Service) SetPhotographer(ctx context.Context, bookingID int64, req SetPhotographerRequest) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.PhotographerID = &req.PhotographerID
	b.PhotographerB2B = req.B2B

	if b.Type == domain.BookingTypePackage && b.PackageID != nil {
		if err := s.repopulatePackageRows(ctx, b); err != nil {
			return nil, err
		}
	}

	return s.finishEdit(ctx, b)
}

// AddLineItem appends a service row to a service-type booking, merging
// quantities into an existing row for the same service so the line
// table never carries duplicates.
func (s *Service) AddLineItem(ctx context.Context, bookingID int64, req LineItemRequest) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypeService {
		return nil, ErrWrongBookingType
	}

	if _, err := s.catalog.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	merged := false
	for i := range b.LineItems {
		if b.LineItems[i].ServiceID == req.ServiceID {
			b.LineItems[i].Hours += req.Hours
			b.LineItems[i].Minutes += req.Minutes
			b.LineItems[i].Count += req.Count
			b.LineItems[i].TotalAmount = 0 // force recompute of the merged row
			merged = true
			break
		}
	}
	if !merged {
		b.LineItems = append(b.LineItems, domain.BookingLineItem{
			ServiceID: req.ServiceID,
			Hours:     req.Hours,
			Minutes:   req.Minutes,
			Count:     req.Count,
		})
	}

	return s.finishEdit(ctx, b)
}

func (s *Service) RemoveLineItem(ctx context.Context, bookingID, serviceID int64) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypeService {
		return nil, ErrWrongBookingType
	}

	kept := b.LineItems[:0]
	for _, it := range b.LineItems {
		if it.ServiceID != serviceID {
			kept = append(kept, it)
		}
	}
	b.LineItems = kept

	return s.finishEdit(ctx, b)
}

// ScheduleService sets the booked slot of a service-type booking. The
// booked hours flow into every non-flexible hourly line item, keeping
// the schedule the source of truth for those quantities.
func (s *Service) ScheduleService(ctx context.Context, bookingID int64, req ScheduleRequest) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypeService {
		return nil, ErrWrongBookingType
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	hours, err := pricing.EntryHours(day, req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}

	b.BookingDate = &day
	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.TotalBookedHours = hours

	if len(b.LineItems) > 0 {
		ids := lineItemServiceIDs(b.LineItems)
		svcs, err := s.catalog.GetServices(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range b.LineItems {
			svc, ok := svcs[b.LineItems[i].ServiceID]
			if !ok || svc.Flexible {
				continue
			}
			if svc.UnitType == domain.UnitDuration && svc.DurationUnit == domain.DurationHour {
				b.LineItems[i].Hours = hours
				b.LineItems[i].TotalAmount = 0
			}
		}
	}

	return s.finishEdit(ctx, b)
}

// SelectPackage binds a package to the booking: the booking gets its
// own priced copy of the package services and a fresh hours ledger;
// previously scheduled date entries are cleared.
func (s *Service) SelectPackage(ctx context.Context, bookingID int64, req SelectPackageRequest) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypePackage {
		return nil, ErrWrongBookingType
	}

	if _, err := s.catalog.GetPackage(ctx, req.PackageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	b.PackageID = &req.PackageID
	b.PackageDates = nil
	if err := s.repopulatePackageRows(ctx, b); err != nil {
		return nil, err
	}

	return s.finishEdit(ctx, b)
}

func (s *Service) ClearPackage(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypePackage {
		return nil, ErrWrongBookingType
	}

	b.PackageID = nil
	b.PackageServices = nil
	b.PackageDates = nil

	return s.finishEdit(ctx, b)
}

// AddPackageDate schedules one slot against the package hours. An add
// while the ledger is exhausted is rejected and the entry discarded.
func (s *Service) AddPackageDate(ctx context.Context, bookingID int64, req PackageDateRequest) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypePackage {
		return nil, ErrWrongBookingType
	}
	if b.PackageID == nil {
		return nil, ErrNoPackageSelected
	}

	pkg, err := s.catalog.GetPackage(ctx, *b.PackageID)
	if err != nil {
		return nil, err
	}

	_, usage := pricing.RecomputeHours(pkg.TotalHours, b.PackageDates)
	if !pricing.CanAddEntry(usage) {
		if s.notifs != nil {
			_ = s.notifs.NotifyHoursExhausted(ctx, b.ID, usage.Used)
		}
		return nil, ErrHoursExhausted
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	if _, err := pricing.EntryHours(day, req.StartTime, req.EndTime); err != nil {
		return nil, ErrValidation
	}

	b.PackageDates = append(b.PackageDates, domain.PackageBookingDate{
		Date:      day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})

	return s.finishEdit(ctx, b)
}

func (s *Service) RemovePackageDate(ctx context.Context, bookingID, dateID int64) (*domain.Booking, error) {
	b, err := s.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Type != domain.BookingTypePackage {
		return nil, ErrWrongBookingType
	}

	kept := b.PackageDates[:0]
	for _, e := range b.PackageDates {
		if e.ID != dateID {
			kept = append(kept, e)
		}
	}
	b.PackageDates = kept

	return s.finishEdit(ctx, b)
}

// ConfirmBooking moves a draft to confirmed. The deposit is computed
// one last time here; after confirmation no edit recomputes it.
func (s *Service) ConfirmBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingDraft {
		return nil, ErrInvalidStatusTransition
	}

	switch b.Type {
	case domain.BookingTypePackage:
		if b.PackageID == nil {
			return nil, ErrNoPackageSelected
		}
		if len(b.PackageDates) == 0 {
			return nil, ErrNoBookingDates
		}
	case domain.BookingTypeService:
		if len(b.LineItems) == 0 {
			return nil, ErrValidation
		}
	}

	if _, err := s.recompute(ctx, b); err != nil {
		return nil, err
	}
	b.Status = domain.BookingConfirmed
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingUpdated(ctx, b.ID, b.Status)
	}
	return b, nil
}

func (s *Service) CompleteBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
		return nil, err
	}
	return s.getBooking(ctx, bookingID)
}

func (s *Service) CancelBooking(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingUpdated(ctx, bookingID, domain.BookingCancelled)
	}
	return s.getBooking(ctx, bookingID)
}

// ---- internals ----

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) editableBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingDraft {
		return nil, ErrNotEditable
	}
	return b, nil
}

// finishEdit recomputes every derived field, persists the aggregate and
// emits notifications. Every mutating edit funnels through here.
func (s *Service) finishEdit(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	usage, err := s.recompute(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingUpdated(ctx, b.ID, b.Status)
		if usage.State == pricing.StateExhausted {
			_ = s.notifs.NotifyHoursExhausted(ctx, b.ID, usage.Used)
		}
	}
	return b, nil
}

// recompute rederives prices, totals, the hours ledger and (for drafts
// only) the deposit. Confirmed bookings keep their deposit untouched.
func (s *Service) recompute(ctx context.Context, b *domain.Booking) (pricing.HoursUsage, error) {
	profile, err := s.discountProfile(ctx, b)
	if err != nil {
		return pricing.HoursUsage{}, err
	}

	var usage pricing.HoursUsage

	switch b.Type {
	case domain.BookingTypeService:
		if len(b.LineItems) > 0 {
			svcs, err := s.catalog.GetServices(ctx, lineItemServiceIDs(b.LineItems))
			if err != nil {
				return usage, err
			}
			for i := range b.LineItems {
				if svc, ok := svcs[b.LineItems[i].ServiceID]; ok {
					b.LineItems[i] = pricing.RecomputeLineItem(b.LineItems[i], svc, profile)
				}
			}
		}
		t := pricing.Totalize(b.LineItems)
		b.BaseAmount = t.Base
		b.TotalAmount = t.Final

	case domain.BookingTypePackage:
		if b.PackageID == nil {
			b.PackageServices = nil
			b.BaseAmountPackage = 0
			b.TotalAmountPackage = 0
			b.UsedHours = 0
			b.RemainingHours = 0
			usage.State = pricing.StateNoPackage
			break
		}

		pkg, err := s.catalog.GetPackage(ctx, *b.PackageID)
		if err != nil {
			return usage, err
		}

		rows, t := pricing.PackageTotals(b.PackageServices)
		b.PackageServices = rows
		b.BaseAmountPackage = t.Base
		b.TotalAmountPackage = t.Final

		b.PackageDates, usage = pricing.RecomputeHours(pkg.TotalHours, b.PackageDates)
		b.UsedHours = usage.Used
		b.RemainingHours = usage.Remaining
	}

	if b.Status == domain.BookingDraft {
		policy, err := s.policy.GetPricingPolicy(ctx)
		if err != nil {
			return usage, err
		}
		if b.DepositPercentage > 0 {
			policy.Percentage = b.DepositPercentage
		}

		basis := b.TotalAmount
		if b.Type == domain.BookingTypePackage {
			basis = b.TotalAmountPackage
		}
		b.DepositAmount = pricing.ComputeDeposit(basis, policy)
	}

	return usage, nil
}

// repopulatePackageRows rebuilds the booking's package service rows
// from the catalog with the current photographer pricing.
func (s *Service) repopulatePackageRows(ctx context.Context, b *domain.Booking) error {
	pkg, err := s.catalog.GetPackage(ctx, *b.PackageID)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(pkg.Services))
	for _, e := range pkg.Services {
		ids = append(ids, e.ServiceID)
	}
	svcs := map[int64]domain.Service{}
	if len(ids) > 0 {
		if svcs, err = s.catalog.GetServices(ctx, ids); err != nil {
			return err
		}
	}

	profile, err := s.discountProfile(ctx, b)
	if err != nil {
		return err
	}

	b.PackageServices = pricing.PopulatePackageRows(*pkg, svcs, profile)
	return nil
}

func (s *Service) discountProfile(ctx context.Context, b *domain.Booking) (pricing.DiscountProfile, error) {
	if b.PhotographerID == nil {
		return pricing.ProfileFor(nil, false), nil
	}
	p, err := s.catalog.GetPhotographer(ctx, *b.PhotographerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.ProfileFor(nil, false), nil
		}
		return pricing.DiscountProfile{}, err
	}
	return pricing.ProfileFor(p, b.PhotographerB2B), nil
}

func lineItemServiceIDs(items []domain.BookingLineItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ServiceID)
	}
	return ids
}
