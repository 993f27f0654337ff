package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
	"studiobooking/internal/pricing"
)

type Service struct {
	services      ServiceReader
	packages      PackageReader
	photographers PhotographerReader
}

func NewService(services ServiceReader, packages PackageReader, photographers PhotographerReader) *Service {
	return &Service{
		services:      services,
		packages:      packages,
		photographers: photographers,
	}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packages.ListActive(ctx)
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *Service) ListPhotographers(ctx context.Context) ([]domain.Photographer, error) {
	return s.photographers.ListActive(ctx)
}

func (s *Service) GetPhotographer(ctx context.Context, id int64) (*domain.Photographer, error) {
	p, err := s.photographers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotographerNotFound
		}
		return nil, err
	}
	return p, nil
}

// PreviewPricing lists every active service with the price the given
// photographer would pay, so staff can check a B2B sheet before
// attaching the photographer to a booking.
func (s *Service) PreviewPricing(ctx context.Context, photographerID int64, b2b bool) (*PricePreview, error) {
	p, err := s.GetPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	services, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	profile := pricing.ProfileFor(p, b2b)
	preview := &PricePreview{
		PhotographerID: p.ID,
		B2B:            profile.B2B,
		Rows:           make([]PricePreviewRow, 0, len(services)),
	}
	for _, svc := range services {
		effective := pricing.EffectivePrice(svc.BasePrice, profile, svc.ID)
		preview.Rows = append(preview.Rows, PricePreviewRow{
			ServiceID:      svc.ID,
			ServiceName:    svc.Name,
			BasePrice:      svc.BasePrice,
			EffectivePrice: effective,
			Discounted:     effective != svc.BasePrice,
		})
	}
	return preview, nil
}
