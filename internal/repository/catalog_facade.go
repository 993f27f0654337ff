package repository

import (
	"context"

	"studiobooking/internal/domain"
)

// Catalog bundles the read side of the reference-data repositories
// behind one surface for the booking editor.
type Catalog struct {
	services      *ServiceRepository
	packages      *PackageRepository
	photographers *PhotographerRepository
}

func NewCatalog(services *ServiceRepository, packages *PackageRepository, photographers *PhotographerRepository) *Catalog {
	return &Catalog{
		services:      services,
		packages:      packages,
		photographers: photographers,
	}
}

func (c *Catalog) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return c.services.GetByID(ctx, id)
}

func (c *Catalog) GetServices(ctx context.Context, ids []int64) (map[int64]domain.Service, error) {
	return c.services.GetByIDs(ctx, ids)
}

func (c *Catalog) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	return c.packages.GetByID(ctx, id)
}

func (c *Catalog) GetPhotographer(ctx context.Context, id int64) (*domain.Photographer, error) {
	return c.photographers.GetByID(ctx, id)
}
