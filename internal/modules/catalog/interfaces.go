package catalog

import (
	"context"

	"studiobooking/internal/domain"
)

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
}

type PackageReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	ListActive(ctx context.Context) ([]domain.Package, error)
}

type PhotographerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Photographer, error)
	ListActive(ctx context.Context) ([]domain.Photographer, error)
}
