package repository

import (
	"context"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	tx := r.db.WithContext(ctx).Preload("Services").First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]domain.Package, error) {
	var rows []domain.Package
	tx := r.db.WithContext(ctx).Preload("Services").Where("active = ?", true).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
