package repository

import (
	"context"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type PhotographerRepository struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id int64) (*domain.Photographer, error) {
	var p domain.Photographer
	tx := r.db.WithContext(ctx).Preload("Services").First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PhotographerRepository) ListActive(ctx context.Context) ([]domain.Photographer, error) {
	var rows []domain.Photographer
	tx := r.db.WithContext(ctx).Preload("Services").Where("status = ?", domain.PhotographerActive).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
