package repository

import (
	"context"

	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if tx := r.db.WithContext(ctx).First(&s, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// GetByIDs returns the requested services keyed by ID; missing IDs are
// simply absent from the map.
func (r *ServiceRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Service, error) {
	var rows []domain.Service
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make(map[int64]domain.Service, len(rows))
	for _, s := range rows {
		out[s.ID] = s
	}
	return out, nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var rows []domain.Service
	if tx := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
