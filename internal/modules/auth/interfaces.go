package auth

import (
	"context"

	"studiobooking/internal/domain"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
