package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfileComplete(ctx context.Context, userID int, isComplete bool) error
}
