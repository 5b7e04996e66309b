package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *domain.Interest) error
	GetByID(ctx context.Context, id int) (*domain.Interest, error)
	GetBySenderAndReceiver(ctx context.Context, senderID, receiverID int) (*domain.Interest, error)
	UpdateStatus(ctx context.Context, id int, status domain.InterestStatus) (*domain.Interest, error)
	ListBySender(ctx context.Context, senderID int) ([]*domain.Interest, error)
	ListByReceiver(ctx context.Context, receiverID int) ([]*domain.Interest, error)
}
