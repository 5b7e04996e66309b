package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type interestRepository struct {
	db *sqlx.DB
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *domain.Interest) error {
	query := `
		INSERT INTO interests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, interest.SenderID, interest.ReceiverID, interest.Status).
		Scan(&interest.ID, &interest.CreatedAt, &interest.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrInterestAlreadySent
	}
	return err
}

func (r *interestRepository) GetByID(ctx context.Context, id int) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT * FROM interests WHERE id = $1`
	err := r.db.GetContext(ctx, &interest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) GetBySenderAndReceiver(ctx context.Context, senderID, receiverID int) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT * FROM interests WHERE sender_id = $1 AND receiver_id = $2`
	err := r.db.GetContext(ctx, &interest, query, senderID, receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

// UpdateStatus answers a pending interest. An interest that was already
// answered yields ErrInterestNotPending.
func (r *interestRepository) UpdateStatus(ctx context.Context, id int, status domain.InterestStatus) (*domain.Interest, error) {
	var interest domain.Interest
	query := `
		UPDATE interests SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
		RETURNING *
	`
	err := r.db.GetContext(ctx, &interest, query, status, id, domain.InterestPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, err := r.GetByID(ctx, id); err != nil {
				return nil, err
			}
			return nil, domain.ErrInterestNotPending
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) ListBySender(ctx context.Context, senderID int) ([]*domain.Interest, error) {
	interests := []*domain.Interest{}
	query := `SELECT * FROM interests WHERE sender_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &interests, query, senderID)
	return interests, err
}

func (r *interestRepository) ListByReceiver(ctx context.Context, receiverID int) ([]*domain.Interest, error) {
	interests := []*domain.Interest{}
	query := `SELECT * FROM interests WHERE receiver_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &interests, query, receiverID)
	return interests, err
}
