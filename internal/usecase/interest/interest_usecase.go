package interest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

type InterestUseCase struct {
	interestRepo repository.InterestRepository
	profileRepo  repository.ProfileRepository
	log          *slog.Logger
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	profileRepo repository.ProfileRepository,
	log *slog.Logger,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo: interestRepo,
		profileRepo:  profileRepo,
		log:          log,
	}
}

// SendInterestRequest represents an expression of interest
type SendInterestRequest struct {
	ReceiverID int `json:"receiver_id" binding:"required,min=1"`
}

// RespondInterestRequest represents the receiver's answer
type RespondInterestRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// InterestView pairs an interest with the profile of the other party
type InterestView struct {
	*domain.Interest
	Profile *domain.Profile `json:"profile,omitempty"`
}

// Send records a pending interest from senderID to the receiver.
func (uc *InterestUseCase) Send(ctx context.Context, senderID int, req *SendInterestRequest) (*domain.Interest, error) {
	if senderID == req.ReceiverID {
		return nil, domain.ErrCannotInterestSelf
	}

	if _, err := uc.profileRepo.GetByUserID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get receiver profile: %w", err)
	}

	existing, err := uc.interestRepo.GetBySenderAndReceiver(ctx, senderID, req.ReceiverID)
	if err == nil && existing != nil {
		return nil, domain.ErrInterestAlreadySent
	}
	if err != nil && !errors.Is(err, domain.ErrInterestNotFound) {
		return nil, fmt.Errorf("failed to check existing interest: %w", err)
	}

	interest := &domain.Interest{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Status:     domain.InterestPending,
	}
	if err := uc.interestRepo.Create(ctx, interest); err != nil {
		if errors.Is(err, domain.ErrInterestAlreadySent) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create interest: %w", err)
	}

	metrics.RecordInterest(string(domain.InterestPending))
	uc.log.Info("interest sent", "interest_id", interest.ID, "sender_id", senderID, "receiver_id", req.ReceiverID)
	return interest, nil
}

// Respond lets the receiver accept or reject a pending interest.
func (uc *InterestUseCase) Respond(ctx context.Context, userID, interestID int, req *RespondInterestRequest) (*domain.Interest, error) {
	status, err := domain.ParseResponseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	interest, err := uc.interestRepo.GetByID(ctx, interestID)
	if err != nil {
		if errors.Is(err, domain.ErrInterestNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get interest: %w", err)
	}

	if interest.ReceiverID != userID {
		return nil, domain.ErrForbidden
	}
	if interest.Status != domain.InterestPending {
		return nil, domain.ErrInterestNotPending
	}

	updated, err := uc.interestRepo.UpdateStatus(ctx, interestID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update interest: %w", err)
	}

	metrics.RecordInterest(string(status))
	uc.log.Info("interest answered", "interest_id", interestID, "status", status)
	return updated, nil
}

// ListSent returns interests sent by userID, newest first, with the
// receivers' profiles.
func (uc *InterestUseCase) ListSent(ctx context.Context, userID int) ([]InterestView, error) {
	interests, err := uc.interestRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent interests: %w", err)
	}
	return uc.withProfiles(ctx, userID, interests)
}

// ListReceived returns interests addressed to userID, newest first, with
// the senders' profiles.
func (uc *InterestUseCase) ListReceived(ctx context.Context, userID int) ([]InterestView, error) {
	interests, err := uc.interestRepo.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received interests: %w", err)
	}
	return uc.withProfiles(ctx, userID, interests)
}

func (uc *InterestUseCase) withProfiles(ctx context.Context, userID int, interests []*domain.Interest) ([]InterestView, error) {
	views := make([]InterestView, 0, len(interests))
	for _, i := range interests {
		view := InterestView{Interest: i}
		if otherID, ok := i.GetOtherUserID(userID); ok {
			profile, err := uc.profileRepo.GetByUserID(ctx, otherID)
			switch {
			case err == nil:
				view.Profile = profile
			case !errors.Is(err, domain.ErrProfileNotFound):
				return nil, fmt.Errorf("failed to get profile: %w", err)
			}
		}
		views = append(views, view)
	}
	return views, nil
}
