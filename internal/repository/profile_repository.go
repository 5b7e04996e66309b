package repository

import (
	"context"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// ProfileRepository stores the profile and its per-user sub-records. Every
// Upsert is keyed on user_id.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)

	UpsertEducation(ctx context.Context, education *domain.Education) error
	GetEducation(ctx context.Context, userID int) (*domain.Education, error)

	UpsertCareer(ctx context.Context, career *domain.Career) error
	GetCareer(ctx context.Context, userID int) (*domain.Career, error)

	UpsertFamily(ctx context.Context, family *domain.Family) error
	GetFamily(ctx context.Context, userID int) (*domain.Family, error)
}

type PreferenceRepository interface {
	Upsert(ctx context.Context, pref *domain.Preference) error
	GetByUserID(ctx context.Context, userID int) (*domain.Preference, error)
}

type HoroscopeRepository interface {
	Upsert(ctx context.Context, horoscope *domain.Horoscope) error
	GetByUserID(ctx context.Context, userID int) (*domain.Horoscope, error)
}

// CompleteProfileReader assembles complete profiles. GetCompleteProfile
// returns nil, nil when the user has no profile.
type CompleteProfileReader interface {
	GetCompleteProfile(ctx context.Context, userID int) (*domain.CompleteProfile, error)
	GetAllCompleteProfiles(ctx context.Context) ([]*domain.CompleteProfile, error)
}
