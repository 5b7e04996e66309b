package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

const dateLayout = "2006-01-02"

const minimumAge = 18

// CacheInvalidator drops cached recommendation lists after a write.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

type ProfileUseCase struct {
	profileRepo   repository.ProfileRepository
	prefRepo      repository.PreferenceRepository
	horoscopeRepo repository.HoroscopeRepository
	userRepo      repository.UserRepository
	completeRepo  repository.CompleteProfileReader
	cache         CacheInvalidator
	log           *slog.Logger
	now           func() time.Time
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
	horoscopeRepo repository.HoroscopeRepository,
	userRepo repository.UserRepository,
	completeRepo repository.CompleteProfileReader,
	cache CacheInvalidator,
	log *slog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:   profileRepo,
		prefRepo:      prefRepo,
		horoscopeRepo: horoscopeRepo,
		userRepo:      userRepo,
		completeRepo:  completeRepo,
		cache:         cache,
		log:           log,
		now:           time.Now,
	}
}

// ProfileResponse represents profile response with additional info
type ProfileResponse struct {
	*domain.Profile
	Age int `json:"age"`
}

// UpsertProfile creates or replaces the caller's profile.
func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, userID int, req *ProfileRequest) (*domain.Profile, error) {
	gender, ok := domain.ParseGender(req.Gender)
	if !ok {
		return nil, fmt.Errorf("%w: gender must be Male or Female", domain.ErrInvalidInput)
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if domain.CalendarAge(dob, uc.now()) < minimumAge {
		return nil, fmt.Errorf("%w: must be at least %d years old", domain.ErrInvalidInput, minimumAge)
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = "India"
	}

	profile := &domain.Profile{
		UserID:         userID,
		FullName:       strings.TrimSpace(req.FullName),
		Gender:         gender,
		DateOfBirth:    dob,
		Height:         req.Height,
		MaritalStatus:  req.MaritalStatus,
		Religion:       req.Religion,
		MotherTongue:   req.MotherTongue,
		Caste:          req.Caste,
		Subcaste:       req.Subcaste,
		Gotram:         req.Gotram,
		Location:       req.Location,
		State:          req.State,
		City:           req.City,
		Country:        country,
		About:          req.About,
		Hobbies:        req.Hobbies,
		ProfilePicture: req.ProfilePicture,
	}
	if profile.Hobbies == nil {
		profile.Hobbies = []string{}
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	if err := uc.userRepo.UpdateProfileComplete(ctx, userID, true); err != nil {
		return nil, fmt.Errorf("failed to mark profile complete: %w", err)
	}

	uc.invalidate(ctx, userID)
	return profile, nil
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	return uc.GetProfileByUserID(ctx, userID)
}

// GetProfileByUserID returns a profile with the calculated age.
func (uc *ProfileUseCase) GetProfileByUserID(ctx context.Context, userID int) (*ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Profile: profile, Age: profile.AgeAt(uc.now())}, nil
}

func (uc *ProfileUseCase) UpsertEducation(ctx context.Context, userID int, req *EducationRequest) (*domain.Education, error) {
	if err := uc.requireProfile(ctx, userID); err != nil {
		return nil, err
	}

	education := &domain.Education{
		UserID:           userID,
		HighestEducation: req.HighestEducation,
		College:          req.College,
		Degree:           req.Degree,
		YearOfPassing:    req.YearOfPassing,
	}
	if err := uc.profileRepo.UpsertEducation(ctx, education); err != nil {
		return nil, fmt.Errorf("failed to save education: %w", err)
	}

	uc.invalidate(ctx, userID)
	return education, nil
}

func (uc *ProfileUseCase) UpsertCareer(ctx context.Context, userID int, req *CareerRequest) (*domain.Career, error) {
	if err := uc.requireProfile(ctx, userID); err != nil {
		return nil, err
	}

	career := &domain.Career{
		UserID:       userID,
		Occupation:   req.Occupation,
		EmployedIn:   req.EmployedIn,
		Company:      req.Company,
		AnnualIncome: req.AnnualIncome,
	}
	if err := uc.profileRepo.UpsertCareer(ctx, career); err != nil {
		return nil, fmt.Errorf("failed to save career: %w", err)
	}

	uc.invalidate(ctx, userID)
	return career, nil
}

func (uc *ProfileUseCase) UpsertFamily(ctx context.Context, userID int, req *FamilyRequest) (*domain.Family, error) {
	if err := uc.requireProfile(ctx, userID); err != nil {
		return nil, err
	}

	family := &domain.Family{
		UserID:          userID,
		FatherStatus:    req.FatherStatus,
		MotherStatus:    req.MotherStatus,
		FamilyType:      req.FamilyType,
		FamilyValues:    req.FamilyValues,
		FamilyAffluence: req.FamilyAffluence,
		Siblings:        req.Siblings,
	}
	if err := uc.profileRepo.UpsertFamily(ctx, family); err != nil {
		return nil, fmt.Errorf("failed to save family: %w", err)
	}

	// cached lists carry the whole complete profile
	uc.invalidate(ctx, userID)
	return family, nil
}

// UpsertPreferences stores partner preferences. Range bounds must be
// ordered when both are given.
func (uc *ProfileUseCase) UpsertPreferences(ctx context.Context, userID int, req *PreferencesRequest) (*domain.Preference, error) {
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		return nil, fmt.Errorf("%w: min_age is greater than max_age", domain.ErrInvalidInput)
	}
	if req.MinHeight != nil && req.MaxHeight != nil && *req.MinHeight > *req.MaxHeight {
		return nil, fmt.Errorf("%w: min_height is greater than max_height", domain.ErrInvalidInput)
	}

	pref := &domain.Preference{
		UserID:               userID,
		MinAge:               req.MinAge,
		MaxAge:               req.MaxAge,
		MinHeight:            req.MinHeight,
		MaxHeight:            req.MaxHeight,
		MaritalStatus:        req.MaritalStatus,
		Religion:             req.Religion,
		Caste:                req.Caste,
		MotherTongue:         req.MotherTongue,
		Location:             req.Location,
		Education:            req.Education,
		Occupation:           req.Occupation,
		Income:               req.Income,
		SpecificRequirements: req.SpecificRequirements,
	}
	if err := uc.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	uc.invalidate(ctx, userID)
	return pref, nil
}

func (uc *ProfileUseCase) GetPreferences(ctx context.Context, userID int) (*domain.Preference, error) {
	return uc.prefRepo.GetByUserID(ctx, userID)
}

func (uc *ProfileUseCase) UpsertHoroscope(ctx context.Context, userID int, req *HoroscopeRequest) (*domain.Horoscope, error) {
	h := &domain.Horoscope{
		UserID:       userID,
		TimeOfBirth:  req.TimeOfBirth,
		PlaceOfBirth: req.PlaceOfBirth,
		Manglik:      req.Manglik,
		Sun:          req.Sun,
		Moon:         req.Moon,
		Venus:        req.Venus,
		Mars:         req.Mars,
		Mercury:      req.Mercury,
		Jupiter:      req.Jupiter,
		Saturn:       req.Saturn,
		Rahu:         req.Rahu,
		Ketu:         req.Ketu,
		Nakshatra:    req.Nakshatra,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		h.DateOfBirth = &dob
	}

	if err := uc.horoscopeRepo.Upsert(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to save horoscope: %w", err)
	}

	uc.invalidate(ctx, userID)
	return h, nil
}

func (uc *ProfileUseCase) GetHoroscope(ctx context.Context, userID int) (*domain.Horoscope, error) {
	return uc.horoscopeRepo.GetByUserID(ctx, userID)
}

// GetCompleteProfile returns the assembled profile or ErrProfileNotFound.
func (uc *ProfileUseCase) GetCompleteProfile(ctx context.Context, userID int) (*domain.CompleteProfile, error) {
	cp, err := uc.completeRepo.GetCompleteProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complete profile: %w", err)
	}
	if cp == nil {
		return nil, domain.ErrProfileNotFound
	}
	return cp, nil
}

func (uc *ProfileUseCase) requireProfile(ctx context.Context, userID int) error {
	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}
	return nil
}

// invalidate is best effort. A stale list expires with its TTL.
func (uc *ProfileUseCase) invalidate(ctx context.Context, userID int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.log.Warn("failed to invalidate recommendation cache", "user_id", userID, "error", err)
	}
}
