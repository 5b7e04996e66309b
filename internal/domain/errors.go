package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrEducationNotFound   = errors.New("education not found")
	ErrCareerNotFound      = errors.New("career not found")
	ErrFamilyNotFound      = errors.New("family not found")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrHoroscopeNotFound   = errors.New("horoscope not found")
	ErrInvalidInput        = errors.New("invalid input")

	ErrInterestNotFound      = errors.New("interest not found")
	ErrInterestAlreadySent   = errors.New("interest already sent to this profile")
	ErrCannotInterestSelf    = errors.New("cannot send interest to yourself")
	ErrInvalidInterestStatus = errors.New("invalid status, must be 'accepted' or 'rejected'")
	ErrInterestNotPending    = errors.New("interest already answered")
	ErrForbidden             = errors.New("forbidden")
)
