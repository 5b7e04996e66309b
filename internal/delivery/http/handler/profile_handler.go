package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/matrimony-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertMyProfile handles PUT /profile/me
// @Summary Create or replace my profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.ProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpsertMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetProfileByUserID handles GET /profile/:user_id
// @Summary Get user profile
// @Description Get another user's profile by user ID
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} profile.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.profileUseCase.GetProfileByUserID(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertEducation handles PUT /profile/me/education
func (h *ProfileHandler) UpsertEducation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.EducationRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertEducation(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save education")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// UpsertCareer handles PUT /profile/me/career
func (h *ProfileHandler) UpsertCareer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.CareerRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertCareer(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save career")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// UpsertFamily handles PUT /profile/me/family
func (h *ProfileHandler) UpsertFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.FamilyRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertFamily(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save family")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// UpsertPreferences handles PUT /profile/me/preferences
// @Summary Save partner preferences
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.PreferencesRequest true "Preferences"
// @Success 200 {object} domain.Preference
// @Failure 400 {object} ErrorResponse
// @Router /profile/me/preferences [put]
func (h *ProfileHandler) UpsertPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.PreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertPreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *ProfileHandler) GetMyPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pref, err := h.profileUseCase.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get preferences")
		return
	}

	c.JSON(http.StatusOK, pref)
}

// UpsertHoroscope handles PUT /profile/me/horoscope
// @Summary Save birth chart
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.HoroscopeRequest true "Birth chart"
// @Success 200 {object} domain.Horoscope
// @Failure 400 {object} ErrorResponse
// @Router /profile/me/horoscope [put]
func (h *ProfileHandler) UpsertHoroscope(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.HoroscopeRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.profileUseCase.UpsertHoroscope(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save horoscope")
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *ProfileHandler) GetMyHoroscope(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	horoscope, err := h.profileUseCase.GetHoroscope(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get horoscope")
		return
	}

	c.JSON(http.StatusOK, horoscope)
}

// GetCompleteProfile handles GET /complete-profile/:user_id
// @Summary Get complete profile
// @Description Profile with education, career, family, preferences and horoscope
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.CompleteProfile
// @Failure 404 {object} ErrorResponse
// @Router /complete-profile/{user_id} [get]
func (h *ProfileHandler) GetCompleteProfile(c *gin.Context) {
	targetID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	cp, err := h.profileUseCase.GetCompleteProfile(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, cp)
}

// GetMyCompleteProfile handles GET /my-profile
func (h *ProfileHandler) GetMyCompleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cp, err := h.profileUseCase.GetCompleteProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, cp)
}
