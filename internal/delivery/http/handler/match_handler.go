package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetMatches handles GET /matches
// @Summary Get recommendations
// @Description Ranked profiles scoring at least the match threshold, best first
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} matching.ScoredProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	results, err := h.matchUseCase.Recommend(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get matches")
		return
	}

	c.JSON(http.StatusOK, results)
}

// Search handles GET /search
// @Summary Search profiles
// @Description Filter profiles by field values without scoring
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param gender query string false "Male or Female"
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param religion query string false "Religion"
// @Param location query string false "Location substring"
// @Success 200 {array} domain.CompleteProfile
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *MatchHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var criteria matching.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query: " + err.Error()})
		return
	}

	results, err := h.matchUseCase.Search(c.Request.Context(), userID, criteria)
	if err != nil {
		respondError(c, err, "failed to search profiles")
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetCompatibility handles GET /matches/:user_id/compatibility
func (h *MatchHandler) GetCompatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	otherID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.matchUseCase.Compatibility(c.Request.Context(), userID, otherID)
	if err != nil {
		respondError(c, err, "failed to compute compatibility")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInsight handles GET /matches/:user_id/insight
func (h *MatchHandler) GetInsight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	otherID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.matchUseCase.Insight(c.Request.Context(), userID, otherID)
	if err != nil {
		respondError(c, err, "failed to explain match")
		return
	}

	c.JSON(http.StatusOK, resp)
}
