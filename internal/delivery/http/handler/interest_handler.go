package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/matrimony-backend/internal/usecase/interest"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase) *InterestHandler {
	return &InterestHandler{
		interestUseCase: interestUseCase,
	}
}

// Send handles POST /interests
// @Summary Express interest
// @Tags interests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interest.SendInterestRequest true "Receiver"
// @Success 201 {object} domain.Interest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /interests [post]
func (h *InterestHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req interest.SendInterestRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.interestUseCase.Send(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to send interest")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Respond handles PUT /interests/:id
// @Summary Accept or reject an interest
// @Tags interests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Interest ID"
// @Param request body interest.RespondInterestRequest true "Answer"
// @Success 200 {object} domain.Interest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /interests/{id} [put]
func (h *InterestHandler) Respond(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	interestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req interest.RespondInterestRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.interestUseCase.Respond(c.Request.Context(), userID, interestID, &req)
	if err != nil {
		respondError(c, err, "failed to update interest")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *InterestHandler) ListSent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.interestUseCase.ListSent(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list interests")
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *InterestHandler) ListReceived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.interestUseCase.ListReceived(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list interests")
		return
	}

	c.JSON(http.StatusOK, views)
}
