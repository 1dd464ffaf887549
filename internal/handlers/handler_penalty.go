package handlers

import (
	"net/http"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// penaltyHandler handles penalty requests.
type penaltyHandler struct {
	penaltyService portssvc.PenaltySvcFacade
}

func newPenaltyHandler(penaltyService portssvc.PenaltySvcFacade) *penaltyHandler {
	return &penaltyHandler{penaltyService: penaltyService}
}

// registerPenaltyRoutes registers the penalty routes. Listing needs a token;
// writes are admin only.
func registerPenaltyRoutes(tokenGroup, adminGroup *gin.RouterGroup, penaltyService portssvc.PenaltySvcFacade) {
	h := newPenaltyHandler(penaltyService)

	tokenGroup.GET("/penalties", h.listPenalties)

	adminGroup.POST("/penalties", h.createPenalty)
	adminGroup.PATCH("/penalties/:id/payment", h.updatePenaltyPayment)
	adminGroup.DELETE("/penalties/:id", h.deletePenalty)
}

func (h *penaltyHandler) listPenalties(c *gin.Context) {
	var params dto.ListPenaltiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	penalties, err := h.penaltyService.ListPenalties(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPenaltiesResponse(penalties))
}

func (h *penaltyHandler) createPenalty(c *gin.Context) {
	var req dto.CreatePenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	penalty, err := h.penaltyService.CreatePenalty(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPenaltyResponse(penalty))
}

func (h *penaltyHandler) updatePenaltyPayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	penalty, err := h.penaltyService.UpdatePenaltyPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPenaltyResponse(penalty))
}

func (h *penaltyHandler) deletePenalty(c *gin.Context) {
	if err := h.penaltyService.DeletePenalty(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
