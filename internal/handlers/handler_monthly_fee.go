package handlers

import (
	"net/http"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// monthlyFeeHandler handles monthly fee requests.
type monthlyFeeHandler struct {
	feeService portssvc.MonthlyFeeSvcFacade
}

func newMonthlyFeeHandler(feeService portssvc.MonthlyFeeSvcFacade) *monthlyFeeHandler {
	return &monthlyFeeHandler{feeService: feeService}
}

// registerMonthlyFeeRoutes registers the monthly fee routes. The list is
// public so members can check their own dues; writes are admin only.
func registerMonthlyFeeRoutes(publicGroup, adminGroup *gin.RouterGroup, feeService portssvc.MonthlyFeeSvcFacade) {
	h := newMonthlyFeeHandler(feeService)

	publicGroup.GET("/monthly-fees", h.listMonthlyFees)

	adminGroup.POST("/monthly-fees", h.createMonthlyFee)
	adminGroup.POST("/monthly-fees/bulk", h.bulkGenerateFees)
	adminGroup.PATCH("/monthly-fees/:id/payment", h.updateFeePayment)
	adminGroup.DELETE("/monthly-fees/:id", h.deleteMonthlyFee)
}

func (h *monthlyFeeHandler) listMonthlyFees(c *gin.Context) {
	var params dto.ListMonthlyFeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	fees, err := h.feeService.ListMonthlyFees(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonthlyFeesResponse(fees))
}

func (h *monthlyFeeHandler) createMonthlyFee(c *gin.Context) {
	var req dto.CreateMonthlyFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fee, err := h.feeService.CreateMonthlyFee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMonthlyFeeResponse(fee))
}

// bulkGenerateFees creates one unpaid fee per active member for the given
// period. Calling it again for the same period is a harmless no-op.
func (h *monthlyFeeHandler) bulkGenerateFees(c *gin.Context) {
	var req dto.BulkGenerateFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.feeService.GenerateMonthlyFees(c.Request.Context(), req.Month, req.Year, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBulkGenerateFeesResponse(result))
}

func (h *monthlyFeeHandler) updateFeePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fee, err := h.feeService.UpdateFeePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyFeeResponse(fee))
}

func (h *monthlyFeeHandler) deleteMonthlyFee(c *gin.Context) {
	if err := h.feeService.DeleteMonthlyFee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
