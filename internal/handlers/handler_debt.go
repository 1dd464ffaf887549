package handlers

import (
	"net/http"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// debtHandler handles debt report requests.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(debtService portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: debtService}
}

// registerDebtRoutes registers the debt report route. Publicly readable so
// members can see who owes what.
func registerDebtRoutes(publicGroup *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)
	publicGroup.GET("/debts", h.getDebtReport)
}

// getDebtReport returns per-member unpaid fees and penalties ranked by total
// debt, plus club-wide totals.
func (h *debtHandler) getDebtReport(c *gin.Context) {
	report, err := h.debtService.ComputeDebts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtReportResponse(report))
}
