package handlers

import (
	"net/http"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// statisticsHandler handles statistics report requests.
type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvcFacade
}

func newStatisticsHandler(statisticsService portssvc.StatisticsSvcFacade) *statisticsHandler {
	return &statisticsHandler{statisticsService: statisticsService}
}

// registerStatisticsRoutes registers the statistics route behind a token.
func registerStatisticsRoutes(tokenGroup *gin.RouterGroup, statisticsService portssvc.StatisticsSvcFacade) {
	h := newStatisticsHandler(statisticsService)
	tokenGroup.GET("/statistics", h.getStatistics)
}

// getStatistics returns the scoped summary plus the itemized transactions for
// [from, to]. An inverted range yields an empty report, not an error.
func (h *statisticsHandler) getStatistics(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	from, to, err := parseDateRange(params)
	if err != nil {
		respondBindingError(c, err)
		return
	}

	report, err := h.statisticsService.Report(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(report))
}
