package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// fundHandler handles fund summary requests.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fundService portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fundService}
}

// registerFundRoutes registers the fund summary routes behind a token.
func registerFundRoutes(tokenGroup *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	tokenGroup.GET("/fund", h.getFundSummary)
	tokenGroup.GET("/fund/range", h.getFundSummaryRange)
}

// getFundSummary returns the all-time treasury totals.
func (h *fundHandler) getFundSummary(c *gin.Context) {
	summary, err := h.fundService.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFundSummaryResponse(summary))
}

// getFundSummaryRange returns the treasury totals scoped to [from, to].
// A range with from after to is a 400.
func (h *fundHandler) getFundSummaryRange(c *gin.Context) {
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

	summary, err := h.fundService.SummarizeRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFundSummaryResponse(summary))
}

// parseDateRange parses the already-validated YYYY-MM-DD query parameters.
func parseDateRange(params dto.DateRangeParams) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", params.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", params.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
