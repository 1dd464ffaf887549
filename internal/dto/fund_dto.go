package dto

import (
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeParams defines the from/to query parameters for scoped queries.
// Dates are day-granularity; the service extends to start/end of day.
type DateRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// FundSummaryResponse carries the top-line treasury numbers with the income
// breakdown by source.
type FundSummaryResponse struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	MonthlyFeesIncome decimal.Decimal `json:"monthlyFeesIncome"`
	PenaltiesIncome   decimal.Decimal `json:"penaltiesIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"`
}

// ToFundSummaryResponse converts a domain.FundSummary to the API response.
func ToFundSummaryResponse(s *domain.FundSummary) FundSummaryResponse {
	return FundSummaryResponse{
		TotalIncome:       s.TotalIncome,
		MonthlyFeesIncome: s.MonthlyFeesIncome,
		PenaltiesIncome:   s.PenaltiesIncome,
		TotalExpense:      s.TotalExpense,
		Balance:           s.Balance,
	}
}
