package dto

import (
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// StatisticsResponse combines the scoped fund summary with the itemized
// transactions contributing to it.
type StatisticsResponse struct {
	Summary FundSummaryResponse `json:"summary"`
	Details struct {
		MonthlyFees []MonthlyFeeResponse `json:"monthlyFees"`
		Penalties   []PenaltyResponse    `json:"penalties"`
		Expenses    []ExpenseResponse    `json:"expenses"`
	} `json:"details"`
}

// ToStatisticsResponse converts a domain.StatisticsReport to the API response.
func ToStatisticsResponse(report *domain.StatisticsReport) StatisticsResponse {
	response := StatisticsResponse{
		Summary: ToFundSummaryResponse(&report.Summary),
	}
	response.Details.MonthlyFees = ToListMonthlyFeesResponse(report.MonthlyFees).MonthlyFees
	response.Details.Penalties = ToListPenaltiesResponse(report.Penalties).Penalties
	response.Details.Expenses = ToListExpensesResponse(report.Expenses).Expenses
	return response
}
