package dto

import (
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnpaidFeeResponse is one unpaid monthly fee line in a member's breakdown.
type UnpaidFeeResponse struct {
	FeeID  string          `json:"feeID"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// UnpaidPenaltyResponse is one unpaid penalty line in a member's breakdown.
type UnpaidPenaltyResponse struct {
	PenaltyID string          `json:"penaltyID"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

// MemberDebtResponse is the per-member debt record in the debt report.
type MemberDebtResponse struct {
	MemberID          string                  `json:"memberID"`
	MemberName        string                  `json:"memberName"`
	MonthlyFeesDebt   decimal.Decimal         `json:"monthlyFeesDebt"`
	PenaltiesDebt     decimal.Decimal         `json:"penaltiesDebt"`
	TotalDebt         decimal.Decimal         `json:"totalDebt"`
	UnpaidMonthlyFees []UnpaidFeeResponse     `json:"unpaidMonthlyFees"`
	UnpaidPenalties   []UnpaidPenaltyResponse `json:"unpaidPenalties"`
}

// DebtReportResponse is the full debt report: club-wide totals plus the ranked
// per-member breakdown.
type DebtReportResponse struct {
	Summary struct {
		TotalMonthlyFeesDebt decimal.Decimal `json:"totalMonthlyFeesDebt"`
		TotalPenaltiesDebt   decimal.Decimal `json:"totalPenaltiesDebt"`
		TotalDebt            decimal.Decimal `json:"totalDebt"`
		TotalMembers         int             `json:"totalMembers"`
	} `json:"summary"`
	Debts []MemberDebtResponse `json:"debts"`
}

// ToDebtReportResponse converts a domain.DebtReport to the API response.
func ToDebtReportResponse(report *domain.DebtReport) DebtReportResponse {
	response := DebtReportResponse{
		Debts: make([]MemberDebtResponse, len(report.Debts)),
	}

	for i, debt := range report.Debts {
		fees := make([]UnpaidFeeResponse, len(debt.UnpaidMonthlyFees))
		for j, fee := range debt.UnpaidMonthlyFees {
			fees[j] = UnpaidFeeResponse{
				FeeID:  fee.FeeID,
				Month:  fee.Month,
				Year:   fee.Year,
				Amount: fee.Amount,
			}
		}
		penalties := make([]UnpaidPenaltyResponse, len(debt.UnpaidPenalties))
		for j, penalty := range debt.UnpaidPenalties {
			penalties[j] = UnpaidPenaltyResponse{
				PenaltyID: penalty.PenaltyID,
				Date:      penalty.Date,
				Amount:    penalty.Amount,
				Reason:    penalty.Reason,
			}
		}
		response.Debts[i] = MemberDebtResponse{
			MemberID:          debt.MemberID,
			MemberName:        debt.MemberName,
			MonthlyFeesDebt:   debt.MonthlyFeesDebt,
			PenaltiesDebt:     debt.PenaltiesDebt,
			TotalDebt:         debt.TotalDebt,
			UnpaidMonthlyFees: fees,
			UnpaidPenalties:   penalties,
		}
	}

	response.Summary.TotalMonthlyFeesDebt = report.Summary.TotalMonthlyFeesDebt
	response.Summary.TotalPenaltiesDebt = report.Summary.TotalPenaltiesDebt
	response.Summary.TotalDebt = report.Summary.TotalDebt
	response.Summary.TotalMembers = report.Summary.TotalMembers

	return response
}
