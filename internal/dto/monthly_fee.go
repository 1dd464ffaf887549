package dto

import (
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListMonthlyFeesParams defines query parameters for listing monthly fees.
type ListMonthlyFeesParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1000,max=9999"`
}

// CreateMonthlyFeeRequest defines the payload for manually creating one fee.
// Manual creation does not deduplicate on (member, month, year); only the bulk
// generator does.
type CreateMonthlyFeeRequest struct {
	MemberID string          `json:"memberID" binding:"required"`
	Month    int             `json:"month" binding:"required,min=1,max=12"`
	Year     int             `json:"year" binding:"required,min=1000,max=9999"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// BulkGenerateFeesRequest defines the payload for bulk fee generation.
// Range checks happen in the service so that the generator owns its contract.
type BulkGenerateFeesRequest struct {
	Month  int             `json:"month" binding:"required"`
	Year   int             `json:"year" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdatePaymentRequest toggles the paid status of a fee or penalty. PaidDate
// is optional; when marking paid without one, the server uses the current time.
type UpdatePaymentRequest struct {
	IsPaid   *bool      `json:"isPaid" binding:"required"`
	PaidDate *time.Time `json:"paidDate"`
}

// MonthlyFeeResponse is the API representation of a monthly fee.
type MonthlyFeeResponse struct {
	FeeID      string          `json:"feeID"`
	MemberID   string          `json:"memberID"`
	MemberName string          `json:"memberName,omitempty"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	IsPaid     bool            `json:"isPaid"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListMonthlyFeesResponse wraps the list of monthly fees.
type ListMonthlyFeesResponse struct {
	MonthlyFees []MonthlyFeeResponse `json:"monthlyFees"`
}

// BulkGenerateFeesResponse reports the outcome of a bulk generation run.
type BulkGenerateFeesResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Total   int    `json:"total"`
}

// ToMonthlyFeeResponse converts a domain.MonthlyFee to its API representation.
func ToMonthlyFeeResponse(f *domain.MonthlyFee) MonthlyFeeResponse {
	return MonthlyFeeResponse{
		FeeID:      f.FeeID,
		MemberID:   f.MemberID,
		MemberName: f.MemberName,
		Month:      f.Month,
		Year:       f.Year,
		Amount:     f.Amount,
		IsPaid:     f.IsPaid,
		PaidDate:   f.PaidDate,
		CreatedAt:  f.CreatedAt,
	}
}

// ToListMonthlyFeesResponse converts domain fees to the list response.
func ToListMonthlyFeesResponse(fees []domain.MonthlyFee) ListMonthlyFeesResponse {
	responses := make([]MonthlyFeeResponse, len(fees))
	for i := range fees {
		responses[i] = ToMonthlyFeeResponse(&fees[i])
	}
	return ListMonthlyFeesResponse{MonthlyFees: responses}
}

// ToBulkGenerateFeesResponse converts a generation result to the API response.
func ToBulkGenerateFeesResponse(result *domain.BulkGenerationResult) BulkGenerateFeesResponse {
	msg := "Monthly fees created successfully"
	if result.Created == 0 {
		msg = "All active members already have fees for this month/year"
	}
	return BulkGenerateFeesResponse{
		Message: msg,
		Created: result.Created,
		Skipped: result.Skipped,
		Total:   result.Total,
	}
}
