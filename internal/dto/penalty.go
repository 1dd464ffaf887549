package dto

import (
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPenaltiesParams defines query parameters for listing penalties.
// Date filters to a single calendar day; Today is a shorthand for the current
// day and wins over Date when both are given.
type ListPenaltiesParams struct {
	Date  string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Today bool   `form:"today"`
}

// CreatePenaltyRequest defines the payload for creating a penalty.
type CreatePenaltyRequest struct {
	MemberID string          `json:"memberID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Reason   string          `json:"reason"`
	Date     *time.Time      `json:"date"`
}

// PenaltyResponse is the API representation of a penalty.
type PenaltyResponse struct {
	PenaltyID  string          `json:"penaltyID"`
	MemberID   string          `json:"memberID"`
	MemberName string          `json:"memberName,omitempty"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	IsPaid     bool            `json:"isPaid"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListPenaltiesResponse wraps the list of penalties.
type ListPenaltiesResponse struct {
	Penalties []PenaltyResponse `json:"penalties"`
}

// ToPenaltyResponse converts a domain.Penalty to its API representation.
func ToPenaltyResponse(p *domain.Penalty) PenaltyResponse {
	return PenaltyResponse{
		PenaltyID:  p.PenaltyID,
		MemberID:   p.MemberID,
		MemberName: p.MemberName,
		Date:       p.Date,
		Amount:     p.Amount,
		Reason:     p.Reason,
		IsPaid:     p.IsPaid,
		PaidDate:   p.PaidDate,
		CreatedAt:  p.CreatedAt,
	}
}

// ToListPenaltiesResponse converts domain penalties to the list response.
func ToListPenaltiesResponse(penalties []domain.Penalty) ListPenaltiesResponse {
	responses := make([]PenaltyResponse, len(penalties))
	for i := range penalties {
		responses[i] = ToPenaltyResponse(&penalties[i])
	}
	return ListPenaltiesResponse{Penalties: responses}
}
