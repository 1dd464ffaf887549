package services

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
)

// PenaltySvcFacade defines operations for managing penalties.
type PenaltySvcFacade interface {
	// ListPenalties returns penalties matching the optional day filter, newest
	// first, with member names.
	ListPenalties(ctx context.Context, params dto.ListPenaltiesParams) ([]domain.Penalty, error)

	// CreatePenalty records a new penalty. Date defaults to the current time.
	CreatePenalty(ctx context.Context, req dto.CreatePenaltyRequest) (*domain.Penalty, error)

	// UpdatePenaltyPayment toggles the paid status. Marking paid sets PaidDate
	// to the given date or the current time; unmarking clears it.
	UpdatePenaltyPayment(ctx context.Context, penaltyID string, req dto.UpdatePaymentRequest) (*domain.Penalty, error)

	// DeletePenalty removes a penalty.
	DeletePenalty(ctx context.Context, penaltyID string) error
}
