package services

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// DebtSvcFacade computes the per-member debt breakdown. Debts are always
// "as of now", so the operation takes no scope.
type DebtSvcFacade interface {
	// ComputeDebts groups all unpaid fees and penalties by member and returns
	// the ranked breakdown plus club-wide totals.
	ComputeDebts(ctx context.Context) (*domain.DebtReport, error)
}
