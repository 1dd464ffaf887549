package services

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// FundSvcFacade computes aggregate income/expense/balance figures.
type FundSvcFacade interface {
	// Summarize computes the all-time fund summary.
	Summarize(ctx context.Context) (*domain.FundSummary, error)

	// SummarizeRange computes the summary over [from, to], with from extended
	// to start-of-day and to extended to end-of-day. Returns
	// apperrors.ErrInvalidRange when from is after to.
	SummarizeRange(ctx context.Context, from, to time.Time) (*domain.FundSummary, error)
}
