package services

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// MonthlyFeeSvcFacade defines operations for managing monthly fees, including
// the idempotent bulk generator.
type MonthlyFeeSvcFacade interface {
	// ListMonthlyFees returns fees filtered by the optional month/year params,
	// newest first, with member names.
	ListMonthlyFees(ctx context.Context, params dto.ListMonthlyFeesParams) ([]domain.MonthlyFee, error)

	// CreateMonthlyFee manually creates a single fee. Unlike the bulk
	// generator it does not deduplicate on (member, month, year).
	CreateMonthlyFee(ctx context.Context, req dto.CreateMonthlyFeeRequest) (*domain.MonthlyFee, error)

	// GenerateMonthlyFees creates one unpaid fee for every active member that
	// does not already have one for (month, year). The operation is idempotent
	// on (member, month, year): a repeat call reports created=0 regardless of
	// the amount given. Returns apperrors.ErrValidation on bad input and
	// apperrors.ErrNoActiveMembers when the active roster is empty.
	GenerateMonthlyFees(ctx context.Context, month, year int, amount decimal.Decimal) (*domain.BulkGenerationResult, error)

	// UpdateFeePayment toggles the paid status. Marking paid sets PaidDate to
	// the given date or the current time; unmarking clears it.
	UpdateFeePayment(ctx context.Context, feeID string, req dto.UpdatePaymentRequest) (*domain.MonthlyFee, error)

	// DeleteMonthlyFee removes a fee.
	DeleteMonthlyFee(ctx context.Context, feeID string) error
}
