package repositories

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// MonthlyFeeFilter narrows monthly fee listings. Nil fields are unfiltered.
type MonthlyFeeFilter struct {
	Month *int
	Year  *int
}

// MonthlyFeeRepository defines persistence operations for monthly fees.
type MonthlyFeeRepository interface {
	// SaveMonthlyFee inserts a single fee.
	SaveMonthlyFee(ctx context.Context, fee domain.MonthlyFee) error

	// SaveMonthlyFees inserts the given fees as one atomic batch and returns
	// the number of rows actually committed. On failure nothing is committed
	// and the returned count is zero.
	SaveMonthlyFees(ctx context.Context, fees []domain.MonthlyFee) (int, error)

	// FindMonthlyFeeByID returns a fee (with member name) or apperrors.ErrNotFound.
	FindMonthlyFeeByID(ctx context.Context, feeID string) (*domain.MonthlyFee, error)

	// FindMonthlyFees returns fees matching the filter, joined with member
	// names, ordered by creation date descending.
	FindMonthlyFees(ctx context.Context, filter MonthlyFeeFilter) ([]domain.MonthlyFee, error)

	// FindUnpaidMonthlyFees returns all unpaid fees joined with member names,
	// ordered by year descending then month descending.
	FindUnpaidMonthlyFees(ctx context.Context) ([]domain.MonthlyFee, error)

	// FindPaidMonthlyFeesInRange returns paid fees whose paid date falls in the
	// range, joined with member names, ordered by paid date descending.
	FindPaidMonthlyFeesInRange(ctx context.Context, rng domain.DateRange) ([]domain.MonthlyFee, error)

	// FindMemberIDsWithFee returns the IDs of members that already have a fee
	// for the given period.
	FindMemberIDsWithFee(ctx context.Context, month, year int) ([]string, error)

	// MarkFeePayment updates the paid flag and paid date of a fee, or returns
	// apperrors.ErrNotFound.
	MarkFeePayment(ctx context.Context, feeID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error

	// DeleteMonthlyFee removes a fee or returns apperrors.ErrNotFound.
	DeleteMonthlyFee(ctx context.Context, feeID string) error
}
