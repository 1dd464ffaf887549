package repositories

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundRepository defines the aggregate (SUM) queries backing the fund summary
// and statistics computations. A nil range means all-time; summation happens
// in SQL in exact decimal arithmetic.
type FundRepository interface {
	// SumPaidMonthlyFees sums paid fee amounts, filtered by paid date when a
	// range is given.
	SumPaidMonthlyFees(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error)

	// SumPaidPenalties sums paid penalty amounts, filtered by paid date when a
	// range is given.
	SumPaidPenalties(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error)

	// SumExpenses sums expense amounts, filtered by expense date when a range
	// is given.
	SumExpenses(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error)
}
