package pgsql

import (
	"context"
	"fmt"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// fundRepository implements the FundRepository aggregate queries. All
// summation happens in SQL over the NUMERIC column, so results are exact.
type fundRepository struct {
	BaseRepository
}

func newFundRepository(pool *pgxpool.Pool) portsrepo.FundRepository {
	return &fundRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure fundRepository implements portsrepo.FundRepository
var _ portsrepo.FundRepository = (*fundRepository)(nil)

func (r *fundRepository) SumPaidMonthlyFees(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM monthly_fees WHERE is_paid = TRUE`
	args := []any{}
	if rng != nil {
		query += ` AND paid_date BETWEEN $1 AND $2`
		args = append(args, rng.From, rng.To)
	}
	return r.sumQuery(ctx, "paid monthly fees", query, args)
}

func (r *fundRepository) SumPaidPenalties(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM penalties WHERE is_paid = TRUE`
	args := []any{}
	if rng != nil {
		query += ` AND paid_date BETWEEN $1 AND $2`
		args = append(args, rng.From, rng.To)
	}
	return r.sumQuery(ctx, "paid penalties", query, args)
}

func (r *fundRepository) SumExpenses(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses`
	args := []any{}
	if rng != nil {
		query += ` WHERE date BETWEEN $1 AND $2`
		args = append(args, rng.From, rng.To)
	}
	return r.sumQuery(ctx, "expenses", query, args)
}

func (r *fundRepository) sumQuery(ctx context.Context, what, query string, args []any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", what, err)
	}
	return total, nil
}
