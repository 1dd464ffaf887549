package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/clubfundhq/clubfund_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMonthlyFeeRepository struct {
	BaseRepository
}

func newPgxMonthlyFeeRepository(pool *pgxpool.Pool) portsrepo.MonthlyFeeRepository {
	return &PgxMonthlyFeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMonthlyFeeRepository implements portsrepo.MonthlyFeeRepository
var _ portsrepo.MonthlyFeeRepository = (*PgxMonthlyFeeRepository)(nil)

// Helper to convert domain.MonthlyFee to models.MonthlyFee
func toModelMonthlyFee(d domain.MonthlyFee) models.MonthlyFee {
	return models.MonthlyFee{
		FeeID:     d.FeeID,
		MemberID:  d.MemberID,
		Month:     d.Month,
		Year:      d.Year,
		Amount:    d.Amount,
		IsPaid:    d.IsPaid,
		PaidDate:  d.PaidDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Helper to convert models.MonthlyFee to domain.MonthlyFee
func toDomainMonthlyFee(m models.MonthlyFee) domain.MonthlyFee {
	return domain.MonthlyFee{
		FeeID:      m.FeeID,
		MemberID:   m.MemberID,
		MemberName: m.MemberName,
		Month:      m.Month,
		Year:       m.Year,
		Amount:     m.Amount,
		IsPaid:     m.IsPaid,
		PaidDate:   m.PaidDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// feeSelectWithMember is the shared projection joining the owning member.
const feeSelectWithMember = `
	SELECT f.fee_id, f.member_id, m.name, f.month, f.year, f.amount, f.is_paid, f.paid_date, f.created_at, f.updated_at
	FROM monthly_fees f
	JOIN members m ON f.member_id = m.member_id
`

func (r *PgxMonthlyFeeRepository) scanFeeRows(rows pgx.Rows) ([]domain.MonthlyFee, error) {
	defer rows.Close()

	fees := []domain.MonthlyFee{}
	for rows.Next() {
		var m models.MonthlyFee
		if err := rows.Scan(&m.FeeID, &m.MemberID, &m.MemberName, &m.Month, &m.Year, &m.Amount, &m.IsPaid, &m.PaidDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan monthly fee row: %w", err)
		}
		fees = append(fees, toDomainMonthlyFee(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly fee rows: %w", rows.Err())
	}
	return fees, nil
}

func (r *PgxMonthlyFeeRepository) SaveMonthlyFee(ctx context.Context, fee domain.MonthlyFee) error {
	m := toModelMonthlyFee(fee)
	query := `
        INSERT INTO monthly_fees (fee_id, member_id, month, year, amount, is_paid, paid_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.FeeID, m.MemberID, m.Month, m.Year, m.Amount, m.IsPaid, m.PaidDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save monthly fee: %w", err)
	}
	return nil
}

// SaveMonthlyFees inserts all given fees inside a single DB transaction so a
// partial batch is never visible as complete. Returns the committed row count.
func (r *PgxMonthlyFeeRepository) SaveMonthlyFees(ctx context.Context, fees []domain.MonthlyFee) (int, error) {
	if len(fees) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	batch := &pgx.Batch{}
	query := `
        INSERT INTO monthly_fees (fee_id, member_id, month, year, amount, is_paid, paid_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	for _, fee := range fees {
		m := toModelMonthlyFee(fee)
		batch.Queue(query, m.FeeID, m.MemberID, m.Month, m.Year, m.Amount, m.IsPaid, m.PaidDate, m.CreatedAt, m.UpdatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to execute monthly fee batch insert: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(fees), nil
}

func (r *PgxMonthlyFeeRepository) FindMonthlyFeeByID(ctx context.Context, feeID string) (*domain.MonthlyFee, error) {
	query := feeSelectWithMember + ` WHERE f.fee_id = $1;`
	var m models.MonthlyFee
	err := r.Pool.QueryRow(ctx, query, feeID).Scan(
		&m.FeeID, &m.MemberID, &m.MemberName, &m.Month, &m.Year, &m.Amount, &m.IsPaid, &m.PaidDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find monthly fee by ID %s: %w", feeID, err)
	}
	fee := toDomainMonthlyFee(m)
	return &fee, nil
}

func (r *PgxMonthlyFeeRepository) FindMonthlyFees(ctx context.Context, filter portsrepo.MonthlyFeeFilter) ([]domain.MonthlyFee, error) {
	query := feeSelectWithMember + ` WHERE 1=1`
	args := []any{}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND f.month = $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND f.year = $%d", len(args))
	}
	query += ` ORDER BY f.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly fees: %w", err)
	}
	return r.scanFeeRows(rows)
}

func (r *PgxMonthlyFeeRepository) FindUnpaidMonthlyFees(ctx context.Context) ([]domain.MonthlyFee, error) {
	query := feeSelectWithMember + `
		WHERE f.is_paid = FALSE
		ORDER BY f.year DESC, f.month DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid monthly fees: %w", err)
	}
	return r.scanFeeRows(rows)
}

func (r *PgxMonthlyFeeRepository) FindPaidMonthlyFeesInRange(ctx context.Context, rng domain.DateRange) ([]domain.MonthlyFee, error) {
	query := feeSelectWithMember + `
		WHERE f.is_paid = TRUE AND f.paid_date BETWEEN $1 AND $2
		ORDER BY f.paid_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query paid monthly fees in range: %w", err)
	}
	return r.scanFeeRows(rows)
}

func (r *PgxMonthlyFeeRepository) FindMemberIDsWithFee(ctx context.Context, month, year int) ([]string, error) {
	query := `SELECT member_id FROM monthly_fees WHERE month = $1 AND year = $2;`
	rows, err := r.Pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query member IDs with fee for %d/%d: %w", month, year, err)
	}
	defer rows.Close()

	memberIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member ID: %w", err)
		}
		memberIDs = append(memberIDs, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member ID rows: %w", rows.Err())
	}
	return memberIDs, nil
}

func (r *PgxMonthlyFeeRepository) MarkFeePayment(ctx context.Context, feeID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error {
	query := `
        UPDATE monthly_fees
        SET is_paid = $1, paid_date = $2, updated_at = $3
        WHERE fee_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, isPaid, paidDate, updatedAt, feeID)
	if err != nil {
		return fmt.Errorf("failed to update monthly fee payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("monthly fee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMonthlyFeeRepository) DeleteMonthlyFee(ctx context.Context, feeID string) error {
	query := `DELETE FROM monthly_fees WHERE fee_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, feeID)
	if err != nil {
		return fmt.Errorf("failed to delete monthly fee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("monthly fee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
