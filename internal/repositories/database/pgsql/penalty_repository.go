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

type PgxPenaltyRepository struct {
	BaseRepository
}

func newPgxPenaltyRepository(pool *pgxpool.Pool) portsrepo.PenaltyRepository {
	return &PgxPenaltyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPenaltyRepository implements portsrepo.PenaltyRepository
var _ portsrepo.PenaltyRepository = (*PgxPenaltyRepository)(nil)

// Helper to convert domain.Penalty to models.Penalty
func toModelPenalty(d domain.Penalty) models.Penalty {
	m := models.Penalty{
		PenaltyID: d.PenaltyID,
		MemberID:  d.MemberID,
		Date:      d.Date,
		Amount:    d.Amount,
		IsPaid:    d.IsPaid,
		PaidDate:  d.PaidDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Reason != "" {
		m.Reason = &d.Reason
	}
	return m
}

// Helper to convert models.Penalty to domain.Penalty
func toDomainPenalty(m models.Penalty) domain.Penalty {
	d := domain.Penalty{
		PenaltyID:  m.PenaltyID,
		MemberID:   m.MemberID,
		MemberName: m.MemberName,
		Date:       m.Date,
		Amount:     m.Amount,
		IsPaid:     m.IsPaid,
		PaidDate:   m.PaidDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Reason != nil {
		d.Reason = *m.Reason
	}
	return d
}

// penaltySelectWithMember is the shared projection joining the owning member.
const penaltySelectWithMember = `
	SELECT p.penalty_id, p.member_id, m.name, p.date, p.amount, p.reason, p.is_paid, p.paid_date, p.created_at, p.updated_at
	FROM penalties p
	JOIN members m ON p.member_id = m.member_id
`

func (r *PgxPenaltyRepository) scanPenaltyRows(rows pgx.Rows) ([]domain.Penalty, error) {
	defer rows.Close()

	penalties := []domain.Penalty{}
	for rows.Next() {
		var m models.Penalty
		if err := rows.Scan(&m.PenaltyID, &m.MemberID, &m.MemberName, &m.Date, &m.Amount, &m.Reason, &m.IsPaid, &m.PaidDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan penalty row: %w", err)
		}
		penalties = append(penalties, toDomainPenalty(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating penalty rows: %w", rows.Err())
	}
	return penalties, nil
}

func (r *PgxPenaltyRepository) SavePenalty(ctx context.Context, penalty domain.Penalty) error {
	m := toModelPenalty(penalty)
	query := `
        INSERT INTO penalties (penalty_id, member_id, date, amount, reason, is_paid, paid_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PenaltyID, m.MemberID, m.Date, m.Amount, m.Reason, m.IsPaid, m.PaidDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save penalty: %w", err)
	}
	return nil
}

func (r *PgxPenaltyRepository) FindPenaltyByID(ctx context.Context, penaltyID string) (*domain.Penalty, error) {
	query := penaltySelectWithMember + ` WHERE p.penalty_id = $1;`
	var m models.Penalty
	err := r.Pool.QueryRow(ctx, query, penaltyID).Scan(
		&m.PenaltyID, &m.MemberID, &m.MemberName, &m.Date, &m.Amount, &m.Reason, &m.IsPaid, &m.PaidDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find penalty by ID %s: %w", penaltyID, err)
	}
	penalty := toDomainPenalty(m)
	return &penalty, nil
}

func (r *PgxPenaltyRepository) FindPenalties(ctx context.Context, filter portsrepo.PenaltyFilter) ([]domain.Penalty, error) {
	query := penaltySelectWithMember
	args := []any{}
	if filter.Day != nil {
		day := *filter.Day
		startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)
		args = append(args, startOfDay, endOfDay)
		query += ` WHERE p.date BETWEEN $1 AND $2`
	}
	query += ` ORDER BY p.date DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query penalties: %w", err)
	}
	return r.scanPenaltyRows(rows)
}

func (r *PgxPenaltyRepository) FindUnpaidPenalties(ctx context.Context) ([]domain.Penalty, error) {
	query := penaltySelectWithMember + `
		WHERE p.is_paid = FALSE
		ORDER BY p.date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid penalties: %w", err)
	}
	return r.scanPenaltyRows(rows)
}

func (r *PgxPenaltyRepository) FindPaidPenaltiesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Penalty, error) {
	query := penaltySelectWithMember + `
		WHERE p.is_paid = TRUE AND p.paid_date BETWEEN $1 AND $2
		ORDER BY p.paid_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query paid penalties in range: %w", err)
	}
	return r.scanPenaltyRows(rows)
}

func (r *PgxPenaltyRepository) MarkPenaltyPayment(ctx context.Context, penaltyID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error {
	query := `
        UPDATE penalties
        SET is_paid = $1, paid_date = $2, updated_at = $3
        WHERE penalty_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, isPaid, paidDate, updatedAt, penaltyID)
	if err != nil {
		return fmt.Errorf("failed to update penalty payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("penalty not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPenaltyRepository) DeletePenalty(ctx context.Context, penaltyID string) error {
	query := `DELETE FROM penalties WHERE penalty_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, penaltyID)
	if err != nil {
		return fmt.Errorf("failed to delete penalty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("penalty not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
