package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/clubfundhq/clubfund_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepository
var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

// Helper to convert domain.Member to models.Member
func toModelMember(d domain.Member) models.Member {
	m := models.Member{
		MemberID:  d.MemberID,
		Name:      d.Name,
		Status:    string(d.Status),
		JoinDate:  d.JoinDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Phone != "" {
		m.Phone = &d.Phone
	}
	if d.Email != "" {
		m.Email = &d.Email
	}
	return m
}

// Helper to convert models.Member to domain.Member
func toDomainMember(m models.Member) domain.Member {
	d := domain.Member{
		MemberID:  m.MemberID,
		Name:      m.Name,
		Status:    domain.MemberStatus(m.Status),
		JoinDate:  m.JoinDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Phone != nil {
		d.Phone = *m.Phone
	}
	if m.Email != nil {
		d.Email = *m.Email
	}
	return d
}

func toDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = toDomainMember(m)
	}
	return ds
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        INSERT INTO members (member_id, name, phone, email, status, join_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.Name, m.Phone, m.Email, m.Status, m.JoinDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `
		SELECT member_id, name, phone, email, status, join_date, created_at, updated_at
		FROM members
		WHERE member_id = $1;
	`
	var m models.Member
	err := r.Pool.QueryRow(ctx, query, memberID).Scan(
		&m.MemberID, &m.Name, &m.Phone, &m.Email, &m.Status, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	member := toDomainMember(m)
	return &member, nil
}

func (r *PgxMemberRepository) FindMembers(ctx context.Context) ([]domain.Member, error) {
	query := `
        SELECT member_id, name, phone, email, status, join_date, created_at, updated_at
        FROM members
        ORDER BY created_at DESC;
    `
	return r.queryMembers(ctx, query)
}

func (r *PgxMemberRepository) FindMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	query := `
        SELECT member_id, name, phone, email, status, join_date, created_at, updated_at
        FROM members
        WHERE status = $1
        ORDER BY created_at DESC;
    `
	return r.queryMembers(ctx, query, string(status))
}

func (r *PgxMemberRepository) queryMembers(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	modelMembers := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.MemberID, &m.Name, &m.Phone, &m.Email, &m.Status, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		modelMembers = append(modelMembers, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}

	return toDomainMemberSlice(modelMembers), nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
        UPDATE members
        SET name = $1, phone = $2, email = $3, status = $4, updated_at = $5
        WHERE member_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Phone, m.Email, m.Status, m.UpdatedAt, m.MemberID)
	if err != nil {
		return fmt.Errorf("failed to execute update member query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	query := `DELETE FROM members WHERE member_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
