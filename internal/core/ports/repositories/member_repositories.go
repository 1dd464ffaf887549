package repositories

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	// SaveMember inserts a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// FindMemberByID returns a member or apperrors.ErrNotFound.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMembers returns all members ordered by creation date descending.
	FindMembers(ctx context.Context) ([]domain.Member, error)

	// FindMembersByStatus returns members with the given status.
	FindMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error)

	// UpdateMember updates an existing member or returns apperrors.ErrNotFound.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member or returns apperrors.ErrNotFound.
	DeleteMember(ctx context.Context, memberID string) error
}
