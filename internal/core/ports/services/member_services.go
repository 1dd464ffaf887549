package services

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
)

// MemberSvcFacade defines operations for managing club members.
type MemberSvcFacade interface {
	// CreateMember registers a new member. Name is required.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)

	// GetMemberByID returns a member or apperrors.ErrNotFound.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers returns all members, newest first.
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// UpdateMember applies the non-nil fields of the request.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member.
	DeleteMember(ctx context.Context, memberID string) error
}
