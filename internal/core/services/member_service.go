package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/google/uuid"
)

// memberService implements the MemberSvcFacade interface.
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// MemberServiceOption is a functional option for configuring the service.
type MemberServiceOption func(*memberService)

// WithMemberClock sets the clock used for timestamps and join date defaults.
func WithMemberClock(clock func() time.Time) MemberServiceOption {
	return func(s *memberService) {
		s.clock = clock
	}
}

// NewMemberService creates a new member service with the provided options.
func NewMemberService(repo portsrepo.MemberRepository, options ...MemberServiceOption) portssvc.MemberSvcFacade {
	svc := &memberService{memberRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure memberService implements the MemberSvcFacade interface
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}

	now := s.Now()
	joinDate := now
	if req.JoinDate != nil {
		joinDate = *req.JoinDate
	}

	member := domain.Member{
		MemberID:  uuid.NewString(),
		Name:      name,
		Phone:     req.Phone,
		Email:     req.Email,
		Status:    domain.MemberActive,
		JoinDate:  joinDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("name", name))
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.LogInfo(ctx, "Member created",
		slog.String("member_id", member.MemberID), slog.String("name", member.Name))
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get member", slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.FindMembers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load member for update", slog.String("member_id", memberID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("name must not be empty: %w", apperrors.ErrValidation)
		}
		member.Name = name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Status != nil {
		switch domain.MemberStatus(*req.Status) {
		case domain.MemberActive, domain.MemberInactive:
			member.Status = domain.MemberStatus(*req.Status)
		default:
			return nil, fmt.Errorf("status must be ACTIVE or INACTIVE: %w", apperrors.ErrValidation)
		}
	}
	member.UpdatedAt = s.Now()

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}

	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID))
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
