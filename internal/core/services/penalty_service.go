package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/google/uuid"
)

// penaltyService implements the PenaltySvcFacade interface.
type penaltyService struct {
	BaseService
	penaltyRepo portsrepo.PenaltyRepository
	memberRepo  portsrepo.MemberRepository
}

// PenaltyServiceOption is a functional option for configuring the service.
type PenaltyServiceOption func(*penaltyService)

// WithPenaltyClock sets the clock used for timestamps and date defaults.
func WithPenaltyClock(clock func() time.Time) PenaltyServiceOption {
	return func(s *penaltyService) {
		s.clock = clock
	}
}

// NewPenaltyService creates a new penalty service with the provided options.
func NewPenaltyService(penaltyRepo portsrepo.PenaltyRepository, memberRepo portsrepo.MemberRepository, options ...PenaltyServiceOption) portssvc.PenaltySvcFacade {
	svc := &penaltyService{penaltyRepo: penaltyRepo, memberRepo: memberRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure penaltyService implements the PenaltySvcFacade interface
var _ portssvc.PenaltySvcFacade = (*penaltyService)(nil)

func (s *penaltyService) ListPenalties(ctx context.Context, params dto.ListPenaltiesParams) ([]domain.Penalty, error) {
	var filter portsrepo.PenaltyFilter
	switch {
	case params.Today:
		day := s.Now()
		filter.Day = &day
	case params.Date != "":
		day, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", apperrors.ErrValidation)
		}
		filter.Day = &day
	}

	penalties, err := s.penaltyRepo.FindPenalties(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list penalties")
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}
	return penalties, nil
}

func (s *penaltyService) CreatePenalty(ctx context.Context, req dto.CreatePenaltyRequest) (*domain.Penalty, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load member for penalty creation", slog.String("member_id", req.MemberID))
		return nil, err
	}

	now := s.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	penalty := domain.Penalty{
		PenaltyID:  uuid.NewString(),
		MemberID:   member.MemberID,
		MemberName: member.Name,
		Date:       date,
		Amount:     req.Amount,
		Reason:     req.Reason,
		IsPaid:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.penaltyRepo.SavePenalty(ctx, penalty); err != nil {
		s.LogError(ctx, err, "Failed to save penalty", slog.String("member_id", req.MemberID))
		return nil, fmt.Errorf("failed to create penalty: %w", err)
	}

	s.LogInfo(ctx, "Penalty created",
		slog.String("penalty_id", penalty.PenaltyID),
		slog.String("member_id", penalty.MemberID),
		slog.String("amount", penalty.Amount.String()))
	return &penalty, nil
}

func (s *penaltyService) UpdatePenaltyPayment(ctx context.Context, penaltyID string, req dto.UpdatePaymentRequest) (*domain.Penalty, error) {
	if req.IsPaid == nil {
		return nil, fmt.Errorf("isPaid is required: %w", apperrors.ErrValidation)
	}

	var paidDate *time.Time
	if *req.IsPaid {
		paidDate = req.PaidDate
		if paidDate == nil {
			now := s.Now()
			paidDate = &now
		}
	}

	if err := s.penaltyRepo.MarkPenaltyPayment(ctx, penaltyID, *req.IsPaid, paidDate, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update penalty payment", slog.String("penalty_id", penaltyID))
		return nil, err
	}

	penalty, err := s.penaltyRepo.FindPenaltyByID(ctx, penaltyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload penalty after payment update", slog.String("penalty_id", penaltyID))
		return nil, err
	}

	s.LogInfo(ctx, "Penalty payment updated",
		slog.String("penalty_id", penaltyID), slog.Bool("is_paid", *req.IsPaid))
	return penalty, nil
}

func (s *penaltyService) DeletePenalty(ctx context.Context, penaltyID string) error {
	if err := s.penaltyRepo.DeletePenalty(ctx, penaltyID); err != nil {
		s.LogError(ctx, err, "Failed to delete penalty", slog.String("penalty_id", penaltyID))
		return err
	}
	s.LogInfo(ctx, "Penalty deleted", slog.String("penalty_id", penaltyID))
	return nil
}
