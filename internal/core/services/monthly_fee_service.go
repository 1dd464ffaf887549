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
	"github.com/shopspring/decimal"
)

// monthlyFeeService implements the MonthlyFeeSvcFacade interface.
type monthlyFeeService struct {
	BaseService
	monthlyFeeRepo portsrepo.MonthlyFeeRepository
	memberRepo     portsrepo.MemberRepository
}

// MonthlyFeeServiceOption is a functional option for configuring the service.
type MonthlyFeeServiceOption func(*monthlyFeeService)

// WithMonthlyFeeClock sets the clock used for timestamps and paid dates.
func WithMonthlyFeeClock(clock func() time.Time) MonthlyFeeServiceOption {
	return func(s *monthlyFeeService) {
		s.clock = clock
	}
}

// NewMonthlyFeeService creates a new monthly fee service with the provided options.
func NewMonthlyFeeService(feeRepo portsrepo.MonthlyFeeRepository, memberRepo portsrepo.MemberRepository, options ...MonthlyFeeServiceOption) portssvc.MonthlyFeeSvcFacade {
	svc := &monthlyFeeService{
		monthlyFeeRepo: feeRepo,
		memberRepo:     memberRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure monthlyFeeService implements the MonthlyFeeSvcFacade interface
var _ portssvc.MonthlyFeeSvcFacade = (*monthlyFeeService)(nil)

func (s *monthlyFeeService) ListMonthlyFees(ctx context.Context, params dto.ListMonthlyFeesParams) ([]domain.MonthlyFee, error) {
	fees, err := s.monthlyFeeRepo.FindMonthlyFees(ctx, portsrepo.MonthlyFeeFilter{
		Month: params.Month,
		Year:  params.Year,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list monthly fees")
		return nil, fmt.Errorf("failed to list monthly fees: %w", err)
	}
	return fees, nil
}

// CreateMonthlyFee manually records one fee. It intentionally performs no
// duplicate check on (member, month, year); only the bulk generator
// deduplicates.
func (s *monthlyFeeService) CreateMonthlyFee(ctx context.Context, req dto.CreateMonthlyFeeRequest) (*domain.MonthlyFee, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load member for manual fee creation", slog.String("member_id", req.MemberID))
		return nil, err
	}

	now := s.Now()
	fee := domain.MonthlyFee{
		FeeID:      uuid.NewString(),
		MemberID:   member.MemberID,
		MemberName: member.Name,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		IsPaid:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.monthlyFeeRepo.SaveMonthlyFee(ctx, fee); err != nil {
		s.LogError(ctx, err, "Failed to save monthly fee", slog.String("member_id", req.MemberID))
		return nil, fmt.Errorf("failed to create monthly fee: %w", err)
	}

	s.LogInfo(ctx, "Monthly fee created",
		slog.String("fee_id", fee.FeeID),
		slog.String("member_id", fee.MemberID),
		slog.Int("month", fee.Month),
		slog.Int("year", fee.Year))
	return &fee, nil
}

// GenerateMonthlyFees creates one unpaid fee for every active member without
// one for (month, year). The duplicate check keys on (member, month, year)
// only, so repeating the call is a no-op even with a different amount.
func (s *monthlyFeeService) GenerateMonthlyFees(ctx context.Context, month, year int, amount decimal.Decimal) (*domain.BulkGenerationResult, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12: %w", apperrors.ErrValidation)
	}
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("year must be a 4-digit value: %w", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	activeMembers, err := s.memberRepo.FindMembersByStatus(ctx, domain.MemberActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active members for fee generation")
		return nil, fmt.Errorf("failed to generate monthly fees: %w", err)
	}
	if len(activeMembers) == 0 {
		s.LogWarn(ctx, "Fee generation requested with no active members",
			slog.Int("month", month), slog.Int("year", year))
		return nil, apperrors.ErrNoActiveMembers
	}

	coveredIDs, err := s.monthlyFeeRepo.FindMemberIDsWithFee(ctx, month, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to load existing fees for fee generation")
		return nil, fmt.Errorf("failed to generate monthly fees: %w", err)
	}
	covered := make(map[string]struct{}, len(coveredIDs))
	for _, id := range coveredIDs {
		covered[id] = struct{}{}
	}

	now := s.Now()
	fees := make([]domain.MonthlyFee, 0, len(activeMembers))
	for _, member := range activeMembers {
		if _, ok := covered[member.MemberID]; ok {
			continue
		}
		fees = append(fees, domain.MonthlyFee{
			FeeID:     uuid.NewString(),
			MemberID:  member.MemberID,
			Month:     month,
			Year:      year,
			Amount:    amount,
			IsPaid:    false,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	result := &domain.BulkGenerationResult{
		Created: 0,
		Skipped: len(activeMembers) - len(fees),
		Total:   len(activeMembers),
	}

	if len(fees) == 0 {
		// Idempotent no-op: every active member is already covered.
		s.LogInfo(ctx, "Fee generation skipped, all active members already covered",
			slog.Int("month", month), slog.Int("year", year), slog.Int("skipped", result.Skipped))
		return result, nil
	}

	created, err := s.monthlyFeeRepo.SaveMonthlyFees(ctx, fees)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch insert generated fees",
			slog.Int("month", month), slog.Int("year", year), slog.Int("attempted", len(fees)))
		return nil, fmt.Errorf("failed to generate monthly fees: %w", err)
	}
	result.Created = created

	s.LogInfo(ctx, "Monthly fees generated",
		slog.Int("month", month),
		slog.Int("year", year),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("total", result.Total))
	return result, nil
}

func (s *monthlyFeeService) UpdateFeePayment(ctx context.Context, feeID string, req dto.UpdatePaymentRequest) (*domain.MonthlyFee, error) {
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

	if err := s.monthlyFeeRepo.MarkFeePayment(ctx, feeID, *req.IsPaid, paidDate, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update fee payment", slog.String("fee_id", feeID))
		return nil, err
	}

	fee, err := s.monthlyFeeRepo.FindMonthlyFeeByID(ctx, feeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload fee after payment update", slog.String("fee_id", feeID))
		return nil, err
	}

	s.LogInfo(ctx, "Monthly fee payment updated",
		slog.String("fee_id", feeID), slog.Bool("is_paid", *req.IsPaid))
	return fee, nil
}

func (s *monthlyFeeService) DeleteMonthlyFee(ctx context.Context, feeID string) error {
	if err := s.monthlyFeeRepo.DeleteMonthlyFee(ctx, feeID); err != nil {
		s.LogError(ctx, err, "Failed to delete monthly fee", slog.String("fee_id", feeID))
		return err
	}
	s.LogInfo(ctx, "Monthly fee deleted", slog.String("fee_id", feeID))
	return nil
}
