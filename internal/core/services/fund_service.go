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
)

// fundService implements the FundSvcFacade interface.
type fundService struct {
	BaseService
	fundRepo portsrepo.FundRepository
}

// NewFundService creates a new fund summary service.
func NewFundService(repo portsrepo.FundRepository) portssvc.FundSvcFacade {
	return &fundService{fundRepo: repo}
}

// Ensure fundService implements the FundSvcFacade interface
var _ portssvc.FundSvcFacade = (*fundService)(nil)

// Summarize computes the all-time fund summary.
func (s *fundService) Summarize(ctx context.Context) (*domain.FundSummary, error) {
	return s.summarize(ctx, nil)
}

// SummarizeRange computes the summary over [from, to]. The range is
// day-granular: from is extended to start-of-day and to to end-of-day.
func (s *fundService) SummarizeRange(ctx context.Context, from, to time.Time) (*domain.FundSummary, error) {
	rng := domain.DateRange{From: startOfDay(from), To: endOfDay(to)}
	if rng.From.After(rng.To) {
		s.LogWarn(ctx, "Rejected fund summary range with from after to",
			slog.Time("from", from), slog.Time("to", to))
		return nil, fmt.Errorf("from %s is after to %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), apperrors.ErrInvalidRange)
	}
	return s.summarize(ctx, &rng)
}

func (s *fundService) summarize(ctx context.Context, rng *domain.DateRange) (*domain.FundSummary, error) {
	feesIncome, err := s.fundRepo.SumPaidMonthlyFees(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum paid monthly fees")
		return nil, fmt.Errorf("failed to compute fund summary: %w", err)
	}

	penaltiesIncome, err := s.fundRepo.SumPaidPenalties(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum paid penalties")
		return nil, fmt.Errorf("failed to compute fund summary: %w", err)
	}

	totalExpense, err := s.fundRepo.SumExpenses(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expenses")
		return nil, fmt.Errorf("failed to compute fund summary: %w", err)
	}

	totalIncome := feesIncome.Add(penaltiesIncome)
	summary := &domain.FundSummary{
		TotalIncome:       totalIncome,
		MonthlyFeesIncome: feesIncome,
		PenaltiesIncome:   penaltiesIncome,
		TotalExpense:      totalExpense,
		Balance:           totalIncome.Sub(totalExpense),
	}

	s.LogInfo(ctx, "Fund summary computed",
		slog.Bool("scoped", rng != nil),
		slog.String("total_income", summary.TotalIncome.String()),
		slog.String("total_expense", summary.TotalExpense.String()),
		slog.String("balance", summary.Balance.String()))
	return summary, nil
}
