package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// statisticsService implements the StatisticsSvcFacade interface. It delegates
// the summary to the fund service and adds the itemized transactions.
type statisticsService struct {
	BaseService
	fundSvc        portssvc.FundSvcFacade
	monthlyFeeRepo portsrepo.MonthlyFeeRepository
	penaltyRepo    portsrepo.PenaltyRepository
	expenseRepo    portsrepo.ExpenseRepository
}

// NewStatisticsService creates a new statistics service.
func NewStatisticsService(fundSvc portssvc.FundSvcFacade, feeRepo portsrepo.MonthlyFeeRepository, penaltyRepo portsrepo.PenaltyRepository, expenseRepo portsrepo.ExpenseRepository) portssvc.StatisticsSvcFacade {
	return &statisticsService{
		fundSvc:        fundSvc,
		monthlyFeeRepo: feeRepo,
		penaltyRepo:    penaltyRepo,
		expenseRepo:    expenseRepo,
	}
}

// Ensure statisticsService implements the StatisticsSvcFacade interface
var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

// Report computes the range-scoped summary and the itemized fees, penalties
// and expenses behind it. An inverted range is not an error: it yields a
// zeroed summary and empty lists.
func (s *statisticsService) Report(ctx context.Context, from, to time.Time) (*domain.StatisticsReport, error) {
	rng := domain.DateRange{From: startOfDay(from), To: endOfDay(to)}
	if rng.From.After(rng.To) {
		s.LogInfo(ctx, "Statistics requested with inverted range, returning empty report",
			slog.Time("from", from), slog.Time("to", to))
		return emptyStatisticsReport(), nil
	}

	summary, err := s.fundSvc.SummarizeRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute summary for statistics")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	fees, err := s.monthlyFeeRepo.FindPaidMonthlyFeesInRange(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch paid fees for statistics")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	penalties, err := s.penaltyRepo.FindPaidPenaltiesInRange(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch paid penalties for statistics")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	expenses, err := s.expenseRepo.FindExpensesInRange(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expenses for statistics")
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	s.LogInfo(ctx, "Statistics report computed",
		slog.Int("fees", len(fees)),
		slog.Int("penalties", len(penalties)),
		slog.Int("expenses", len(expenses)))
	return &domain.StatisticsReport{
		Summary:     *summary,
		MonthlyFees: fees,
		Penalties:   penalties,
		Expenses:    expenses,
	}, nil
}

func emptyStatisticsReport() *domain.StatisticsReport {
	return &domain.StatisticsReport{
		Summary: domain.FundSummary{
			TotalIncome:       decimal.Zero,
			MonthlyFeesIncome: decimal.Zero,
			PenaltiesIncome:   decimal.Zero,
			TotalExpense:      decimal.Zero,
			Balance:           decimal.Zero,
		},
		MonthlyFees: []domain.MonthlyFee{},
		Penalties:   []domain.Penalty{},
		Expenses:    []domain.Expense{},
	}
}
