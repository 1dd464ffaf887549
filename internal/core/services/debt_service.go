package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// debtService implements the DebtSvcFacade interface.
type debtService struct {
	BaseService
	monthlyFeeRepo portsrepo.MonthlyFeeRepository
	penaltyRepo    portsrepo.PenaltyRepository
}

// NewDebtService creates a new debt aggregation service.
func NewDebtService(feeRepo portsrepo.MonthlyFeeRepository, penaltyRepo portsrepo.PenaltyRepository) portssvc.DebtSvcFacade {
	return &debtService{monthlyFeeRepo: feeRepo, penaltyRepo: penaltyRepo}
}

// Ensure debtService implements the DebtSvcFacade interface
var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// ComputeDebts groups all unpaid fees and penalties by member in one pass and
// returns the breakdown ranked by total debt, plus club-wide totals. Members
// without unpaid items are omitted entirely.
func (s *debtService) ComputeDebts(ctx context.Context) (*domain.DebtReport, error) {
	unpaidFees, err := s.monthlyFeeRepo.FindUnpaidMonthlyFees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch unpaid monthly fees")
		return nil, fmt.Errorf("failed to compute debts: %w", err)
	}

	unpaidPenalties, err := s.penaltyRepo.FindUnpaidPenalties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch unpaid penalties")
		return nil, fmt.Errorf("failed to compute debts: %w", err)
	}

	// Keyed accumulator plus an encounter-order list so ties in the final
	// sort keep the order members were first seen (fees first, then
	// penalties).
	debtsByMember := make(map[string]*domain.MemberDebt)
	encounterOrder := []string{}

	accumulatorFor := func(memberID, memberName string) *domain.MemberDebt {
		if acc, ok := debtsByMember[memberID]; ok {
			return acc
		}
		acc := &domain.MemberDebt{
			MemberID:          memberID,
			MemberName:        memberName,
			MonthlyFeesDebt:   decimal.Zero,
			PenaltiesDebt:     decimal.Zero,
			TotalDebt:         decimal.Zero,
			UnpaidMonthlyFees: []domain.UnpaidFee{},
			UnpaidPenalties:   []domain.UnpaidPenalty{},
		}
		debtsByMember[memberID] = acc
		encounterOrder = append(encounterOrder, memberID)
		return acc
	}

	for _, fee := range unpaidFees {
		acc := accumulatorFor(fee.MemberID, fee.MemberName)
		acc.MonthlyFeesDebt = acc.MonthlyFeesDebt.Add(fee.Amount)
		acc.TotalDebt = acc.TotalDebt.Add(fee.Amount)
		acc.UnpaidMonthlyFees = append(acc.UnpaidMonthlyFees, domain.UnpaidFee{
			FeeID:  fee.FeeID,
			Month:  fee.Month,
			Year:   fee.Year,
			Amount: fee.Amount,
		})
	}

	for _, penalty := range unpaidPenalties {
		acc := accumulatorFor(penalty.MemberID, penalty.MemberName)
		acc.PenaltiesDebt = acc.PenaltiesDebt.Add(penalty.Amount)
		acc.TotalDebt = acc.TotalDebt.Add(penalty.Amount)
		acc.UnpaidPenalties = append(acc.UnpaidPenalties, domain.UnpaidPenalty{
			PenaltyID: penalty.PenaltyID,
			Date:      penalty.Date,
			Amount:    penalty.Amount,
			Reason:    penalty.Reason,
		})
	}

	debts := make([]domain.MemberDebt, 0, len(encounterOrder))
	for _, memberID := range encounterOrder {
		debts = append(debts, *debtsByMember[memberID])
	}

	// Stable sort keeps encounter order for equal totals.
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].TotalDebt.GreaterThan(debts[j].TotalDebt)
	})

	summary := domain.DebtSummary{
		TotalMonthlyFeesDebt: decimal.Zero,
		TotalPenaltiesDebt:   decimal.Zero,
		TotalDebt:            decimal.Zero,
		TotalMembers:         len(debts),
	}
	for _, debt := range debts {
		summary.TotalMonthlyFeesDebt = summary.TotalMonthlyFeesDebt.Add(debt.MonthlyFeesDebt)
		summary.TotalPenaltiesDebt = summary.TotalPenaltiesDebt.Add(debt.PenaltiesDebt)
		summary.TotalDebt = summary.TotalDebt.Add(debt.TotalDebt)
	}

	s.LogInfo(ctx, "Debt report computed",
		slog.Int("indebted_members", len(debts)),
		slog.String("total_debt", summary.TotalDebt.String()))
	return &domain.DebtReport{Summary: summary, Debts: debts}, nil
}
