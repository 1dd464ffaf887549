package services

import (
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/pkg/config"
)

// NewServiceContainer wires all application services over the repository
// provider. The statistics service reuses the fund service for its summary.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	fundSvc := NewFundService(repos.FundRepo)

	return &portssvc.ServiceContainer{
		Member:     NewMemberService(repos.MemberRepo),
		MonthlyFee: NewMonthlyFeeService(repos.MonthlyFeeRepo, repos.MemberRepo),
		Penalty:    NewPenaltyService(repos.PenaltyRepo, repos.MemberRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Fund:       fundSvc,
		Debt:       NewDebtService(repos.MonthlyFeeRepo, repos.PenaltyRepo),
		Statistics: NewStatisticsService(fundSvc, repos.MonthlyFeeRepo, repos.PenaltyRepo, repos.ExpenseRepo),
		Auth:       NewAuthService(cfg),
	}
}
