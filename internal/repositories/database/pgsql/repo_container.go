package pgsql

import (
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider constructs all pgsql repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:     newPgxMemberRepository(pool),
		MonthlyFeeRepo: newPgxMonthlyFeeRepository(pool),
		PenaltyRepo:    newPgxPenaltyRepository(pool),
		ExpenseRepo:    newPgxExpenseRepository(pool),
		FundRepo:       newFundRepository(pool),
	}
}
