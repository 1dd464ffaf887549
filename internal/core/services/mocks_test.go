package services_test

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockMemberRepository is a mock type for the MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMembersByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// MockMonthlyFeeRepository is a mock type for the MonthlyFeeRepository interface
type MockMonthlyFeeRepository struct {
	mock.Mock
}

func (m *MockMonthlyFeeRepository) SaveMonthlyFee(ctx context.Context, fee domain.MonthlyFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockMonthlyFeeRepository) SaveMonthlyFees(ctx context.Context, fees []domain.MonthlyFee) (int, error) {
	args := m.Called(ctx, fees)
	return args.Int(0), args.Error(1)
}

func (m *MockMonthlyFeeRepository) FindMonthlyFeeByID(ctx context.Context, feeID string) (*domain.MonthlyFee, error) {
	args := m.Called(ctx, feeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyFee), args.Error(1)
}

func (m *MockMonthlyFeeRepository) FindMonthlyFees(ctx context.Context, filter portsrepo.MonthlyFeeFilter) ([]domain.MonthlyFee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyFee), args.Error(1)
}

func (m *MockMonthlyFeeRepository) FindUnpaidMonthlyFees(ctx context.Context) ([]domain.MonthlyFee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyFee), args.Error(1)
}

func (m *MockMonthlyFeeRepository) FindPaidMonthlyFeesInRange(ctx context.Context, rng domain.DateRange) ([]domain.MonthlyFee, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyFee), args.Error(1)
}

func (m *MockMonthlyFeeRepository) FindMemberIDsWithFee(ctx context.Context, month, year int) ([]string, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMonthlyFeeRepository) MarkFeePayment(ctx context.Context, feeID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, feeID, isPaid, paidDate, updatedAt)
	return args.Error(0)
}

func (m *MockMonthlyFeeRepository) DeleteMonthlyFee(ctx context.Context, feeID string) error {
	args := m.Called(ctx, feeID)
	return args.Error(0)
}

// MockPenaltyRepository is a mock type for the PenaltyRepository interface
type MockPenaltyRepository struct {
	mock.Mock
}

func (m *MockPenaltyRepository) SavePenalty(ctx context.Context, penalty domain.Penalty) error {
	args := m.Called(ctx, penalty)
	return args.Error(0)
}

func (m *MockPenaltyRepository) FindPenaltyByID(ctx context.Context, penaltyID string) (*domain.Penalty, error) {
	args := m.Called(ctx, penaltyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Penalty), args.Error(1)
}

func (m *MockPenaltyRepository) FindPenalties(ctx context.Context, filter portsrepo.PenaltyFilter) ([]domain.Penalty, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Penalty), args.Error(1)
}

func (m *MockPenaltyRepository) FindUnpaidPenalties(ctx context.Context) ([]domain.Penalty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Penalty), args.Error(1)
}

func (m *MockPenaltyRepository) FindPaidPenaltiesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Penalty, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Penalty), args.Error(1)
}

func (m *MockPenaltyRepository) MarkPenaltyPayment(ctx context.Context, penaltyID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, penaltyID, isPaid, paidDate, updatedAt)
	return args.Error(0)
}

func (m *MockPenaltyRepository) DeletePenalty(ctx context.Context, penaltyID string) error {
	args := m.Called(ctx, penaltyID)
	return args.Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepository interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// MockFundRepository is a mock type for the FundRepository interface
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) SumPaidMonthlyFees(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFundRepository) SumPaidPenalties(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFundRepository) SumExpenses(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
