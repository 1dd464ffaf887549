package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockFeeRepo     *MockMonthlyFeeRepository
	mockPenaltyRepo *MockPenaltyRepository
	service         portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockFeeRepo = new(MockMonthlyFeeRepository)
	suite.mockPenaltyRepo = new(MockPenaltyRepository)
	suite.service = services.NewDebtService(suite.mockFeeRepo, suite.mockPenaltyRepo)
}

func (suite *DebtServiceTestSuite) TestComputeDebts_GroupsAndRanks() {
	ctx := context.Background()

	fees := []domain.MonthlyFee{
		{FeeID: "f1", MemberID: "alice", MemberName: "Alice", Month: 1, Year: 2025, Amount: decimal.NewFromInt(10)},
		{FeeID: "f2", MemberID: "bob", MemberName: "Bob", Month: 1, Year: 2025, Amount: decimal.NewFromInt(10)},
		{FeeID: "f3", MemberID: "alice", MemberName: "Alice", Month: 2, Year: 2025, Amount: decimal.NewFromInt(10)},
	}
	penaltyDate := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	penalties := []domain.Penalty{
		{PenaltyID: "p1", MemberID: "bob", MemberName: "Bob", Date: penaltyDate, Amount: decimal.NewFromInt(5), Reason: "late"},
	}

	suite.mockFeeRepo.On("FindUnpaidMonthlyFees", ctx).Return(fees, nil).Once()
	suite.mockPenaltyRepo.On("FindUnpaidPenalties", ctx).Return(penalties, nil).Once()

	report, err := suite.service.ComputeDebts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Debts, 2)

	// Alice owes 20 in fees, Bob owes 10 + 5; Alice ranks first.
	suite.Equal("alice", report.Debts[0].MemberID)
	suite.True(report.Debts[0].TotalDebt.Equal(decimal.NewFromInt(20)))
	suite.True(report.Debts[0].MonthlyFeesDebt.Equal(decimal.NewFromInt(20)))
	suite.True(report.Debts[0].PenaltiesDebt.Equal(decimal.Zero))
	suite.Len(report.Debts[0].UnpaidMonthlyFees, 2)
	suite.Empty(report.Debts[0].UnpaidPenalties)

	suite.Equal("bob", report.Debts[1].MemberID)
	suite.True(report.Debts[1].TotalDebt.Equal(decimal.NewFromInt(15)))
	suite.True(report.Debts[1].MonthlyFeesDebt.Equal(decimal.NewFromInt(10)))
	suite.True(report.Debts[1].PenaltiesDebt.Equal(decimal.NewFromInt(5)))
	suite.Require().Len(report.Debts[1].UnpaidPenalties, 1)
	suite.Equal("late", report.Debts[1].UnpaidPenalties[0].Reason)

	suite.True(report.Summary.TotalDebt.Equal(decimal.NewFromInt(35)))
	suite.True(report.Summary.TotalMonthlyFeesDebt.Equal(decimal.NewFromInt(30)))
	suite.True(report.Summary.TotalPenaltiesDebt.Equal(decimal.NewFromInt(5)))
	suite.Equal(2, report.Summary.TotalMembers)

	suite.mockFeeRepo.AssertExpectations(suite.T())
	suite.mockPenaltyRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestComputeDebts_TiesKeepEncounterOrder() {
	ctx := context.Background()

	// All three members owe the same total; order of first appearance in the
	// fee list must be preserved.
	fees := []domain.MonthlyFee{
		{FeeID: "f1", MemberID: "carol", MemberName: "Carol", Month: 3, Year: 2025, Amount: decimal.NewFromInt(10)},
		{FeeID: "f2", MemberID: "alice", MemberName: "Alice", Month: 3, Year: 2025, Amount: decimal.NewFromInt(10)},
		{FeeID: "f3", MemberID: "bob", MemberName: "Bob", Month: 3, Year: 2025, Amount: decimal.NewFromInt(10)},
	}

	suite.mockFeeRepo.On("FindUnpaidMonthlyFees", ctx).Return(fees, nil).Once()
	suite.mockPenaltyRepo.On("FindUnpaidPenalties", ctx).Return([]domain.Penalty{}, nil).Once()

	report, err := suite.service.ComputeDebts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Debts, 3)
	suite.Equal("carol", report.Debts[0].MemberID)
	suite.Equal("alice", report.Debts[1].MemberID)
	suite.Equal("bob", report.Debts[2].MemberID)
}

func (suite *DebtServiceTestSuite) TestComputeDebts_PenaltyOnlyMember() {
	ctx := context.Background()

	penalties := []domain.Penalty{
		{PenaltyID: "p1", MemberID: "dave", MemberName: "Dave", Amount: decimal.NewFromInt(7)},
	}

	suite.mockFeeRepo.On("FindUnpaidMonthlyFees", ctx).Return([]domain.MonthlyFee{}, nil).Once()
	suite.mockPenaltyRepo.On("FindUnpaidPenalties", ctx).Return(penalties, nil).Once()

	report, err := suite.service.ComputeDebts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Debts, 1)
	suite.Equal("dave", report.Debts[0].MemberID)
	suite.True(report.Debts[0].MonthlyFeesDebt.Equal(decimal.Zero))
	suite.True(report.Debts[0].PenaltiesDebt.Equal(decimal.NewFromInt(7)))
	suite.Empty(report.Debts[0].UnpaidMonthlyFees)
}

func (suite *DebtServiceTestSuite) TestComputeDebts_NoUnpaidItems() {
	ctx := context.Background()

	suite.mockFeeRepo.On("FindUnpaidMonthlyFees", ctx).Return([]domain.MonthlyFee{}, nil).Once()
	suite.mockPenaltyRepo.On("FindUnpaidPenalties", ctx).Return([]domain.Penalty{}, nil).Once()

	report, err := suite.service.ComputeDebts(ctx)

	suite.Require().NoError(err)
	suite.Empty(report.Debts)
	suite.Equal(0, report.Summary.TotalMembers)
	suite.True(report.Summary.TotalDebt.Equal(decimal.Zero))
}

func (suite *DebtServiceTestSuite) TestComputeDebts_FeeRepoError() {
	ctx := context.Background()

	suite.mockFeeRepo.On("FindUnpaidMonthlyFees", ctx).Return(nil, assert.AnError).Once()

	report, err := suite.service.ComputeDebts(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
