package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/core/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MonthlyFeeServiceTestSuite struct {
	suite.Suite
	mockFeeRepo    *MockMonthlyFeeRepository
	mockMemberRepo *MockMemberRepository
	service        portssvc.MonthlyFeeSvcFacade
	now            time.Time
}

func (suite *MonthlyFeeServiceTestSuite) SetupTest() {
	suite.mockFeeRepo = new(MockMonthlyFeeRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.now = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewMonthlyFeeService(
		suite.mockFeeRepo,
		suite.mockMemberRepo,
		services.WithMonthlyFeeClock(func() time.Time { return suite.now }),
	)
}

func activeMember(id, name string) domain.Member {
	return domain.Member{MemberID: id, Name: name, Status: domain.MemberActive}
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_CreatesForAllActive() {
	ctx := context.Background()
	members := []domain.Member{activeMember("m1", "Alice"), activeMember("m2", "Bob")}

	suite.mockMemberRepo.On("FindMembersByStatus", ctx, domain.MemberActive).Return(members, nil).Once()
	suite.mockFeeRepo.On("FindMemberIDsWithFee", ctx, 4, 2025).Return([]string{}, nil).Once()
	suite.mockFeeRepo.On("SaveMonthlyFees", ctx, mock.MatchedBy(func(fees []domain.MonthlyFee) bool {
		if len(fees) != 2 {
			return false
		}
		for _, fee := range fees {
			if fee.IsPaid || fee.PaidDate != nil || fee.Month != 4 || fee.Year != 2025 {
				return false
			}
			if !fee.Amount.Equal(decimal.NewFromInt(50)) || fee.FeeID == "" {
				return false
			}
		}
		return fees[0].MemberID == "m1" && fees[1].MemberID == "m2"
	})).Return(2, nil).Once()

	result, err := suite.service.GenerateMonthlyFees(ctx, 4, 2025, decimal.NewFromInt(50))

	suite.Require().NoError(err)
	suite.Equal(2, result.Created)
	suite.Equal(0, result.Skipped)
	suite.Equal(2, result.Total)

	suite.mockFeeRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_SkipsCoveredMembers() {
	ctx := context.Background()
	members := []domain.Member{activeMember("m1", "Alice"), activeMember("m2", "Bob"), activeMember("m3", "Carol")}

	suite.mockMemberRepo.On("FindMembersByStatus", ctx, domain.MemberActive).Return(members, nil).Once()
	suite.mockFeeRepo.On("FindMemberIDsWithFee", ctx, 4, 2025).Return([]string{"m2"}, nil).Once()
	suite.mockFeeRepo.On("SaveMonthlyFees", ctx, mock.MatchedBy(func(fees []domain.MonthlyFee) bool {
		return len(fees) == 2 && fees[0].MemberID == "m1" && fees[1].MemberID == "m3"
	})).Return(2, nil).Once()

	result, err := suite.service.GenerateMonthlyFees(ctx, 4, 2025, decimal.NewFromInt(50))

	suite.Require().NoError(err)
	suite.Equal(2, result.Created)
	suite.Equal(1, result.Skipped)
	suite.Equal(3, result.Total)
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_SecondRunIsNoOp() {
	ctx := context.Background()
	members := []domain.Member{activeMember("m1", "Alice"), activeMember("m2", "Bob")}

	suite.mockMemberRepo.On("FindMembersByStatus", ctx, domain.MemberActive).Return(members, nil).Once()
	suite.mockFeeRepo.On("FindMemberIDsWithFee", ctx, 4, 2025).Return([]string{"m1", "m2"}, nil).Once()

	// Repeating with a different amount still creates nothing: the duplicate
	// check ignores amount.
	result, err := suite.service.GenerateMonthlyFees(ctx, 4, 2025, decimal.NewFromInt(999))

	suite.Require().NoError(err)
	suite.Equal(0, result.Created)
	suite.Equal(2, result.Skipped)
	suite.Equal(2, result.Total)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SaveMonthlyFees", mock.Anything, mock.Anything)
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_NoActiveMembers() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMembersByStatus", ctx, domain.MemberActive).Return([]domain.Member{}, nil).Once()

	result, err := suite.service.GenerateMonthlyFees(ctx, 4, 2025, decimal.NewFromInt(50))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNoActiveMembers)
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_Validation() {
	ctx := context.Background()
	amount := decimal.NewFromInt(50)

	cases := []struct {
		name   string
		month  int
		year   int
		amount decimal.Decimal
	}{
		{"month too low", 0, 2025, amount},
		{"month too high", 13, 2025, amount},
		{"year too low", 4, 999, amount},
		{"year too high", 4, 10000, amount},
		{"zero amount", 4, 2025, decimal.Zero},
		{"negative amount", 4, 2025, decimal.NewFromInt(-5)},
	}

	for _, tc := range cases {
		result, err := suite.service.GenerateMonthlyFees(ctx, tc.month, tc.year, tc.amount)
		suite.Require().Error(err, tc.name)
		suite.Nil(result, tc.name)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
	}

	// Validation failures never touch the store.
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMembersByStatus", mock.Anything, mock.Anything)
}

func (suite *MonthlyFeeServiceTestSuite) TestGenerateMonthlyFees_BatchFailureCreatesNothing() {
	ctx := context.Background()
	members := []domain.Member{activeMember("m1", "Alice")}

	suite.mockMemberRepo.On("FindMembersByStatus", ctx, domain.MemberActive).Return(members, nil).Once()
	suite.mockFeeRepo.On("FindMemberIDsWithFee", ctx, 4, 2025).Return([]string{}, nil).Once()
	suite.mockFeeRepo.On("SaveMonthlyFees", ctx, mock.Anything).Return(0, assert.AnError).Once()

	result, err := suite.service.GenerateMonthlyFees(ctx, 4, 2025, decimal.NewFromInt(50))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *MonthlyFeeServiceTestSuite) TestCreateMonthlyFee_Success() {
	ctx := context.Background()
	member := activeMember("m1", "Alice")

	suite.mockMemberRepo.On("FindMemberByID", ctx, "m1").Return(&member, nil).Once()
	suite.mockFeeRepo.On("SaveMonthlyFee", ctx, mock.AnythingOfType("domain.MonthlyFee")).Return(nil).Once()

	fee, err := suite.service.CreateMonthlyFee(ctx, dto.CreateMonthlyFeeRequest{
		MemberID: "m1",
		Month:    4,
		Year:     2025,
		Amount:   decimal.NewFromInt(50),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(fee.FeeID)
	suite.Equal("Alice", fee.MemberName)
	suite.False(fee.IsPaid)
	suite.Nil(fee.PaidDate)
	suite.Equal(suite.now, fee.CreatedAt)
}

func (suite *MonthlyFeeServiceTestSuite) TestCreateMonthlyFee_MemberNotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMemberByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	fee, err := suite.service.CreateMonthlyFee(ctx, dto.CreateMonthlyFeeRequest{
		MemberID: "missing",
		Month:    4,
		Year:     2025,
		Amount:   decimal.NewFromInt(50),
	})

	suite.Require().Error(err)
	suite.Nil(fee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MonthlyFeeServiceTestSuite) TestUpdateFeePayment_MarkPaidDefaultsPaidDate() {
	ctx := context.Background()
	isPaid := true
	updated := domain.MonthlyFee{FeeID: "f1", IsPaid: true, PaidDate: &suite.now}

	suite.mockFeeRepo.On("MarkFeePayment", ctx, "f1", true, &suite.now, suite.now).Return(nil).Once()
	suite.mockFeeRepo.On("FindMonthlyFeeByID", ctx, "f1").Return(&updated, nil).Once()

	fee, err := suite.service.UpdateFeePayment(ctx, "f1", dto.UpdatePaymentRequest{IsPaid: &isPaid})

	suite.Require().NoError(err)
	suite.True(fee.IsPaid)
	suite.Require().NotNil(fee.PaidDate)
	suite.Equal(suite.now, *fee.PaidDate)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyFeeServiceTestSuite) TestUpdateFeePayment_UnmarkClearsPaidDate() {
	ctx := context.Background()
	isPaid := false
	updated := domain.MonthlyFee{FeeID: "f1", IsPaid: false}

	suite.mockFeeRepo.On("MarkFeePayment", ctx, "f1", false, (*time.Time)(nil), suite.now).Return(nil).Once()
	suite.mockFeeRepo.On("FindMonthlyFeeByID", ctx, "f1").Return(&updated, nil).Once()

	fee, err := suite.service.UpdateFeePayment(ctx, "f1", dto.UpdatePaymentRequest{IsPaid: &isPaid})

	suite.Require().NoError(err)
	suite.False(fee.IsPaid)
	suite.Nil(fee.PaidDate)
}

func (suite *MonthlyFeeServiceTestSuite) TestUpdateFeePayment_NotFound() {
	ctx := context.Background()
	isPaid := true

	suite.mockFeeRepo.On("MarkFeePayment", ctx, "missing", true, &suite.now, suite.now).Return(apperrors.ErrNotFound).Once()

	fee, err := suite.service.UpdateFeePayment(ctx, "missing", dto.UpdatePaymentRequest{IsPaid: &isPaid})

	suite.Require().Error(err)
	suite.Nil(fee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMonthlyFeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlyFeeServiceTestSuite))
}
