package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/core/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PenaltyServiceTestSuite struct {
	suite.Suite
	mockPenaltyRepo *MockPenaltyRepository
	mockMemberRepo  *MockMemberRepository
	service         portssvc.PenaltySvcFacade
	now             time.Time
}

func (suite *PenaltyServiceTestSuite) SetupTest() {
	suite.mockPenaltyRepo = new(MockPenaltyRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.now = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewPenaltyService(
		suite.mockPenaltyRepo,
		suite.mockMemberRepo,
		services.WithPenaltyClock(func() time.Time { return suite.now }),
	)
}

func (suite *PenaltyServiceTestSuite) TestListPenalties_NoFilter() {
	ctx := context.Background()

	suite.mockPenaltyRepo.On("FindPenalties", ctx, portsrepo.PenaltyFilter{}).Return([]domain.Penalty{}, nil).Once()

	penalties, err := suite.service.ListPenalties(ctx, dto.ListPenaltiesParams{})

	suite.Require().NoError(err)
	suite.Empty(penalties)
	suite.mockPenaltyRepo.AssertExpectations(suite.T())
}

func (suite *PenaltyServiceTestSuite) TestListPenalties_TodayWinsOverDate() {
	ctx := context.Background()

	suite.mockPenaltyRepo.On("FindPenalties", ctx, mock.MatchedBy(func(filter portsrepo.PenaltyFilter) bool {
		return filter.Day != nil && filter.Day.Equal(suite.now)
	})).Return([]domain.Penalty{}, nil).Once()

	_, err := suite.service.ListPenalties(ctx, dto.ListPenaltiesParams{Date: "2020-01-01", Today: true})

	suite.Require().NoError(err)
	suite.mockPenaltyRepo.AssertExpectations(suite.T())
}

func (suite *PenaltyServiceTestSuite) TestListPenalties_DateFilter() {
	ctx := context.Background()

	suite.mockPenaltyRepo.On("FindPenalties", ctx, mock.MatchedBy(func(filter portsrepo.PenaltyFilter) bool {
		return filter.Day != nil && filter.Day.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Penalty{}, nil).Once()

	_, err := suite.service.ListPenalties(ctx, dto.ListPenaltiesParams{Date: "2025-03-01"})

	suite.Require().NoError(err)
}

func (suite *PenaltyServiceTestSuite) TestCreatePenalty_DefaultsDateToNow() {
	ctx := context.Background()
	member := domain.Member{MemberID: "m1", Name: "Alice", Status: domain.MemberActive}

	suite.mockMemberRepo.On("FindMemberByID", ctx, "m1").Return(&member, nil).Once()
	suite.mockPenaltyRepo.On("SavePenalty", ctx, mock.MatchedBy(func(p domain.Penalty) bool {
		return p.MemberID == "m1" && p.Date.Equal(suite.now) && !p.IsPaid && p.PaidDate == nil
	})).Return(nil).Once()

	penalty, err := suite.service.CreatePenalty(ctx, dto.CreatePenaltyRequest{
		MemberID: "m1",
		Amount:   decimal.NewFromInt(5),
		Reason:   "late to practice",
	})

	suite.Require().NoError(err)
	suite.Equal("Alice", penalty.MemberName)
	suite.Equal(suite.now, penalty.Date)
	suite.mockPenaltyRepo.AssertExpectations(suite.T())
}

func (suite *PenaltyServiceTestSuite) TestCreatePenalty_NonPositiveAmount() {
	ctx := context.Background()

	penalty, err := suite.service.CreatePenalty(ctx, dto.CreatePenaltyRequest{
		MemberID: "m1",
		Amount:   decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(penalty)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMemberByID", mock.Anything, mock.Anything)
}

func (suite *PenaltyServiceTestSuite) TestCreatePenalty_MemberNotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("FindMemberByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	penalty, err := suite.service.CreatePenalty(ctx, dto.CreatePenaltyRequest{
		MemberID: "missing",
		Amount:   decimal.NewFromInt(5),
	})

	suite.Require().Error(err)
	suite.Nil(penalty)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PenaltyServiceTestSuite) TestUpdatePenaltyPayment_MarkPaid() {
	ctx := context.Background()
	isPaid := true
	updated := domain.Penalty{PenaltyID: "p1", IsPaid: true, PaidDate: &suite.now}

	suite.mockPenaltyRepo.On("MarkPenaltyPayment", ctx, "p1", true, &suite.now, suite.now).Return(nil).Once()
	suite.mockPenaltyRepo.On("FindPenaltyByID", ctx, "p1").Return(&updated, nil).Once()

	penalty, err := suite.service.UpdatePenaltyPayment(ctx, "p1", dto.UpdatePaymentRequest{IsPaid: &isPaid})

	suite.Require().NoError(err)
	suite.True(penalty.IsPaid)
	suite.mockPenaltyRepo.AssertExpectations(suite.T())
}

func TestPenaltyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PenaltyServiceTestSuite))
}
