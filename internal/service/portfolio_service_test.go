package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/earning"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/mocks"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
	uowmocks "github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow/mocks"
)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Investments = append([]domain.Investment(nil), u.Investments...)
	return &c
}

func at(day, hour int) time.Time {
	return time.Date(2025, 3, day, hour, 0, 0, 0, earning.ReferenceZone)
}

type PortfolioServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockPackageRepo *mocks.MockPackageRepository
	mockDistributor *mocks.MockCommissionDistributor
	mockNotifier    *mocks.MockNotificationSender
	service         *PortfolioService

	now    time.Time
	stored *domain.User
	saves  int
	gold   *domain.Package
}

func TestPortfolioServiceSuite(t *testing.T) {
	suite.Run(t, new(PortfolioServiceTestSuite))
}

func (s *PortfolioServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPackageRepo = mocks.NewMockPackageRepository(s.mockCtrl)
	s.mockDistributor = mocks.NewMockCommissionDistributor(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotificationSender(s.mockCtrl)
	s.now = at(10, 9)
	s.saves = 0

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PackageRepoName)).
		Return(s.mockPackageRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	runInTX(s.mockUOW, s.mockTX)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	s.gold = &domain.Package{
		ID:           1,
		Name:         "Gold",
		DailyRate:    decimal.RequireFromString("0.015"),
		DurationDays: 10,
		MinAmount:    decimal.NewFromInt(100),
		MaxAmount:    decimal.NewFromInt(1000),
		IsActive:     true,
	}
	s.mockPackageRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (*domain.Package, error) {
			p := *s.gold
			return &p, nil
		}).AnyTimes()

	service, err := NewPortfolioService(s.mockUOW, s.mockDistributor, s.mockNotifier, discardLogger())
	s.Require().NoError(err)
	s.service = service.SetClock(func() time.Time { return s.now })
}

func (s *PortfolioServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// storeUser makes the mocked repository behave like a single-row table holding u.
func (s *PortfolioServiceTestSuite) storeUser(u *domain.User) {
	s.stored = cloneUser(u)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), u.ID).
		DoAndReturn(func(context.Context, int64) (*domain.User, error) {
			return cloneUser(s.stored), nil
		}).AnyTimes()
	s.mockUserRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *domain.User) error {
			s.stored = cloneUser(saved)
			s.saves++
			return nil
		}).AnyTimes()
}

func (s *PortfolioServiceTestSuite) requireDecimal(want string, got decimal.Decimal) {
	s.T().Helper()
	s.Require().True(decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func (s *PortfolioServiceTestSuite) TestLifecycle() {
	s.storeUser(&domain.User{ID: 1, Balance: decimal.NewFromInt(500)})
	s.mockDistributor.EXPECT().Distribute(gomock.Any(), gomock.Any()).Return(nil, nil)

	inv, err := s.service.CreateInvestment(s.T().Context(), 1, 1, decimal.NewFromInt(200))
	s.Require().NoError(err)
	s.requireDecimal("3", inv.DailyEarning)
	s.requireDecimal("30", inv.TotalReturn)
	s.True(at(20, 9).Equal(inv.EndDate))
	s.requireDecimal("300", s.stored.Balance)

	s.now = at(12, 11)
	preview, err := s.service.PreviewIncome(s.T().Context(), 1)
	s.Require().NoError(err)
	s.requireDecimal("9", preview.Total)
	s.True(at(13, 10).Equal(preview.NextBoundary))

	collected, err := s.service.CollectIncome(s.T().Context(), 1)
	s.Require().NoError(err)
	s.requireDecimal("9", collected.Collected)
	s.requireDecimal("309", collected.Balance)

	_, err = s.service.CollectIncome(s.T().Context(), 1)
	s.Require().ErrorIs(err, domain.ErrNothingToCollect)

	s.now = at(21, 11)
	redeemed, err := s.service.Redeem(s.T().Context(), 1)
	s.Require().NoError(err)
	s.requireDecimal("200", redeemed.Redeemed)
	s.requireDecimal("509", redeemed.Balance)
	s.Equal(domain.InvestmentStatusCompleted, s.stored.Investments[0].Status)

	// matured before its unclaimed days were collected, so they are gone.
	_, err = s.service.CollectIncome(s.T().Context(), 1)
	s.Require().ErrorIs(err, domain.ErrNothingToCollect)
	s.requireDecimal("509", s.stored.Balance)
	s.requireDecimal("9", s.stored.Investments[0].TotalEarned)

	_, err = s.service.Redeem(s.T().Context(), 1)
	s.Require().ErrorIs(err, domain.ErrNothingToRedeem)
}

func (s *PortfolioServiceTestSuite) TestCreateInvestmentRejects() {
	active := domain.Investment{
		ID:          uuid.New(),
		PackageName: "Gold",
		Status:      domain.InvestmentStatusActive,
		StartDate:   at(5, 9),
		EndDate:     at(15, 9),
	}

	cases := []struct {
		name    string
		user    domain.User
		pkg     func(p *domain.Package)
		amount  int64
		wantErr error
	}{
		{name: "zero amount", amount: 0, wantErr: domain.ErrInvalidAmount},
		{name: "below minimum", amount: 50, wantErr: domain.ErrAmountOutOfRange},
		{name: "above maximum", amount: 5000, wantErr: domain.ErrAmountOutOfRange},
		{
			name:    "inactive package",
			pkg:     func(p *domain.Package) { p.IsActive = false },
			amount:  200,
			wantErr: domain.ErrPackageInactive,
		},
		{
			name:    "vip too low",
			user:    domain.User{Balance: decimal.NewFromInt(500), VIPLevel: 1},
			pkg:     func(p *domain.Package) { p.RequiredVIPLevel = 2 },
			amount:  200,
			wantErr: domain.ErrVIPLevelTooLow,
		},
		{
			name: "duplicate active package",
			user: domain.User{
				Balance:     decimal.NewFromInt(500),
				Investments: []domain.Investment{active},
			},
			amount:  200,
			wantErr: domain.ErrDuplicateActivePackage,
		},
		{
			name:    "not enough balance",
			user:    domain.User{Balance: decimal.NewFromInt(150)},
			amount:  200,
			wantErr: domain.ErrNotEnoughBalance,
		},
	}

	for i, t := range cases {
		s.Run(t.name, func() {
			gold := *s.gold
			if t.pkg != nil {
				t.pkg(s.gold)
			}
			defer func() { s.gold = &gold }()

			t.user.ID = int64(100 + i)
			s.storeUser(&t.user)
			s.saves = 0

			inv, err := s.service.CreateInvestment(s.T().Context(), t.user.ID, 1, decimal.NewFromInt(t.amount))
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(inv)
			s.Zero(s.saves)
		})
	}
}

func (s *PortfolioServiceTestSuite) TestCreateInvestmentAfterMaturityOfSamePackage() {
	matured := domain.Investment{
		ID:           uuid.New(),
		PackageName:  "Gold",
		Amount:       decimal.NewFromInt(100),
		DailyEarning: decimal.RequireFromString("1.5"),
		Status:       domain.InvestmentStatusActive,
		StartDate:    at(1, 9),
		EndDate:      at(9, 9),
	}
	s.storeUser(&domain.User{ID: 1, Balance: decimal.NewFromInt(500), Investments: []domain.Investment{matured}})
	s.mockDistributor.EXPECT().Distribute(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.service.CreateInvestment(s.T().Context(), 1, 1, decimal.NewFromInt(200))
	s.Require().NoError(err)
	s.Require().Len(s.stored.Investments, 2)
	s.Equal(domain.InvestmentStatusCompleted, s.stored.Investments[0].Status)
	s.Equal(domain.InvestmentStatusActive, s.stored.Investments[1].Status)
	s.requireDecimal("100", s.stored.RedeemableBalance)
	s.requireDecimal("300", s.stored.Balance)
}

func (s *PortfolioServiceTestSuite) TestCreateInvestmentKeepsInvestmentWhenFanOutFails() {
	s.storeUser(&domain.User{ID: 1, Balance: decimal.NewFromInt(500)})
	s.mockDistributor.EXPECT().Distribute(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewFanOutError(uuid.New(), 2, errors.New("boom")))

	inv, err := s.service.CreateInvestment(s.T().Context(), 1, 1, decimal.NewFromInt(200))
	s.Require().NoError(err)
	s.NotNil(inv)
	s.Len(s.stored.Investments, 1)
	s.requireDecimal("300", s.stored.Balance)
}

func (s *PortfolioServiceTestSuite) TestCollectSweepsMaturityWithoutIncome() {
	// four boundaries left unclaimed before maturity.
	last := at(15, 10)
	inv := domain.Investment{
		ID:              uuid.New(),
		PackageName:     "Gold",
		Amount:          decimal.NewFromInt(200),
		DailyEarning:    decimal.NewFromInt(3),
		Status:          domain.InvestmentStatusActive,
		StartDate:       at(10, 9),
		EndDate:         at(20, 9),
		LastEarningDate: &last,
	}
	s.storeUser(&domain.User{ID: 1, Balance: decimal.NewFromInt(300), Investments: []domain.Investment{inv}})
	s.now = at(25, 12)

	res, err := s.service.CollectIncome(s.T().Context(), 1)
	s.Require().NoError(err)
	s.True(res.Collected.IsZero())
	s.requireDecimal("300", res.Balance)
	s.Equal([]string{"Gold"}, res.Matured)
	s.requireDecimal("200", s.stored.RedeemableBalance)
	s.requireDecimal("0", s.stored.Investments[0].TotalEarned)
	s.Equal(1, s.saves)
}

func (s *PortfolioServiceTestSuite) TestAssetSummary() {
	inv := domain.Investment{
		ID:           uuid.New(),
		PackageName:  "Gold",
		Amount:       decimal.NewFromInt(200),
		DailyEarning: decimal.NewFromInt(3),
		Status:       domain.InvestmentStatusActive,
		StartDate:    at(10, 9),
		EndDate:      at(20, 9),
	}
	s.storeUser(&domain.User{
		ID:          1,
		Balance:     decimal.NewFromInt(300),
		TeamIncome:  decimal.NewFromInt(42),
		VIPLevel:    2,
		Investments: []domain.Investment{inv},
	})
	s.now = at(11, 12)

	summary, err := s.service.AssetSummary(s.T().Context(), 1)
	s.Require().NoError(err)
	s.requireDecimal("300", summary.Balance)
	s.requireDecimal("200", summary.InvestedPrincipal)
	s.requireDecimal("42", summary.TeamIncome)
	s.requireDecimal("6", summary.ClaimableNow)
	s.Equal(1, summary.ActiveInvestments)
	s.Equal(2, summary.VIPLevel)
	s.True(at(12, 10).Equal(summary.NextBoundary))
	s.Zero(s.saves)
}
