package pgrepo

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	_ "github.com/golang-migrate/migrate/v4/source/file"       //nolint:revive
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
)

// RepositoryTestSuite runs against a real postgres pointed to by TEST_DATABASE_URI.
type RepositoryTestSuite struct {
	suite.Suite
	conn *pgxpool.Pool
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := Connect(ctx, "../../db/migrations", os.Getenv("TEST_DATABASE_URI"), l)
	s.Require().NoError(err)
	s.conn = conn
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.conn != nil {
		s.conn.Close()
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	_, err := s.conn.Exec(s.T().Context(), `
		TRUNCATE fund_requests, notifications, commissions, investments, packages, users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func ptr[T any](v T) *T {
	return &v
}

func (s *RepositoryTestSuite) createUser(phone, code string, referredBy *string) *domain.User {
	u, err := NewUserRepository(s.conn).Create(s.T().Context(), repoargs.CreateUser{
		Phone:          ptr(phone),
		PasswordHash:   "hash",
		InvitationCode: code,
		ReferredBy:     referredBy,
	})
	s.Require().NoError(err)
	return u
}

func (s *RepositoryTestSuite) createPackage(name string) *domain.Package {
	p, err := NewPackageRepository(s.conn).Create(s.T().Context(), domain.Package{
		Name:         name,
		DailyRate:    decimal.RequireFromString("0.015"),
		DurationDays: 30,
		MinAmount:    decimal.NewFromInt(100),
		MaxAmount:    decimal.NewFromInt(1000),
		IsActive:     true,
	})
	s.Require().NoError(err)
	return p
}

func (s *RepositoryTestSuite) TestUserCreateAndFind() {
	ctx := s.T().Context()
	repo := NewUserRepository(s.conn)

	created := s.createUser("+8801700000001", "AB12CD", nil)
	s.Equal(int64(1), created.ID)
	s.True(created.Balance.IsZero())

	found, err := repo.FindByLogin(ctx, "+8801700000001")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)

	byCode, err := repo.FindByInvitationCode(ctx, "AB12CD")
	s.Require().NoError(err)
	s.Equal(created.ID, byCode.ID)

	exists, err := repo.InvitationCodeExists(ctx, "AB12CD")
	s.Require().NoError(err)
	s.True(exists)

	_, err = repo.FindByLogin(ctx, "nobody@example.com")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestUserDuplicatePhone() {
	s.createUser("+8801700000001", "AB12CD", nil)

	_, err := NewUserRepository(s.conn).Create(s.T().Context(), repoargs.CreateUser{
		Phone:          ptr("+8801700000001"),
		PasswordHash:   "hash",
		InvitationCode: "ZZ99ZZ",
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *RepositoryTestSuite) TestCountDirectReferrals() {
	sponsor := s.createUser("+8801700000001", "AB12CD", nil)
	s.createUser("+8801700000002", "CD34EF", &sponsor.InvitationCode)
	s.createUser("+8801700000003", "EF56GH", &sponsor.InvitationCode)

	n, err := NewUserRepository(s.conn).CountDirectReferrals(s.T().Context(), sponsor.InvitationCode)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *RepositoryTestSuite) TestSaveVersionConflict() {
	ctx := s.T().Context()
	repo := NewUserRepository(s.conn)
	s.createUser("+8801700000001", "AB12CD", nil)

	first, err := repo.FindByID(ctx, 1)
	s.Require().NoError(err)
	stale, err := repo.FindByID(ctx, 1)
	s.Require().NoError(err)

	first.Balance = decimal.NewFromInt(50)
	s.Require().NoError(repo.Save(ctx, first))
	s.Equal(stale.Version+1, first.Version)

	stale.Balance = decimal.NewFromInt(70)
	s.Require().ErrorIs(repo.Save(ctx, stale), domain.ErrVersionConflict)

	reloaded, err := repo.FindByID(ctx, 1)
	s.Require().NoError(err)
	s.True(reloaded.Balance.Equal(decimal.NewFromInt(50)))
}

func (s *RepositoryTestSuite) TestSaveNegativeBalance() {
	ctx := s.T().Context()
	repo := NewUserRepository(s.conn)
	s.createUser("+8801700000001", "AB12CD", nil)

	u, err := repo.FindByID(ctx, 1)
	s.Require().NoError(err)
	u.Balance = decimal.NewFromInt(-1)
	s.Require().ErrorIs(repo.Save(ctx, u), domain.ErrNotEnoughBalance)
}

func (s *RepositoryTestSuite) TestSaveUpsertsInvestments() {
	ctx := s.T().Context()
	repo := NewUserRepository(s.conn)
	u := s.createUser("+8801700000001", "AB12CD", nil)
	pkg := s.createPackage("Gold")

	inv := domain.NewInvestment(u.ID, *pkg, decimal.NewFromInt(200), time.Now())
	u.Investments = []domain.Investment{inv}
	s.Require().NoError(repo.Save(ctx, u))

	u.Investments[0].TotalEarned = decimal.NewFromInt(3)
	s.Require().NoError(repo.Save(ctx, u))

	reloaded, err := repo.FindByID(ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(reloaded.Investments, 1)
	s.True(reloaded.Investments[0].TotalEarned.Equal(decimal.NewFromInt(3)))

	second := domain.NewInvestment(u.ID, *pkg, decimal.NewFromInt(300), time.Now())
	reloaded.Investments = append(reloaded.Investments, second)
	s.Require().ErrorIs(repo.Save(ctx, reloaded), domain.ErrDuplicateKey)
}

func (s *RepositoryTestSuite) TestCommissionLedger() {
	ctx := s.T().Context()
	users := NewUserRepository(s.conn)
	commissions := NewCommissionRepository(s.conn)
	investments := NewInvestmentRepository(s.conn)

	sponsor := s.createUser("+8801700000001", "AB12CD", nil)
	investor := s.createUser("+8801700000002", "CD34EF", &sponsor.InvitationCode)
	pkg := s.createPackage("Gold")

	inv := domain.NewInvestment(investor.ID, *pkg, decimal.NewFromInt(1000), time.Now())
	investor.Investments = []domain.Investment{inv}
	s.Require().NoError(users.Save(ctx, investor))

	pending, err := investments.PendingFanOuts(ctx, time.Now().Add(time.Minute), 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(inv.ID, pending[0].ID)

	row := domain.Commission{
		InvestmentID:     inv.ID,
		FromUserID:       investor.ID,
		ToUserID:         sponsor.ID,
		Amount:           decimal.NewFromInt(100),
		Level:            1,
		InvestmentAmount: decimal.NewFromInt(1000),
		Percentage:       decimal.NewFromInt(10),
	}
	created, err := commissions.Insert(ctx, row)
	s.Require().NoError(err)
	s.False(created.Claimed)

	_, err = commissions.Insert(ctx, row)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)

	drift, err := commissions.FindLedgerDrift(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(drift, 1)
	s.Equal(sponsor.ID, drift[0].UserID)

	s.Require().NoError(users.CreditCommission(ctx, sponsor.ID, decimal.NewFromInt(100)))
	s.Require().NoError(investments.MarkCommissionsDistributed(ctx, inv.ID))

	drift, err = commissions.FindLedgerDrift(ctx, 10)
	s.Require().NoError(err)
	s.Empty(drift)

	sum, err := commissions.SumForRecipient(ctx, sponsor.ID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(100)))

	pending, err = investments.PendingFanOuts(ctx, time.Now().Add(time.Minute), 10)
	s.Require().NoError(err)
	s.Empty(pending)

	unclaimed, err := commissions.FindUnclaimedForUser(ctx, sponsor.ID)
	s.Require().NoError(err)
	s.Require().Len(unclaimed, 1)

	s.Require().NoError(commissions.MarkBatchClaimed(ctx, []int64{unclaimed[0].ID}, time.Now()))
	unclaimed, err = commissions.FindUnclaimedForUser(ctx, sponsor.ID)
	s.Require().NoError(err)
	s.Empty(unclaimed)

	s.Require().ErrorIs(users.CreditCommission(ctx, 999, decimal.NewFromInt(1)), domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestPackages() {
	ctx := s.T().Context()
	repo := NewPackageRepository(s.conn)
	gold := s.createPackage("Gold")
	silver := s.createPackage("Silver")

	silver.IsActive = false
	updated, err := repo.Update(ctx, *silver)
	s.Require().NoError(err)
	s.False(updated.IsActive)

	active, err := repo.ListActive(ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(gold.ID, active[0].ID)

	_, err = repo.Create(ctx, domain.Package{
		Name:         "Gold",
		DailyRate:    decimal.RequireFromString("0.01"),
		DurationDays: 10,
		MinAmount:    decimal.NewFromInt(1),
		MaxAmount:    decimal.NewFromInt(2),
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)

	_, err = repo.FindByID(ctx, 999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	missing := *gold
	missing.ID = 999
	_, err = repo.Update(ctx, missing)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestFundRequests() {
	ctx := s.T().Context()
	repo := NewFundRepository(s.conn)
	u := s.createUser("+8801700000001", "AB12CD", nil)

	created, err := repo.Create(ctx, repoargs.CreateFundRequest{
		UserID:    u.ID,
		Kind:      domain.FundKindWithdrawal,
		Amount:    decimal.NewFromInt(100),
		Fee:       decimal.NewFromInt(5),
		NetAmount: decimal.NewFromInt(95),
		Network:   "TRC20",
		Address:   "T" + uuid.NewString()[:20],
	})
	s.Require().NoError(err)
	s.Equal(domain.FundStatusPending, created.Status)

	locked, err := repo.FindByIDForUpdate(ctx, created.ID)
	s.Require().NoError(err)
	s.True(locked.NetAmount.Equal(decimal.NewFromInt(95)))

	s.Require().NoError(repo.SetStatus(ctx, created.ID, domain.FundStatusApproved, time.Now()))

	list, err := repo.ListByUser(ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(domain.FundStatusApproved, list[0].Status)
	s.NotNil(list[0].ProcessedAt)

	_, err = repo.FindByIDForUpdate(ctx, 999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestNotifications() {
	ctx := s.T().Context()
	repo := NewNotificationRepository(s.conn)
	u := s.createUser("+8801700000001", "AB12CD", nil)

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, domain.Notification{
			UserID:  u.ID,
			Title:   title,
			Message: title,
			Kind:    domain.NotificationIncome,
		})
		s.Require().NoError(err)
	}

	list, err := repo.ListByUser(ctx, u.ID, 2)
	s.Require().NoError(err)
	s.Len(list, 2)
}
