package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	FindByInvitationCode(ctx context.Context, code string) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	InvitationCodeExists(ctx context.Context, code string) (bool, error)
	CountDirectReferrals(ctx context.Context, code string) (int, error)
	RaiseVIPLevel(ctx context.Context, id int64, level int) error
	LockUsers(ctx context.Context, ids []int64) error
	CreditCommission(ctx context.Context, id int64, amount decimal.Decimal) error
	Save(ctx context.Context, user *domain.User) error
}

type InvestmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	PendingFanOuts(ctx context.Context, olderThan time.Time, limit uint) ([]domain.Investment, error)
	MarkCommissionsDistributed(ctx context.Context, id uuid.UUID) error
}

type CommissionRepository interface {
	Insert(ctx context.Context, c domain.Commission) (*domain.Commission, error)
	FindUnclaimedForUser(ctx context.Context, userID int64) ([]domain.Commission, error)
	MarkBatchClaimed(ctx context.Context, ids []int64, at time.Time) error
	SumForRecipient(ctx context.Context, userID int64) (decimal.Decimal, error)
	FindLedgerDrift(ctx context.Context, limit uint) ([]repoargs.LedgerDrift, error)
}

type PackageRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Package, error)
	ListActive(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p domain.Package) (*domain.Package, error)
	Update(ctx context.Context, p domain.Package) (*domain.Package, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.Notification, error)
}

type FundRepository interface {
	Create(ctx context.Context, args repoargs.CreateFundRequest) (*domain.FundRequest, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.FundRequest, error)
	SetStatus(ctx context.Context, id int64, status domain.FundStatus, at time.Time) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FundRequest, error)
}

// CommissionDistributor pays the upline of a freshly created investment.
type CommissionDistributor interface {
	Distribute(ctx context.Context, investmentID uuid.UUID) ([]domain.Commission, error)
}

// NotificationSender delivers in-app notifications. Delivery failures never reach the caller.
type NotificationSender interface {
	Notify(ctx context.Context, n domain.Notification)
}
