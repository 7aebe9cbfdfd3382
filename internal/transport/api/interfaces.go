package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type PackageServicer interface {
	ListActive(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p domain.Package) (*domain.Package, error)
	Update(ctx context.Context, p domain.Package) (*domain.Package, error)
}

type PortfolioServicer interface {
	CreateInvestment(ctx context.Context, userID, packageID int64, amount decimal.Decimal) (*domain.Investment, error)
	ListInvestments(ctx context.Context, userID int64) ([]domain.Investment, error)
	PreviewIncome(ctx context.Context, userID int64) (*service.IncomePreview, error)
	CollectIncome(ctx context.Context, userID int64) (*service.CollectResult, error)
	Redeem(ctx context.Context, userID int64) (*service.RedeemResult, error)
	AssetSummary(ctx context.Context, userID int64) (*service.AssetSummary, error)
}

type CommissionServicer interface {
	UnclaimedCommissions(ctx context.Context, userID int64) ([]domain.Commission, error)
	ClaimCommissions(ctx context.Context, userID int64) (*service.ClaimResult, error)
	RepairFanOut(ctx context.Context, investmentID uuid.UUID) ([]domain.Commission, error)
}

type FundsServicer interface {
	RequestDeposit(ctx context.Context, userID int64, args service.DepositArgs) (*domain.FundRequest, error)
	RequestWithdrawal(ctx context.Context, userID int64, args service.WithdrawalArgs) (*domain.FundRequest, error)
	ListFundRequests(ctx context.Context, userID int64) ([]domain.FundRequest, error)
	ApproveDeposit(ctx context.Context, id int64) (*domain.FundRequest, error)
	RejectDeposit(ctx context.Context, id int64) (*domain.FundRequest, error)
	ApproveWithdrawal(ctx context.Context, id int64) (*domain.FundRequest, error)
	RejectWithdrawal(ctx context.Context, id int64) (*domain.FundRequest, error)
}

type NotificationServicer interface {
	List(ctx context.Context, userID int64, limit uint) ([]domain.Notification, error)
}
