package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/metrics"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup            = "/api"
	RegisterRoute         = "/user/register"
	LoginRoute            = "/user/login"
	PackagesRoute         = "/packages"
	AssetsRoute           = "/user/assets"
	InvestmentsRoute      = "/user/investments"
	IncomeRoute           = "/user/income"
	CollectRoute          = "/user/income/collect"
	RedeemRoute           = "/user/redeem"
	CommissionsRoute      = "/user/commissions"
	CommissionsClaimRoute = "/user/commissions/claim"
	NotificationsRoute    = "/user/notifications"
	FundsRoute            = "/user/funds"
	DepositsRoute         = "/user/deposits"
	WithdrawalsRoute      = "/user/withdrawals"

	AdminRouteGroup        = RouteGroup + "/admin"
	PackageRoute           = "/packages/:id"
	DepositApproveRoute    = "/deposits/:id/approve"
	DepositRejectRoute     = "/deposits/:id/reject"
	WithdrawalApproveRoute = "/withdrawals/:id/approve"
	WithdrawalRejectRoute  = "/withdrawals/:id/reject"
	RepairRoute            = "/investments/:id/commissions/repair"

	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	PackageService      PackageServicer
	PortfolioService    PortfolioServicer
	CommissionService   CommissionServicer
	FundsService        FundsServicer
	NotificationService NotificationServicer
	JWTSecretKey        []byte
	CORSOrigins         []string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.CORS(args.CORSOrigins))
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(metrics.Handler()))

	authHandler := NewAuthHandler(args.UserService)
	packageHandler := NewPackageHandler(args.PackageService)
	portfolioHandler := NewPortfolioHandler(args.PortfolioService)
	commissionHandler := NewCommissionHandler(args.CommissionService)
	fundsHandler := NewFundsHandler(args.FundsService)
	notificationHandler := NewNotificationHandler(args.NotificationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.GET(PackagesRoute, packageHandler.Index)

	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.GET(AssetsRoute, portfolioHandler.Assets)
	user.GET(InvestmentsRoute, portfolioHandler.Index)
	user.POST(InvestmentsRoute, portfolioHandler.Create)
	user.GET(IncomeRoute, portfolioHandler.Income)
	user.POST(CollectRoute, portfolioHandler.Collect)
	user.POST(RedeemRoute, portfolioHandler.Redeem)
	user.GET(CommissionsRoute, commissionHandler.Index)
	user.POST(CommissionsClaimRoute, commissionHandler.Claim)
	user.GET(NotificationsRoute, notificationHandler.Index)
	user.GET(FundsRoute, fundsHandler.Index)
	user.POST(DepositsRoute, fundsHandler.Deposit)
	user.POST(WithdrawalsRoute, fundsHandler.Withdraw)

	admin := r.Group(AdminRouteGroup, middlewares.AuthRequired(args.JWTSecretKey), middlewares.AdminRequired())
	admin.POST(PackagesRoute, packageHandler.Create)
	admin.PUT(PackageRoute, packageHandler.Update)
	admin.POST(DepositApproveRoute, fundsHandler.ApproveDeposit())
	admin.POST(DepositRejectRoute, fundsHandler.RejectDeposit())
	admin.POST(WithdrawalApproveRoute, fundsHandler.ApproveWithdrawal())
	admin.POST(WithdrawalRejectRoute, fundsHandler.RejectWithdrawal())
	admin.POST(RepairRoute, commissionHandler.Repair)

	return r, nil
}
