package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/metrics"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/earning"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

type PortfolioService struct {
	uow         uow.UOW
	packageRepo PackageRepository
	distributor CommissionDistributor
	notifier    NotificationSender
	schedule    earning.Schedule
	l           *logrus.Entry
	now         func() time.Time
}

func NewPortfolioService(
	u uow.UOW,
	distributor CommissionDistributor,
	notifier NotificationSender,
	l *logrus.Logger,
) (*PortfolioService, error) {
	packageRepo, err := uow.GetRepositoryAs[PackageRepository](u, uow.RepositoryName(repoargs.PackageRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PortfolioService{
		uow:         u,
		packageRepo: packageRepo,
		distributor: distributor,
		notifier:    notifier,
		schedule:    earning.DefaultSchedule(),
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "portfolio",
		}),
		now: time.Now,
	}, nil
}

// SetClock replaces the time source.
func (s *PortfolioService) SetClock(now func() time.Time) *PortfolioService {
	s.now = now
	return s
}

// SetSchedule replaces the claim boundary schedule.
func (s *PortfolioService) SetSchedule(schedule earning.Schedule) *PortfolioService {
	s.schedule = schedule
	return s
}

func (s *PortfolioService) mutate(ctx context.Context, userID int64, fn userMutation) (earning.MaturityResult, error) {
	return mutateUser(ctx, s.uow, s.notifier, s.now, userID, fn)
}

// CreateInvestment places amount into packageID for userID.
//
// The package must exist, be active, accept amount and not exceed the user's VIP level. The user must not
// hold another active investment in a package of the same name and must have enough balance. The balance is
// debited and the package terms are snapshotted in the same transaction. Referral commission is distributed
// afterwards on the gross amount. A failed distribution is logged and left for the repair worker; the
// investment stays.
func (s *PortfolioService) CreateInvestment(
	ctx context.Context,
	userID int64,
	packageID int64,
	amount decimal.Decimal,
) (*domain.Investment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("creating investment: %w", domain.ErrInvalidAmount)
	}

	pkg, pkgErr := s.packageRepo.FindByID(ctx, packageID)
	if pkgErr != nil {
		return nil, fmt.Errorf("creating investment: %w", pkgErr)
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("creating investment: %w", domain.ErrPackageInactive)
	}
	if amount.LessThan(pkg.MinAmount) || amount.GreaterThan(pkg.MaxAmount) {
		return nil, fmt.Errorf("creating investment: %w", domain.ErrAmountOutOfRange)
	}

	var inv domain.Investment
	_, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		now time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		if user.VIPLevel < pkg.RequiredVIPLevel {
			return false, domain.ErrVIPLevelTooLow
		}
		if user.HasActiveInvestmentIn(pkg.Name) {
			return false, domain.ErrDuplicateActivePackage
		}
		if user.Balance.LessThan(amount) {
			return false, domain.ErrNotEnoughBalance
		}

		user.Balance = user.Balance.Sub(amount)
		inv = domain.NewInvestment(user.ID, *pkg, amount, now)
		user.Investments = append(user.Investments, inv)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating investment: %w", err)
	}

	metrics.InvestmentsCreated.Inc()
	metrics.AddAmount(metrics.InvestedAmount, amount)

	principal := inv.Amount
	s.notifier.Notify(ctx, domain.Notification{
		UserID:  userID,
		Title:   "Investment started",
		Message: fmt.Sprintf("%s started, %d days", inv.PackageName, inv.DurationDays),
		Kind:    domain.NotificationInvestment,
		Amount:  &principal,
	})

	s.distributeCommissions(ctx, inv)
	return &inv, nil
}

func (s *PortfolioService) distributeCommissions(ctx context.Context, inv domain.Investment) {
	if _, err := s.distributor.Distribute(ctx, inv.ID); err != nil {
		metrics.FanOutFailures.Inc()
		s.l.WithError(err).WithFields(logrus.Fields{
			"investorID":   inv.UserID,
			"investmentID": inv.ID,
			"amount":       inv.Amount,
		}).Error("commission fan-out failed, left for repair")
	}
}

type IncomePreview struct {
	Claims       []earning.Claim
	Total        decimal.Decimal
	NextBoundary time.Time
	Matured      []string
}

// PreviewIncome reports the income userID could collect right now without collecting it.
func (s *PortfolioService) PreviewIncome(ctx context.Context, userID int64) (*IncomePreview, error) {
	var preview IncomePreview
	swept, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		now time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		preview.Claims = s.schedule.Claims(user, now)
		preview.Total = earning.Total(preview.Claims)
		preview.NextBoundary = s.schedule.NextBoundaryAfter(now)
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("previewing income: %w", err)
	}
	preview.Matured = swept.PackageNames()
	return &preview, nil
}

type CollectResult struct {
	Collected decimal.Decimal
	Balance   decimal.Decimal
	Matured   []string
}

// CollectIncome credits every uncounted boundary of every active investment to the balance in one all-or-nothing
// write. Returns domain.ErrNothingToCollect when there is no income and nothing matured.
func (s *PortfolioService) CollectIncome(ctx context.Context, userID int64) (*CollectResult, error) {
	var res CollectResult
	swept, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		now time.Time,
		swept earning.MaturityResult,
	) (bool, error) {
		claims := s.schedule.Claims(user, now)
		if earning.Total(claims).IsZero() && !swept.HasMatured() {
			return false, domain.ErrNothingToCollect
		}
		res.Collected = earning.ApplyClaims(user, claims)
		res.Balance = user.Balance
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting income: %w", err)
	}
	res.Matured = swept.PackageNames()

	if res.Collected.IsPositive() {
		metrics.AddAmount(metrics.IncomeCollected, res.Collected)
		collected := res.Collected
		s.notifier.Notify(ctx, domain.Notification{
			UserID:  userID,
			Title:   "Income collected",
			Message: "Daily income was added to your balance",
			Kind:    domain.NotificationIncome,
			Amount:  &collected,
		})
	}
	return &res, nil
}

type RedeemResult struct {
	Redeemed decimal.Decimal
	Balance  decimal.Decimal
}

// Redeem moves the whole redeemable balance into the spendable balance. Returns domain.ErrNothingToRedeem
// when there is nothing to move.
func (s *PortfolioService) Redeem(ctx context.Context, userID int64) (*RedeemResult, error) {
	var res RedeemResult
	_, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		_ time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		if !user.RedeemableBalance.IsPositive() {
			return false, domain.ErrNothingToRedeem
		}
		res.Redeemed = user.RedeemableBalance
		user.Balance = user.Balance.Add(user.RedeemableBalance)
		user.RedeemableBalance = decimal.Zero
		res.Balance = user.Balance
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("redeeming: %w", err)
	}
	return &res, nil
}

type AssetSummary struct {
	Balance           decimal.Decimal
	RedeemableBalance decimal.Decimal
	InvestedPrincipal decimal.Decimal
	TotalEarnings     decimal.Decimal
	InterestIncome    decimal.Decimal
	TeamIncome        decimal.Decimal
	TeamEarnings      decimal.Decimal
	BonusIncome       decimal.Decimal
	VIPLevel          int
	ActiveInvestments int
	ClaimableNow      decimal.Decimal
	NextBoundary      time.Time
}

func (s *PortfolioService) AssetSummary(ctx context.Context, userID int64) (*AssetSummary, error) {
	var summary AssetSummary
	_, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		now time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		active := 0
		for _, inv := range user.Investments {
			if inv.Status == domain.InvestmentStatusActive {
				active++
			}
		}
		summary = AssetSummary{
			Balance:           user.Balance,
			RedeemableBalance: user.RedeemableBalance,
			InvestedPrincipal: user.InvestedPrincipal(),
			TotalEarnings:     user.TotalEarnings,
			InterestIncome:    user.InterestIncome,
			TeamIncome:        user.TeamIncome,
			TeamEarnings:      user.TeamEarnings,
			BonusIncome:       user.BonusIncome,
			VIPLevel:          user.VIPLevel,
			ActiveInvestments: active,
			ClaimableNow:      earning.Total(s.schedule.Claims(user, now)),
			NextBoundary:      s.schedule.NextBoundaryAfter(now),
		}
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("building asset summary: %w", err)
	}
	return &summary, nil
}

// ListInvestments returns every investment of userID with maturity applied.
func (s *PortfolioService) ListInvestments(ctx context.Context, userID int64) ([]domain.Investment, error) {
	var investments []domain.Investment
	_, err := s.mutate(ctx, userID, func(
		_ context.Context,
		_ uow.TX,
		user *domain.User,
		_ time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		investments = user.Investments
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	return investments, nil
}
