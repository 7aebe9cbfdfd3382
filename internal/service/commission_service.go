package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/metrics"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/rates"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const (
	// fanOutGracePeriod keeps the repair worker away from investments whose fan-out may still be running.
	fanOutGracePeriod      = time.Minute
	reconcileLimit    uint = 1000
	percentMultiplier      = 100
)

type CommissionService struct {
	uow            uow.UOW
	userRepo       UserRepository
	commissionRepo CommissionRepository
	investmentRepo InvestmentRepository
	notifier       NotificationSender
	l              *logrus.Entry
	now            func() time.Time
}

func NewCommissionService(u uow.UOW, notifier NotificationSender, l *logrus.Logger) (*CommissionService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	commissionRepo, commissionRepoErr := uow.GetRepositoryAs[CommissionRepository](
		u, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr //nolint:wrapcheck
	}
	investmentRepo, investmentRepoErr := uow.GetRepositoryAs[InvestmentRepository](
		u, uow.RepositoryName(repoargs.InvestmentRepoName))
	if investmentRepoErr != nil {
		return nil, investmentRepoErr //nolint:wrapcheck
	}
	return &CommissionService{
		uow:            u,
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
		investmentRepo: investmentRepo,
		notifier:       notifier,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "commission",
		}),
		now: time.Now,
	}, nil
}

// SetClock replaces the time source.
func (s *CommissionService) SetClock(now func() time.Time) *CommissionService {
	s.now = now
	return s
}

// Distribute pays referral commission for one investment to up to three generations of its upline.
//
// The whole fan-out is one transaction:
//  1. If the investment is already marked distributed, nothing happens.
//  2. The upline is resolved and locked in ascending id order.
//  3. For every member, amount = investment amount * rate(member VIP level, generation). A commission row is
//     inserted and only a newly inserted row credits the member's balance, team income and team earnings.
//  4. The investment is marked distributed.
//
// Running Distribute again for the same investment never credits anyone twice.
func (s *CommissionService) Distribute(ctx context.Context, investmentID uuid.UUID) ([]domain.Commission, error) {
	var created []domain.Commission

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		created = nil

		userRepo, commissionRepo, investmentRepo, reposErr := s.txRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		inv, invErr := investmentRepo.FindByID(c, investmentID)
		if invErr != nil {
			return invErr //nolint:wrapcheck
		}
		if inv.CommissionsDistributed {
			return nil
		}
		if !inv.Amount.IsPositive() {
			return domain.ErrInvalidAmount
		}

		investor, investorErr := userRepo.FindByID(c, inv.UserID)
		if investorErr != nil {
			return investorErr //nolint:wrapcheck
		}

		upline, uplineErr := ResolveUpline(c, userRepo, investor)
		if uplineErr != nil {
			return uplineErr
		}

		if lockErr := userRepo.LockUsers(c, uplineIDs(upline)); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		for _, member := range upline {
			commission, payErr := s.pay(c, userRepo, commissionRepo, inv, member)
			if payErr != nil {
				return domain.NewFanOutError(inv.ID, member.User.ID, payErr)
			}
			if commission != nil {
				created = append(created, *commission)
			}
		}

		return investmentRepo.MarkCommissionsDistributed(c, inv.ID) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("distributing commissions for investment %s: %w", investmentID, txErr)
	}

	for _, commission := range created {
		level := strconv.Itoa(commission.Level)
		metrics.CommissionsPaid.WithLabelValues(level).Inc()
		metrics.AddAmount(metrics.CommissionAmount.WithLabelValues(level), commission.Amount)

		amount := commission.Amount
		s.notifier.Notify(ctx, domain.Notification{
			UserID:  commission.ToUserID,
			Title:   "Team commission received",
			Message: fmt.Sprintf("Level %d commission from member %d", commission.Level, commission.FromUserID),
			Kind:    domain.NotificationCommission,
			Amount:  &amount,
		})
	}
	return created, nil
}

// pay credits one upline member. Returns nil without error if the member earns nothing or was already paid.
func (s *CommissionService) pay(
	ctx context.Context,
	userRepo UserRepository,
	commissionRepo CommissionRepository,
	inv *domain.Investment,
	member UplineMember,
) (*domain.Commission, error) {
	rate := rates.For(member.User.VIPLevel, member.Level)
	amount := inv.Amount.Mul(rate)
	if !amount.IsPositive() {
		return nil, nil //nolint:nilnil
	}

	commission, insertErr := commissionRepo.Insert(ctx, domain.Commission{
		InvestmentID:     inv.ID,
		FromUserID:       inv.UserID,
		ToUserID:         member.User.ID,
		Amount:           amount,
		Level:            member.Level,
		InvestmentAmount: inv.Amount,
		Percentage:       rate.Mul(decimal.NewFromInt(percentMultiplier)),
		VIPLevel:         member.User.VIPLevel,
	})
	if insertErr != nil {
		if errors.Is(insertErr, domain.ErrDuplicateKey) {
			return nil, nil //nolint:nilnil
		}
		return nil, insertErr //nolint:wrapcheck
	}

	if creditErr := userRepo.CreditCommission(ctx, member.User.ID, amount); creditErr != nil {
		return nil, creditErr //nolint:wrapcheck
	}
	return commission, nil
}

func (s *CommissionService) txRepos(
	tx uow.TX,
) (UserRepository, CommissionRepository, InvestmentRepository, error) {
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, nil, nil, userRepoErr //nolint:wrapcheck
	}
	commissionRepo, commissionRepoErr := uow.GetAs[CommissionRepository](
		tx, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, nil, nil, commissionRepoErr //nolint:wrapcheck
	}
	investmentRepo, investmentRepoErr := uow.GetAs[InvestmentRepository](
		tx, uow.RepositoryName(repoargs.InvestmentRepoName))
	if investmentRepoErr != nil {
		return nil, nil, nil, investmentRepoErr //nolint:wrapcheck
	}
	return userRepo, commissionRepo, investmentRepo, nil
}

func uplineIDs(upline []UplineMember) []int64 {
	ids := make([]int64, len(upline))
	for i, member := range upline {
		ids[i] = member.User.ID
	}
	slices.Sort(ids)
	return ids
}

// PendingFanOuts returns investments whose fan-out never completed and that are older than the grace period.
func (s *CommissionService) PendingFanOuts(ctx context.Context, limit uint) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.PendingFanOuts(ctx, s.now().Add(-fanOutGracePeriod), limit)
	if err != nil {
		return nil, fmt.Errorf("finding pending fan-outs: %w", err)
	}
	return investments, nil
}

// RepairFanOut re-runs distribution for one investment. Already paid recipients are skipped.
func (s *CommissionService) RepairFanOut(ctx context.Context, investmentID uuid.UUID) ([]domain.Commission, error) {
	created, err := s.Distribute(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	metrics.FanOutRepaired.Inc()
	s.l.WithFields(logrus.Fields{
		"investmentID": investmentID,
		"paid":         len(created),
	}).Info("fan-out repaired")
	return created, nil
}

func (s *CommissionService) UnclaimedCommissions(ctx context.Context, userID int64) ([]domain.Commission, error) {
	commissions, err := s.commissionRepo.FindUnclaimedForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding unclaimed commissions: %w", err)
	}
	return commissions, nil
}

type ClaimResult struct {
	Count int
	Total decimal.Decimal
}

// ClaimCommissions marks every unclaimed commission of userID as claimed. Balances are untouched because
// commissions are credited when they are distributed. Returns domain.ErrNothingToClaim when there is none.
func (s *CommissionService) ClaimCommissions(ctx context.Context, userID int64) (*ClaimResult, error) {
	var res ClaimResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CommissionRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		unclaimed, findErr := repo.FindUnclaimedForUser(c, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if len(unclaimed) == 0 {
			return domain.ErrNothingToClaim
		}

		res = ClaimResult{Count: len(unclaimed), Total: decimal.Zero}
		ids := make([]int64, len(unclaimed))
		for i, commission := range unclaimed {
			ids[i] = commission.ID
			res.Total = res.Total.Add(commission.Amount)
		}
		return repo.MarkBatchClaimed(c, ids, s.now()) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("claiming commissions: %w", txErr)
	}
	return &res, nil
}

type ReconcileResult struct {
	UserID     int64
	TeamIncome decimal.Decimal
	LedgerSum  decimal.Decimal
}

func (r ReconcileResult) Drift() decimal.Decimal {
	return r.TeamIncome.Sub(r.LedgerSum)
}

// Reconcile compares the cached team income of userID with the sum of its commission ledger.
func (s *CommissionService) Reconcile(ctx context.Context, userID int64) (*ReconcileResult, error) {
	user, userErr := s.userRepo.FindByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("reconciling user %d: %w", userID, userErr)
	}
	sum, sumErr := s.commissionRepo.SumForRecipient(ctx, userID)
	if sumErr != nil {
		return nil, fmt.Errorf("reconciling user %d: %w", userID, sumErr)
	}
	return &ReconcileResult{UserID: userID, TeamIncome: user.TeamIncome, LedgerSum: sum}, nil
}

// ReconcileAll lists every user whose team income disagrees with the commission ledger.
func (s *CommissionService) ReconcileAll(ctx context.Context) ([]ReconcileResult, error) {
	drift, err := s.commissionRepo.FindLedgerDrift(ctx, reconcileLimit)
	if err != nil {
		return nil, fmt.Errorf("reconciling commission ledger: %w", err)
	}
	results := make([]ReconcileResult, len(drift))
	for i, d := range drift {
		results[i] = ReconcileResult{UserID: d.UserID, TeamIncome: d.TeamIncome, LedgerSum: d.LedgerSum}
	}
	return results, nil
}
