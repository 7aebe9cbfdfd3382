package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/earning"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

var (
	DefaultWithdrawalFeePercent = decimal.NewFromInt(5)   //nolint:gochecknoglobals
	DefaultWithdrawalMinAmount  = decimal.NewFromInt(10)  //nolint:gochecknoglobals
	hundred                     = decimal.NewFromInt(100) //nolint:gochecknoglobals
)

type FundsService struct {
	uow           uow.UOW
	fundRepo      FundRepository
	notifier      NotificationSender
	feePercent    decimal.Decimal
	minWithdrawal decimal.Decimal
	l             *logrus.Entry
	now           func() time.Time
}

func NewFundsService(u uow.UOW, notifier NotificationSender, l *logrus.Logger) (*FundsService, error) {
	fundRepo, err := uow.GetRepositoryAs[FundRepository](u, uow.RepositoryName(repoargs.FundRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &FundsService{
		uow:           u,
		fundRepo:      fundRepo,
		notifier:      notifier,
		feePercent:    DefaultWithdrawalFeePercent,
		minWithdrawal: DefaultWithdrawalMinAmount,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "funds",
		}),
		now: time.Now,
	}, nil
}

// SetWithdrawalPolicy sets the withdrawal fee in percent and the minimal withdrawal amount.
func (s *FundsService) SetWithdrawalPolicy(feePercent, minAmount decimal.Decimal) *FundsService {
	s.feePercent = feePercent
	s.minWithdrawal = minAmount
	return s
}

// SetClock replaces the time source.
func (s *FundsService) SetClock(now func() time.Time) *FundsService {
	s.now = now
	return s
}

type DepositArgs struct {
	Amount  decimal.Decimal
	Network string
	TxHash  string
}

// RequestDeposit records a pending deposit. The balance is credited only when an admin approves it.
func (s *FundsService) RequestDeposit(ctx context.Context, userID int64, args DepositArgs) (*domain.FundRequest, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("requesting deposit: %w", domain.ErrInvalidAmount)
	}
	req, err := s.fundRepo.Create(ctx, repoargs.CreateFundRequest{
		UserID:    userID,
		Kind:      domain.FundKindDeposit,
		Amount:    args.Amount,
		Fee:       decimal.Zero,
		NetAmount: args.Amount,
		Network:   args.Network,
		TxHash:    args.TxHash,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting deposit: %w", err)
	}
	return req, nil
}

type WithdrawalArgs struct {
	Amount  decimal.Decimal
	Network string
	Address string
}

// RequestWithdrawal debits the full amount and records a pending withdrawal of amount minus the fee.
func (s *FundsService) RequestWithdrawal(
	ctx context.Context,
	userID int64,
	args WithdrawalArgs,
) (*domain.FundRequest, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("requesting withdrawal: %w", domain.ErrInvalidAmount)
	}
	if args.Amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("requesting withdrawal: %w", domain.ErrAmountOutOfRange)
	}
	fee := args.Amount.Mul(s.feePercent).Div(hundred)

	var req *domain.FundRequest
	_, err := mutateUser(ctx, s.uow, s.notifier, s.now, userID, func(
		c context.Context,
		tx uow.TX,
		user *domain.User,
		_ time.Time,
		_ earning.MaturityResult,
	) (bool, error) {
		if user.Balance.LessThan(args.Amount) {
			return false, domain.ErrNotEnoughBalance
		}
		repo, repoErr := uow.GetAs[FundRepository](tx, uow.RepositoryName(repoargs.FundRepoName))
		if repoErr != nil {
			return false, repoErr //nolint:wrapcheck
		}

		var createErr error
		req, createErr = repo.Create(c, repoargs.CreateFundRequest{
			UserID:    userID,
			Kind:      domain.FundKindWithdrawal,
			Amount:    args.Amount,
			Fee:       fee,
			NetAmount: args.Amount.Sub(fee),
			Network:   args.Network,
			Address:   args.Address,
		})
		if createErr != nil {
			return false, createErr //nolint:wrapcheck
		}

		user.Balance = user.Balance.Sub(args.Amount)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", err)
	}
	return req, nil
}

func (s *FundsService) ApproveDeposit(ctx context.Context, id int64) (*domain.FundRequest, error) {
	return s.process(ctx, id, domain.FundKindDeposit, domain.FundStatusApproved, func(user *domain.User,
		req *domain.FundRequest) {
		user.Balance = user.Balance.Add(req.NetAmount)
	})
}

func (s *FundsService) RejectDeposit(ctx context.Context, id int64) (*domain.FundRequest, error) {
	return s.process(ctx, id, domain.FundKindDeposit, domain.FundStatusRejected, nil)
}

func (s *FundsService) ApproveWithdrawal(ctx context.Context, id int64) (*domain.FundRequest, error) {
	return s.process(ctx, id, domain.FundKindWithdrawal, domain.FundStatusApproved, nil)
}

// RejectWithdrawal refunds the full debited amount.
func (s *FundsService) RejectWithdrawal(ctx context.Context, id int64) (*domain.FundRequest, error) {
	return s.process(ctx, id, domain.FundKindWithdrawal, domain.FundStatusRejected, func(user *domain.User,
		req *domain.FundRequest) {
		user.Balance = user.Balance.Add(req.Amount)
	})
}

// process moves a pending request of the given kind to status. apply, when set, changes the owner's balance
// in the same transaction, after the owner's matured investments were swept. A request that is not pending
// yields domain.ErrAlreadyProcessed.
func (s *FundsService) process(
	ctx context.Context,
	id int64,
	kind domain.FundKind,
	status domain.FundStatus,
	apply func(user *domain.User, req *domain.FundRequest),
) (*domain.FundRequest, error) {
	var (
		req   *domain.FundRequest
		swept earning.MaturityResult
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		swept = earning.MaturityResult{}
		fundRepo, fundRepoErr := uow.GetAs[FundRepository](tx, uow.RepositoryName(repoargs.FundRepoName))
		if fundRepoErr != nil {
			return fundRepoErr //nolint:wrapcheck
		}
		var findErr error
		req, findErr = fundRepo.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if req.Kind != kind {
			return domain.ErrRecordNotFound
		}
		if req.Status != domain.FundStatusPending {
			return domain.ErrAlreadyProcessed
		}

		now := s.now()
		if apply != nil {
			userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if userRepoErr != nil {
				return userRepoErr //nolint:wrapcheck
			}
			user, userErr := userRepo.FindByIDForUpdate(c, req.UserID)
			if userErr != nil {
				return userErr //nolint:wrapcheck
			}
			swept = earning.SweepMatured(user, now)
			apply(user, req)
			if saveErr := userRepo.Save(c, user); saveErr != nil {
				return saveErr //nolint:wrapcheck
			}
		}

		if statusErr := fundRepo.SetStatus(c, id, status, now); statusErr != nil {
			return statusErr //nolint:wrapcheck
		}
		req.Status = status
		req.ProcessedAt = &now
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("processing %s request %d: %w", kind, id, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"requestID": id,
		"userID":    req.UserID,
		"kind":      kind,
		"status":    status,
	}).Info("fund request processed")

	notifyMatured(ctx, s.notifier, req.UserID, swept)

	amount := req.Amount
	s.notifier.Notify(ctx, domain.Notification{
		UserID:  req.UserID,
		Title:   fmt.Sprintf("%s %s", fundTitle(kind), status),
		Message: fmt.Sprintf("Your %s request #%d was %s", kind, id, status),
		Kind:    fundNotificationKind(kind),
		Amount:  &amount,
	})
	return req, nil
}

func fundTitle(kind domain.FundKind) string {
	if kind == domain.FundKindDeposit {
		return "Deposit"
	}
	return "Withdrawal"
}

func fundNotificationKind(kind domain.FundKind) domain.NotificationKind {
	if kind == domain.FundKindDeposit {
		return domain.NotificationDeposit
	}
	return domain.NotificationWithdrawal
}

func (s *FundsService) ListFundRequests(ctx context.Context, userID int64) ([]domain.FundRequest, error) {
	requests, err := s.fundRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing fund requests: %w", err)
	}
	return requests, nil
}
