package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/psswd"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

type AppServices struct {
	UserService       *UserService
	PackageService    *PackageService
	PortfolioService  *PortfolioService
	CommissionService *CommissionService
	FundsService      *FundsService
	Notifier          *Notifier
}

type FactoryArgs struct {
	JWTSecret  []byte
	Withdrawal WithdrawalPolicy
}

type WithdrawalPolicy struct {
	FeePercent float64
	MinAmount  float64
}

func Factory(unitOfWork uow.UOW, args FactoryArgs, l *logrus.Logger) (*AppServices, error) {
	notifier, notifierErr := NewNotifier(unitOfWork, l)
	if notifierErr != nil {
		return nil, fmt.Errorf("service factory: %s", notifierErr.Error())
	}

	userService, userServiceErr := NewUserService(unitOfWork, args.JWTSecret, psswd.Hasher{}, l)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	packageService, packageServiceErr := NewPackageService(unitOfWork, l)
	if packageServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", packageServiceErr.Error())
	}

	commissionService, commissionServiceErr := NewCommissionService(unitOfWork, notifier, l)
	if commissionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", commissionServiceErr.Error())
	}

	portfolioService, portfolioServiceErr := NewPortfolioService(unitOfWork, commissionService, notifier, l)
	if portfolioServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", portfolioServiceErr.Error())
	}

	fundsService, fundsServiceErr := NewFundsService(unitOfWork, notifier, l)
	if fundsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", fundsServiceErr.Error())
	}
	fundsService.SetWithdrawalPolicy(
		decimal.NewFromFloat(args.Withdrawal.FeePercent),
		decimal.NewFromFloat(args.Withdrawal.MinAmount),
	)

	return &AppServices{
		UserService:       userService,
		PackageService:    packageService,
		PortfolioService:  portfolioService,
		CommissionService: commissionService,
		FundsService:      fundsService,
		Notifier:          notifier,
	}, nil
}
