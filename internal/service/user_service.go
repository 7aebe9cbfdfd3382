package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/rates"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/tokens"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const (
	JWTTokenExpire = 24 * time.Hour

	invitationCodeAttempts = 10
)

var errInvitationCodeExhausted = errors.New("could not generate a unique invitation code")

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
	codeGen        func() string
	l              *logrus.Entry
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher, l *logrus.Logger) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
		codeGen:        randomInvitationCode,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "user",
		}),
	}, nil
}

// SetCodeGenerator replaces the invitation code generator.
func (s *UserService) SetCodeGenerator(gen func() string) *UserService {
	s.codeGen = gen
	return s
}

type RegisterUserArgs struct {
	Phone          *string
	Email          *string
	Password       string
	InvitationCode string
}

// Register creates a user and returns it together with a jwt token.
//
// Exactly one of phone and email must be set. A non-empty invitation code must belong to an existing user,
// who becomes the referrer. After the user is created the referrer's VIP level is recomputed from its direct
// referral count; it is only ever raised.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	if (args.Phone == nil) == (args.Email == nil) {
		return nil, "", fmt.Errorf("registering user: %w", domain.ErrInvalidContact)
	}

	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		var referrer *domain.User
		if args.InvitationCode != "" {
			var referrerErr error
			referrer, referrerErr = userRepo.FindByInvitationCode(c, args.InvitationCode)
			if referrerErr != nil {
				if errors.Is(referrerErr, domain.ErrRecordNotFound) {
					return domain.ErrInvalidReferralCode
				}
				return referrerErr //nolint:wrapcheck
			}
		}

		code, codeErr := s.uniqueInvitationCode(c, userRepo)
		if codeErr != nil {
			return codeErr
		}

		createArgs := repoargs.CreateUser{
			Phone:          args.Phone,
			Email:          args.Email,
			PasswordHash:   password,
			InvitationCode: code,
		}
		if referrer != nil {
			createArgs.ReferredBy = &referrer.InvitationCode
		}

		var createErr error
		user, createErr = userRepo.Create(c, createArgs)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if referrer == nil {
			return nil
		}
		return s.upgradeReferrer(c, userRepo, referrer)
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.IsAdmin, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

func (s *UserService) uniqueInvitationCode(ctx context.Context, repo UserRepository) (string, error) {
	for range invitationCodeAttempts {
		code := s.codeGen()
		exists, err := repo.InvitationCodeExists(ctx, code)
		if err != nil {
			return "", err //nolint:wrapcheck
		}
		if !exists {
			return code, nil
		}
	}
	return "", errInvitationCodeExhausted
}

func (s *UserService) upgradeReferrer(ctx context.Context, repo UserRepository, referrer *domain.User) error {
	count, countErr := repo.CountDirectReferrals(ctx, referrer.InvitationCode)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	level := rates.VIPLevelFor(count)
	if level <= referrer.VIPLevel {
		return nil
	}
	if raiseErr := repo.RaiseVIPLevel(ctx, referrer.ID, level); raiseErr != nil {
		return raiseErr //nolint:wrapcheck
	}
	s.l.WithFields(logrus.Fields{
		"userID":    referrer.ID,
		"vipLevel":  level,
		"referrals": count,
	}).Info("vip level raised")
	return nil
}

type LoginUserArgs struct {
	Login    string
	Password string
}

// Login finds the user by phone or email and checks the password. Returns the user and a jwt token.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindByLogin(ctx, args.Login)
	if userErr != nil {
		return nil, "", fmt.Errorf("login user: %w", userErr)
	}
	if !s.hasher.ComparePassword(args.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.IsAdmin, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}
