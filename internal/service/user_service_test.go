package service

import (
	"context"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/mocks"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/tokens"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
	uowmocks "github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow/mocks"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// runInTX makes mockUOW run every transaction against mockTX.
func runInTX(mockUOW *uowmocks.MockUOW, mockTX *uowmocks.MockTX) {
	mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, mockTX)
		}).AnyTimes()
}

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.jwtSecret = []byte("secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	runInTX(s.mockUOW, s.mockTX)

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd, discardLogger())
	s.Require().NoError(servErr)
	s.userService = userService.SetCodeGenerator(func() string { return "ABC123" })
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) assertToken(tokenStr string, userID int64) {
	s.Require().NotEmpty(tokenStr)
	claims, err := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
	s.Require().NoError(err)
	s.Equal(userID, claims.ID)
}

func (s *UserServiceTestSuite) TestRegisterWithoutReferrer() {
	email := gofakeit.Email()
	createdUser := &domain.User{ID: 1, Email: &email, PasswordHash: "hash", InvitationCode: "ABC123"}

	s.mockPsswd.EXPECT().HashPassword("secret-pass").Return("hash", nil)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "ABC123").Return(false, nil)
	s.mockUserRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateUser{Email: &email, PasswordHash: "hash", InvitationCode: "ABC123"}).
		Return(createdUser, nil)

	user, tokenStr, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Email:    &email,
		Password: "secret-pass",
	})
	s.Require().NoError(err)
	s.Equal(createdUser, user)
	s.assertToken(tokenStr, createdUser.ID)
}

func (s *UserServiceTestSuite) TestRegisterRaisesReferrerVIP() {
	phone := gofakeit.Phone()
	referrer := &domain.User{ID: 7, InvitationCode: "REF001", VIPLevel: 0}
	refCode := "REF001"
	createdUser := &domain.User{ID: 8, Phone: &phone, InvitationCode: "ABC123", ReferredBy: &refCode}

	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return("hash", nil)
	s.mockUserRepo.EXPECT().FindByInvitationCode(gomock.Any(), "REF001").Return(referrer, nil)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "ABC123").Return(false, nil)
	s.mockUserRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateUser{
			Phone:          &phone,
			PasswordHash:   "hash",
			InvitationCode: "ABC123",
			ReferredBy:     &refCode,
		}).
		Return(createdUser, nil)
	s.mockUserRepo.EXPECT().CountDirectReferrals(gomock.Any(), "REF001").Return(5, nil)
	s.mockUserRepo.EXPECT().RaiseVIPLevel(gomock.Any(), int64(7), 1).Return(nil)

	user, tokenStr, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Phone:          &phone,
		Password:       "secret-pass",
		InvitationCode: "REF001",
	})
	s.Require().NoError(err)
	s.Equal(createdUser, user)
	s.assertToken(tokenStr, createdUser.ID)
}

func (s *UserServiceTestSuite) TestRegisterNeverLowersReferrerVIP() {
	phone := gofakeit.Phone()
	referrer := &domain.User{ID: 7, InvitationCode: "REF001", VIPLevel: 3}

	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return("hash", nil)
	s.mockUserRepo.EXPECT().FindByInvitationCode(gomock.Any(), "REF001").Return(referrer, nil)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "ABC123").Return(false, nil)
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 8}, nil)
	s.mockUserRepo.EXPECT().CountDirectReferrals(gomock.Any(), "REF001").Return(5, nil)
	s.mockUserRepo.EXPECT().RaiseVIPLevel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Phone:          &phone,
		Password:       "secret-pass",
		InvitationCode: "REF001",
	})
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestRegisterRetriesInvitationCode() {
	email := gofakeit.Email()
	codes := []string{"TAKEN1", "FREE01"}
	s.userService.SetCodeGenerator(func() string {
		code := codes[0]
		codes = codes[1:]
		return code
	})

	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return("hash", nil)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "TAKEN1").Return(true, nil)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "FREE01").Return(false, nil)
	s.mockUserRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateUser{Email: &email, PasswordHash: "hash", InvitationCode: "FREE01"}).
		Return(&domain.User{ID: 3, InvitationCode: "FREE01"}, nil)

	user, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{Email: &email, Password: "p"})
	s.Require().NoError(err)
	s.Equal("FREE01", user.InvitationCode)
}

func (s *UserServiceTestSuite) TestRegisterErrors() {
	phone := gofakeit.Phone()
	email := gofakeit.Email()

	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return("hash", nil).AnyTimes()
	s.mockUserRepo.EXPECT().FindByInvitationCode(gomock.Any(), "NOPE00").Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().InvitationCodeExists(gomock.Any(), "ABC123").Return(false, nil)
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name    string
		args    RegisterUserArgs
		wantErr error
	}{
		{
			name:    "both contacts",
			args:    RegisterUserArgs{Phone: &phone, Email: &email, Password: "p"},
			wantErr: domain.ErrInvalidContact,
		},
		{
			name:    "no contact",
			args:    RegisterUserArgs{Password: "p"},
			wantErr: domain.ErrInvalidContact,
		},
		{
			name:    "unknown referral code",
			args:    RegisterUserArgs{Phone: &phone, Password: "p", InvitationCode: "NOPE00"},
			wantErr: domain.ErrInvalidReferralCode,
		},
		{
			name:    "duplicate phone",
			args:    RegisterUserArgs{Phone: &phone, Password: "p"},
			wantErr: domain.ErrDuplicateKey,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Register(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(user)
			s.Empty(tokenStr)
		})
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	phone := gofakeit.Phone()
	savedUser := domain.User{ID: 1, Phone: &phone, PasswordHash: "hash ok"}

	s.mockPsswd.EXPECT().ComparePassword("right", "hash ok").Return(true)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash ok").Return(false)

	s.mockUserRepo.EXPECT().FindByLogin(gomock.Any(), phone).Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().FindByLogin(gomock.Any(), "unknown").Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: LoginUserArgs{Login: phone, Password: "right"}},
		{name: "wrong login", args: LoginUserArgs{Login: "unknown", Password: "right"}, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: LoginUserArgs{Login: phone, Password: "wrong"}, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(savedUser.ID, user.ID)
				s.assertToken(tokenStr, savedUser.ID)
			}
		})
	}
}
