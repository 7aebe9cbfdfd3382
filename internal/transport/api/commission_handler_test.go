package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/api/testutils"
)

type CommissionHandlerTestSuite struct {
	handlerSuite
}

func TestCommissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommissionHandlerTestSuite))
}

func (s *CommissionHandlerTestSuite) TestIndex() {
	s.mockCommissionService.EXPECT().UnclaimedCommissions(gomock.Any(), testUserID).Return([]domain.Commission{
		{
			ID:               1,
			InvestmentID:     uuid.New(),
			FromUserID:       7,
			Level:            1,
			InvestmentAmount: decimal.NewFromInt(1000),
			Percentage:       decimal.NewFromInt(10),
			Amount:           decimal.NewFromInt(100),
		},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+CommissionsRoute, nil, s.userToken)
	var out []CommissionResponse
	s.Require().NoError(testutils.DecodeJSON(res, &out))
	s.Equal(http.StatusOK, res.StatusCode)
	s.Require().Len(out, 1)
	s.True(out[0].Amount.Equal(decimal.NewFromInt(100)))
	s.Equal(int64(7), out[0].FromUserID)
}

func (s *CommissionHandlerTestSuite) TestClaim() {
	s.mockCommissionService.EXPECT().ClaimCommissions(gomock.Any(), testUserID).
		Return(&service.ClaimResult{Count: 2, Total: decimal.NewFromInt(180)}, nil)

	out := s.decode(http.MethodPost, RouteGroup+CommissionsClaimRoute, nil, s.userToken, http.StatusOK)
	s.Equal("ok", out["status"])
	s.InDelta(2.0, out["count"], 0)
	s.Equal("180", out["total"])
}

func (s *CommissionHandlerTestSuite) TestClaimNothing() {
	s.mockCommissionService.EXPECT().ClaimCommissions(gomock.Any(), testUserID).
		Return(nil, fmt.Errorf("claiming commissions: %w", domain.ErrNothingToClaim))

	out := s.decode(http.MethodPost, RouteGroup+CommissionsClaimRoute, nil, s.userToken, http.StatusOK)
	s.Equal("empty", out["status"])
	s.Equal(domain.ErrNothingToClaim.Error(), out["message"])
}

func (s *CommissionHandlerTestSuite) TestRepair() {
	id := uuid.New()
	s.mockCommissionService.EXPECT().RepairFanOut(gomock.Any(), id).
		Return([]domain.Commission{{ID: 1}, {ID: 2}}, nil)

	out := s.decode(http.MethodPost, adminURL(RepairRoute, id), nil, s.adminToken, http.StatusOK)
	s.InDelta(2.0, out["paid"], 0)

	s.Equal(http.StatusNotFound, s.status(http.MethodPost, adminURL(RepairRoute, "not-a-uuid"), nil, s.adminToken))
	s.Equal(http.StatusForbidden, s.status(http.MethodPost, adminURL(RepairRoute, id), nil, s.userToken))
}

func (s *CommissionHandlerTestSuite) TestNotifications() {
	s.mockNotificationService.EXPECT().List(gomock.Any(), testUserID, uint(0)).Return([]domain.Notification{
		{ID: 1, Title: "Income collected", Kind: domain.NotificationIncome},
	}, nil)
	s.mockNotificationService.EXPECT().List(gomock.Any(), testUserID, uint(10)).Return(nil, nil)

	s.Equal(http.StatusOK, s.status(http.MethodGet, RouteGroup+NotificationsRoute, nil, s.userToken))
	s.Equal(http.StatusOK, s.status(http.MethodGet, RouteGroup+NotificationsRoute+"?limit=10", nil, s.userToken))
	s.Equal(http.StatusBadRequest,
		s.status(http.MethodGet, RouteGroup+NotificationsRoute+"?limit=500", nil, s.userToken))
}
