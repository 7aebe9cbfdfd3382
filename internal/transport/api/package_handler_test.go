package api

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

type PackageHandlerTestSuite struct {
	handlerSuite
}

func TestPackageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}

func packageBody() map[string]any {
	return map[string]any{
		"name":             "Gold",
		"dailyRate":        "0.015",
		"durationDays":     10,
		"minAmount":        "100",
		"maxAmount":        "1000",
		"requiredVipLevel": 1,
		"isActive":         true,
	}
}

func (s *PackageHandlerTestSuite) TestIndex() {
	s.mockPackageService.EXPECT().ListActive(gomock.Any()).Return([]domain.Package{
		{ID: 1, Name: "Gold", DailyRate: decimal.RequireFromString("0.015"), IsActive: true},
	}, nil)

	s.Equal(http.StatusOK, s.status(http.MethodGet, RouteGroup+PackagesRoute, nil, s.userToken))
}

func (s *PackageHandlerTestSuite) TestCreate() {
	s.mockPackageService.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p domain.Package) (*domain.Package, error) {
			s.Equal("Gold", p.Name)
			s.True(p.DailyRate.Equal(decimal.RequireFromString("0.015")))
			s.Equal(1, p.RequiredVIPLevel)
			s.True(p.IsActive)
			p.ID = 12
			return &p, nil
		})

	out := s.decode(http.MethodPost, AdminRouteGroup+PackagesRoute, packageBody(), s.adminToken, http.StatusCreated)
	s.InDelta(12.0, out["id"], 0)
}

func (s *PackageHandlerTestSuite) TestCreateRejects() {
	s.mockPackageService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		mutate func(b map[string]any)
	}{
		{name: "negative rate", mutate: func(b map[string]any) { b["dailyRate"] = "-0.01" }},
		{name: "no duration", mutate: func(b map[string]any) { delete(b, "durationDays") }},
		{name: "vip out of range", mutate: func(b map[string]any) { b["requiredVipLevel"] = 6 }},
		{name: "no active flag", mutate: func(b map[string]any) { delete(b, "isActive") }},
		{name: "no name", mutate: func(b map[string]any) { b["name"] = "" }},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body := packageBody()
			t.mutate(body)
			s.Equal(http.StatusUnprocessableEntity,
				s.status(http.MethodPost, AdminRouteGroup+PackagesRoute, body, s.adminToken))
		})
	}

	s.Equal(http.StatusForbidden, s.status(http.MethodPost, AdminRouteGroup+PackagesRoute, packageBody(), s.userToken))
}

func (s *PackageHandlerTestSuite) TestUpdate() {
	s.mockPackageService.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p domain.Package) (*domain.Package, error) {
			if p.ID != 4 {
				return nil, domain.ErrRecordNotFound
			}
			return &p, nil
		}).Times(2)

	s.Equal(http.StatusOK, s.status(http.MethodPut, adminURL(PackageRoute, 4), packageBody(), s.adminToken))
	s.Equal(http.StatusNotFound, s.status(http.MethodPut, adminURL(PackageRoute, 40), packageBody(), s.adminToken))
}
