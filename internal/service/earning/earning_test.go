package earning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.January, day, hour, minute, 0, 0, ReferenceZone)
}

func silver(start time.Time) domain.Investment {
	return domain.NewInvestment(1, domain.Package{
		ID:           1,
		Name:         "Silver",
		DailyRate:    decimal.RequireFromString("0.015"),
		DurationDays: 10,
	}, decimal.NewFromInt(200), start)
}

func TestNextBoundaryAfter(t *testing.T) {
	s := DefaultSchedule()

	require.Equal(t, at(1, 10, 0), s.NextBoundaryAfter(at(1, 9, 0)))
	require.Equal(t, at(2, 10, 0), s.NextBoundaryAfter(at(1, 10, 0)))
	require.Equal(t, at(2, 10, 0), s.NextBoundaryAfter(at(1, 23, 59)))
	// 03:00 UTC is 09:00 in the reference zone.
	require.Equal(t, at(5, 10, 0), s.NextBoundaryAfter(time.Date(2025, time.January, 5, 3, 0, 0, 0, time.UTC)))
}

func TestAccrue(t *testing.T) {
	s := DefaultSchedule()
	lastClaim := at(3, 10, 0)

	cases := []struct {
		name     string
		start    time.Time
		last     *time.Time
		status   domain.InvestmentStatus
		now      time.Time
		wantDays int
		wantLast time.Time
	}{
		{
			name:     "before first boundary",
			start:    at(1, 9, 0),
			now:      at(1, 9, 30),
			wantDays: 0,
		},
		{
			name:     "boundary on the start day counts",
			start:    at(1, 9, 0),
			now:      at(1, 10, 0),
			wantDays: 1,
			wantLast: at(1, 10, 0),
		},
		{
			name:     "started after the boundary waits for the next day",
			start:    at(1, 11, 0),
			now:      at(2, 9, 59),
			wantDays: 0,
		},
		{
			name:     "three boundaries",
			start:    at(1, 11, 0),
			now:      at(4, 12, 0),
			wantDays: 3,
			wantLast: at(4, 10, 0),
		},
		{
			name:     "counts from last claim",
			start:    at(1, 11, 0),
			last:     &lastClaim,
			now:      at(4, 12, 0),
			wantDays: 1,
			wantLast: at(4, 10, 0),
		},
		{
			name:     "now given in UTC",
			start:    at(1, 11, 0),
			now:      time.Date(2025, time.January, 2, 4, 0, 0, 0, time.UTC),
			wantDays: 1,
			wantLast: at(2, 10, 0),
		},
		{
			name:     "capped at end date",
			start:    at(1, 9, 0),
			now:      at(28, 12, 0),
			wantDays: 10,
			wantLast: at(10, 10, 0),
		},
		{
			name:     "completed never accrues",
			start:    at(1, 9, 0),
			last:     &lastClaim,
			status:   domain.InvestmentStatusCompleted,
			now:      at(28, 12, 0),
			wantDays: 0,
		},
		{
			name:     "cancelled never accrues",
			start:    at(1, 9, 0),
			status:   domain.InvestmentStatusCancelled,
			now:      at(28, 12, 0),
			wantDays: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := silver(tc.start)
			inv.LastEarningDate = tc.last
			if tc.status != "" {
				inv.Status = tc.status
			}

			acc := s.Accrue(inv, tc.now)

			require.Equal(t, tc.wantDays, acc.Days)
			require.True(t, acc.Amount.Equal(decimal.NewFromInt(int64(3*tc.wantDays))), "amount %s", acc.Amount)
			if tc.wantDays > 0 {
				require.True(t, tc.wantLast.Equal(acc.LastBoundary), "last boundary %s", acc.LastBoundary)
			}
		})
	}
}

func TestAccrue_Monotonic(t *testing.T) {
	s := DefaultSchedule()
	inv := silver(at(1, 9, 0))

	prev := 0
	for now := at(1, 0, 0); now.Before(at(15, 0, 0)); now = now.Add(90 * time.Minute) {
		days := s.Accrue(inv, now).Days
		require.GreaterOrEqual(t, days, prev)
		prev = days
	}
	require.Equal(t, inv.DurationDays, prev)
}

func TestApplyClaims_NoDoubleAccrual(t *testing.T) {
	s := DefaultSchedule()
	u := &domain.User{
		Balance:        decimal.NewFromInt(300),
		TotalEarnings:  decimal.Zero,
		InterestIncome: decimal.Zero,
		Investments:    []domain.Investment{silver(at(1, 9, 0))},
	}
	now := at(3, 10, 0)

	claims := s.Claims(u, now)
	require.Len(t, claims, 1)
	require.Equal(t, 3, claims[0].Days)

	total := ApplyClaims(u, claims)
	require.True(t, total.Equal(decimal.NewFromInt(9)))
	require.True(t, u.Balance.Equal(decimal.NewFromInt(309)))
	require.True(t, u.InterestIncome.Equal(decimal.NewFromInt(9)))
	require.True(t, u.TotalEarnings.Equal(decimal.NewFromInt(9)))
	require.True(t, u.Investments[0].TotalEarned.Equal(decimal.NewFromInt(9)))
	require.Equal(t, at(3, 10, 0), *u.Investments[0].LastEarningDate)

	require.Empty(t, s.Claims(u, now))
	require.Empty(t, s.Claims(u, at(4, 9, 59)))
	require.Len(t, s.Claims(u, at(4, 10, 0)), 1)
}

func TestApplyClaims_UnknownInvestmentIgnored(t *testing.T) {
	u := &domain.User{Balance: decimal.Zero, Investments: []domain.Investment{silver(at(1, 9, 0))}}

	total := ApplyClaims(u, []Claim{{InvestmentID: uuid.New(), Amount: decimal.NewFromInt(5)}})

	require.True(t, total.IsZero())
	require.True(t, u.Balance.IsZero())
}

func TestSweepMatured(t *testing.T) {
	first := silver(at(1, 9, 0))
	second := silver(at(5, 9, 0))
	second.PackageName = "Gold"
	u := &domain.User{
		RedeemableBalance: decimal.Zero,
		Investments:       []domain.Investment{first, second},
	}

	res := SweepMatured(u, at(11, 8, 59))
	require.False(t, res.HasMatured())
	require.True(t, u.RedeemableBalance.IsZero())

	// EndDate <= now matures.
	res = SweepMatured(u, at(11, 9, 0))
	require.True(t, res.HasMatured())
	require.Equal(t, []string{"Silver"}, res.PackageNames())
	require.True(t, res.Principal.Equal(decimal.NewFromInt(200)))
	require.Equal(t, domain.InvestmentStatusCompleted, u.Investments[0].Status)
	require.Equal(t, domain.InvestmentStatusActive, u.Investments[1].Status)
	require.True(t, u.RedeemableBalance.Equal(decimal.NewFromInt(200)))

	again := SweepMatured(u, at(11, 9, 0))
	require.False(t, again.HasMatured())
	require.True(t, u.RedeemableBalance.Equal(decimal.NewFromInt(200)))
}

func TestLifecycle(t *testing.T) {
	s := DefaultSchedule()
	u := &domain.User{
		Balance:           decimal.NewFromInt(500),
		RedeemableBalance: decimal.Zero,
		TotalEarnings:     decimal.Zero,
		InterestIncome:    decimal.Zero,
	}

	inv := silver(at(1, 9, 0))
	u.Balance = u.Balance.Sub(inv.Amount)
	u.Investments = append(u.Investments, inv)

	ApplyClaims(u, s.Claims(u, at(3, 10, 0)))
	require.True(t, u.Balance.Equal(decimal.NewFromInt(309)))

	now := at(12, 12, 0)
	res := SweepMatured(u, now)
	require.True(t, res.Principal.Equal(decimal.NewFromInt(200)))

	// a matured investment earns nothing more, unclaimed days included.
	require.Empty(t, s.Claims(u, now))
	require.True(t, u.Investments[0].TotalEarned.Equal(decimal.NewFromInt(9)))

	u.Balance = u.Balance.Add(u.RedeemableBalance)
	u.RedeemableBalance = decimal.Zero
	require.True(t, u.Balance.Equal(decimal.NewFromInt(509)))
}

func TestClaims_SkipsMaturedInvestment(t *testing.T) {
	s := DefaultSchedule()
	u := &domain.User{
		RedeemableBalance: decimal.Zero,
		Investments:       []domain.Investment{silver(at(1, 9, 0))},
	}
	now := at(21, 9, 0)

	res := SweepMatured(u, now)
	require.True(t, res.HasMatured())
	require.Equal(t, domain.InvestmentStatusCompleted, u.Investments[0].Status)

	claims := s.Claims(u, now)
	require.Empty(t, claims)
	require.True(t, Total(claims).IsZero())
}
