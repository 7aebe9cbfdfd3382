package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewInvestment(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	pkg := Package{
		ID:           7,
		Name:         "Silver",
		DailyRate:    decimal.RequireFromString("0.015"),
		DurationDays: 10,
	}

	inv := NewInvestment(42, pkg, decimal.NewFromInt(200), now)

	require.Equal(t, int64(42), inv.UserID)
	require.Equal(t, "Silver", inv.PackageName)
	require.True(t, inv.DailyEarning.Equal(decimal.NewFromInt(3)))
	require.True(t, inv.TotalReturn.Equal(decimal.NewFromInt(30)))
	require.Equal(t, now.AddDate(0, 0, 10), inv.EndDate)
	require.Equal(t, InvestmentStatusActive, inv.Status)
	require.Nil(t, inv.LastEarningDate)
	require.False(t, inv.CommissionsDistributed)

	// package edits after purchase must not leak into the snapshot.
	pkg.DailyRate = decimal.RequireFromString("0.5")
	require.True(t, inv.DailyRate.Equal(decimal.RequireFromString("0.015")))
}

func TestUserHelpers(t *testing.T) {
	phone := "+8801700000000"
	u := User{
		Phone: &phone,
		Investments: []Investment{
			{PackageName: "Gold", Amount: decimal.NewFromInt(100), Status: InvestmentStatusActive},
			{PackageName: "Silver", Amount: decimal.NewFromInt(50), Status: InvestmentStatusCompleted},
			{PackageName: "Bronze", Amount: decimal.NewFromInt(25), Status: InvestmentStatusActive},
		},
	}

	require.Equal(t, phone, u.Login())
	require.True(t, u.HasActiveInvestmentIn("Gold"))
	require.False(t, u.HasActiveInvestmentIn("Silver"))
	require.True(t, u.InvestedPrincipal().Equal(decimal.NewFromInt(125)))
}
