package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Phone             *string
	Email             *string
	PasswordHash      string
	InvitationCode    string
	ReferredBy        *string
	IsAdmin           bool
	Balance           decimal.Decimal
	RedeemableBalance decimal.Decimal
	VIPLevel          int
	TotalEarnings     decimal.Decimal
	InterestIncome    decimal.Decimal
	TeamIncome        decimal.Decimal
	TeamEarnings      decimal.Decimal
	BonusIncome       decimal.Decimal
	Investments       []Investment
	// Version is bumped on every write of the user row.
	Version int64
}

// Login returns the phone or email the user registered with.
func (u *User) Login() string {
	if u.Phone != nil {
		return *u.Phone
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}

// HasActiveInvestmentIn reports whether the user already holds an active position in the named package.
func (u *User) HasActiveInvestmentIn(packageName string) bool {
	for _, inv := range u.Investments {
		if inv.Status == InvestmentStatusActive && inv.PackageName == packageName {
			return true
		}
	}
	return false
}

// InvestedPrincipal sums the amounts of active investments.
func (u *User) InvestedPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range u.Investments {
		if inv.Status == InvestmentStatusActive {
			total = total.Add(inv.Amount)
		}
	}
	return total
}

type Investment struct {
	ID                     uuid.UUID
	CreatedAt              time.Time
	UserID                 int64
	PackageID              int64
	PackageName            string
	Amount                 decimal.Decimal
	DailyRate              decimal.Decimal
	DailyEarning           decimal.Decimal
	DurationDays           int
	TotalReturn            decimal.Decimal
	StartDate              time.Time
	EndDate                time.Time
	LastEarningDate        *time.Time
	TotalEarned            decimal.Decimal
	Status                 InvestmentStatus
	CommissionsDistributed bool
}

// NewInvestment snapshots the package terms at the moment of purchase. Later package edits never affect it.
func NewInvestment(userID int64, pkg Package, amount decimal.Decimal, now time.Time) Investment {
	dailyEarning := amount.Mul(pkg.DailyRate)
	return Investment{
		ID:           uuid.New(),
		CreatedAt:    now,
		UserID:       userID,
		PackageID:    pkg.ID,
		PackageName:  pkg.Name,
		Amount:       amount,
		DailyRate:    pkg.DailyRate,
		DailyEarning: dailyEarning,
		DurationDays: pkg.DurationDays,
		TotalReturn:  dailyEarning.Mul(decimal.NewFromInt(int64(pkg.DurationDays))),
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, pkg.DurationDays),
		TotalEarned:  decimal.Zero,
		Status:       InvestmentStatusActive,
	}
}

type Package struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Name             string
	DailyRate        decimal.Decimal
	DurationDays     int
	MinAmount        decimal.Decimal
	MaxAmount        decimal.Decimal
	RequiredVIPLevel int
	IsActive         bool
}

type Commission struct {
	ID               int64
	CreatedAt        time.Time
	InvestmentID     uuid.UUID
	FromUserID       int64
	ToUserID         int64
	Amount           decimal.Decimal
	Level            int
	InvestmentAmount decimal.Decimal
	// Percentage is the applied rate in percent, e.g. 10 for 10%.
	Percentage decimal.Decimal
	VIPLevel   int
	Claimed    bool
	ClaimedAt  *time.Time
}

type Notification struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Title     string
	Message   string
	Kind      NotificationKind
	Amount    *decimal.Decimal
	Read      bool
}

type FundRequest struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	Kind        FundKind
	Amount      decimal.Decimal
	Fee         decimal.Decimal
	NetAmount   decimal.Decimal
	Network     string
	Address     string
	TxHash      string
	Status      FundStatus
	ProcessedAt *time.Time
}
