package earning

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

// Accrual is the income an investment has accumulated since its last claim.
type Accrual struct {
	Days   int
	Amount decimal.Decimal
	// LastBoundary is the latest counted boundary. Zero when Days == 0.
	LastBoundary time.Time
}

// Accrue counts the boundaries b with lastClaim < b <= now, where lastClaim is LastEarningDate or StartDate.
// Only active investments accrue. Boundaries after EndDate are not counted even when the investment has not
// been swept yet.
func (s Schedule) Accrue(inv domain.Investment, now time.Time) Accrual {
	res := Accrual{Amount: decimal.Zero}
	if inv.Status != domain.InvestmentStatusActive {
		return res
	}

	lastClaim := inv.StartDate
	if inv.LastEarningDate != nil {
		lastClaim = *inv.LastEarningDate
	}

	for day := s.midnight(lastClaim); ; day = day.AddDate(0, 0, 1) {
		b := s.BoundaryOn(day)
		if b.After(now) || b.After(inv.EndDate) {
			break
		}
		if b.After(lastClaim) {
			res.Days++
			res.LastBoundary = b
		}
	}

	res.Amount = inv.DailyEarning.Mul(decimal.NewFromInt(int64(res.Days)))
	return res
}

// Claim is the claimable income of one investment.
type Claim struct {
	InvestmentID uuid.UUID
	PackageName  string
	Days         int
	Amount       decimal.Decimal
	LastBoundary time.Time
}

// Claims returns the claimable income of every active investment of u that has at least one uncounted
// boundary. Run SweepMatured first: a matured investment earns nothing more.
func (s Schedule) Claims(u *domain.User, now time.Time) []Claim {
	var claims []Claim
	for _, inv := range u.Investments {
		if inv.Status != domain.InvestmentStatusActive {
			continue
		}
		acc := s.Accrue(inv, now)
		if acc.Days == 0 {
			continue
		}
		claims = append(claims, Claim{
			InvestmentID: inv.ID,
			PackageName:  inv.PackageName,
			Days:         acc.Days,
			Amount:       acc.Amount,
			LastBoundary: acc.LastBoundary,
		})
	}
	return claims
}

// Total sums the amounts of claims.
func Total(claims []Claim) decimal.Decimal {
	total := decimal.Zero
	for _, c := range claims {
		total = total.Add(c.Amount)
	}
	return total
}

// ApplyClaims advances each claimed investment and credits the total to the user's balance and income
// accumulators. Returns the credited total.
func ApplyClaims(u *domain.User, claims []Claim) decimal.Decimal {
	total := decimal.Zero
	for _, c := range claims {
		for i := range u.Investments {
			inv := &u.Investments[i]
			if inv.ID != c.InvestmentID {
				continue
			}
			last := c.LastBoundary
			inv.LastEarningDate = &last
			inv.TotalEarned = inv.TotalEarned.Add(c.Amount)
			total = total.Add(c.Amount)
			break
		}
	}

	u.Balance = u.Balance.Add(total)
	u.TotalEarnings = u.TotalEarnings.Add(total)
	u.InterestIncome = u.InterestIncome.Add(total)
	return total
}
