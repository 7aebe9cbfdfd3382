package earning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

// MaturityResult lists the investments completed by one sweep and the principal it made redeemable.
type MaturityResult struct {
	Matured   []domain.Investment
	Principal decimal.Decimal
}

// HasMatured reports whether the sweep changed anything.
func (r MaturityResult) HasMatured() bool {
	return len(r.Matured) > 0
}

// PackageNames lists the package names of matured investments.
func (r MaturityResult) PackageNames() []string {
	names := make([]string, len(r.Matured))
	for i, inv := range r.Matured {
		names[i] = inv.PackageName
	}
	return names
}

// SweepMatured completes every active investment whose EndDate has passed and moves its principal to
// RedeemableBalance. A second sweep at the same instant changes nothing.
func SweepMatured(u *domain.User, now time.Time) MaturityResult {
	res := MaturityResult{Principal: decimal.Zero}
	for i := range u.Investments {
		inv := &u.Investments[i]
		if inv.Status != domain.InvestmentStatusActive || inv.EndDate.After(now) {
			continue
		}
		inv.Status = domain.InvestmentStatusCompleted
		res.Principal = res.Principal.Add(inv.Amount)
		res.Matured = append(res.Matured, *inv)
	}
	u.RedeemableBalance = u.RedeemableBalance.Add(res.Principal)
	return res
}
