// Package earning computes daily income and maturity of investments. Everything here is pure: the caller
// supplies "now" and persists the mutated user.
package earning

import "time"

// DefaultClaimHour is the hour of day, in ReferenceZone, at which a day's income becomes claimable.
const DefaultClaimHour = 10

// ReferenceZone is the fixed UTC+6 zone all claim boundaries are computed in.
var ReferenceZone = time.FixedZone("UTC+6", 6*60*60) //nolint:mnd

// Schedule describes when a day's income becomes claimable: at Hour o'clock in Zone.
type Schedule struct {
	Zone *time.Location
	Hour int
}

// DefaultSchedule returns the 10:00 UTC+6 claim schedule.
func DefaultSchedule() Schedule {
	return Schedule{Zone: ReferenceZone, Hour: DefaultClaimHour}
}

func (s Schedule) midnight(t time.Time) time.Time {
	y, m, d := t.In(s.Zone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Zone)
}

// BoundaryOn returns the claim boundary of the calendar day t falls on in the reference zone.
func (s Schedule) BoundaryOn(t time.Time) time.Time {
	return s.midnight(t).Add(time.Duration(s.Hour) * time.Hour)
}

// NextBoundaryAfter returns the first boundary strictly after t.
func (s Schedule) NextBoundaryAfter(t time.Time) time.Time {
	b := s.BoundaryOn(t)
	if !b.After(t) {
		b = s.BoundaryOn(s.midnight(t).AddDate(0, 0, 1))
	}
	return b
}
