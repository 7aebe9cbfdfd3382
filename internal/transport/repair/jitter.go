package repair

import (
	"math/rand/v2"
	"time"
)

const defaultJitterPercent = 0.15

// jitter spreads value randomly within [1-minPercent, 1+maxPercent] of itself, e.g. 0.15 and 0.15 give
// [0.85*value, 1.15*value]. Negative percents fall back to 0.15.
func jitter(value time.Duration, minPercent, maxPercent float64) time.Duration {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = defaultJitterPercent
		maxPercent = defaultJitterPercent
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return time.Duration(float64(value) * factor)
}
