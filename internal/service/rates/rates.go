// Package rates holds the referral commission table and the VIP promotion thresholds.
package rates

import "github.com/shopspring/decimal"

const (
	MaxGenerations = 3
	MaxVIPLevel    = 5
)

// Row is the commission rate per upline generation for one VIP level.
type Row struct {
	Gen1 decimal.Decimal
	Gen2 decimal.Decimal
	Gen3 decimal.Decimal
}

func percent(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}

var table = map[int]Row{
	0: {Gen1: percent(9), Gen2: percent(6), Gen3: percent(3)},
	1: {Gen1: percent(10), Gen2: percent(7), Gen3: percent(4)},
	2: {Gen1: percent(11), Gen2: percent(8), Gen3: percent(5)},
	3: {Gen1: percent(12), Gen2: percent(9), Gen3: percent(6)},
	4: {Gen1: percent(13), Gen2: percent(10), Gen3: percent(7)},
	5: {Gen1: percent(14), Gen2: percent(11), Gen3: percent(8)},
}

// RowFor returns the row of vipLevel. Levels outside the table fall back to level 0.
func RowFor(vipLevel int) Row {
	row, ok := table[vipLevel]
	if !ok {
		return table[0]
	}
	return row
}

// For returns the rate (0.1 for 10%) a referrer with vipLevel earns at the given generation.
// Generations outside 1..MaxGenerations earn nothing.
func For(vipLevel, generation int) decimal.Decimal {
	row := RowFor(vipLevel)
	switch generation {
	case 1:
		return row.Gen1
	case 2:
		return row.Gen2
	case 3:
		return row.Gen3
	default:
		return decimal.Zero
	}
}

// vipThresholds[i] is the number of direct referrals required for VIP level i.
var vipThresholds = [MaxVIPLevel + 1]int{0, 5, 10, 20, 35, 50}

// VIPLevelFor returns the highest VIP level reachable with the given number of direct referrals.
func VIPLevelFor(directReferrals int) int {
	level := 0
	for i, threshold := range vipThresholds {
		if directReferrals >= threshold {
			level = i
		}
	}
	return level
}
