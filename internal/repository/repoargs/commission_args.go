package repoargs

import "github.com/shopspring/decimal"

// LedgerDrift is a recipient whose cached team income differs from the sum of its commission rows.
type LedgerDrift struct {
	UserID     int64
	TeamIncome decimal.Decimal
	LedgerSum  decimal.Decimal
}
