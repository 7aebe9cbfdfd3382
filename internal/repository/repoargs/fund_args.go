package repoargs

import (
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateFundRequest struct {
	UserID    int64
	Kind      domain.FundKind
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	NetAmount decimal.Decimal
	Network   string
	Address   string
	TxHash    string
}
