package domain

type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

type NotificationKind string

const (
	NotificationIncome     NotificationKind = "income"
	NotificationMaturity   NotificationKind = "maturity"
	NotificationCommission NotificationKind = "commission"
	NotificationDeposit    NotificationKind = "deposit"
	NotificationWithdrawal NotificationKind = "withdrawal"
	NotificationInvestment NotificationKind = "investment"
)

type FundKind string

const (
	FundKindDeposit    FundKind = "deposit"
	FundKindWithdrawal FundKind = "withdrawal"
)

type FundStatus string

const (
	FundStatusPending  FundStatus = "pending"
	FundStatusApproved FundStatus = "approved"
	FundStatusRejected FundStatus = "rejected"
)
