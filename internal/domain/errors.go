package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrVersionConflict   = errors.New("version conflict")

	ErrNotEnoughBalance       = errors.New("not enough balance")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrPackageInactive        = errors.New("package is not active")
	ErrAmountOutOfRange       = errors.New("amount is out of allowed range")
	ErrDuplicateActivePackage = errors.New("active investment in this package already exists")
	ErrVIPLevelTooLow         = errors.New("vip level is too low for this package")
	ErrInvalidReferralCode    = errors.New("invalid referral code")
	ErrInvalidContact         = errors.New("exactly one of phone or email is required")
	ErrAlreadyProcessed       = errors.New("request already processed")
	ErrInvalidPackage         = errors.New("invalid package terms")

	// no-op outcomes, not failures.
	ErrNothingToCollect = errors.New("nothing to collect")
	ErrNothingToRedeem  = errors.New("nothing to redeem")
	ErrNothingToClaim   = errors.New("nothing to claim")
)

// FanOutError reports a failed commission credit to one recipient. The investment itself is already persisted.
type FanOutError struct {
	InvestmentID uuid.UUID
	ToUserID     int64
	Err          error
}

func NewFanOutError(investmentID uuid.UUID, toUserID int64, err error) error {
	return &FanOutError{InvestmentID: investmentID, ToUserID: toUserID, Err: err}
}

func (e *FanOutError) Error() string {
	return fmt.Sprintf(
		"commission fan-out for investment %s to user %d: %s",
		e.InvestmentID,
		e.ToUserID,
		e.Err.Error(),
	)
}

func (e *FanOutError) Unwrap() error {
	return e.Err
}
