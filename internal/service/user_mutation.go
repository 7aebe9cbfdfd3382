package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/earning"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

// userMutation changes a locked user. It reports whether the user must be saved.
type userMutation func(
	c context.Context,
	tx uow.TX,
	user *domain.User,
	now time.Time,
	swept earning.MaturityResult,
) (bool, error)

// mutateUser runs fn against userID's aggregate inside one transaction:
//  1. loads the user under a row lock, which serializes all mutations of the same user;
//  2. sweeps matured investments;
//  3. runs fn and saves the user if fn reports a change or the sweep matured anything.
//
// fn may run more than once when the unit of work retries. Maturity notifications are sent after commit.
func mutateUser(
	ctx context.Context,
	u uow.UOW,
	notifier NotificationSender,
	clock func() time.Time,
	userID int64,
	fn userMutation,
) (earning.MaturityResult, error) {
	var swept earning.MaturityResult

	txErr := u.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		user, userErr := repo.FindByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		now := clock()
		swept = earning.SweepMatured(user, now)

		changed, fnErr := fn(c, tx, user, now, swept)
		if fnErr != nil {
			return fnErr
		}
		if !changed && !swept.HasMatured() {
			return nil
		}
		return repo.Save(c, user) //nolint:wrapcheck
	})
	if txErr != nil {
		return earning.MaturityResult{}, txErr //nolint:wrapcheck
	}

	notifyMatured(ctx, notifier, userID, swept)
	return swept, nil
}

// notifyMatured sends one maturity notification per investment completed by a committed sweep.
func notifyMatured(ctx context.Context, notifier NotificationSender, userID int64, swept earning.MaturityResult) {
	for _, inv := range swept.Matured {
		principal := inv.Amount
		notifier.Notify(ctx, domain.Notification{
			UserID:  userID,
			Title:   "Investment matured",
			Message: fmt.Sprintf("%s matured, principal moved to redeemable balance", inv.PackageName),
			Kind:    domain.NotificationMaturity,
			Amount:  &principal,
		})
	}
}
