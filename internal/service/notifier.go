package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const defaultNotificationsLimit uint = 50

type Notifier struct {
	repo NotificationRepository
	l    *logrus.Entry
}

func NewNotifier(u uow.UOW, l *logrus.Logger) (*Notifier, error) {
	repo, err := uow.GetRepositoryAs[NotificationRepository](u, uow.RepositoryName(repoargs.NotificationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &Notifier{
		repo: repo,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "notifier",
		}),
	}, nil
}

// Notify stores n outside of any business transaction. A failure is logged and dropped.
func (s *Notifier) Notify(ctx context.Context, n domain.Notification) {
	if _, err := s.repo.Create(ctx, n); err != nil {
		s.l.WithError(err).
			WithFields(logrus.Fields{"userID": n.UserID, "kind": n.Kind}).
			Warn("notification dropped")
	}
}

// List returns the latest notifications of userID. A zero limit means the default page size.
func (s *Notifier) List(ctx context.Context, userID int64, limit uint) ([]domain.Notification, error) {
	if limit == 0 {
		limit = defaultNotificationsLimit
	}
	notifications, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}
