package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const notificationColumns = `id, created_at, user_id, title, message, kind, amount, read`

type NotificationRepository struct {
	conn uow.DBTX
}

func NewNotificationRepository(conn uow.DBTX) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

func scanNotification(row pgx.CollectableRow) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.CreatedAt, &n.UserID, &n.Title, &n.Message, &n.Kind, &n.Amount, &n.Read)
	return n, err //nolint:wrapcheck
}

func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	rows, err := r.conn.Query(ctx, `
		INSERT INTO notifications (user_id, title, message, kind, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationColumns,
		n.UserID, n.Title, n.Message, n.Kind, n.Amount,
	)
	if err != nil {
		return nil, convertErr(err, "creating notification for user %d", n.UserID)
	}
	created, collectErr := pgx.CollectExactlyOneRow(rows, scanNotification)
	if collectErr != nil {
		return nil, convertErr(collectErr, "creating notification for user %d", n.UserID)
	}
	return &created, nil
}

// ListByUser returns the latest notifications of userID, newest first.
func (r *NotificationRepository) ListByUser(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]domain.Notification, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, userID, int64(limit)) //nolint:gosec
	if err != nil {
		return nil, convertErr(err, "listing notifications of user %d", userID)
	}
	notifications, collectErr := pgx.CollectRows(rows, scanNotification)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning notifications of user %d", userID)
	}
	return notifications, nil
}
