package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const fundColumns = `id, created_at, user_id, kind, amount, fee, net_amount, network, address, tx_hash, status,
	processed_at`

type FundRepository struct {
	conn uow.DBTX
}

func NewFundRepository(conn uow.DBTX) *FundRepository {
	return &FundRepository{conn: conn}
}

func scanFundRequest(row pgx.CollectableRow) (domain.FundRequest, error) {
	var f domain.FundRequest
	err := row.Scan(
		&f.ID,
		&f.CreatedAt,
		&f.UserID,
		&f.Kind,
		&f.Amount,
		&f.Fee,
		&f.NetAmount,
		&f.Network,
		&f.Address,
		&f.TxHash,
		&f.Status,
		&f.ProcessedAt,
	)
	return f, err //nolint:wrapcheck
}

func (r *FundRepository) Create(ctx context.Context, args repoargs.CreateFundRequest) (*domain.FundRequest, error) {
	rows, err := r.conn.Query(ctx, `
		INSERT INTO fund_requests (user_id, kind, amount, fee, net_amount, network, address, tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+fundColumns,
		args.UserID, args.Kind, args.Amount, args.Fee, args.NetAmount, args.Network, args.Address, args.TxHash,
	)
	if err != nil {
		return nil, convertErr(err, "creating %s request for user %d", args.Kind, args.UserID)
	}
	created, collectErr := pgx.CollectExactlyOneRow(rows, scanFundRequest)
	if collectErr != nil {
		return nil, convertErr(collectErr, "creating %s request for user %d", args.Kind, args.UserID)
	}
	return &created, nil
}

// FindByIDForUpdate loads the request holding a row lock so it is processed at most once.
func (r *FundRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.FundRequest, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+fundColumns+` FROM fund_requests WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, convertErr(err, "finding fund request %d", id)
	}
	f, collectErr := pgx.CollectExactlyOneRow(rows, scanFundRequest)
	if collectErr != nil {
		return nil, convertErr(collectErr, "finding fund request %d", id)
	}
	return &f, nil
}

func (r *FundRepository) SetStatus(ctx context.Context, id int64, status domain.FundStatus, at time.Time) error {
	if _, err := r.conn.Exec(ctx,
		`UPDATE fund_requests SET status = $2, processed_at = $3 WHERE id = $1`, id, status, at); err != nil {
		return convertErr(err, "setting status of fund request %d", id)
	}
	return nil
}

func (r *FundRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FundRequest, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+fundColumns+` FROM fund_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing fund requests of user %d", userID)
	}
	requests, collectErr := pgx.CollectRows(rows, scanFundRequest)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning fund requests of user %d", userID)
	}
	return requests, nil
}
