package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const commissionColumns = `id, created_at, investment_id, from_user_id, to_user_id, amount, level,
	investment_amount, percentage, vip_level, claimed, claimed_at`

type CommissionRepository struct {
	conn uow.DBTX
}

func NewCommissionRepository(conn uow.DBTX) *CommissionRepository {
	return &CommissionRepository{conn: conn}
}

func scanCommission(row pgx.CollectableRow) (domain.Commission, error) {
	var c domain.Commission
	err := row.Scan(
		&c.ID,
		&c.CreatedAt,
		&c.InvestmentID,
		&c.FromUserID,
		&c.ToUserID,
		&c.Amount,
		&c.Level,
		&c.InvestmentAmount,
		&c.Percentage,
		&c.VIPLevel,
		&c.Claimed,
		&c.ClaimedAt,
	)
	return c, err //nolint:wrapcheck
}

// Insert stores a commission row. A row for the same (investment, recipient) pair already existing yields
// domain.ErrDuplicateKey and leaves the stored row untouched.
func (r *CommissionRepository) Insert(ctx context.Context, c domain.Commission) (*domain.Commission, error) {
	rows, err := r.conn.Query(ctx, `
		INSERT INTO commissions (investment_id, from_user_id, to_user_id, amount, level, investment_amount,
		                         percentage, vip_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (investment_id, to_user_id) DO NOTHING
		RETURNING `+commissionColumns,
		c.InvestmentID, c.FromUserID, c.ToUserID, c.Amount, c.Level, c.InvestmentAmount, c.Percentage, c.VIPLevel,
	)
	if err != nil {
		return nil, convertErr(err, "inserting commission for investment %s", c.InvestmentID)
	}
	created, collectErr := pgx.CollectExactlyOneRow(rows, scanCommission)
	if collectErr != nil {
		if errors.Is(collectErr, pgx.ErrNoRows) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, convertErr(collectErr, "inserting commission for investment %s", c.InvestmentID)
	}
	return &created, nil
}

func (r *CommissionRepository) FindUnclaimedForUser(ctx context.Context, userID int64) ([]domain.Commission, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+commissionColumns+`
		FROM commissions
		WHERE to_user_id = $1 AND claimed = FALSE
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, convertErr(err, "finding unclaimed commissions of user %d", userID)
	}
	commissions, collectErr := pgx.CollectRows(rows, scanCommission)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning commissions of user %d", userID)
	}
	return commissions, nil
}

func (r *CommissionRepository) MarkBatchClaimed(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.conn.Exec(ctx, `
		UPDATE commissions
		SET claimed = TRUE, claimed_at = $2
		WHERE id = ANY($1) AND claimed = FALSE`, ids, at); err != nil {
		return convertErr(err, "marking commissions %v claimed", ids)
	}
	return nil
}

// SumForRecipient sums every commission ever credited to userID.
func (r *CommissionRepository) SumForRecipient(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM commissions WHERE to_user_id = $1`, userID).Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing commissions of user %d", userID)
	}
	return sum, nil
}

// FindLedgerDrift lists users whose team income differs from the sum of their commission rows.
func (r *CommissionRepository) FindLedgerDrift(ctx context.Context, limit uint) ([]repoargs.LedgerDrift, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT u.id, u.team_income, COALESCE(c.total, 0)
		FROM users u
		LEFT JOIN (SELECT to_user_id, SUM(amount) AS total FROM commissions GROUP BY to_user_id) c
		       ON c.to_user_id = u.id
		WHERE u.team_income <> COALESCE(c.total, 0)
		ORDER BY u.id
		LIMIT $1`, int64(limit)) //nolint:gosec
	if err != nil {
		return nil, convertErr(err, "finding ledger drift")
	}
	drift, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.LedgerDrift, error) {
		var d repoargs.LedgerDrift
		scanErr := row.Scan(&d.UserID, &d.TeamIncome, &d.LedgerSum)
		return d, scanErr //nolint:wrapcheck
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning ledger drift")
	}
	return drift, nil
}
