package pgrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const investmentColumns = `id, created_at, user_id, package_id, package_name, amount, daily_rate, daily_earning,
	duration_days, total_return, start_date, end_date, last_earning_date, total_earned, status,
	commissions_distributed`

type InvestmentRepository struct {
	conn uow.DBTX
}

func NewInvestmentRepository(conn uow.DBTX) *InvestmentRepository {
	return &InvestmentRepository{conn: conn}
}

func scanInvestment(row pgx.CollectableRow) (domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(
		&inv.ID,
		&inv.CreatedAt,
		&inv.UserID,
		&inv.PackageID,
		&inv.PackageName,
		&inv.Amount,
		&inv.DailyRate,
		&inv.DailyEarning,
		&inv.DurationDays,
		&inv.TotalReturn,
		&inv.StartDate,
		&inv.EndDate,
		&inv.LastEarningDate,
		&inv.TotalEarned,
		&inv.Status,
		&inv.CommissionsDistributed,
	)
	return inv, err //nolint:wrapcheck
}

func findInvestments(ctx context.Context, conn uow.DBTX, where string, args ...any) ([]domain.Investment, error) {
	rows, err := conn.Query(ctx, `SELECT `+investmentColumns+` FROM investments `+where, args...)
	if err != nil {
		return nil, convertErr(err, "finding investments")
	}
	investments, collectErr := pgx.CollectRows(rows, scanInvestment)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning investments")
	}
	return investments, nil
}

// upsertInvestments inserts new investments and updates the mutable fields of existing ones in one batch.
func upsertInvestments(ctx context.Context, conn uow.DBTX, investments []domain.Investment) error {
	if len(investments) == 0 {
		return nil
	}

	batch := new(pgx.Batch)
	for _, inv := range investments {
		batch.Queue(`
			INSERT INTO investments (`+investmentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			ON CONFLICT (id) DO UPDATE
			SET last_earning_date = EXCLUDED.last_earning_date,
			    total_earned      = EXCLUDED.total_earned,
			    status            = EXCLUDED.status`,
			inv.ID,
			inv.CreatedAt,
			inv.UserID,
			inv.PackageID,
			inv.PackageName,
			inv.Amount,
			inv.DailyRate,
			inv.DailyEarning,
			inv.DurationDays,
			inv.TotalReturn,
			inv.StartDate,
			inv.EndDate,
			inv.LastEarningDate,
			inv.TotalEarned,
			inv.Status,
			inv.CommissionsDistributed,
		)
	}

	results := conn.SendBatch(ctx, batch)
	for _, inv := range investments {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return convertErr(err, "saving investment %s", inv.ID)
		}
	}
	return convertErr(results.Close(), "closing investments batch")
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	investments, err := findInvestments(ctx, r.conn, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(investments) == 0 {
		return nil, convertErr(pgx.ErrNoRows, "finding investment %s", id)
	}
	return &investments[0], nil
}

// PendingFanOuts returns investments created before olderThan whose commissions were never distributed,
// oldest first.
func (r *InvestmentRepository) PendingFanOuts(
	ctx context.Context,
	olderThan time.Time,
	limit uint,
) ([]domain.Investment, error) {
	return findInvestments(ctx, r.conn,
		`WHERE commissions_distributed = FALSE AND created_at < $1 ORDER BY created_at LIMIT $2`,
		olderThan, int64(limit)) //nolint:gosec
}

func (r *InvestmentRepository) MarkCommissionsDistributed(ctx context.Context, id uuid.UUID) error {
	if _, err := r.conn.Exec(ctx,
		`UPDATE investments SET commissions_distributed = TRUE WHERE id = $1`, id); err != nil {
		return convertErr(err, "marking commissions distributed for %s", id)
	}
	return nil
}
