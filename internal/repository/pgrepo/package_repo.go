package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const packageColumns = `id, created_at, updated_at, name, daily_rate, duration_days, min_amount, max_amount,
	required_vip_level, is_active`

type PackageRepository struct {
	conn uow.DBTX
}

func NewPackageRepository(conn uow.DBTX) *PackageRepository {
	return &PackageRepository{conn: conn}
}

func scanPackage(row pgx.CollectableRow) (domain.Package, error) {
	var p domain.Package
	err := row.Scan(
		&p.ID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Name,
		&p.DailyRate,
		&p.DurationDays,
		&p.MinAmount,
		&p.MaxAmount,
		&p.RequiredVIPLevel,
		&p.IsActive,
	)
	return p, err //nolint:wrapcheck
}

func (r *PackageRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Package, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	p, collectErr := pgx.CollectExactlyOneRow(rows, scanPackage)
	if collectErr != nil {
		return nil, collectErr //nolint:wrapcheck
	}
	return &p, nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	p, err := r.queryOne(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)
	if err != nil {
		return nil, convertErr(err, "finding package %d", id)
	}
	return p, nil
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE is_active = TRUE ORDER BY min_amount, id`)
	if err != nil {
		return nil, convertErr(err, "listing active packages")
	}
	packages, collectErr := pgx.CollectRows(rows, scanPackage)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning packages")
	}
	return packages, nil
}

func (r *PackageRepository) Create(ctx context.Context, p domain.Package) (*domain.Package, error) {
	created, err := r.queryOne(ctx, `
		INSERT INTO packages (name, daily_rate, duration_days, min_amount, max_amount, required_vip_level, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+packageColumns,
		p.Name, p.DailyRate, p.DurationDays, p.MinAmount, p.MaxAmount, p.RequiredVIPLevel, p.IsActive,
	)
	if err != nil {
		return nil, convertErr(err, "creating package %s", p.Name)
	}
	return created, nil
}

func (r *PackageRepository) Update(ctx context.Context, p domain.Package) (*domain.Package, error) {
	updated, err := r.queryOne(ctx, `
		UPDATE packages
		SET name               = $2,
		    daily_rate         = $3,
		    duration_days      = $4,
		    min_amount         = $5,
		    max_amount         = $6,
		    required_vip_level = $7,
		    is_active          = $8,
		    updated_at         = now()
		WHERE id = $1
		RETURNING `+packageColumns,
		p.ID, p.Name, p.DailyRate, p.DurationDays, p.MinAmount, p.MaxAmount, p.RequiredVIPLevel, p.IsActive,
	)
	if err != nil {
		return nil, convertErr(err, "updating package %d", p.ID)
	}
	return updated, nil
}
