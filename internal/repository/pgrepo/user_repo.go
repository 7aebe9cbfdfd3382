package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const userColumns = `id, created_at, updated_at, phone, email, password_hash, invitation_code, referred_by,
	is_admin, balance, redeemable_balance, vip_level, total_earnings, interest_income, team_income,
	team_earnings, bonus_income, version`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.Phone,
		&u.Email,
		&u.PasswordHash,
		&u.InvitationCode,
		&u.ReferredBy,
		&u.IsAdmin,
		&u.Balance,
		&u.RedeemableBalance,
		&u.VIPLevel,
		&u.TotalEarnings,
		&u.InterestIncome,
		&u.TeamIncome,
		&u.TeamEarnings,
		&u.BonusIncome,
		&u.Version,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}

// Create inserts a user. The member id comes from the users id sequence. A taken phone, email or invitation
// code yields domain.ErrDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO users (phone, email, password_hash, invitation_code, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		args.Phone, args.Email, args.PasswordHash, args.InvitationCode, args.ReferredBy,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindByID loads the user with all of its investments.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findWithInvestments(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByIDForUpdate is FindByID holding a row lock until the surrounding transaction ends. Every mutation of
// a user's balances goes through it, so concurrent requests for one user run one after another.
func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	return r.findWithInvestments(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (r *UserRepository) findWithInvestments(ctx context.Context, query string, id int64) (*domain.User, error) {
	user, err := scanUser(r.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding user with id %d", id)
	}

	investments, invErr := findInvestments(ctx, r.conn, `WHERE user_id = $1 ORDER BY start_date`, id)
	if invErr != nil {
		return nil, invErr
	}
	user.Investments = investments
	return user, nil
}

// FindByInvitationCode returns the owner of code without investments.
func (r *UserRepository) FindByInvitationCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(r.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE invitation_code = $1`, code))
	if err != nil {
		return nil, convertErr(err, "finding user by invitation code %s", code)
	}
	return user, nil
}

// FindByLogin looks the user up by phone or email.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(r.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1 OR email = $1`, login))
	if err != nil {
		return nil, convertErr(err, "finding user by login %s", login)
	}
	return user, nil
}

func (r *UserRepository) InvitationCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE invitation_code = $1)`, code).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking invitation code %s", code)
	}
	return exists, nil
}

func (r *UserRepository) CountDirectReferrals(ctx context.Context, code string) (int, error) {
	var count int
	if err := r.conn.QueryRow(ctx, `SELECT count(*) FROM users WHERE referred_by = $1`, code).
		Scan(&count); err != nil {
		return 0, convertErr(err, "counting referrals of %s", code)
	}
	return count, nil
}

// RaiseVIPLevel sets the VIP level to level unless the stored one is already higher.
func (r *UserRepository) RaiseVIPLevel(ctx context.Context, id int64, level int) error {
	_, err := r.conn.Exec(ctx, `
		UPDATE users
		SET vip_level  = GREATEST(vip_level, $2),
		    version    = version + 1,
		    updated_at = now()
		WHERE id = $1`, id, level)
	if err != nil {
		return convertErr(err, "raising vip level of user %d", id)
	}
	return nil
}

// LockUsers takes row locks on ids in ascending id order.
func (r *UserRepository) LockUsers(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	rows, err := r.conn.Query(ctx, `SELECT id FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return convertErr(err, "locking users %v", ids)
	}
	defer rows.Close()
	for rows.Next() { //nolint:revive
	}
	return convertErr(rows.Err(), "locking users %v", ids)
}

// CreditCommission atomically adds amount to balance, team income and team earnings.
func (r *UserRepository) CreditCommission(ctx context.Context, id int64, amount decimal.Decimal) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE users
		SET balance       = balance + $2,
		    team_income   = team_income + $2,
		    team_earnings = team_earnings + $2,
		    version       = version + 1,
		    updated_at    = now()
		WHERE id = $1`, id, amount)
	if err != nil {
		return convertErr(err, "crediting commission to user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "crediting commission to user %d", id)
	}
	return nil
}

// Save writes the balances of user and upserts its investments. The write only succeeds if the stored
// version still equals user.Version, otherwise domain.ErrVersionConflict is returned. On success
// user.Version holds the new version.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	err := r.conn.QueryRow(ctx, `
		UPDATE users
		SET balance            = $3,
		    redeemable_balance = $4,
		    total_earnings     = $5,
		    interest_income    = $6,
		    team_income        = $7,
		    team_earnings      = $8,
		    bonus_income       = $9,
		    version            = version + 1,
		    updated_at         = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`,
		user.ID,
		user.Version,
		user.Balance,
		user.RedeemableBalance,
		user.TotalEarnings,
		user.InterestIncome,
		user.TeamIncome,
		user.TeamEarnings,
		user.BonusIncome,
	).Scan(&user.Version, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrVersionConflict
		}
		return convertErr(err, "saving user %d", user.ID)
	}

	return upsertInvestments(ctx, r.conn, user.Investments)
}
