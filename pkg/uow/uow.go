package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
	maxAttempts  uint
	retryable    func(error) bool
}

func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
		maxAttempts:  1,
	}
}

// SetRetryPolicy makes Do re-run the whole transaction up to attempts times when fn fails with an error
// accepted by retryable. Serialization failures and deadlocks are always retried.
func (u *UnitOfWork) SetRetryPolicy(attempts uint, retryable func(error) bool) *UnitOfWork {
	if attempts == 0 {
		attempts = 1
	}
	u.maxAttempts = attempts
	u.retryable = retryable
	return u
}

// Register stores the repository factory under name. Returns ErrRepositoryAlreadyRegistered if the name is taken.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do runs fn inside a transaction, retrying according to the retry policy.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	var err error
	for attempt := uint(1); attempt <= u.maxAttempts; attempt++ {
		err = u.do(ctx, fn)
		if err == nil || !u.shouldRetry(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (u *UnitOfWork) do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, pgx.TxOptions{})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	transErr := fn(ctx, NewTransaction(tx, u.repositories))
	if transErr != nil {
		return transErr
	}
	err = tx.Commit(ctx)
	return
}

func (u *UnitOfWork) shouldRetry(err error) bool {
	if isTransient(err) {
		return true
	}
	return u.retryable != nil && u.retryable(err)
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode
}

// GetRepository builds the repository on the pool, outside any transaction.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs returns the repository registered under name as T. Returns ErrRepositoryNotRegistered or
// ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, ErrInvalidRepositoryType
	}

	return r, nil
}
