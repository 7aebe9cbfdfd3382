package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// convertErr maps a pgx error onto the domain error set and prefixes it with the formatted context:
//   - pgx.ErrNoRows becomes domain.ErrRecordNotFound;
//   - unique violations become domain.ErrDuplicateKey;
//   - check violations (e.g. a negative balance) become domain.ErrNotEnoughBalance;
//   - anything else is domain.ErrUnknown.
//
// The original error stays in the chain, so callers can still inspect the SQLSTATE.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case checkViolationCode:
			errType = domain.ErrNotEnoughBalance
		}
	}

	return fmt.Errorf("[repository/%s] %w: %w", msg, errType, err)
}
