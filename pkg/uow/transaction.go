package uow

import (
	"github.com/jackc/pgx/v5"
)

// Transaction builds repositories on a single pgx.Tx. Each Get returns a fresh repository sharing the tx.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	tx        pgx.Tx
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		tx:        tx,
	}
}

func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	factory, ok := t.factories[name]
	if !ok {
		return nil, ErrRepositoryNotRegistered
	}
	return factory(t.tx), nil
}

// GetAs returns the transaction-bound repository registered under name as T.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var zero T
	repo, err := t.Get(name)
	if err != nil {
		return zero, err //nolint:wrapcheck
	}
	typed, ok := repo.(T)
	if !ok {
		return zero, ErrInvalidRepositoryType
	}
	return typed, nil
}
