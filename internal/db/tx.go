package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxStarter is satisfied by *pgxpool.Pool and pgx.Tx.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs a unit of work against a transaction-scoped Querier.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q Querier) error) error
}
