package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
)

// TxStarter is satisfied by *pgxpool.Pool and pgx.Tx.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes fn within a database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, pool TxStarter, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// Rollback after commit returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionRetry retries WithTransaction up to maxRetries times on
// serialization failures and deadlocks.
func WithTransactionRetry(ctx context.Context, pool TxStarter, maxRetries int, fn TransactionFunc) error {
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}

		if (IsSerializationFailure(err) || IsDeadlock(err)) && attempt < maxRetries {
			logger.Log.Warn("Transaction failed due to a concurrent update, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			continue
		}

		break
	}

	return err
}

// IsSerializationFailure reports whether err carries SQLSTATE 40001.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// IsDeadlock reports whether err carries SQLSTATE 40P01.
func IsDeadlock(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40P01"
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type poolTxRunner struct {
	pool       TxStarter
	maxRetries int
}

// TxRunnerOption configures a runner built by NewTxRunner.
type TxRunnerOption func(*poolTxRunner)

// WithConflictRetries retries a unit of work up to n more times when it
// loses a serialization conflict or a deadlock.
func WithConflictRetries(n int) TxRunnerOption {
	return func(r *poolTxRunner) {
		r.maxRetries = n
	}
}

// NewTxRunner returns a db.TxRunner that wraps each unit of work in
// WithTransactionRetry. Without options every unit runs once.
func NewTxRunner(pool TxStarter, opts ...TxRunnerOption) db.TxRunner {
	r := &poolTxRunner{pool: pool}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *poolTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.pool, r.maxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}
