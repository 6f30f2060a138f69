package helpers

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
)

type fakeTx struct {
	pgx.Tx
	starter *fakeStarter
	closed  bool
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.closed = true
	tx.starter.commits++
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.closed = true
	tx.starter.rollbacks++
	return nil
}

type fakeStarter struct {
	begins    int
	commits   int
	rollbacks int
}

func (s *fakeStarter) Begin(ctx context.Context) (pgx.Tx, error) {
	s.begins++
	return &fakeTx{starter: s}, nil
}

// failFirst returns a unit of work failing with err on its first n runs.
func failFirst(n int, err error) func(q db.Querier) error {
	runs := 0
	return func(q db.Querier) error {
		runs++
		if runs <= n {
			return err
		}
		return nil
	}
}

func TestTxRunner_ConflictRetries(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	deadlock := &pgconn.PgError{Code: "40P01"}
	unique := &pgconn.PgError{Code: "23505"}

	tests := []struct {
		name          string
		opts          []TxRunnerOption
		fn            func(q db.Querier) error
		wantErr       error
		wantBegins    int
		wantCommits   int
		wantRollbacks int
	}{
		{
			name:        "commits first try",
			opts:        []TxRunnerOption{WithConflictRetries(3)},
			fn:          failFirst(0, nil),
			wantBegins:  1,
			wantCommits: 1,
		},
		{
			name:          "replays serialization failures",
			opts:          []TxRunnerOption{WithConflictRetries(3)},
			fn:            failFirst(2, serialization),
			wantBegins:    3,
			wantCommits:   1,
			wantRollbacks: 2,
		},
		{
			name:          "replays deadlocks",
			opts:          []TxRunnerOption{WithConflictRetries(1)},
			fn:            failFirst(1, deadlock),
			wantBegins:    2,
			wantCommits:   1,
			wantRollbacks: 1,
		},
		{
			name:          "gives up after the retry budget",
			opts:          []TxRunnerOption{WithConflictRetries(2)},
			fn:            failFirst(10, serialization),
			wantErr:       serialization,
			wantBegins:    3,
			wantRollbacks: 3,
		},
		{
			name:          "other errors are not replayed",
			opts:          []TxRunnerOption{WithConflictRetries(3)},
			fn:            failFirst(1, unique),
			wantErr:       unique,
			wantBegins:    1,
			wantRollbacks: 1,
		},
		{
			name:          "no retries by default",
			fn:            failFirst(1, serialization),
			wantErr:       serialization,
			wantBegins:    1,
			wantRollbacks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			starter := &fakeStarter{}
			runner := NewTxRunner(starter, tt.opts...)

			err := runner.RunInTx(context.Background(), tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBegins, starter.begins)
			assert.Equal(t, tt.wantCommits, starter.commits)
			assert.Equal(t, tt.wantRollbacks, starter.rollbacks)
		})
	}
}

func TestWithTransactionRetry_WrapsCause(t *testing.T) {
	starter := &fakeStarter{}

	err := WithTransactionRetry(context.Background(), starter, 0, func(tx pgx.Tx) error {
		return errors.New("boom")
	})
	assert.EqualError(t, err, "transaction failed: boom")
	assert.Equal(t, 1, starter.rollbacks)
}
