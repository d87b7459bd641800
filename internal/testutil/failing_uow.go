package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/ricardofreitas/staffing/internal/db"
)

// FailOnNthExecUoW is a unit of work that fails the Nth write inside the
// transaction with Err. Save tests use it to hit the header write or a
// specific plan row without touching the production code path.
//
// Writes are counted from 1; reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	faulty := &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, faulty); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// execCounter wraps a DBTX and intercepts ExecContext only.
type execCounter struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.writes.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
