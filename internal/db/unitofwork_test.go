package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertSection(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO sections (id, name, created_at, updated_at)
		 VALUES (?, ?, datetime('now'), datetime('now'))`, id, name)
	return err
}

func sectionExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var name string
		row := tx.QueryRowContext(ctx, `SELECT name FROM sections WHERE id = ?`, id)
		if err := row.Scan(&name); err == nil {
			found = true
		}
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSection(ctx, tx, "sec-1", "Engineering")
	})
	require.NoError(t, err)

	assert.True(t, sectionExists(uow, "sec-1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSection(ctx, tx, "sec-2", "Research"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, sectionExists(uow, "sec-2"), "insert should be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSection(ctx, tx, "sec-3", "Operations")
			panic("boom")
		})
	})

	assert.False(t, sectionExists(uow, "sec-3"), "insert should be rolled back on panic")
}
