package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, "customers", []byte("[]"))
		return err
	})
	require.NoError(t, err)

	var cnt int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&cnt))
	require.Equal(t, 1, cnt)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, "customers", []byte("[]")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var cnt int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&cnt))
	require.Equal(t, 0, cnt)
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, "k", []byte("v"))
			panic("boom")
		})
	})

	var cnt int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&cnt))
	require.Equal(t, 0, cnt)
}
