package postgres

import (
	"context"
	"database/sql"
)

type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// txQueryer expõe uma *sql.Tx como Queryer
type txQueryer struct {
	tx *sql.Tx
}

func (q *txQueryer) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return q.tx.ExecContext(ctx, query, args...)
}

func (q *txQueryer) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return q.tx.QueryContext(ctx, query, args...)
}

func (q *txQueryer) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return q.tx.QueryRowContext(ctx, query, args...)
}
