package storages

import (
	"context"
	"database/sql"
)

// Tx is a statement scope handed to WithTx callbacks.
// WithTx commits or rolls back, callbacks only issue statements.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) (*sql.Row, error)
}

type sqlTx struct {
	tx *sql.Tx
}

var _ Tx = new(sqlTx)

func (s *sqlTx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.tx.ExecContext(ctx, query, args...)
}

func (s *sqlTx) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.tx.QueryContext(ctx, query, args...)
}

func (s *sqlTx) QueryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	row := s.tx.QueryRowContext(ctx, query, args...)
	return row, row.Err()
}
