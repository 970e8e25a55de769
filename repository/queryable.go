package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStoreUnavailable classifies failures where the backing store could
// not be reached or refused the operation. Callers check it with
// errors.Is and turn it into a generic failure response; there is no
// retry layer.
var ErrStoreUnavailable = errors.New("profile store unavailable")

// queryable is satisfied by both *pgxpool.Pool and pgx.Tx so repositories
// can run inside or outside a transaction
type queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
