package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same repo code serves both pool-bound and transaction-bound calls.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Stores bundles one repo per entity, all bound to the same Querier.
type Stores struct {
	Boards    BoardRepo
	Columns   ColumnRepo
	Cards     CardRepo
	Messages  MessageRepo
	Checklist ChecklistRepo
}

// TxManager scopes a set of store calls to a single transaction.
type TxManager interface {
	// WithinTx runs fn with stores bound to a read-write transaction.
	// fn returning an error rolls everything back.
	WithinTx(ctx context.Context, fn func(Stores) error) error
	// WithinReadTx runs fn against a read-only repeatable-read snapshot,
	// so a multi-entity read never observes a half-applied mutation.
	WithinReadTx(ctx context.Context, fn func(Stores) error) error
}
