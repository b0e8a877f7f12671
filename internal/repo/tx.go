package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPGStores builds one repo per entity, all bound to db (pool or tx).
func NewPGStores(db Querier) Stores {
	return Stores{
		Boards:    NewPGBoardRepo(db),
		Columns:   NewPGColumnRepo(db),
		Cards:     NewPGCardRepo(db),
		Messages:  NewPGMessageRepo(db),
		Checklist: NewPGChecklistRepo(db),
	}
}

// PGTxManager runs store calls inside pgx transactions.
type PGTxManager struct {
	pool *pgxpool.Pool
}

func NewPGTxManager(pool *pgxpool.Pool) *PGTxManager {
	return &PGTxManager{pool: pool}
}

func (m *PGTxManager) WithinTx(ctx context.Context, fn func(Stores) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

func (m *PGTxManager) WithinReadTx(ctx context.Context, fn func(Stores) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (m *PGTxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(Stores) error) error {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewPGStores(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
