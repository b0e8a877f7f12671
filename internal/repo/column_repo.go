package repo

import (
	"context"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
)

type ColumnRepo interface {
	Create(ctx context.Context, c dom.Column) (dom.Column, error)
	GetByID(ctx context.Context, id int64) (dom.Column, error)
	Update(ctx context.Context, id int64, patch dom.Column) (dom.Column, error)
	// ListByBoard returns columns sorted by (order, id); order values may
	// carry gaps or duplicates, the id tie-break keeps reads deterministic.
	ListByBoard(ctx context.Context, boardID int64) ([]dom.Column, error)
	CountByBoard(ctx context.Context, boardID int64) (int, error)
}

type PGColumnRepo struct {
	db Querier
}

func NewPGColumnRepo(db Querier) *PGColumnRepo {
	return &PGColumnRepo{db: db}
}

func (r *PGColumnRepo) Create(ctx context.Context, c dom.Column) (dom.Column, error) {
	query := `
		INSERT INTO columns (board_id, title, "order")
		VALUES ($1, $2, $3)
		RETURNING id, board_id, title, "order", created_at, updated_at`
	var out dom.Column
	err := r.db.QueryRow(ctx, query, c.BoardID, c.Title, c.Order).Scan(
		&out.ID, &out.BoardID, &out.Title, &out.Order, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGColumnRepo) GetByID(ctx context.Context, id int64) (dom.Column, error) {
	query := `
		SELECT id, board_id, title, "order", created_at, updated_at
		FROM columns WHERE id = $1`
	var c dom.Column
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.BoardID, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *PGColumnRepo) Update(ctx context.Context, id int64, patch dom.Column) (dom.Column, error) {
	query := `
		UPDATE columns SET title = $2, "order" = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, board_id, title, "order", created_at, updated_at`
	var c dom.Column
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Order).Scan(
		&c.ID, &c.BoardID, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *PGColumnRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.Column, error) {
	query := `
		SELECT id, board_id, title, "order", created_at, updated_at
		FROM columns WHERE board_id = $1 ORDER BY "order" ASC, id ASC`
	rows, err := r.db.Query(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Column
	for rows.Next() {
		var c dom.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGColumnRepo) CountByBoard(ctx context.Context, boardID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM columns WHERE board_id = $1`, boardID).Scan(&n)
	return n, err
}
