package repo

import (
	"context"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
)

type BoardRepo interface {
	Create(ctx context.Context, b dom.Board) (dom.Board, error)
	GetByID(ctx context.Context, id int64) (dom.Board, error)
	List(ctx context.Context) ([]dom.Board, error)
}

type PGBoardRepo struct {
	db Querier
}

func NewPGBoardRepo(db Querier) *PGBoardRepo {
	return &PGBoardRepo{db: db}
}

func (r *PGBoardRepo) Create(ctx context.Context, b dom.Board) (dom.Board, error) {
	query := `
		INSERT INTO boards (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, created_at, updated_at`
	var out dom.Board
	err := r.db.QueryRow(ctx, query, b.Title, b.Description).Scan(
		&out.ID, &out.Title, &out.Description, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGBoardRepo) GetByID(ctx context.Context, id int64) (dom.Board, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM boards WHERE id = $1`
	var b dom.Board
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *PGBoardRepo) List(ctx context.Context) ([]dom.Board, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM boards ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Board
	for rows.Next() {
		var b dom.Board
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
