package repo

import (
	"context"

	dom "github.com/bportes89/projeto-kanban/internal/domain"

	"github.com/jackc/pgx/v5"
)

type ChecklistRepo interface {
	Create(ctx context.Context, it dom.ChecklistItem) (dom.ChecklistItem, error)
	GetByID(ctx context.Context, id int64) (dom.ChecklistItem, error)
	Update(ctx context.Context, id int64, patch dom.ChecklistItem) (dom.ChecklistItem, error)
	// Delete is terminal; deleting a missing item returns pgx.ErrNoRows so
	// a second delete reports not-found instead of silently succeeding.
	Delete(ctx context.Context, id int64) error
	ListByCard(ctx context.Context, cardID int64) ([]dom.ChecklistItem, error)
}

type PGChecklistRepo struct {
	db Querier
}

func NewPGChecklistRepo(db Querier) *PGChecklistRepo {
	return &PGChecklistRepo{db: db}
}

func (r *PGChecklistRepo) Create(ctx context.Context, it dom.ChecklistItem) (dom.ChecklistItem, error) {
	query := `
		INSERT INTO checklist_items (card_id, content, is_completed)
		VALUES ($1, $2, $3)
		RETURNING id, card_id, content, is_completed, created_at, updated_at`
	var out dom.ChecklistItem
	err := r.db.QueryRow(ctx, query, it.CardID, it.Content, it.IsCompleted).Scan(
		&out.ID, &out.CardID, &out.Content, &out.IsCompleted, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGChecklistRepo) GetByID(ctx context.Context, id int64) (dom.ChecklistItem, error) {
	query := `
		SELECT id, card_id, content, is_completed, created_at, updated_at
		FROM checklist_items WHERE id = $1`
	var it dom.ChecklistItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.CardID, &it.Content, &it.IsCompleted, &it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func (r *PGChecklistRepo) Update(ctx context.Context, id int64, patch dom.ChecklistItem) (dom.ChecklistItem, error) {
	query := `
		UPDATE checklist_items SET content = $2, is_completed = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, card_id, content, is_completed, created_at, updated_at`
	var it dom.ChecklistItem
	err := r.db.QueryRow(ctx, query, id, patch.Content, patch.IsCompleted).Scan(
		&it.ID, &it.CardID, &it.Content, &it.IsCompleted, &it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func (r *PGChecklistRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM checklist_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGChecklistRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.ChecklistItem, error) {
	query := `
		SELECT id, card_id, content, is_completed, created_at, updated_at
		FROM checklist_items WHERE card_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.ChecklistItem
	for rows.Next() {
		var it dom.ChecklistItem
		if err := rows.Scan(&it.ID, &it.CardID, &it.Content, &it.IsCompleted, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
