package repo

import (
	"context"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
)

// MessageRepo is append-only: no update, no delete. Conversation
// integrity depends on the log never being rewritten.
type MessageRepo interface {
	Create(ctx context.Context, m dom.Message) (dom.Message, error)
	ListByCard(ctx context.Context, cardID int64) ([]dom.Message, error)
}

type PGMessageRepo struct {
	db Querier
}

func NewPGMessageRepo(db Querier) *PGMessageRepo {
	return &PGMessageRepo{db: db}
}

func (r *PGMessageRepo) Create(ctx context.Context, m dom.Message) (dom.Message, error) {
	query := `
		INSERT INTO messages (card_id, content, author_type, author_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, card_id, content, author_type, author_name, created_at`
	var out dom.Message
	err := r.db.QueryRow(ctx, query, m.CardID, m.Content, m.AuthorType, m.AuthorName).Scan(
		&out.ID, &out.CardID, &out.Content, &out.AuthorType, &out.AuthorName, &out.CreatedAt,
	)
	return out, err
}

func (r *PGMessageRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Message, error) {
	query := `
		SELECT id, card_id, content, author_type, author_name, created_at
		FROM messages WHERE card_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Message
	for rows.Next() {
		var m dom.Message
		if err := rows.Scan(&m.ID, &m.CardID, &m.Content, &m.AuthorType, &m.AuthorName, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
