package repo

import (
	"context"

	dom "github.com/bportes89/projeto-kanban/internal/domain"

	"github.com/jackc/pgx/v5"
)

type CardRepo interface {
	Create(ctx context.Context, c dom.Card) (dom.Card, error)
	GetByID(ctx context.Context, id int64) (dom.Card, error)
	Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error)
	// ListByColumn returns cards in creation order (created_at, id).
	// There is no stored position: a card moved into a column slots in by
	// its original created_at, not by move time.
	ListByColumn(ctx context.Context, columnID int64) ([]dom.Card, error)
}

const cardColumns = `id, title, mentee_name, mentee_context, mentee_goal,
		mentor_perception, mentor_resistance, mentor_attention, mentor_emotion,
		phase, energy_mentee, energy_mentor,
		decisions_taken, decisions_open, reflections,
		type, column_id, created_at, updated_at`

func scanCard(row pgx.Row) (dom.Card, error) {
	var c dom.Card
	err := row.Scan(
		&c.ID, &c.Title, &c.MenteeName, &c.MenteeContext, &c.MenteeGoal,
		&c.MentorPerception, &c.MentorResistance, &c.MentorAttention, &c.MentorEmotion,
		&c.Phase, &c.EnergyMentee, &c.EnergyMentor,
		&c.DecisionsTaken, &c.DecisionsOpen, &c.Reflections,
		&c.Type, &c.ColumnID, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

type PGCardRepo struct {
	db Querier
}

func NewPGCardRepo(db Querier) *PGCardRepo {
	return &PGCardRepo{db: db}
}

func (r *PGCardRepo) Create(ctx context.Context, c dom.Card) (dom.Card, error) {
	query := `
		INSERT INTO cards (title, mentee_name, mentee_context, mentee_goal,
			mentor_perception, mentor_resistance, mentor_attention, mentor_emotion,
			phase, energy_mentee, energy_mentor,
			decisions_taken, decisions_open, reflections,
			type, column_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + cardColumns
	return scanCard(r.db.QueryRow(ctx, query,
		c.Title, c.MenteeName, c.MenteeContext, c.MenteeGoal,
		c.MentorPerception, c.MentorResistance, c.MentorAttention, c.MentorEmotion,
		c.Phase, c.EnergyMentee, c.EnergyMentor,
		c.DecisionsTaken, c.DecisionsOpen, c.Reflections,
		c.Type, c.ColumnID,
	))
}

func (r *PGCardRepo) GetByID(ctx context.Context, id int64) (dom.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`
	return scanCard(r.db.QueryRow(ctx, query, id))
}

func (r *PGCardRepo) Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error) {
	query := `
		UPDATE cards SET title = $2, mentee_name = $3, mentee_context = $4, mentee_goal = $5,
			mentor_perception = $6, mentor_resistance = $7, mentor_attention = $8, mentor_emotion = $9,
			phase = $10, energy_mentee = $11, energy_mentor = $12,
			decisions_taken = $13, decisions_open = $14, reflections = $15,
			type = $16, column_id = $17, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + cardColumns
	return scanCard(r.db.QueryRow(ctx, query, id,
		patch.Title, patch.MenteeName, patch.MenteeContext, patch.MenteeGoal,
		patch.MentorPerception, patch.MentorResistance, patch.MentorAttention, patch.MentorEmotion,
		patch.Phase, patch.EnergyMentee, patch.EnergyMentor,
		patch.DecisionsTaken, patch.DecisionsOpen, patch.Reflections,
		patch.Type, patch.ColumnID,
	))
}

func (r *PGCardRepo) ListByColumn(ctx context.Context, columnID int64) ([]dom.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE column_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, columnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
