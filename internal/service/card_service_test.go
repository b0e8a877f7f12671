package service

import (
	"context"
	"testing"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
	"github.com/bportes89/projeto-kanban/internal/repo"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	boards  *BoardService
	cards   *CardService
	board   dom.Board
	columns []dom.Column
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repo.NewMemStore()
	f := &fixture{
		boards: NewBoardService(store.Stores(), store, nil),
		cards:  NewCardService(store.Stores(), store, nil),
	}
	board, columns, err := f.boards.Create(context.Background(), "Mentoring Q1", "")
	require.NoError(t, err)
	f.board, f.columns = board, columns
	return f
}

func TestCreateCardDefaults(t *testing.T) {
	f := newFixture(t)

	card, err := f.cards.Create(context.Background(), dom.Card{
		Title:    "Sessão inicial",
		ColumnID: f.columns[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dom.CardTypeGeneric, card.Type)
	assert.Equal(t, f.columns[0].ID, card.ColumnID)
	assert.NotZero(t, card.ID)
	assert.False(t, card.CreatedAt.IsZero())
}

func TestCreateCardValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID, Type: "epic"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID, EnergyMentee: 11})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID, EnergyMentor: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.Create(ctx, dom.Card{ColumnID: 9999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveCardKeepsChronologicalSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	todo, doing := f.columns[0].ID, f.columns[1].ID

	older, err := f.cards.Create(ctx, dom.Card{Title: "older", ColumnID: todo})
	require.NoError(t, err)
	newer, err := f.cards.Create(ctx, dom.Card{Title: "newer", ColumnID: doing})
	require.NoError(t, err)

	moved, err := f.cards.Update(ctx, older.ID, CardPatch{ColumnID: &doing})
	require.NoError(t, err)
	assert.Equal(t, doing, moved.ColumnID)
	assert.Equal(t, older.CreatedAt, moved.CreatedAt)

	detail, err := f.boards.GetDetail(ctx, f.board.ID)
	require.NoError(t, err)

	assert.Empty(t, detail.Columns[0].Cards)
	require.Len(t, detail.Columns[1].Cards, 2)
	// The moved card kept its original timestamp, so it sorts before the
	// card that was created later, not at the end.
	assert.Equal(t, older.ID, detail.Columns[1].Cards[0].Card.ID)
	assert.Equal(t, newer.ID, detail.Columns[1].Cards[1].Card.ID)
}

func TestUpdateCardPartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{
		Title:        "Sessão 1",
		MenteeName:   "Ana",
		EnergyMentee: 5,
		ColumnID:     f.columns[0].ID,
	})
	require.NoError(t, err)

	phase := "descoberta"
	energy := 8
	updated, err := f.cards.Update(ctx, card.ID, CardPatch{Phase: &phase, EnergyMentee: &energy})
	require.NoError(t, err)
	assert.Equal(t, "descoberta", updated.Phase)
	assert.Equal(t, 8, updated.EnergyMentee)
	// Untouched fields survive.
	assert.Equal(t, "Sessão 1", updated.Title)
	assert.Equal(t, "Ana", updated.MenteeName)
	assert.Equal(t, f.columns[0].ID, updated.ColumnID)
}

func TestUpdateCardValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	bad := 11
	_, err = f.cards.Update(ctx, card.ID, CardPatch{EnergyMentor: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badType := dom.CardType("epic")
	_, err = f.cards.Update(ctx, card.ID, CardPatch{Type: &badType})
	assert.ErrorIs(t, err, ErrInvalidInput)

	ghost := int64(9999)
	_, err = f.cards.Update(ctx, card.ID, CardPatch{ColumnID: &ghost})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.cards.Update(ctx, 9999, CardPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	msg, err := f.cards.AppendMessage(ctx, card.ID, "  first note  ", "mentor", "Carlos")
	require.NoError(t, err)
	assert.Equal(t, "first note", msg.Content)
	assert.Equal(t, "mentor", msg.AuthorType)
	assert.Equal(t, "Carlos", msg.AuthorName)

	_, err = f.cards.AppendMessage(ctx, card.ID, "reply", "ai", "")
	require.NoError(t, err)

	detail, err := f.cards.Get(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, "first note", detail.Messages[0].Content)
	assert.Equal(t, "reply", detail.Messages[1].Content)
}

func TestAppendMessageValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	_, err = f.cards.AppendMessage(ctx, card.ID, "   ", "user", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.AppendMessage(ctx, card.ID, "hi", "bot", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.AppendMessage(ctx, 9999, "hi", "user", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChecklistLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	item, err := f.cards.AddChecklistItem(ctx, card.ID, "map stakeholders")
	require.NoError(t, err)
	assert.False(t, item.IsCompleted)

	done := true
	toggled, err := f.cards.MutateChecklistItem(ctx, item.ID, &done, nil)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
	assert.Equal(t, "map stakeholders", toggled.Content)

	renamed := "map all stakeholders"
	updated, err := f.cards.MutateChecklistItem(ctx, item.ID, nil, &renamed)
	require.NoError(t, err)
	assert.Equal(t, "map all stakeholders", updated.Content)
	// A rename never flips the completion flag.
	assert.True(t, updated.IsCompleted)

	require.NoError(t, f.cards.DeleteChecklistItem(ctx, item.ID))
	assert.ErrorIs(t, f.cards.DeleteChecklistItem(ctx, item.ID), ErrNotFound)

	_, err = f.cards.MutateChecklistItem(ctx, item.ID, &done, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutateChecklistItemCompletionWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)
	item, err := f.cards.AddChecklistItem(ctx, card.ID, "original")
	require.NoError(t, err)

	// Both fields in one call: the toggle applies, the rename is dropped.
	done := true
	renamed := "renamed"
	out, err := f.cards.MutateChecklistItem(ctx, item.ID, &done, &renamed)
	require.NoError(t, err)
	assert.True(t, out.IsCompleted)
	assert.Equal(t, "original", out.Content)
}

func TestMutateChecklistItemEmptyContentIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)
	item, err := f.cards.AddChecklistItem(ctx, card.ID, "keep me")
	require.NoError(t, err)

	empty := ""
	out, err := f.cards.MutateChecklistItem(ctx, item.ID, nil, &empty)
	require.NoError(t, err)
	assert.Equal(t, "keep me", out.Content)
	assert.False(t, out.IsCompleted)
}

func TestAddChecklistItemValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	_, err = f.cards.AddChecklistItem(ctx, card.ID, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.cards.AddChecklistItem(ctx, 9999, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

// checkViolatingCards fails every write the way Postgres reports a CHECK
// constraint violation.
type checkViolatingCards struct {
	repo.CardRepo
}

func (c checkViolatingCards) Create(ctx context.Context, card dom.Card) (dom.Card, error) {
	return dom.Card{}, &pgconn.PgError{Code: "23514"}
}

func (c checkViolatingCards) Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error) {
	return dom.Card{}, &pgconn.PgError{Code: "23514"}
}

func TestCardCheckViolationMapsToInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	require.NoError(t, err)

	stores := f.boards.stores
	stores.Cards = checkViolatingCards{CardRepo: stores.Cards}
	cards := NewCardService(stores, f.cards.tx, nil)

	_, err = cards.Create(ctx, dom.Card{ColumnID: f.columns[0].ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = cards.Update(ctx, card.ID, CardPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCardDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, dom.Card{Title: "Sessão", ColumnID: f.columns[0].ID})
	require.NoError(t, err)
	_, err = f.cards.AppendMessage(ctx, card.ID, "note", "user", "Ana")
	require.NoError(t, err)
	_, err = f.cards.AddChecklistItem(ctx, card.ID, "todo")
	require.NoError(t, err)

	detail, err := f.cards.Get(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, detail.Card.ID)
	assert.Len(t, detail.Messages, 1)
	assert.Len(t, detail.Checklist, 1)

	_, err = f.cards.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
