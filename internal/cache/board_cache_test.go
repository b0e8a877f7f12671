package cache

import (
	"context"
	"testing"
	"time"

	dom "github.com/bportes89/projeto-kanban/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*BoardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewBoardCache(rdb, time.Minute), mr
}

func TestBoardsRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// Miss before anything is stored.
	list, err := c.GetBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)

	want := []dom.Board{
		{ID: 1, Title: "Mentoring Q1"},
		{ID: 2, Title: "Mentoring Q2"},
	}
	require.NoError(t, c.SetBoards(ctx, want))

	got, err := c.GetBoards(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[1].Title, got[1].Title)
}

func TestDetailRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	miss, err := c.GetDetail(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, miss)

	detail := dom.BoardDetail{
		Board: dom.Board{ID: 7, Title: "Board"},
		Columns: []dom.ColumnDetail{
			{Column: dom.Column{ID: 1, BoardID: 7, Title: "To Do"}},
		},
	}
	require.NoError(t, c.SetDetail(ctx, 7, detail))

	got, err := c.GetDetail(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.Board.ID)
	require.Len(t, got.Columns, 1)
	assert.Equal(t, "To Do", got.Columns[0].Column.Title)

	// A different board is still a miss.
	other, err := c.GetDetail(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestInvalidateAll(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBoards(ctx, []dom.Board{{ID: 1}}))
	require.NoError(t, c.SetDetail(ctx, 1, dom.BoardDetail{Board: dom.Board{ID: 1}}))
	require.NoError(t, c.SetDetail(ctx, 2, dom.BoardDetail{Board: dom.Board{ID: 2}}))
	mr.Set("unrelated", "survives")

	require.NoError(t, c.InvalidateAll(ctx))

	list, err := c.GetBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)
	for _, id := range []int64{1, 2} {
		detail, err := c.GetDetail(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, detail)
	}
	// Keys outside the board namespace are untouched.
	assert.True(t, mr.Exists("unrelated"))
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBoards(ctx, []dom.Board{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	list, err := c.GetBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)
}
