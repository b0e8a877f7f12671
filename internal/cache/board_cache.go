package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/bportes89/projeto-kanban/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyBoards = "board:list"
	keyDetail = "board:detail:"
)

// BoardCache caches the board list and composed board aggregates in Redis.
// Writers invalidate before acknowledging, so a read that follows a
// mutation always sees it.
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBoardCache returns a new BoardCache.
func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

// GetBoards returns the cached board list or nil if miss.
func (c *BoardCache) GetBoards(ctx context.Context) ([]dom.Board, error) {
	b, err := c.rdb.Get(ctx, keyBoards).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Board
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetBoards stores the board list in cache.
func (c *BoardCache) SetBoards(ctx context.Context, list []dom.Board) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyBoards, b, c.ttl).Err()
}

// GetDetail returns the cached aggregate for boardID, or nil if miss.
func (c *BoardCache) GetDetail(ctx context.Context, boardID int64) (*dom.BoardDetail, error) {
	b, err := c.rdb.Get(ctx, keyDetail+strconv.FormatInt(boardID, 10)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var detail dom.BoardDetail
	if err := json.Unmarshal(b, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SetDetail stores the composed aggregate for boardID.
func (c *BoardCache) SetDetail(ctx context.Context, boardID int64, detail dom.BoardDetail) error {
	b, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDetail+strconv.FormatInt(boardID, 10), b, c.ttl).Err()
}

// InvalidateAll removes the board list and every cached aggregate
// (cache invalidation on write).
func (c *BoardCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyBoards).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyDetail+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
