package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bportes89/projeto-kanban/internal/cache"
	dom "github.com/bportes89/projeto-kanban/internal/domain"
	"github.com/bportes89/projeto-kanban/internal/observability"
	"github.com/bportes89/projeto-kanban/internal/repo"
	"github.com/bportes89/projeto-kanban/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Every new board starts with these three columns at orders 0, 1, 2.
var defaultColumnTitles = []string{"To Do", "In Progress", "Done"}

// BoardService owns boards and columns and composes the full board
// aggregate (board -> columns -> cards -> messages/checklist) for reads.
type BoardService struct {
	stores repo.Stores
	tx     repo.TxManager
	cache  *cache.BoardCache
	sf     singleflight.Group
}

// NewBoardService creates a BoardService. If c is nil, caching is disabled.
func NewBoardService(stores repo.Stores, tx repo.TxManager, c *cache.BoardCache) *BoardService {
	return &BoardService{stores: stores, tx: tx, cache: c}
}

// List returns all boards.
func (s *BoardService) List(ctx context.Context) ([]dom.Board, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("boards", func() (interface{}, error) {
			if list, err := s.cache.GetBoards(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.stores.Boards.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetBoards(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Board), nil
	}
	return s.stores.Boards.List(ctx)
}

// Create makes a board together with its three default columns, as one
// transaction: either the board and all columns exist afterwards, or
// nothing does.
func (s *BoardService) Create(ctx context.Context, title, description string) (dom.Board, []dom.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Board{}, nil, ErrInvalidInput
	}

	var board dom.Board
	var columns []dom.Column
	err := s.tx.WithinTx(ctx, func(st repo.Stores) error {
		b, err := st.Boards.Create(ctx, dom.Board{Title: title, Description: strings.TrimSpace(description)})
		if err != nil {
			return err
		}
		board = b
		for i, t := range defaultColumnTitles {
			col, err := st.Columns.Create(ctx, dom.Column{BoardID: b.ID, Title: t, Order: i})
			if err != nil {
				return err
			}
			columns = append(columns, col)
		}
		return nil
	})
	if err != nil {
		return dom.Board{}, nil, err
	}
	s.invalidateCache(ctx)
	return board, columns, nil
}

// GetDetail returns the composed aggregate for one board: columns sorted
// by (order, id), cards by (created_at, id), and per card the message log
// and checklist in chronological order. The whole tree is assembled from
// a single read-only snapshot so a concurrent structural change is either
// fully visible or not at all.
func (s *BoardService) GetDetail(ctx context.Context, boardID int64) (dom.BoardDetail, error) {
	if s.cache != nil {
		key := "detail:" + strconv.FormatInt(boardID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if cached, err := s.cache.GetDetail(ctx, boardID); err == nil && cached != nil {
				return *cached, nil
			}
			detail, err := s.composeDetail(ctx, boardID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetDetail(ctx, boardID, detail)
			return detail, nil
		})
		if err != nil {
			return dom.BoardDetail{}, err
		}
		return v.(dom.BoardDetail), nil
	}
	return s.composeDetail(ctx, boardID)
}

func (s *BoardService) composeDetail(ctx context.Context, boardID int64) (dom.BoardDetail, error) {
	var detail dom.BoardDetail
	err := s.tx.WithinReadTx(ctx, func(st repo.Stores) error {
		board, err := st.Boards.GetByID(ctx, boardID)
		if err != nil {
			return err
		}
		columns, err := st.Columns.ListByBoard(ctx, boardID)
		if err != nil {
			return err
		}
		detail = dom.BoardDetail{Board: board, Columns: make([]dom.ColumnDetail, 0, len(columns))}
		for _, col := range columns {
			cards, err := st.Cards.ListByColumn(ctx, col.ID)
			if err != nil {
				return err
			}
			cd := dom.ColumnDetail{Column: col, Cards: make([]dom.CardDetail, 0, len(cards))}
			for _, card := range cards {
				messages, err := st.Messages.ListByCard(ctx, card.ID)
				if err != nil {
					return err
				}
				checklist, err := st.Checklist.ListByCard(ctx, card.ID)
				if err != nil {
					return err
				}
				cd.Cards = append(cd.Cards, dom.CardDetail{Card: card, Messages: messages, Checklist: checklist})
			}
			detail.Columns = append(detail.Columns, cd)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.BoardDetail{}, ErrNotFound
		}
		return dom.BoardDetail{}, err
	}
	return detail, nil
}

// CreateColumn appends a column to a board. When order is nil it defaults
// to the current column count (append-to-end); a duplicate order value is
// possible after manual reordering and is tolerated, reads tie-break on id.
func (s *BoardService) CreateColumn(ctx context.Context, boardID int64, title string, order *int) (dom.Column, error) {
	var column dom.Column
	err := s.tx.WithinTx(ctx, func(st repo.Stores) error {
		if _, err := st.Boards.GetByID(ctx, boardID); err != nil {
			return err
		}
		ord := 0
		if order != nil {
			ord = *order
		} else {
			n, err := st.Columns.CountByBoard(ctx, boardID)
			if err != nil {
				return err
			}
			ord = n
		}
		col, err := st.Columns.Create(ctx, dom.Column{BoardID: boardID, Title: title, Order: ord})
		if err != nil {
			return err
		}
		column = col
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || utils.IsPGForeignKeyViolation(err) {
			return dom.Column{}, ErrNotFound
		}
		return dom.Column{}, err
	}
	s.invalidateCache(ctx)
	return column, nil
}

// UpdateColumn applies a partial update of title and/or order.
func (s *BoardService) UpdateColumn(ctx context.Context, id int64, title *string, order *int) (dom.Column, error) {
	existing, err := s.stores.Columns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Column{}, ErrNotFound
		}
		return dom.Column{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = *title
	}
	if order != nil {
		patch.Order = *order
	}
	column, err := s.stores.Columns.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Column{}, ErrNotFound
		}
		return dom.Column{}, err
	}
	s.invalidateCache(ctx)
	return column, nil
}

func (s *BoardService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn("board cache invalidation failed", "err", err)
	}
}
