package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/bportes89/projeto-kanban/internal/domain"

	"github.com/jackc/pgx/v5"
)

// MemStore is an in-memory implementation of Stores and TxManager, used by
// the tests instead of a live Postgres. Missing rows and missing parents
// surface as pgx.ErrNoRows, the same signal the PG repos produce, so the
// service-layer error mapping is exercised unchanged.
//
// WithinTx snapshots the whole store and restores it when fn fails, so
// multi-entity writes are all-or-nothing here too.
type MemStore struct {
	mu  sync.Mutex
	txs sync.Mutex
	seq int64

	boards   map[int64]dom.Board
	columns  map[int64]dom.Column
	cards    map[int64]dom.Card
	messages map[int64]dom.Message
	items    map[int64]dom.ChecklistItem

	colCreateFailAfter int
	colCreateErr       error
}

func NewMemStore() *MemStore {
	return &MemStore{
		boards:   make(map[int64]dom.Board),
		columns:  make(map[int64]dom.Column),
		cards:    make(map[int64]dom.Card),
		messages: make(map[int64]dom.Message),
		items:    make(map[int64]dom.ChecklistItem),
	}
}

// Stores returns the repo bundle backed by this store.
func (s *MemStore) Stores() Stores {
	return Stores{
		Boards:    (*memBoardRepo)(s),
		Columns:   (*memColumnRepo)(s),
		Cards:     (*memCardRepo)(s),
		Messages:  (*memMessageRepo)(s),
		Checklist: (*memChecklistRepo)(s),
	}
}

func (s *MemStore) WithinTx(ctx context.Context, fn func(Stores) error) error {
	s.txs.Lock()
	defer s.txs.Unlock()
	snap := s.snapshot()
	if err := fn(s.Stores()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *MemStore) WithinReadTx(ctx context.Context, fn func(Stores) error) error {
	s.txs.Lock()
	defer s.txs.Unlock()
	return fn(s.Stores())
}

// FailColumnCreateAfter makes column Create fail with err once n creates
// have succeeded, then clears itself. Lets tests force a mid-transaction
// failure.
func (s *MemStore) FailColumnCreateAfter(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colCreateFailAfter = n
	s.colCreateErr = err
}

type memSnapshot struct {
	seq      int64
	boards   map[int64]dom.Board
	columns  map[int64]dom.Column
	cards    map[int64]dom.Card
	messages map[int64]dom.Message
	items    map[int64]dom.ChecklistItem
}

func (s *MemStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		seq:      s.seq,
		boards:   copyMap(s.boards),
		columns:  copyMap(s.columns),
		cards:    copyMap(s.cards),
		messages: copyMap(s.messages),
		items:    copyMap(s.items),
	}
}

func (s *MemStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = snap.seq
	s.boards = snap.boards
	s.columns = snap.columns
	s.cards = snap.cards
	s.messages = snap.messages
	s.items = snap.items
}

func copyMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *MemStore) nextID() int64 {
	s.seq++
	return s.seq
}

type memBoardRepo MemStore

func (r *memBoardRepo) Create(ctx context.Context, b dom.Board) (dom.Board, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	b.ID = s.nextID()
	b.CreatedAt, b.UpdatedAt = now, now
	s.boards[b.ID] = b
	return b, nil
}

func (r *memBoardRepo) GetByID(ctx context.Context, id int64) (dom.Board, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return dom.Board{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *memBoardRepo) List(ctx context.Context) ([]dom.Board, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []dom.Board
	for _, b := range s.boards {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type memColumnRepo MemStore

func (r *memColumnRepo) Create(ctx context.Context, c dom.Column) (dom.Column, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colCreateErr != nil {
		if s.colCreateFailAfter == 0 {
			err := s.colCreateErr
			s.colCreateErr = nil
			return dom.Column{}, err
		}
		s.colCreateFailAfter--
	}
	if _, ok := s.boards[c.BoardID]; !ok {
		return dom.Column{}, pgx.ErrNoRows
	}
	now := time.Now()
	c.ID = s.nextID()
	c.CreatedAt, c.UpdatedAt = now, now
	s.columns[c.ID] = c
	return c, nil
}

func (r *memColumnRepo) GetByID(ctx context.Context, id int64) (dom.Column, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.columns[id]
	if !ok {
		return dom.Column{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *memColumnRepo) Update(ctx context.Context, id int64, patch dom.Column) (dom.Column, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.columns[id]
	if !ok {
		return dom.Column{}, pgx.ErrNoRows
	}
	c.Title = patch.Title
	c.Order = patch.Order
	c.UpdatedAt = time.Now()
	s.columns[id] = c
	return c, nil
}

func (r *memColumnRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.Column, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []dom.Column
	for _, c := range s.columns {
		if c.BoardID == boardID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *memColumnRepo) CountByBoard(ctx context.Context, boardID int64) (int, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.columns {
		if c.BoardID == boardID {
			n++
		}
	}
	return n, nil
}

type memCardRepo MemStore

func (r *memCardRepo) Create(ctx context.Context, c dom.Card) (dom.Card, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.columns[c.ColumnID]; !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	now := time.Now()
	c.ID = s.nextID()
	c.CreatedAt, c.UpdatedAt = now, now
	s.cards[c.ID] = c
	return c, nil
}

func (r *memCardRepo) GetByID(ctx context.Context, id int64) (dom.Card, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[id]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *memCardRepo) Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[id]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	if _, ok := s.columns[patch.ColumnID]; !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	created := c.CreatedAt
	c = patch
	c.ID = id
	c.CreatedAt = created
	c.UpdatedAt = time.Now()
	s.cards[id] = c
	return c, nil
}

func (r *memCardRepo) ListByColumn(ctx context.Context, columnID int64) ([]dom.Card, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []dom.Card
	for _, c := range s.cards {
		if c.ColumnID == columnID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

type memMessageRepo MemStore

func (r *memMessageRepo) Create(ctx context.Context, m dom.Message) (dom.Message, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[m.CardID]; !ok {
		return dom.Message{}, pgx.ErrNoRows
	}
	m.ID = s.nextID()
	m.CreatedAt = time.Now()
	s.messages[m.ID] = m
	return m, nil
}

func (r *memMessageRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Message, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []dom.Message
	for _, m := range s.messages {
		if m.CardID == cardID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

type memChecklistRepo MemStore

func (r *memChecklistRepo) Create(ctx context.Context, it dom.ChecklistItem) (dom.ChecklistItem, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[it.CardID]; !ok {
		return dom.ChecklistItem{}, pgx.ErrNoRows
	}
	now := time.Now()
	it.ID = s.nextID()
	it.CreatedAt, it.UpdatedAt = now, now
	s.items[it.ID] = it
	return it, nil
}

func (r *memChecklistRepo) GetByID(ctx context.Context, id int64) (dom.ChecklistItem, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return dom.ChecklistItem{}, pgx.ErrNoRows
	}
	return it, nil
}

func (r *memChecklistRepo) Update(ctx context.Context, id int64, patch dom.ChecklistItem) (dom.ChecklistItem, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return dom.ChecklistItem{}, pgx.ErrNoRows
	}
	it.Content = patch.Content
	it.IsCompleted = patch.IsCompleted
	it.UpdatedAt = time.Now()
	s.items[id] = it
	return it, nil
}

func (r *memChecklistRepo) Delete(ctx context.Context, id int64) error {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.items, id)
	return nil
}

func (r *memChecklistRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.ChecklistItem, error) {
	s := (*MemStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []dom.ChecklistItem
	for _, it := range s.items {
		if it.CardID == cardID {
			list = append(list, it)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}
