package domain

import "time"

// Board is a mentoring workspace. Columns are owned by the board and
// carry a board-scoped order value.
type Board struct {
	ID          int64
	Title       string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Column is a named stage bucket within a board. Order values within a
// board may contain gaps or duplicates; reads sort by (Order, ID).
type Column struct {
	ID      int64
	BoardID int64
	Title   string
	Order   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardDetail is the fully composed aggregate returned by a single read:
// the board, its columns in display order, and for every column its cards
// with messages and checklist items.
type BoardDetail struct {
	Board   Board
	Columns []ColumnDetail
}

type ColumnDetail struct {
	Column Column
	Cards  []CardDetail
}

type CardDetail struct {
	Card      Card
	Messages  []Message
	Checklist []ChecklistItem
}
