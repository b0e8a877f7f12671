package dto

import "time"

// Wire shapes use camelCase: the web client was built against the
// original API contract and keys like boardId/createdAt are load-bearing.

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type BoardResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListBoardsResponse struct {
	Items []BoardResponse `json:"items"`
}

// CreateBoardResponse returns the new board together with its three
// default columns.
type CreateBoardResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
}

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	// Order defaults to the board's current column count when omitted.
	Order *int `json:"order"`
}

type UpdateColumnRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=200"`
	Order *int    `json:"order"`
}

type ColumnResponse struct {
	ID        int64     `json:"id"`
	BoardID   int64     `json:"boardId"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardDetailResponse is the fully composed aggregate: the board, its
// columns in display order, and per column the cards with messages and
// checklist.
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnDetailResponse `json:"columns"`
}

type ColumnDetailResponse struct {
	ColumnResponse
	Cards []CardDetailResponse `json:"cards"`
}
