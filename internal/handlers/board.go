package handlers

import (
	"net/http"

	"github.com/bportes89/projeto-kanban/internal/dto"
	"github.com/bportes89/projeto-kanban/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	svc *service.BoardService
}

func NewBoardHandler(svc *service.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// List godoc
// @Summary      List all boards
// @Tags         boards
// @Produce      json
// @Success      200  {object}  dto.ListBoardsResponse
// @Failure      500  {object}  map[string]string
// @Router       /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListBoardsResponse{Items: boardsToResponses(list)})
}

// Create godoc
// @Summary      Create a board with its three default columns
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateBoardRequest  true  "Board body"
// @Success      201   {object}  dto.CreateBoardResponse
// @Failure      400   {object}  map[string]string
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	board, columns, err := h.svc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.CreateBoardResponse{
		BoardResponse: boardToResponse(board),
		Columns:       columnsToResponses(columns),
	})
}

// Detail godoc
// @Summary      Get a board with columns, cards, messages and checklists
// @Tags         boards
// @Produce      json
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  dto.BoardDetailResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /boards/{id} [get]
func (h *BoardHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, boardDetailToResponse(detail))
}

// CreateColumn godoc
// @Summary      Add a column to a board
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Board ID"
// @Param        body  body      dto.CreateColumnRequest  true  "Column body"
// @Success      201   {object}  dto.ColumnResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /boards/{id}/columns [post]
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	column, err := h.svc.CreateColumn(c.Request.Context(), boardID, req.Title, req.Order)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, columnToResponse(column))
}

// UpdateColumn godoc
// @Summary      Update a column's title and/or order
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Column ID"
// @Param        body  body      dto.UpdateColumnRequest  true  "Partial update"
// @Success      200   {object}  dto.ColumnResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /columns/{id} [put]
func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	column, err := h.svc.UpdateColumn(c.Request.Context(), id, req.Title, req.Order)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, columnToResponse(column))
}
