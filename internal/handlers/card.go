package handlers

import (
	"net/http"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
	"github.com/bportes89/projeto-kanban/internal/dto"
	"github.com/bportes89/projeto-kanban/internal/service"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	svc *service.CardService
}

func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// Create godoc
// @Summary      Create a card in a column
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCardRequest  true  "Card body"
// @Success      201   {object}  dto.CardResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card, err := h.svc.Create(c.Request.Context(), dom.Card{
		Title:            req.Title,
		MenteeName:       req.MenteeName,
		MenteeContext:    req.MenteeContext,
		MenteeGoal:       req.MenteeGoal,
		MentorPerception: req.MentorPerception,
		MentorResistance: req.MentorResistance,
		MentorAttention:  req.MentorAttention,
		MentorEmotion:    req.MentorEmotion,
		Phase:            req.Phase,
		EnergyMentee:     req.EnergyMentee,
		EnergyMentor:     req.EnergyMentor,
		DecisionsTaken:   req.DecisionsTaken,
		DecisionsOpen:    req.DecisionsOpen,
		Reflections:      req.Reflections,
		Type:             dom.CardType(req.Type),
		ColumnID:         req.ColumnID,
	})
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "column not found"})
			return
		}
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cardToResponse(card))
}

// Get godoc
// @Summary      Get a card with its messages and checklist
// @Tags         cards
// @Produce      json
// @Param        id   path      int  true  "Card ID"
// @Success      200  {object}  dto.CardDetailResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cardDetailToResponse(detail))
}

// Update godoc
// @Summary      Update a card (moving happens via columnId)
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Card ID"
// @Param        body  body      dto.UpdateCardRequest  true  "Partial update"
// @Success      200   {object}  dto.CardResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var cardType *dom.CardType
	if req.Type != nil {
		t := dom.CardType(*req.Type)
		cardType = &t
	}
	card, err := h.svc.Update(c.Request.Context(), id, service.CardPatch{
		Title:            req.Title,
		MenteeName:       req.MenteeName,
		MenteeContext:    req.MenteeContext,
		MenteeGoal:       req.MenteeGoal,
		MentorPerception: req.MentorPerception,
		MentorResistance: req.MentorResistance,
		MentorAttention:  req.MentorAttention,
		MentorEmotion:    req.MentorEmotion,
		Phase:            req.Phase,
		EnergyMentee:     req.EnergyMentee,
		EnergyMentor:     req.EnergyMentor,
		DecisionsTaken:   req.DecisionsTaken,
		DecisionsOpen:    req.DecisionsOpen,
		Reflections:      req.Reflections,
		Type:             cardType,
		ColumnID:         req.ColumnID,
	})
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "card or column not found"})
			return
		}
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cardToResponse(card))
}

// AppendMessage godoc
// @Summary      Append a message to a card's conversation log
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Card ID"
// @Param        body  body      dto.AppendMessageRequest  true  "Message body"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards/{id}/messages [post]
func (h *CardHandler) AppendMessage(c *gin.Context) {
	cardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.svc.AppendMessage(c.Request.Context(), cardID, req.Content, req.AuthorType, req.AuthorName)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, messageToResponse(msg))
}

// AddChecklistItem godoc
// @Summary      Add a checklist item to a card
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Card ID"
// @Param        body  body      dto.AddChecklistItemRequest  true  "Item body"
// @Success      201   {object}  dto.ChecklistItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards/{id}/checklist [post]
func (h *CardHandler) AddChecklistItem(c *gin.Context) {
	cardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.AddChecklistItem(c.Request.Context(), cardID, req.Content)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, checklistItemToResponse(item))
}

// MutateChecklistItem godoc
// @Summary      Toggle or rename a checklist item
// @Description  If both isCompleted and content are present, isCompleted wins.
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.MutateChecklistItemRequest  true  "Toggle or rename"
// @Success      200   {object}  dto.ChecklistItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /checklist/{id} [put]
func (h *CardHandler) MutateChecklistItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.MutateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.MutateChecklistItem(c.Request.Context(), id, req.IsCompleted, req.Content)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checklistItemToResponse(item))
}

// DeleteChecklistItem godoc
// @Summary      Delete a checklist item
// @Tags         checklist
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checklist/{id} [delete]
func (h *CardHandler) DeleteChecklistItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteChecklistItem(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
