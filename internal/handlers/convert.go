package handlers

import (
	"net/http"
	"strconv"

	dom "github.com/bportes89/projeto-kanban/internal/domain"
	"github.com/bportes89/projeto-kanban/internal/dto"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func boardToResponse(b dom.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func boardsToResponses(list []dom.Board) []dto.BoardResponse {
	out := make([]dto.BoardResponse, len(list))
	for i := range list {
		out[i] = boardToResponse(list[i])
	}
	return out
}

func columnToResponse(c dom.Column) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Title:     c.Title,
		Order:     c.Order,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func columnsToResponses(list []dom.Column) []dto.ColumnResponse {
	out := make([]dto.ColumnResponse, len(list))
	for i := range list {
		out[i] = columnToResponse(list[i])
	}
	return out
}

func cardToResponse(c dom.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:               c.ID,
		Title:            c.Title,
		MenteeName:       c.MenteeName,
		MenteeContext:    c.MenteeContext,
		MenteeGoal:       c.MenteeGoal,
		MentorPerception: c.MentorPerception,
		MentorResistance: c.MentorResistance,
		MentorAttention:  c.MentorAttention,
		MentorEmotion:    c.MentorEmotion,
		Phase:            c.Phase,
		EnergyMentee:     c.EnergyMentee,
		EnergyMentor:     c.EnergyMentor,
		DecisionsTaken:   c.DecisionsTaken,
		DecisionsOpen:    c.DecisionsOpen,
		Reflections:      c.Reflections,
		Type:             string(c.Type),
		ColumnID:         c.ColumnID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func messageToResponse(m dom.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		CardID:     m.CardID,
		Content:    m.Content,
		AuthorType: m.AuthorType,
		AuthorName: m.AuthorName,
		CreatedAt:  m.CreatedAt,
	}
}

func checklistItemToResponse(it dom.ChecklistItem) dto.ChecklistItemResponse {
	return dto.ChecklistItemResponse{
		ID:          it.ID,
		CardID:      it.CardID,
		Content:     it.Content,
		IsCompleted: it.IsCompleted,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func cardDetailToResponse(d dom.CardDetail) dto.CardDetailResponse {
	messages := make([]dto.MessageResponse, len(d.Messages))
	for i := range d.Messages {
		messages[i] = messageToResponse(d.Messages[i])
	}
	checklist := make([]dto.ChecklistItemResponse, len(d.Checklist))
	for i := range d.Checklist {
		checklist[i] = checklistItemToResponse(d.Checklist[i])
	}
	return dto.CardDetailResponse{
		CardResponse: cardToResponse(d.Card),
		Messages:     messages,
		Checklist:    checklist,
	}
}

func boardDetailToResponse(d dom.BoardDetail) dto.BoardDetailResponse {
	columns := make([]dto.ColumnDetailResponse, len(d.Columns))
	for i, col := range d.Columns {
		cards := make([]dto.CardDetailResponse, len(col.Cards))
		for j := range col.Cards {
			cards[j] = cardDetailToResponse(col.Cards[j])
		}
		columns[i] = dto.ColumnDetailResponse{
			ColumnResponse: columnToResponse(col.Column),
			Cards:          cards,
		}
	}
	return dto.BoardDetailResponse{
		BoardResponse: boardToResponse(d.Board),
		Columns:       columns,
	}
}
