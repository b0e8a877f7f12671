package dto

import "time"

type CreateCardRequest struct {
	Title            string `json:"title" binding:"max=200"`
	MenteeName       string `json:"menteeName" binding:"max=200"`
	MenteeContext    string `json:"menteeContext"`
	MenteeGoal       string `json:"menteeGoal"`
	MentorPerception string `json:"mentorPerception"`
	MentorResistance string `json:"mentorResistance"`
	MentorAttention  string `json:"mentorAttention"`
	MentorEmotion    string `json:"mentorEmotion"`
	Phase            string `json:"phase" binding:"max=100"`
	EnergyMentee     int    `json:"energyMentee" binding:"gte=0,lte=10"`
	EnergyMentor     int    `json:"energyMentor" binding:"gte=0,lte=10"`
	DecisionsTaken   string `json:"decisionsTaken"`
	DecisionsOpen    string `json:"decisionsOpen"`
	Reflections      string `json:"reflections"`
	Type             string `json:"type" binding:"omitempty,oneof=generic produto cliente projeto decisao"`
	ColumnID         int64  `json:"columnId" binding:"required"`
}

// UpdateCardRequest is a partial update; nil leaves the field unchanged.
// columnId is the move mechanism — no position field exists.
type UpdateCardRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=200"`
	MenteeName       *string `json:"menteeName" binding:"omitempty,max=200"`
	MenteeContext    *string `json:"menteeContext"`
	MenteeGoal       *string `json:"menteeGoal"`
	MentorPerception *string `json:"mentorPerception"`
	MentorResistance *string `json:"mentorResistance"`
	MentorAttention  *string `json:"mentorAttention"`
	MentorEmotion    *string `json:"mentorEmotion"`
	Phase            *string `json:"phase" binding:"omitempty,max=100"`
	EnergyMentee     *int    `json:"energyMentee" binding:"omitempty,gte=0,lte=10"`
	EnergyMentor     *int    `json:"energyMentor" binding:"omitempty,gte=0,lte=10"`
	DecisionsTaken   *string `json:"decisionsTaken"`
	DecisionsOpen    *string `json:"decisionsOpen"`
	Reflections      *string `json:"reflections"`
	Type             *string `json:"type" binding:"omitempty,oneof=generic produto cliente projeto decisao"`
	ColumnID         *int64  `json:"columnId"`
}

type CardResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	MenteeName       string    `json:"menteeName"`
	MenteeContext    string    `json:"menteeContext"`
	MenteeGoal       string    `json:"menteeGoal"`
	MentorPerception string    `json:"mentorPerception"`
	MentorResistance string    `json:"mentorResistance"`
	MentorAttention  string    `json:"mentorAttention"`
	MentorEmotion    string    `json:"mentorEmotion"`
	Phase            string    `json:"phase"`
	EnergyMentee     int       `json:"energyMentee"`
	EnergyMentor     int       `json:"energyMentor"`
	DecisionsTaken   string    `json:"decisionsTaken"`
	DecisionsOpen    string    `json:"decisionsOpen"`
	Reflections      string    `json:"reflections"`
	Type             string    `json:"type"`
	ColumnID         int64     `json:"columnId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CardDetailResponse struct {
	CardResponse
	Messages  []MessageResponse       `json:"messages"`
	Checklist []ChecklistItemResponse `json:"checklist"`
}

type AppendMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	AuthorType string `json:"authorType" binding:"required,oneof=user mentor ai"`
	AuthorName string `json:"authorName" binding:"max=200"`
}

type MessageResponse struct {
	ID         int64     `json:"id"`
	CardID     int64     `json:"cardId"`
	Content    string    `json:"content"`
	AuthorType string    `json:"authorType"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AddChecklistItemRequest struct {
	Content string `json:"content" binding:"required"`
}

// MutateChecklistItemRequest carries a toggle or a rename. If both are
// present, isCompleted wins and content is ignored.
type MutateChecklistItemRequest struct {
	IsCompleted *bool   `json:"isCompleted"`
	Content     *string `json:"content"`
}

type ChecklistItemResponse struct {
	ID          int64     `json:"id"`
	CardID      int64     `json:"cardId"`
	Content     string    `json:"content"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
