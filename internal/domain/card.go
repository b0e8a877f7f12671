package domain

import "time"

// CardType classifies a mentoring card.
type CardType string

const (
	CardTypeGeneric CardType = "generic"
	CardTypeProduto CardType = "produto"
	CardTypeCliente CardType = "cliente"
	CardTypeProjeto CardType = "projeto"
	CardTypeDecisao CardType = "decisao"
)

// ValidCardType reports whether t is one of the known card types.
func ValidCardType(t CardType) bool {
	switch t {
	case CardTypeGeneric, CardTypeProduto, CardTypeCliente, CardTypeProjeto, CardTypeDecisao:
		return true
	}
	return false
}

// Card is a single mentoring session record. It lives in exactly one
// column (ColumnID is how a card moves) and is ordered within that column
// by CreatedAt — a moved card keeps its original timestamp, so it keeps
// its chronological slot in the destination column.
type Card struct {
	ID    int64
	Title string

	MenteeName       string
	MenteeContext    string
	MenteeGoal       string
	MentorPerception string
	MentorResistance string
	MentorAttention  string
	MentorEmotion    string

	Phase        string
	EnergyMentee int // 0..10
	EnergyMentor int // 0..10

	DecisionsTaken string
	DecisionsOpen  string
	Reflections    string

	Type     CardType
	ColumnID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is an immutable entry in a card's conversation log.
// The log is append-only; there is no update or delete.
type Message struct {
	ID         int64
	CardID     int64
	Content    string
	AuthorType string // "user", "mentor" or "ai"
	AuthorName string
	CreatedAt  time.Time
}

// ChecklistItem is a boolean-completable sub-task attached to a card.
type ChecklistItem struct {
	ID          int64
	CardID      int64
	Content     string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
