package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bportes89/projeto-kanban/internal/cache"
	dom "github.com/bportes89/projeto-kanban/internal/domain"
	"github.com/bportes89/projeto-kanban/internal/observability"
	"github.com/bportes89/projeto-kanban/internal/repo"
	"github.com/bportes89/projeto-kanban/internal/utils"

	"github.com/jackc/pgx/v5"
)

// CardPatch is a partial update over the mutable card fields. Nil means
// "leave unchanged". ColumnID is how a card moves between columns; the
// card keeps its original created_at, so after a move it sorts into the
// destination column chronologically, not at the end.
type CardPatch struct {
	Title            *string
	MenteeName       *string
	MenteeContext    *string
	MenteeGoal       *string
	MentorPerception *string
	MentorResistance *string
	MentorAttention  *string
	MentorEmotion    *string
	Phase            *string
	EnergyMentee     *int
	EnergyMentor     *int
	DecisionsTaken   *string
	DecisionsOpen    *string
	Reflections      *string
	Type             *dom.CardType
	ColumnID         *int64
}

// CardService owns cards plus their message logs and checklists.
type CardService struct {
	stores repo.Stores
	tx     repo.TxManager
	cache  *cache.BoardCache
}

// NewCardService creates a CardService. If c is nil, caching is disabled.
func NewCardService(stores repo.Stores, tx repo.TxManager, c *cache.BoardCache) *CardService {
	return &CardService{stores: stores, tx: tx, cache: c}
}

// Create inserts a card into a column. Type defaults to generic.
func (s *CardService) Create(ctx context.Context, card dom.Card) (dom.Card, error) {
	if card.Type == "" {
		card.Type = dom.CardTypeGeneric
	}
	if !dom.ValidCardType(card.Type) {
		return dom.Card{}, ErrInvalidInput
	}
	if !validEnergy(card.EnergyMentee) || !validEnergy(card.EnergyMentor) {
		return dom.Card{}, ErrInvalidInput
	}
	out, err := s.stores.Cards.Create(ctx, card)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || utils.IsPGForeignKeyViolation(err) {
			return dom.Card{}, ErrNotFound
		}
		// The energy CHECK constraints back up the validation above.
		if utils.IsPGCheckViolation(err) {
			return dom.Card{}, ErrInvalidInput
		}
		return dom.Card{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

// Get returns a card together with its messages and checklist, read from
// a single snapshot.
func (s *CardService) Get(ctx context.Context, id int64) (dom.CardDetail, error) {
	var detail dom.CardDetail
	err := s.tx.WithinReadTx(ctx, func(st repo.Stores) error {
		card, err := st.Cards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		messages, err := st.Messages.ListByCard(ctx, id)
		if err != nil {
			return err
		}
		checklist, err := st.Checklist.ListByCard(ctx, id)
		if err != nil {
			return err
		}
		detail = dom.CardDetail{Card: card, Messages: messages, Checklist: checklist}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CardDetail{}, ErrNotFound
		}
		return dom.CardDetail{}, err
	}
	return detail, nil
}

// Update applies a partial update. Concurrent updates to the same card
// are last-writer-wins; there is no version column.
func (s *CardService) Update(ctx context.Context, id int64, p CardPatch) (dom.Card, error) {
	existing, err := s.stores.Cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Card{}, ErrNotFound
		}
		return dom.Card{}, err
	}
	patch := applyCardPatch(existing, p)
	if !dom.ValidCardType(patch.Type) {
		return dom.Card{}, ErrInvalidInput
	}
	if !validEnergy(patch.EnergyMentee) || !validEnergy(patch.EnergyMentor) {
		return dom.Card{}, ErrInvalidInput
	}
	card, err := s.stores.Cards.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || utils.IsPGForeignKeyViolation(err) {
			return dom.Card{}, ErrNotFound
		}
		if utils.IsPGCheckViolation(err) {
			return dom.Card{}, ErrInvalidInput
		}
		return dom.Card{}, err
	}
	s.invalidateCache(ctx)
	return card, nil
}

// AppendMessage adds an entry to a card's conversation log. The log is
// append-only; nothing ever updates or removes a message.
func (s *CardService) AppendMessage(ctx context.Context, cardID int64, content, authorType, authorName string) (dom.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return dom.Message{}, ErrInvalidInput
	}
	switch authorType {
	case "user", "mentor", "ai":
	default:
		return dom.Message{}, ErrInvalidInput
	}
	msg, err := s.stores.Messages.Create(ctx, dom.Message{
		CardID:     cardID,
		Content:    content,
		AuthorType: authorType,
		AuthorName: authorName,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || utils.IsPGForeignKeyViolation(err) {
			return dom.Message{}, ErrNotFound
		}
		return dom.Message{}, err
	}
	s.invalidateCache(ctx)
	return msg, nil
}

// AddChecklistItem appends an item to a card's checklist, not completed.
func (s *CardService) AddChecklistItem(ctx context.Context, cardID int64, content string) (dom.ChecklistItem, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return dom.ChecklistItem{}, ErrInvalidInput
	}
	item, err := s.stores.Checklist.Create(ctx, dom.ChecklistItem{CardID: cardID, Content: content})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || utils.IsPGForeignKeyViolation(err) {
			return dom.ChecklistItem{}, ErrNotFound
		}
		return dom.ChecklistItem{}, err
	}
	s.invalidateCache(ctx)
	return item, nil
}

// MutateChecklistItem toggles completion or renames an item. When both
// fields arrive in one call, the completion flag wins and content is left
// untouched; the reverse never alters the flag. An empty content value is
// a no-op, never an erase.
func (s *CardService) MutateChecklistItem(ctx context.Context, id int64, isCompleted *bool, content *string) (dom.ChecklistItem, error) {
	existing, err := s.stores.Checklist.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ChecklistItem{}, ErrNotFound
		}
		return dom.ChecklistItem{}, err
	}
	patch := existing
	if isCompleted != nil {
		patch.IsCompleted = *isCompleted
	} else if content != nil && *content != "" {
		patch.Content = *content
	}
	item, err := s.stores.Checklist.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ChecklistItem{}, ErrNotFound
		}
		return dom.ChecklistItem{}, err
	}
	s.invalidateCache(ctx)
	return item, nil
}

// DeleteChecklistItem removes an item permanently. A second delete of the
// same id reports not-found rather than succeeding silently.
func (s *CardService) DeleteChecklistItem(ctx context.Context, id int64) error {
	if err := s.stores.Checklist.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CardService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn("board cache invalidation failed", "err", err)
	}
}

func validEnergy(v int) bool { return v >= 0 && v <= 10 }

func applyCardPatch(c dom.Card, p CardPatch) dom.Card {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.MenteeName != nil {
		c.MenteeName = *p.MenteeName
	}
	if p.MenteeContext != nil {
		c.MenteeContext = *p.MenteeContext
	}
	if p.MenteeGoal != nil {
		c.MenteeGoal = *p.MenteeGoal
	}
	if p.MentorPerception != nil {
		c.MentorPerception = *p.MentorPerception
	}
	if p.MentorResistance != nil {
		c.MentorResistance = *p.MentorResistance
	}
	if p.MentorAttention != nil {
		c.MentorAttention = *p.MentorAttention
	}
	if p.MentorEmotion != nil {
		c.MentorEmotion = *p.MentorEmotion
	}
	if p.Phase != nil {
		c.Phase = *p.Phase
	}
	if p.EnergyMentee != nil {
		c.EnergyMentee = *p.EnergyMentee
	}
	if p.EnergyMentor != nil {
		c.EnergyMentor = *p.EnergyMentor
	}
	if p.DecisionsTaken != nil {
		c.DecisionsTaken = *p.DecisionsTaken
	}
	if p.DecisionsOpen != nil {
		c.DecisionsOpen = *p.DecisionsOpen
	}
	if p.Reflections != nil {
		c.Reflections = *p.Reflections
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.ColumnID != nil {
		c.ColumnID = *p.ColumnID
	}
	return c
}
