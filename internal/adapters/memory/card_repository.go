// Package memory provides in-memory repository implementations. Data is
// lost on restart; there is no database-backed alternative because the
// system deliberately keeps all state in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	portsrepo "github.com/finbyte/card_ledger_app/internal/core/ports/repositories"
)

// CardRepository is a mutex-guarded in-memory card store. Each card is
// exclusively owned by the repository; lookups return copies, never
// internal pointers. An order slice keeps FindAllCards stable in insertion
// order.
type CardRepository struct {
	mu    sync.RWMutex
	cards map[int64]domain.Card
	order []int64
}

// NewCardRepository creates an empty in-memory card repository.
func NewCardRepository() *CardRepository {
	return &CardRepository{
		cards: make(map[int64]domain.Card),
	}
}

// Ensure CardRepository implements the repository facade
var _ portsrepo.CardRepositoryFacade = (*CardRepository)(nil)

// SaveCard stores a new card. The same number may be inserted twice under
// different IDs; no duplicate detection is performed.
func (r *CardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[card.CardID]; !exists {
		r.order = append(r.order, card.CardID)
	}
	r.cards[card.CardID] = card
	return nil
}

// UpdateCard replaces an existing card's state.
func (r *CardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[card.CardID]; !exists {
		return fmt.Errorf("card %d: %w", card.CardID, apperrors.ErrNotFound)
	}
	r.cards[card.CardID] = card
	return nil
}

// FindCardByID retrieves a copy of the card with the given identifier.
func (r *CardRepository) FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, exists := r.cards[cardID]
	if !exists {
		return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrNotFound)
	}
	return &card, nil
}

// FindAllCards returns copies of all cards in insertion order.
func (r *CardRepository) FindAllCards(ctx context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Card, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.cards[id])
	}
	return result, nil
}

// ClearCards removes all cards.
func (r *CardRepository) ClearCards(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = make(map[int64]domain.Card)
	r.order = nil
	return nil
}
