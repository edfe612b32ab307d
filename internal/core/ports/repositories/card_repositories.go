package repositories

import (
	"context"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
)

// CardReader defines read operations for card data
type CardReader interface {
	// FindCardByID retrieves a specific card by its registry-assigned identifier.
	FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error)

	// FindAllCards retrieves all cards in insertion order.
	FindAllCards(ctx context.Context) ([]domain.Card, error)
}

// CardWriter defines write operations for card data
type CardWriter interface {
	// SaveCard persists a new card.
	SaveCard(ctx context.Context, card domain.Card) error

	// UpdateCard replaces an existing card's state (used after a successful
	// charge or payment).
	UpdateCard(ctx context.Context, card domain.Card) error

	// ClearCards removes all cards.
	ClearCards(ctx context.Context) error
}

// CardRepositoryFacade combines all card-related repository interfaces.
type CardRepositoryFacade interface {
	CardReader
	CardWriter
}
