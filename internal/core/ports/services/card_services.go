package services

import (
	"context"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/finbyte/card_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerOperation is the shared signature of Charge and Payment, letting
// handlers treat the two attempts uniformly.
type LedgerOperation func(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error)

// CardSvcFacade exposes the card registry and the ledger operations on
// registered cards.
type CardSvcFacade interface {
	// RegisterCard validates the card number (Luhn) and expiry string,
	// assigns the next sequential identifier and stores the card.
	RegisterCard(ctx context.Context, req dto.RegisterCardRequest) (*domain.Card, error)

	// ListCards returns all registered cards in insertion order.
	ListCards(ctx context.Context) ([]domain.Card, error)

	// FindCard returns the first card whose raw number or masked-number
	// rendering equals the query verbatim.
	FindCard(ctx context.Context, query string) (*domain.Card, error)

	// GetCardByID retrieves a card by its registry-assigned identifier.
	GetCardByID(ctx context.Context, cardID int64) (*domain.Card, error)

	// Charge attempts to charge the card and returns the transaction record.
	// Rejected attempts come back with Success=false, not as errors.
	Charge(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error)

	// Payment attempts a payment against the card's balance.
	Payment(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error)

	// CanCharge is the pure pre-flight check for Charge; it never mutates.
	CanCharge(ctx context.Context, cardID int64, amount decimal.Decimal) (bool, error)
}
