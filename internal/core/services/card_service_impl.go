package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	portsrepo "github.com/finbyte/card_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
	"github.com/finbyte/card_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// cardServiceImpl implements the CardSvcFacade interface. It owns the
// sequential card ID counter; IDs are never derived from hidden global state.
type cardServiceImpl struct {
	BaseService
	cardRepo portsrepo.CardRepositoryFacade
	now      func() time.Time

	mu     sync.Mutex
	nextID int64
}

// CardServiceOption is a functional option for configuring the card service
type CardServiceOption func(*cardServiceImpl)

// WithCardClock overrides the service clock, used to pin "now" in tests.
func WithCardClock(now func() time.Time) CardServiceOption {
	return func(s *cardServiceImpl) {
		s.now = now
	}
}

// NewCardServiceImpl creates a new card service with the provided options
func NewCardServiceImpl(repo portsrepo.CardRepositoryFacade, options ...CardServiceOption) portssvc.CardSvcFacade {
	svc := &cardServiceImpl{
		cardRepo: repo,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure cardServiceImpl implements the CardSvcFacade interface
var _ portssvc.CardSvcFacade = (*cardServiceImpl)(nil)

func (s *cardServiceImpl) nextCardID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *cardServiceImpl) RegisterCard(ctx context.Context, req dto.RegisterCardRequest) (*domain.Card, error) {
	if !domain.ValidCardNumber(req.Number) {
		err := apperrors.ErrInvalidCardNumber
		s.LogError(ctx, err, "Card number failed checksum validation",
			slog.String("holder_name", req.HolderName))
		return nil, err
	}

	expiry, err := domain.ParseExpiry(req.Expiry, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to parse card expiry",
			slog.String("expiry", req.Expiry))
		return nil, err
	}

	if req.CreditLimit.IsNegative() {
		err := fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		s.LogError(ctx, err, "Rejected negative credit limit")
		return nil, err
	}

	card := domain.NewCard(req.Number, req.HolderName, expiry, req.CVV, req.Network, req.CreditLimit)
	card.CardID = s.nextCardID()

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card",
			slog.Int64("card_id", card.CardID))
		return nil, err
	}

	s.LogInfo(ctx, "Card registered successfully",
		slog.Int64("card_id", card.CardID),
		slog.String("masked_number", card.MaskedNumber()))
	return &card, nil
}

func (s *cardServiceImpl) ListCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindAllCards(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards")
		return nil, err
	}
	return cards, nil
}

func (s *cardServiceImpl) FindCard(ctx context.Context, query string) (*domain.Card, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrNotFound
	}

	cards, err := s.cardRepo.FindAllCards(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cards for lookup")
		return nil, err
	}

	// First card whose raw number or masked rendering equals the query
	// verbatim wins.
	for i := range cards {
		if cards[i].Number == query || cards[i].MaskedNumber() == query {
			card := cards[i]
			return &card, nil
		}
	}

	return nil, apperrors.ErrNotFound
}

func (s *cardServiceImpl) GetCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find card by ID",
				slog.Int64("card_id", cardID))
		}
		return nil, err
	}
	return card, nil
}

func (s *cardServiceImpl) Charge(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	txn := card.Charge(amount, s.now())
	if txn.Success {
		// Persist only on success; a rejected attempt never mutates state.
		if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
			s.LogError(ctx, err, "Failed to persist card after charge",
				slog.Int64("card_id", cardID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Charge attempt processed",
		slog.Int64("card_id", cardID),
		slog.Bool("success", txn.Success),
		slog.String("note", txn.Note))
	return &txn, nil
}

func (s *cardServiceImpl) Payment(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	txn := card.Payment(amount, s.now())
	if txn.Success {
		if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
			s.LogError(ctx, err, "Failed to persist card after payment",
				slog.Int64("card_id", cardID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Payment attempt processed",
		slog.Int64("card_id", cardID),
		slog.Bool("success", txn.Success),
		slog.String("note", txn.Note))
	return &txn, nil
}

func (s *cardServiceImpl) CanCharge(ctx context.Context, cardID int64, amount decimal.Decimal) (bool, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return false, err
	}
	return card.CanCharge(amount, s.now()), nil
}
